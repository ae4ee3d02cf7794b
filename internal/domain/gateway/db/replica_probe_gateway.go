package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"go-monitor/internal/domain/model"
)

// QueryRecorder receives the outcome of each query issued by a probe.
type QueryRecorder interface {
	RecordDatabaseQuery(query string, duration time.Duration, err error)
}

// ReplicaProbeGateway probes a read replica over a plain database/sql
// connection.
type ReplicaProbeGateway struct {
	DB       *sql.DB
	recorder QueryRecorder
}

var _ ProbeGateway = (*ReplicaProbeGateway)(nil)

// NewReplicaProbeGateway creates a new replica probe gateway. The recorder
// may be nil.
func NewReplicaProbeGateway(db *sql.DB, recorder QueryRecorder) *ReplicaProbeGateway {
	return &ReplicaProbeGateway{DB: db, recorder: recorder}
}

// Probe pings the replica and runs a trivial query to verify it is actually
// answering, not just accepting connections.
func (gateway *ReplicaProbeGateway) Probe(ctx context.Context) (model.ProbeFinding, error) {
	if err := gateway.DB.PingContext(ctx); err != nil {
		return model.ProbeFinding{}, err
	}

	var one int
	start := time.Now()
	err := gateway.DB.QueryRowContext(ctx, "SELECT 1").Scan(&one)
	if gateway.recorder != nil {
		gateway.recorder.RecordDatabaseQuery("SELECT 1", time.Since(start), err)
	}
	if err != nil {
		return model.ProbeFinding{}, err
	}
	if one != 1 {
		return model.ProbeFinding{}, fmt.Errorf("replica answered %d to a select 1", one)
	}

	stats := gateway.DB.Stats()
	return model.ProbeFinding{
		Status: model.StatusHealthy,
		Details: map[string]string{
			"open_connections": strconv.Itoa(stats.OpenConnections),
			"in_use":           strconv.Itoa(stats.InUse),
			"idle":             strconv.Itoa(stats.Idle),
		},
	}, nil
}
