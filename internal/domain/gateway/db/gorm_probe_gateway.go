package db

import (
	"context"
	"database/sql"
	"strconv"

	"go-monitor/internal/domain/model"

	"gorm.io/gorm"
)

// GormProbeGateway probes the primary database through the gorm connection.
type GormProbeGateway struct {
	DB *gorm.DB
}

var _ ProbeGateway = (*GormProbeGateway)(nil)

func NewGormProbeGateway(db *gorm.DB) *GormProbeGateway {
	return &GormProbeGateway{DB: db}
}

// Probe pings the underlying connection and reports pool usage. A pool
// running out of idle connections degrades the dependency instead of
// failing it.
func (gateway *GormProbeGateway) Probe(ctx context.Context) (model.ProbeFinding, error) {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return model.ProbeFinding{}, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return model.ProbeFinding{}, err
	}

	return poolFinding(sqlDB.Stats()), nil
}

// poolFinding judges a reachable database from its pool statistics. A pool
// with every connection in use degrades the dependency instead of failing
// it; an unbounded pool never counts as exhausted.
func poolFinding(stats sql.DBStats) model.ProbeFinding {
	finding := model.ProbeFinding{
		Status: model.StatusHealthy,
		Details: map[string]string{
			"open_connections": strconv.Itoa(stats.OpenConnections),
			"in_use":           strconv.Itoa(stats.InUse),
			"idle":             strconv.Itoa(stats.Idle),
			"wait_count":       strconv.FormatInt(stats.WaitCount, 10),
		},
	}
	if stats.MaxOpenConnections > 0 && stats.InUse == stats.MaxOpenConnections {
		finding.Status = model.StatusDegraded
		finding.Message = "connection pool exhausted"
	}
	return finding
}
