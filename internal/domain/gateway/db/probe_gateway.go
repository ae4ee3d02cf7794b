package db

import (
	"context"

	"go-monitor/internal/domain/model"
)

// ProbeGateway checks database connectivity for health monitoring.
type ProbeGateway interface {
	// Probe verifies the database is reachable and answering queries
	Probe(ctx context.Context) (model.ProbeFinding, error)
}
