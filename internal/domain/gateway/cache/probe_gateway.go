package cache

import (
	"context"

	"go-monitor/internal/domain/model"
)

// ProbeGateway checks cache connectivity for health monitoring.
type ProbeGateway interface {
	// Probe verifies the cache answers a full set, get and delete cycle
	Probe(ctx context.Context) (model.ProbeFinding, error)
}
