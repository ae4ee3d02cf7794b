package queue

import (
	"context"

	"go-monitor/internal/domain/model"
)

// ProbeGateway checks message queue connectivity for health monitoring.
type ProbeGateway interface {
	// Probe verifies the queue exists and answers attribute queries
	Probe(ctx context.Context) (model.ProbeFinding, error)
}
