package health

import (
	"context"

	"go-monitor/internal/domain/model"
)

type UseCase interface {
	// BasicHealth returns the fast-path health summary for load balancers
	BasicHealth() model.BasicHealth

	// DetailedHealth returns the full health view with per-dependency checks
	// and resource and performance excerpts
	DetailedHealth() model.DetailedHealth

	// Readiness reports whether the service can take traffic, judged from
	// critical dependencies only
	Readiness() model.ReadinessReport

	// Liveness reports process responsiveness, independent of dependency
	// health
	Liveness() model.LivenessReport

	// CheckAll re-probes every enabled dependency immediately and returns
	// the recomputed snapshot
	CheckAll(ctx context.Context) model.HealthSnapshot

	// CheckDependency re-probes a single named dependency immediately
	CheckDependency(ctx context.Context, name string) (model.CheckResult, error)
}
