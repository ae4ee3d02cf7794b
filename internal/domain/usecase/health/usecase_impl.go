package health

import (
	"context"

	"go-monitor/internal/domain/model"
	"go-monitor/internal/domain/monitor"
)

type healthUseCase struct {
	monitor *monitor.Monitor
}

func NewHealthUseCase(m *monitor.Monitor) UseCase {
	return &healthUseCase{monitor: m}
}

func (useCase *healthUseCase) BasicHealth() model.BasicHealth {
	return useCase.monitor.Basic()
}

func (useCase *healthUseCase) DetailedHealth() model.DetailedHealth {
	return useCase.monitor.Detailed()
}

func (useCase *healthUseCase) Readiness() model.ReadinessReport {
	return useCase.monitor.Readiness()
}

func (useCase *healthUseCase) Liveness() model.LivenessReport {
	return useCase.monitor.Liveness()
}

func (useCase *healthUseCase) CheckAll(ctx context.Context) model.HealthSnapshot {
	return useCase.monitor.RunSweep(ctx, monitor.ScopeAll)
}

func (useCase *healthUseCase) CheckDependency(ctx context.Context, name string) (model.CheckResult, error) {
	return useCase.monitor.CheckDependency(ctx, name)
}
