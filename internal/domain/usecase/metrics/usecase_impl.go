package metrics

import (
	enginemetrics "go-monitor/internal/domain/metrics"
	"go-monitor/internal/domain/model"
)

type metricsUseCase struct {
	collector *enginemetrics.Collector
	sampler   *enginemetrics.ResourceSampler
}

func NewMetricsUseCase(collector *enginemetrics.Collector, sampler *enginemetrics.ResourceSampler) UseCase {
	return &metricsUseCase{
		collector: collector,
		sampler:   sampler,
	}
}

func (useCase *metricsUseCase) Snapshot(top int) model.MetricsSnapshot {
	return useCase.collector.SnapshotTop(top)
}

func (useCase *metricsUseCase) SystemMetrics() model.SystemMetrics {
	return useCase.sampler.Sample()
}

func (useCase *metricsUseCase) Prometheus() string {
	return useCase.collector.RenderPrometheus()
}
