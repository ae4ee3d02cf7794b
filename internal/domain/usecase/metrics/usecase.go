package metrics

import "go-monitor/internal/domain/model"

type UseCase interface {
	// Snapshot returns the full metrics view broken into http, database,
	// cache, external and system sections. A positive top bounds the
	// slowest endpoint ranking, zero keeps the configured limit.
	Snapshot(top int) model.MetricsSnapshot

	// SystemMetrics captures a fresh resource sample
	SystemMetrics() model.SystemMetrics

	// Prometheus renders the collected metrics in the text exposition format
	Prometheus() string
}
