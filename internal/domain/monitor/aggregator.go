package monitor

import (
	"go-monitor/internal/domain/model"
)

// StatusAggregator derives the overall service status and the summary counts
// from the accumulated check results.
type StatusAggregator struct{}

// NewStatusAggregator creates a new status aggregator
func NewStatusAggregator() *StatusAggregator {
	return &StatusAggregator{}
}

// Aggregate computes the overall status. The rules apply in order: an
// unhealthy critical dependency makes the service unhealthy outright, a
// degraded critical dependency makes it degraded unless a critical
// dependency scanned later is unhealthy, and otherwise the service is
// degraded when degraded checks outnumber healthy ones across all results.
// The critical dependencies must be supplied in registration order.
func (a *StatusAggregator) Aggregate(critical []*Dependency, results map[string]model.CheckResult) model.HealthStatus {
	overall := model.StatusHealthy

	for _, dep := range critical {
		if !dep.Critical || !dep.Enabled {
			continue
		}
		result, ok := results[dep.Name]
		if !ok {
			continue
		}
		switch result.Status {
		case model.StatusUnhealthy:
			return model.StatusUnhealthy
		case model.StatusDegraded:
			overall = model.StatusDegraded
		}
	}

	if overall == model.StatusHealthy {
		healthy, degraded := 0, 0
		for _, result := range results {
			switch result.Status {
			case model.StatusHealthy:
				healthy++
			case model.StatusDegraded:
				degraded++
			}
		}
		if degraded > healthy {
			overall = model.StatusDegraded
		}
	}
	return overall
}

// Summarize recounts the status distribution from scratch over the full
// checks map.
func (a *StatusAggregator) Summarize(results map[string]model.CheckResult) model.HealthSummary {
	summary := model.HealthSummary{Total: len(results)}
	for _, result := range results {
		switch result.Status {
		case model.StatusHealthy:
			summary.Healthy++
		case model.StatusDegraded:
			summary.Degraded++
		case model.StatusUnhealthy:
			summary.Unhealthy++
		}
	}
	return summary
}
