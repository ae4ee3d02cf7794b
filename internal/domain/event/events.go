package event

import "time"

// Kind identifies the class of a monitor event.
type Kind string

const (
	// KindAggregateHealth is published after every completed sweep.
	KindAggregateHealth Kind = "aggregate_health"
	// KindStatusChange is published when the overall status transitions.
	KindStatusChange Kind = "status_change"
	// KindSlowRequest is published when a request exceeds the slow-request threshold.
	KindSlowRequest Kind = "slow_request"
	// KindSlowQuery is published when a database query exceeds the slow-query threshold.
	KindSlowQuery Kind = "slow_query"
	// KindHighMemoryUsage is published when system memory usage crosses its alert threshold.
	KindHighMemoryUsage Kind = "high_memory_usage"
	// KindHighCPUUsage is published when process CPU usage crosses its alert threshold.
	KindHighCPUUsage Kind = "high_cpu_usage"
)

// Event is one notification emitted by the monitor, the metrics collector or
// the resource sampler. Key scopes the event to a dependency, an endpoint or
// a resource name so consumers can throttle per source.
type Event struct {
	Kind      Kind              `json:"kind"`
	Key       string            `json:"key"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}
