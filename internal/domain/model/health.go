package model

import (
	"maps"
	"time"
)

// HealthStatus represents the possible health status values of a dependency
// or of the system as a whole.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusDegraded  HealthStatus = "degraded"
	StatusUnhealthy HealthStatus = "unhealthy"
)

// DependencyType classifies a monitored dependency.
type DependencyType string

const (
	TypeDatabase    DependencyType = "database"
	TypeCache       DependencyType = "cache"
	TypeExternalAPI DependencyType = "external_api"
	TypeFileSystem  DependencyType = "file_system"
	TypeService     DependencyType = "service"
)

// ProbeFinding is what a probe reports when it completes without error.
// A successful probe may still report a degraded or unhealthy status.
type ProbeFinding struct {
	Status  HealthStatus      `json:"status"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// CheckMetadata carries the bookkeeping that survives across probe runs.
type CheckMetadata struct {
	CheckCount          int64  `json:"checkCount"`
	ConsecutiveFailures int    `json:"consecutiveFailures"`
	LastError           string `json:"lastError,omitempty"`
}

// CheckResult is the last observed state of one dependency. Entries are
// created on the first probe and updated in place for the process lifetime.
type CheckResult struct {
	Name         string            `json:"name"`
	Status       HealthStatus      `json:"status"`
	LastCheck    time.Time         `json:"lastCheck"`
	ResponseTime time.Duration     `json:"responseTime"`
	Message      string            `json:"message"`
	Details      map[string]string `json:"details,omitempty"`
	Metadata     CheckMetadata     `json:"metadata"`
}

// Clone returns a copy of the result whose Details map is independent of
// the original, so readers cannot mutate stored state.
func (r CheckResult) Clone() CheckResult {
	r.Details = maps.Clone(r.Details)
	return r
}

// HealthSummary holds the per-sweep status counts over all checks.
type HealthSummary struct {
	Total     int `json:"total"`
	Healthy   int `json:"healthy"`
	Degraded  int `json:"degraded"`
	Unhealthy int `json:"unhealthy"`
}

// HealthSnapshot is a point-in-time copy of the aggregate health state.
type HealthSnapshot struct {
	Status    HealthStatus           `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Uptime    time.Duration          `json:"uptime"`
	Checks    map[string]CheckResult `json:"checks"`
	Summary   HealthSummary          `json:"summary"`
}

// BasicHealth is the fast-path response served to load balancers.
type BasicHealth struct {
	Status      HealthStatus  `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
	Uptime      time.Duration `json:"uptime"`
	Version     string        `json:"version"`
	Environment string        `json:"environment"`
}

// DetailedHealth extends the basic response with per-dependency checks and
// resource/performance excerpts.
type DetailedHealth struct {
	BasicHealth
	Checks      map[string]CheckResult `json:"checks"`
	Summary     HealthSummary          `json:"summary"`
	Resources   SystemMetrics          `json:"resources"`
	Performance PerformanceExcerpt     `json:"performance"`
}

// PerformanceExcerpt is the small request-level digest embedded in the
// detailed health response.
type PerformanceExcerpt struct {
	Requests       int64         `json:"requests"`
	ErrorRate      float64       `json:"errorRate"`
	AverageLatency time.Duration `json:"averageLatency"`
}

// ReadinessReport restricts the health view to critical dependencies only.
type ReadinessReport struct {
	Ready     bool                   `json:"ready"`
	Status    HealthStatus           `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Critical  map[string]CheckResult `json:"critical"`
}

// LivenessReport reflects process responsiveness only, independent of any
// dependency state.
type LivenessReport struct {
	Alive     bool          `json:"alive"`
	Timestamp time.Time     `json:"timestamp"`
	Uptime    time.Duration `json:"uptime"`
	PID       int           `json:"pid"`
}
