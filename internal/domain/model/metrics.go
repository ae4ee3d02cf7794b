package model

import "time"

// EndpointMetrics is the per-route latency and error digest exposed in
// metrics snapshots. Entries are created lazily on the first observation of
// a method+path pair and live for the process lifetime.
type EndpointMetrics struct {
	Path           string        `json:"path"`
	Method         string        `json:"method"`
	Count          int64         `json:"count"`
	TotalDuration  time.Duration `json:"totalDuration"`
	Min            time.Duration `json:"min"`
	Max            time.Duration `json:"max"`
	Average        time.Duration `json:"average"`
	P50            time.Duration `json:"p50"`
	P95            time.Duration `json:"p95"`
	P99            time.Duration `json:"p99"`
	ErrorCount     int64         `json:"errorCount"`
	ErrorRate      float64       `json:"errorRate"`
	LastAccessTime time.Time     `json:"lastAccessTime"`
}

// SlowQuery is one retained slow-query sample. The query text is truncated
// before retention.
type SlowQuery struct {
	Query     string        `json:"query"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
}

// DatabaseMetrics aggregates database operation outcomes.
type DatabaseMetrics struct {
	Count           int64         `json:"count"`
	ErrorCount      int64         `json:"errorCount"`
	ErrorRate       float64       `json:"errorRate"`
	TotalDuration   time.Duration `json:"totalDuration"`
	AverageDuration time.Duration `json:"averageDuration"`
	SlowQueries     []SlowQuery   `json:"slowQueries"`
}

// CacheMetrics aggregates cache operation outcomes.
type CacheMetrics struct {
	Operations      int64         `json:"operations"`
	Hits            int64         `json:"hits"`
	Misses          int64         `json:"misses"`
	HitRate         float64       `json:"hitRate"`
	ErrorCount      int64         `json:"errorCount"`
	ErrorRate       float64       `json:"errorRate"`
	TotalDuration   time.Duration `json:"totalDuration"`
	AverageDuration time.Duration `json:"averageDuration"`
}

// ExternalAPIMetrics aggregates outbound call outcomes for one external
// service.
type ExternalAPIMetrics struct {
	Service         string        `json:"service"`
	Calls           int64         `json:"calls"`
	ErrorCount      int64         `json:"errorCount"`
	ErrorRate       float64       `json:"errorRate"`
	TotalDuration   time.Duration `json:"totalDuration"`
	AverageDuration time.Duration `json:"averageDuration"`
	LastCallTime    time.Time     `json:"lastCallTime"`
}

// MemoryMetrics combines process heap figures with OS-level memory usage.
type MemoryMetrics struct {
	HeapUsed          uint64  `json:"heapUsed"`
	HeapTotal         uint64  `json:"heapTotal"`
	External          uint64  `json:"external"`
	Stack             uint64  `json:"stack"`
	SystemTotal       uint64  `json:"systemTotal"`
	SystemFree        uint64  `json:"systemFree"`
	SystemUsedPercent float64 `json:"systemUsedPercent"`
}

// CPUMetrics holds the CPU usage of the process over the last sample
// interval.
type CPUMetrics struct {
	Percent    float64 `json:"percent"`
	Goroutines int     `json:"goroutines"`
}

// GCMetrics accumulates garbage collection activity since process start.
type GCMetrics struct {
	Collections uint32        `json:"collections"`
	TotalPause  time.Duration `json:"totalPause"`
	LastPause   time.Duration `json:"lastPause"`
}

// SystemMetrics is the resource section of a metrics snapshot.
type SystemMetrics struct {
	Memory         MemoryMetrics `json:"memory"`
	CPU            CPUMetrics    `json:"cpu"`
	GC             GCMetrics     `json:"gc"`
	SchedulerDelay time.Duration `json:"schedulerDelay"`
	SampledAt      time.Time     `json:"sampledAt"`
	Uptime         time.Duration `json:"uptime"`
}

// HTTPMetrics is the request section of a metrics snapshot.
type HTTPMetrics struct {
	TotalRequests    int64                      `json:"totalRequests"`
	TotalErrors      int64                      `json:"totalErrors"`
	ErrorRate        float64                    `json:"errorRate"`
	Endpoints        map[string]EndpointMetrics `json:"endpoints"`
	SlowestEndpoints []EndpointMetrics          `json:"slowestEndpoints"`
}

// MetricsSnapshot is the full point-in-time view served to the route layer.
type MetricsSnapshot struct {
	Timestamp time.Time                     `json:"timestamp"`
	HTTP      HTTPMetrics                   `json:"http"`
	Database  DatabaseMetrics               `json:"database"`
	Cache     CacheMetrics                  `json:"cache"`
	External  map[string]ExternalAPIMetrics `json:"external"`
	System    SystemMetrics                 `json:"system"`
}
