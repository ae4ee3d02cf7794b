package metrics

import (
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"go-monitor/internal/domain/event"
	"go-monitor/internal/domain/model"
	"go-monitor/pkg/log"
)

// Collector accumulates performance metrics for HTTP endpoints, database
// queries, cache operations and external API calls. All recording methods are
// safe for concurrent use and never propagate failures into the caller.
type Collector struct {
	config *CollectorConfig
	bus    *event.Bus

	mu            sync.Mutex
	startTime     time.Time
	endpoints     map[string]*endpointState
	database      model.DatabaseMetrics
	cache         model.CacheMetrics
	external      map[string]*model.ExternalAPIMetrics
	system        model.SystemMetrics
	totalRequests int64
	totalErrors   int64
}

type endpointState struct {
	metrics model.EndpointMetrics
	window  *durationWindow
}

// NewCollector creates a new metrics collector. The event bus may be nil, in
// which case no events are published.
func NewCollector(config *CollectorConfig, bus *event.Bus) *Collector {
	if config == nil {
		config = NewCollectorConfig()
	}
	return &Collector{
		config:    config,
		bus:       bus,
		startTime: time.Now(),
		endpoints: make(map[string]*endpointState),
		external:  make(map[string]*model.ExternalAPIMetrics),
	}
}

// StartTime returns the instant the collector was created.
func (c *Collector) StartTime() time.Time {
	return c.startTime
}

// Uptime returns the elapsed time since the collector was created.
func (c *Collector) Uptime() time.Duration {
	return time.Since(c.startTime)
}

// RecordHTTPRequest records one handled request for the method and path pair.
// Status codes of 400 and above count as errors.
func (c *Collector) RecordHTTPRequest(method, path string, duration time.Duration, statusCode int) {
	defer c.recoverRecording("http request")

	key := method + " " + path
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.endpoints[key]
	if !ok {
		st = &endpointState{
			metrics: model.EndpointMetrics{Path: path, Method: method},
			window:  newDurationWindow(c.config.WindowCapacity),
		}
		c.endpoints[key] = st
	}

	st.metrics.Count++
	st.metrics.TotalDuration += duration
	if st.metrics.Count == 1 || duration < st.metrics.Min {
		st.metrics.Min = duration
	}
	if duration > st.metrics.Max {
		st.metrics.Max = duration
	}
	st.metrics.Average = st.metrics.TotalDuration / time.Duration(st.metrics.Count)
	st.metrics.LastAccessTime = now

	c.totalRequests++
	if statusCode >= 400 {
		st.metrics.ErrorCount++
		c.totalErrors++
	}
	st.metrics.ErrorRate = float64(st.metrics.ErrorCount) / float64(st.metrics.Count)

	st.window.Append(duration)
	sorted := st.window.Sorted()
	st.metrics.P50 = nearestRank(sorted, 50)
	st.metrics.P95 = nearestRank(sorted, 95)
	st.metrics.P99 = nearestRank(sorted, 99)

	if duration > c.config.SlowRequestThreshold {
		log.Warnf("Slow request detected: %s took %v", key, duration)
		c.publish(event.Event{
			Kind:    event.KindSlowRequest,
			Key:     key,
			Message: "request exceeded slow threshold",
			Details: map[string]string{
				"method":   method,
				"path":     path,
				"duration": duration.String(),
			},
		})
	}
}

// RecordDatabaseQuery records one executed query. Queries slower than the
// configured threshold are retained with truncated query text.
func (c *Collector) RecordDatabaseQuery(query string, duration time.Duration, err error) {
	defer c.recoverRecording("database query")

	c.mu.Lock()
	defer c.mu.Unlock()

	c.database.Count++
	c.database.TotalDuration += duration
	if err != nil {
		c.database.ErrorCount++
	}
	c.database.ErrorRate = float64(c.database.ErrorCount) / float64(c.database.Count)
	c.database.AverageDuration = c.database.TotalDuration / time.Duration(c.database.Count)

	if duration > c.config.SlowQueryThreshold {
		retained := truncate(query, c.config.QueryTextLimit)
		c.database.SlowQueries = append(c.database.SlowQueries, model.SlowQuery{
			Query:     retained,
			Duration:  duration,
			Timestamp: time.Now(),
		})
		if len(c.database.SlowQueries) > c.config.SlowQueryLimit {
			c.database.SlowQueries = c.database.SlowQueries[1:]
		}
		log.Warnf("Slow query detected: took %v", duration)
		c.publish(event.Event{
			Kind:    event.KindSlowQuery,
			Key:     "database",
			Message: "query exceeded slow threshold",
			Details: map[string]string{
				"query":    retained,
				"duration": duration.String(),
			},
		})
	}
}

// RecordCacheOperation records one cache command. Hit accounting applies to
// successful get operations only.
func (c *Collector) RecordCacheOperation(operation string, duration time.Duration, hit bool, err error) {
	defer c.recoverRecording("cache operation")

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Operations++
	c.cache.TotalDuration += duration
	if err != nil {
		c.cache.ErrorCount++
	}
	c.cache.ErrorRate = float64(c.cache.ErrorCount) / float64(c.cache.Operations)
	c.cache.AverageDuration = c.cache.TotalDuration / time.Duration(c.cache.Operations)

	if operation == "get" && err == nil {
		if hit {
			c.cache.Hits++
		} else {
			c.cache.Misses++
		}
		if lookups := c.cache.Hits + c.cache.Misses; lookups > 0 {
			c.cache.HitRate = float64(c.cache.Hits) / float64(lookups)
		}
	}
}

// RecordExternalAPICall records one outbound call to the named service.
func (c *Collector) RecordExternalAPICall(service string, duration time.Duration, err error) {
	defer c.recoverRecording("external api call")

	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.external[service]
	if !ok {
		st = &model.ExternalAPIMetrics{Service: service}
		c.external[service] = st
	}

	st.Calls++
	st.TotalDuration += duration
	if err != nil {
		st.ErrorCount++
	}
	st.ErrorRate = float64(st.ErrorCount) / float64(st.Calls)
	st.AverageDuration = st.TotalDuration / time.Duration(st.Calls)
	st.LastCallTime = time.Now()
}

// SetSystemMetrics stores the most recent resource sample so snapshots carry
// the latest system view.
func (c *Collector) SetSystemMetrics(system model.SystemMetrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.system = system
}

// SystemMetrics returns the most recent resource sample.
func (c *Collector) SystemMetrics() model.SystemMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.system
}

// HTTPOverview returns aggregate request figures across all endpoints.
func (c *Collector) HTTPOverview() model.PerformanceExcerpt {
	c.mu.Lock()
	defer c.mu.Unlock()

	excerpt := model.PerformanceExcerpt{Requests: c.totalRequests}
	if c.totalRequests > 0 {
		excerpt.ErrorRate = float64(c.totalErrors) / float64(c.totalRequests)
	}
	var total time.Duration
	for _, st := range c.endpoints {
		total += st.metrics.TotalDuration
	}
	if c.totalRequests > 0 {
		excerpt.AverageLatency = total / time.Duration(c.totalRequests)
	}
	return excerpt
}

// Snapshot returns a point-in-time copy of all collected metrics. Mutating
// the returned value does not affect the collector.
func (c *Collector) Snapshot() model.MetricsSnapshot {
	return c.SnapshotTop(0)
}

// SnapshotTop is Snapshot with a caller-chosen bound on the slowest endpoint
// ranking. A non-positive top keeps the configured limit.
func (c *Collector) SnapshotTop(top int) model.MetricsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if top <= 0 {
		top = c.config.TopEndpoints
	}
	endpoints := make(map[string]model.EndpointMetrics, len(c.endpoints))
	ranked := make([]model.EndpointMetrics, 0, len(c.endpoints))
	for key, st := range c.endpoints {
		endpoints[key] = st.metrics
		ranked = append(ranked, st.metrics)
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Average > ranked[j].Average })
	if top < len(ranked) {
		ranked = ranked[:top]
	}

	database := c.database
	database.SlowQueries = append([]model.SlowQuery(nil), c.database.SlowQueries...)

	external := make(map[string]model.ExternalAPIMetrics, len(c.external))
	for service, st := range c.external {
		external[service] = *st
	}

	var errorRate float64
	if c.totalRequests > 0 {
		errorRate = float64(c.totalErrors) / float64(c.totalRequests)
	}

	return model.MetricsSnapshot{
		Timestamp: time.Now(),
		HTTP: model.HTTPMetrics{
			TotalRequests:    c.totalRequests,
			TotalErrors:      c.totalErrors,
			ErrorRate:        errorRate,
			Endpoints:        endpoints,
			SlowestEndpoints: ranked,
		},
		Database: database,
		Cache:    c.cache,
		External: external,
		System:   c.system,
	}
}

func (c *Collector) publish(e event.Event) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}

// recoverRecording keeps recording failures out of the request path that
// triggered them.
func (c *Collector) recoverRecording(operation string) {
	if r := recover(); r != nil {
		log.Errorf("Failed to record %s metrics: %v", operation, r)
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	// Back off to a rune boundary so a multi-byte character is never split
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit] + "..."
}
