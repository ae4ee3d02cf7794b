package metrics

import (
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"go-monitor/internal/domain/event"
	"go-monitor/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordHTTPRequest(t *testing.T) {
	c := NewCollector(NewCollectorConfig(), nil)

	c.RecordHTTPRequest("GET", "/health", 20*time.Millisecond, 200)
	c.RecordHTTPRequest("GET", "/health", 40*time.Millisecond, 200)
	c.RecordHTTPRequest("GET", "/health", 60*time.Millisecond, 500)

	snapshot := c.Snapshot()
	require.Contains(t, snapshot.HTTP.Endpoints, "GET /health")
	endpoint := snapshot.HTTP.Endpoints["GET /health"]

	assert.Equal(t, int64(3), endpoint.Count)
	assert.Equal(t, 20*time.Millisecond, endpoint.Min)
	assert.Equal(t, 60*time.Millisecond, endpoint.Max)
	assert.Equal(t, 40*time.Millisecond, endpoint.Average)
	assert.Equal(t, int64(1), endpoint.ErrorCount)
	assert.InDelta(t, 1.0/3.0, endpoint.ErrorRate, 1e-9)
	assert.False(t, endpoint.LastAccessTime.IsZero())

	assert.Equal(t, int64(3), snapshot.HTTP.TotalRequests)
	assert.Equal(t, int64(1), snapshot.HTTP.TotalErrors)
	assert.InDelta(t, 1.0/3.0, snapshot.HTTP.ErrorRate, 1e-9)
}

func TestCollector_RecordHTTPRequest_StatusBoundary(t *testing.T) {
	c := NewCollector(NewCollectorConfig(), nil)

	c.RecordHTTPRequest("GET", "/a", time.Millisecond, 399)
	c.RecordHTTPRequest("GET", "/a", time.Millisecond, 400)
	c.RecordHTTPRequest("GET", "/a", time.Millisecond, 404)

	endpoint := c.Snapshot().HTTP.Endpoints["GET /a"]
	assert.Equal(t, int64(2), endpoint.ErrorCount, "only status codes of 400 and above count as errors")
}

func TestCollector_PercentilesFollowWindowEviction(t *testing.T) {
	c := NewCollector(NewCollectorConfig().WithWindowCapacity(3), nil)

	// The first two samples are evicted once the window is full.
	c.RecordHTTPRequest("GET", "/b", 500*time.Millisecond, 200)
	c.RecordHTTPRequest("GET", "/b", 400*time.Millisecond, 200)
	c.RecordHTTPRequest("GET", "/b", 10*time.Millisecond, 200)
	c.RecordHTTPRequest("GET", "/b", 20*time.Millisecond, 200)
	c.RecordHTTPRequest("GET", "/b", 30*time.Millisecond, 200)

	endpoint := c.Snapshot().HTTP.Endpoints["GET /b"]
	assert.Equal(t, 20*time.Millisecond, endpoint.P50)
	assert.Equal(t, 30*time.Millisecond, endpoint.P95)
	assert.Equal(t, 30*time.Millisecond, endpoint.P99)
	// Min and Max are lifetime figures, not window figures.
	assert.Equal(t, 10*time.Millisecond, endpoint.Min)
	assert.Equal(t, 500*time.Millisecond, endpoint.Max)
}

func TestCollector_SlowRequestPublishesEvent(t *testing.T) {
	bus := event.NewBus(8)
	var received []event.Event
	bus.Subscribe(event.HandlerFunc(func(evt event.Event) { received = append(received, evt) }))
	bus.Start()

	c := NewCollector(NewCollectorConfig().WithSlowRequestThreshold(10*time.Millisecond), bus)
	c.RecordHTTPRequest("GET", "/slow", 50*time.Millisecond, 200)
	c.RecordHTTPRequest("GET", "/fast", 5*time.Millisecond, 200)

	bus.Stop()

	require.Len(t, received, 1)
	assert.Equal(t, event.KindSlowRequest, received[0].Kind)
	assert.Equal(t, "GET /slow", received[0].Key)
	assert.Equal(t, "50ms", received[0].Details["duration"])
}

func TestCollector_RecordDatabaseQuery(t *testing.T) {
	c := NewCollector(NewCollectorConfig(), nil)

	c.RecordDatabaseQuery("SELECT 1", 10*time.Millisecond, nil)
	c.RecordDatabaseQuery("SELECT 2", 30*time.Millisecond, errors.New("timeout"))

	snapshot := c.Snapshot()
	assert.Equal(t, int64(2), snapshot.Database.Count)
	assert.Equal(t, int64(1), snapshot.Database.ErrorCount)
	assert.InDelta(t, 0.5, snapshot.Database.ErrorRate, 1e-9)
	assert.Equal(t, 20*time.Millisecond, snapshot.Database.AverageDuration)
	assert.Empty(t, snapshot.Database.SlowQueries)
}

func TestCollector_SlowQueryRetention(t *testing.T) {
	config := NewCollectorConfig().
		WithSlowQueryThreshold(10 * time.Millisecond).
		WithSlowQueryLimit(2).
		WithQueryTextLimit(10)
	c := NewCollector(config, nil)

	c.RecordDatabaseQuery("SELECT * FROM accounts WHERE id = 1", 50*time.Millisecond, nil)
	c.RecordDatabaseQuery("q2", 60*time.Millisecond, nil)
	c.RecordDatabaseQuery("q3", 70*time.Millisecond, nil)
	c.RecordDatabaseQuery("fast", time.Millisecond, nil)

	slow := c.Snapshot().Database.SlowQueries
	require.Len(t, slow, 2, "retention is capped at the configured limit")
	assert.Equal(t, "q2", slow[0].Query)
	assert.Equal(t, "q3", slow[1].Query)
}

func TestCollector_SlowQueryTextTruncated(t *testing.T) {
	config := NewCollectorConfig().
		WithSlowQueryThreshold(10 * time.Millisecond).
		WithQueryTextLimit(10)
	c := NewCollector(config, nil)

	c.RecordDatabaseQuery("SELECT * FROM accounts", 50*time.Millisecond, nil)

	slow := c.Snapshot().Database.SlowQueries
	require.Len(t, slow, 1)
	assert.Equal(t, "SELECT * F...", slow[0].Query)
}

func TestCollector_SlowQueryTextTruncatedOnRuneBoundary(t *testing.T) {
	config := NewCollectorConfig().
		WithSlowQueryThreshold(10 * time.Millisecond).
		WithQueryTextLimit(10)
	c := NewCollector(config, nil)

	// "é" spans bytes 9-10, so a plain byte cut at 10 would split it
	c.RecordDatabaseQuery("SELECT noé FROM contas", 50*time.Millisecond, nil)

	slow := c.Snapshot().Database.SlowQueries
	require.Len(t, slow, 1)
	assert.Equal(t, "SELECT no...", slow[0].Query)
	assert.True(t, utf8.ValidString(slow[0].Query))
}

func TestCollector_RecordCacheOperation(t *testing.T) {
	c := NewCollector(NewCollectorConfig(), nil)

	c.RecordCacheOperation("get", time.Millisecond, true, nil)
	c.RecordCacheOperation("get", time.Millisecond, false, nil)
	c.RecordCacheOperation("set", time.Millisecond, false, nil)
	c.RecordCacheOperation("get", time.Millisecond, false, errors.New("connection refused"))

	snapshot := c.Snapshot()
	assert.Equal(t, int64(4), snapshot.Cache.Operations)
	assert.Equal(t, int64(1), snapshot.Cache.Hits)
	assert.Equal(t, int64(1), snapshot.Cache.Misses, "failed lookups do not count as misses")
	assert.InDelta(t, 0.5, snapshot.Cache.HitRate, 1e-9)
	assert.Equal(t, int64(1), snapshot.Cache.ErrorCount)
}

func TestCollector_RecordExternalAPICall(t *testing.T) {
	c := NewCollector(NewCollectorConfig(), nil)

	c.RecordExternalAPICall("payments", 10*time.Millisecond, nil)
	c.RecordExternalAPICall("payments", 30*time.Millisecond, errors.New("boom"))
	c.RecordExternalAPICall("geo", 5*time.Millisecond, nil)

	snapshot := c.Snapshot()
	require.Len(t, snapshot.External, 2)

	payments := snapshot.External["payments"]
	assert.Equal(t, int64(2), payments.Calls)
	assert.Equal(t, int64(1), payments.ErrorCount)
	assert.InDelta(t, 0.5, payments.ErrorRate, 1e-9)
	assert.Equal(t, 20*time.Millisecond, payments.AverageDuration)

	geo := snapshot.External["geo"]
	assert.Equal(t, int64(1), geo.Calls)
	assert.Equal(t, int64(0), geo.ErrorCount)
}

func TestCollector_SnapshotRanksSlowestEndpoints(t *testing.T) {
	c := NewCollector(NewCollectorConfig().WithTopEndpoints(2), nil)

	c.RecordHTTPRequest("GET", "/fast", 10*time.Millisecond, 200)
	c.RecordHTTPRequest("GET", "/medium", 50*time.Millisecond, 200)
	c.RecordHTTPRequest("GET", "/slow", 200*time.Millisecond, 200)

	ranked := c.Snapshot().HTTP.SlowestEndpoints
	require.Len(t, ranked, 2)
	assert.Equal(t, "/slow", ranked[0].Path)
	assert.Equal(t, "/medium", ranked[1].Path)
}

func TestCollector_SnapshotTopOverridesConfiguredLimit(t *testing.T) {
	c := NewCollector(NewCollectorConfig().WithTopEndpoints(2), nil)

	c.RecordHTTPRequest("GET", "/fast", 10*time.Millisecond, 200)
	c.RecordHTTPRequest("GET", "/medium", 50*time.Millisecond, 200)
	c.RecordHTTPRequest("GET", "/slow", 200*time.Millisecond, 200)

	ranked := c.SnapshotTop(1).HTTP.SlowestEndpoints
	require.Len(t, ranked, 1)
	assert.Equal(t, "/slow", ranked[0].Path)

	// A bound above the endpoint count returns everything.
	assert.Len(t, c.SnapshotTop(10).HTTP.SlowestEndpoints, 3)

	// Zero and negative fall back to the configured limit.
	assert.Len(t, c.SnapshotTop(0).HTTP.SlowestEndpoints, 2)
	assert.Len(t, c.SnapshotTop(-1).HTTP.SlowestEndpoints, 2)
}

func TestCollector_SnapshotCopyIsIndependent(t *testing.T) {
	config := NewCollectorConfig().WithSlowQueryThreshold(10 * time.Millisecond)
	c := NewCollector(config, nil)

	c.RecordHTTPRequest("GET", "/x", 10*time.Millisecond, 200)
	c.RecordDatabaseQuery("SELECT 1", 50*time.Millisecond, nil)
	c.RecordExternalAPICall("svc", time.Millisecond, nil)

	first := c.Snapshot()
	first.HTTP.Endpoints["GET /x"] = model.EndpointMetrics{}
	first.External["svc"] = model.ExternalAPIMetrics{}
	first.Database.SlowQueries[0].Query = "tampered"

	second := c.Snapshot()
	assert.Equal(t, int64(1), second.HTTP.Endpoints["GET /x"].Count)
	assert.Equal(t, int64(1), second.External["svc"].Calls)
	assert.Equal(t, "SELECT 1", second.Database.SlowQueries[0].Query)
}

func TestCollector_HTTPOverview(t *testing.T) {
	c := NewCollector(NewCollectorConfig(), nil)

	c.RecordHTTPRequest("GET", "/a", 10*time.Millisecond, 200)
	c.RecordHTTPRequest("GET", "/a", 20*time.Millisecond, 500)
	c.RecordHTTPRequest("POST", "/b", 30*time.Millisecond, 200)

	overview := c.HTTPOverview()
	assert.Equal(t, int64(3), overview.Requests)
	assert.InDelta(t, 1.0/3.0, overview.ErrorRate, 1e-9)
	assert.Equal(t, 20*time.Millisecond, overview.AverageLatency)
}

func TestCollector_HTTPOverviewEmpty(t *testing.T) {
	c := NewCollector(NewCollectorConfig(), nil)

	overview := c.HTTPOverview()
	assert.Equal(t, int64(0), overview.Requests)
	assert.Equal(t, 0.0, overview.ErrorRate)
	assert.Equal(t, time.Duration(0), overview.AverageLatency)
}
