package monitor

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go-monitor/internal/domain/event"
	"go-monitor/internal/domain/metrics"
	"go-monitor/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fastMonitorConfig() *Config {
	return NewMonitorConfig().
		WithDefaultTimeout(500 * time.Millisecond).
		WithDefaultRetries(0).
		WithRetryBackoffStep(time.Millisecond)
}

type eventSink struct {
	mu     sync.Mutex
	events []event.Event
}

func (s *eventSink) HandleEvent(evt event.Event) {
	s.mu.Lock()
	s.events = append(s.events, evt)
	s.mu.Unlock()
}

func (s *eventSink) byKind(kind event.Kind) []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []event.Event
	for _, evt := range s.events {
		if evt.Kind == kind {
			out = append(out, evt)
		}
	}
	return out
}

func failingProber(message string) ProberFunc {
	return func(ctx context.Context) (model.ProbeFinding, error) {
		return model.ProbeFinding{}, errors.New(message)
	}
}

func degradedProber(message string) ProberFunc {
	return func(ctx context.Context) (model.ProbeFinding, error) {
		return model.ProbeFinding{Status: model.StatusDegraded, Message: message}, nil
	}
}

func TestMonitor_RunSweepProbesConcurrently(t *testing.T) {
	registry := NewRegistry()
	sleeper := ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		time.Sleep(50 * time.Millisecond)
		return model.ProbeFinding{}, nil
	})
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, sleeper)))
	require.NoError(t, registry.Register(NewDependency("redis", model.TypeCache, sleeper)))
	require.NoError(t, registry.Register(NewDependency("filesystem", model.TypeFileSystem, sleeper)))

	mon := NewMonitor(fastMonitorConfig(), registry, nil, nil)

	start := time.Now()
	snapshot := mon.RunSweep(context.Background(), ScopeAll)
	elapsed := time.Since(start)

	// Serial execution would take at least 150ms.
	assert.Less(t, elapsed, 120*time.Millisecond)
	assert.Equal(t, model.StatusHealthy, snapshot.Status)
	assert.Len(t, snapshot.Checks, 3)
	assert.Equal(t, model.HealthSummary{Total: 3, Healthy: 3}, snapshot.Summary)
}

func TestMonitor_RunSweepCriticalScope(t *testing.T) {
	registry := NewRegistry()
	var regularProbes, criticalProbes atomic.Int32
	require.NoError(t, registry.Register(NewDependency("redis", model.TypeCache, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		regularProbes.Add(1)
		return model.ProbeFinding{}, nil
	}))))
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		criticalProbes.Add(1)
		return model.ProbeFinding{}, nil
	})).WithCritical(true)))

	mon := NewMonitor(fastMonitorConfig(), registry, nil, nil)
	snapshot := mon.RunSweep(context.Background(), ScopeCritical)

	assert.Equal(t, int32(0), regularProbes.Load())
	assert.Equal(t, int32(1), criticalProbes.Load())
	assert.Len(t, snapshot.Checks, 1)

	_, ok := registry.Result("redis")
	assert.False(t, ok, "dependencies outside the scope keep no result")
}

func TestMonitor_CheckDependencyUnknown(t *testing.T) {
	mon := NewMonitor(fastMonitorConfig(), NewRegistry(), nil, nil)

	_, err := mon.CheckDependency(context.Background(), "elasticsearch")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDependency))
	assert.Contains(t, err.Error(), "elasticsearch")
}

func TestMonitor_CheckDependencyRecomputesAggregate(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, failingProber("connection refused")).WithCritical(true)))

	mon := NewMonitor(fastMonitorConfig(), registry, nil, nil)
	require.Equal(t, model.StatusHealthy, mon.Overall())

	result, err := mon.CheckDependency(context.Background(), "database")

	require.NoError(t, err)
	assert.Equal(t, model.StatusUnhealthy, result.Status)
	assert.Equal(t, "connection refused", result.Message)
	assert.Equal(t, model.StatusUnhealthy, mon.Overall())
}

func TestMonitor_StatusChangeEventFiresOncePerTransition(t *testing.T) {
	registry := NewRegistry()
	var failNow atomic.Bool
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		if failNow.Load() {
			return model.ProbeFinding{}, errors.New("connection refused")
		}
		return model.ProbeFinding{}, nil
	})).WithCritical(true)))

	bus := event.NewBus(64)
	sink := &eventSink{}
	bus.Subscribe(sink)
	bus.Start()

	mon := NewMonitor(fastMonitorConfig(), registry, nil, bus)

	mon.RunSweep(context.Background(), ScopeAll)
	failNow.Store(true)
	mon.RunSweep(context.Background(), ScopeAll)
	mon.RunSweep(context.Background(), ScopeAll)
	bus.Stop()

	changes := sink.byKind(event.KindStatusChange)
	require.Len(t, changes, 1, "repeating the same status must not repeat the event")
	assert.Equal(t, "overall", changes[0].Key)
	assert.Equal(t, string(model.StatusHealthy), changes[0].Details["from"])
	assert.Equal(t, string(model.StatusUnhealthy), changes[0].Details["to"])

	aggregates := sink.byKind(event.KindAggregateHealth)
	require.Len(t, aggregates, 3, "every sweep reports the aggregate")
	assert.Equal(t, string(model.StatusUnhealthy), aggregates[2].Details["status"])
	assert.Equal(t, "1", aggregates[2].Details["total"])
	assert.Equal(t, "1", aggregates[2].Details["unhealthy"])
}

func TestMonitor_RecoveryEmitsSecondTransition(t *testing.T) {
	registry := NewRegistry()
	var failNow atomic.Bool
	failNow.Store(true)
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		if failNow.Load() {
			return model.ProbeFinding{}, errors.New("connection refused")
		}
		return model.ProbeFinding{}, nil
	})).WithCritical(true)))

	bus := event.NewBus(64)
	sink := &eventSink{}
	bus.Subscribe(sink)
	bus.Start()

	mon := NewMonitor(fastMonitorConfig(), registry, nil, bus)

	mon.RunSweep(context.Background(), ScopeAll)
	failNow.Store(false)
	mon.RunSweep(context.Background(), ScopeAll)
	bus.Stop()

	changes := sink.byKind(event.KindStatusChange)
	require.Len(t, changes, 2)
	assert.Equal(t, string(model.StatusUnhealthy), changes[0].Details["to"])
	assert.Equal(t, string(model.StatusHealthy), changes[1].Details["to"])
	assert.Equal(t, model.StatusHealthy, mon.Overall())
}

func TestMonitor_DegradedMajority(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, healthyProber()).WithCritical(true)))
	require.NoError(t, registry.Register(NewDependency("redis", model.TypeCache, degradedProber("slow responses"))))
	require.NoError(t, registry.Register(NewDependency("external-api", model.TypeExternalAPI, degradedProber("elevated latency"))))

	mon := NewMonitor(fastMonitorConfig(), registry, nil, nil)
	snapshot := mon.RunSweep(context.Background(), ScopeAll)

	assert.Equal(t, model.StatusDegraded, snapshot.Status, "two degraded against one healthy tip the overall status")
	assert.Equal(t, model.HealthSummary{Total: 3, Healthy: 1, Degraded: 2}, snapshot.Summary)
	assert.Equal(t, model.StatusDegraded, mon.Overall())
}

func TestMonitor_ReadinessTracksCriticalOnly(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, healthyProber()).WithCritical(true)))
	require.NoError(t, registry.Register(NewDependency("external-api", model.TypeExternalAPI, failingProber("gateway timeout"))))

	mon := NewMonitor(fastMonitorConfig(), registry, nil, nil)
	mon.RunSweep(context.Background(), ScopeAll)

	report := mon.Readiness()
	assert.True(t, report.Ready, "a failing non critical dependency does not block readiness")
	require.Contains(t, report.Critical, "database")
	assert.NotContains(t, report.Critical, "external-api")

	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, failingProber("connection refused")).WithCritical(true)))
	mon.RunSweep(context.Background(), ScopeAll)

	report = mon.Readiness()
	assert.False(t, report.Ready)
	assert.Equal(t, model.StatusUnhealthy, report.Critical["database"].Status)
}

func TestMonitor_ReadinessAllowsDegradedCritical(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, degradedProber("pool near exhaustion")).WithCritical(true)))

	mon := NewMonitor(fastMonitorConfig(), registry, nil, nil)
	mon.RunSweep(context.Background(), ScopeAll)

	report := mon.Readiness()
	assert.True(t, report.Ready, "only an unhealthy critical dependency blocks readiness")
	assert.Equal(t, model.StatusDegraded, report.Critical["database"].Status)
}

func TestMonitor_ReadinessBeforeFirstSweep(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, healthyProber()).WithCritical(true)))

	mon := NewMonitor(fastMonitorConfig(), registry, nil, nil)
	report := mon.Readiness()

	assert.True(t, report.Ready, "no result yet means nothing is known to be unhealthy")
	assert.Empty(t, report.Critical)
}

func TestMonitor_Liveness(t *testing.T) {
	mon := NewMonitor(fastMonitorConfig(), NewRegistry(), nil, nil)

	report := mon.Liveness()

	assert.True(t, report.Alive)
	assert.Equal(t, os.Getpid(), report.PID)
	assert.False(t, report.Timestamp.IsZero())
}

func TestMonitor_BasicCarriesBuildInfo(t *testing.T) {
	config := fastMonitorConfig().WithVersion("1.4.0").WithEnvironment("staging")
	mon := NewMonitor(config, NewRegistry(), nil, nil)

	basic := mon.Basic()

	assert.Equal(t, model.StatusHealthy, basic.Status)
	assert.Equal(t, "1.4.0", basic.Version)
	assert.Equal(t, "staging", basic.Environment)
}

func TestMonitor_DetailedIncludesCollectorSections(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewDependency("redis", model.TypeCache, healthyProber())))

	collector := metrics.NewCollector(metrics.NewCollectorConfig(), nil)
	collector.RecordHTTPRequest("GET", "/health", 20*time.Millisecond, 200)
	collector.SetSystemMetrics(model.SystemMetrics{Memory: model.MemoryMetrics{HeapUsed: 2048}})

	mon := NewMonitor(fastMonitorConfig(), registry, collector, nil)
	mon.RunSweep(context.Background(), ScopeAll)

	detailed := mon.Detailed()

	assert.Equal(t, model.StatusHealthy, detailed.Status)
	require.Contains(t, detailed.Checks, "redis")
	assert.Equal(t, uint64(2048), detailed.Resources.Memory.HeapUsed)
	assert.Equal(t, int64(1), detailed.Performance.Requests)
	assert.Equal(t, 20*time.Millisecond, detailed.Performance.AverageLatency)
}

func TestMonitor_DetailedWithoutCollector(t *testing.T) {
	mon := NewMonitor(fastMonitorConfig(), NewRegistry(), nil, nil)

	detailed := mon.Detailed()

	assert.Equal(t, model.SystemMetrics{}, detailed.Resources)
	assert.Equal(t, model.PerformanceExcerpt{}, detailed.Performance)
}

func TestMonitor_SnapshotDoesNotProbe(t *testing.T) {
	registry := NewRegistry()
	var probes atomic.Int32
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		probes.Add(1)
		return model.ProbeFinding{}, nil
	}))))
	registry.SetResult(model.CheckResult{Name: "database", Status: model.StatusDegraded})

	mon := NewMonitor(fastMonitorConfig(), registry, nil, nil)
	snapshot := mon.Snapshot()

	assert.Equal(t, int32(0), probes.Load())
	assert.Equal(t, model.StatusDegraded, snapshot.Checks["database"].Status)
	assert.Equal(t, model.HealthSummary{Total: 1, Degraded: 1}, snapshot.Summary)
	assert.Equal(t, model.StatusHealthy, snapshot.Status, "the overall status only moves when an aggregation runs")
}
