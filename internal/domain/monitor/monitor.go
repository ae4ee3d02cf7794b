package monitor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"go-monitor/internal/domain/event"
	"go-monitor/internal/domain/metrics"
	"go-monitor/internal/domain/model"
	"go-monitor/pkg/log"

	"github.com/google/uuid"
)

// ErrUnknownDependency is returned when a named check targets a dependency
// that was never registered.
var ErrUnknownDependency = errors.New("unknown dependency")

// Monitor coordinates probe execution, result bookkeeping and status
// aggregation, and serves copies of the accumulated state.
type Monitor struct {
	config     *Config
	registry   *Registry
	runner     *ProbeRunner
	aggregator *StatusAggregator
	collector  *metrics.Collector
	bus        *event.Bus
	startTime  time.Time

	mu      sync.RWMutex
	overall model.HealthStatus
}

// NewMonitor creates a new monitor over the given registry. The collector
// supplies the resource and performance sections of detailed health
// responses and may be nil. The event bus may also be nil.
func NewMonitor(config *Config, registry *Registry, collector *metrics.Collector, bus *event.Bus) *Monitor {
	if config == nil {
		config = NewMonitorConfig()
	}
	return &Monitor{
		config:     config,
		registry:   registry,
		runner:     NewProbeRunner(config),
		aggregator: NewStatusAggregator(),
		collector:  collector,
		bus:        bus,
		startTime:  time.Now(),
		overall:    model.StatusHealthy,
	}
}

// Registry returns the dependency registry backing the monitor.
func (m *Monitor) Registry() *Registry {
	return m.registry
}

// Overall returns the overall status computed by the last aggregation.
func (m *Monitor) Overall() model.HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.overall
}

// Uptime returns the elapsed time since the monitor was created.
func (m *Monitor) Uptime() time.Duration {
	return time.Since(m.startTime)
}

// RunSweep probes every dependency in the scope concurrently, waits for all
// probes to settle and recomputes the aggregate status. One failing probe
// never aborts the others.
func (m *Monitor) RunSweep(ctx context.Context, scope Scope) model.HealthSnapshot {
	sweepID := uuid.New().String()
	deps := m.registry.List(scope)
	start := time.Now()
	log.Infow("Health sweep started",
		"sweepId", sweepID,
		"scope", scope.String(),
		"dependencies", len(deps))

	var wg sync.WaitGroup
	for _, dep := range deps {
		wg.Add(1)
		go func(dep *Dependency) {
			defer wg.Done()
			m.probe(ctx, dep)
		}(dep)
	}
	wg.Wait()

	snapshot := m.recomputeAggregate()
	log.Infow("Health sweep finished",
		"sweepId", sweepID,
		"scope", scope.String(),
		"status", string(snapshot.Status),
		"took", time.Since(start).String())
	return snapshot
}

// CheckDependency probes a single dependency on demand and recomputes the
// aggregate status from the updated result.
func (m *Monitor) CheckDependency(ctx context.Context, name string) (model.CheckResult, error) {
	dep, ok := m.registry.Get(name)
	if !ok {
		return model.CheckResult{}, fmt.Errorf("%w: %s", ErrUnknownDependency, name)
	}
	result := m.probe(ctx, dep)
	m.recomputeAggregate()
	return result, nil
}

func (m *Monitor) probe(ctx context.Context, dep *Dependency) model.CheckResult {
	previous, hadPrevious := m.registry.Result(dep.Name)
	result := m.runner.Run(ctx, dep, previous.Metadata)
	m.registry.SetResult(result)

	if hadPrevious && previous.Status != result.Status {
		log.Infow("Dependency status changed",
			"dependency", dep.Name,
			"from", string(previous.Status),
			"to", string(result.Status),
			"message", result.Message)
	}
	return result
}

// recomputeAggregate recalculates the overall status and summary, emits the
// aggregate health event and, when the overall status moved, a status change
// event.
func (m *Monitor) recomputeAggregate() model.HealthSnapshot {
	results := m.registry.Results()
	overall := m.aggregator.Aggregate(m.registry.List(ScopeCritical), results)
	summary := m.aggregator.Summarize(results)

	m.mu.Lock()
	previous := m.overall
	m.overall = overall
	m.mu.Unlock()

	if previous != overall {
		log.Warnw("Overall health status changed",
			"from", string(previous),
			"to", string(overall))
		m.publish(event.Event{
			Kind:    event.KindStatusChange,
			Key:     "overall",
			Message: "overall health status changed",
			Details: map[string]string{
				"from": string(previous),
				"to":   string(overall),
			},
		})
	}
	m.publish(event.Event{
		Kind:    event.KindAggregateHealth,
		Key:     "overall",
		Message: "aggregate health recomputed",
		Details: map[string]string{
			"status":    string(overall),
			"total":     strconv.Itoa(summary.Total),
			"healthy":   strconv.Itoa(summary.Healthy),
			"degraded":  strconv.Itoa(summary.Degraded),
			"unhealthy": strconv.Itoa(summary.Unhealthy),
		},
	})

	return model.HealthSnapshot{
		Status:    overall,
		Timestamp: time.Now(),
		Uptime:    m.Uptime(),
		Checks:    results,
		Summary:   summary,
	}
}

// Snapshot returns the current aggregate state without probing anything.
func (m *Monitor) Snapshot() model.HealthSnapshot {
	results := m.registry.Results()
	return model.HealthSnapshot{
		Status:    m.Overall(),
		Timestamp: time.Now(),
		Uptime:    m.Uptime(),
		Checks:    results,
		Summary:   m.aggregator.Summarize(results),
	}
}

// Basic returns the fast-path health response served to load balancers.
func (m *Monitor) Basic() model.BasicHealth {
	return model.BasicHealth{
		Status:      m.Overall(),
		Timestamp:   time.Now(),
		Uptime:      m.Uptime(),
		Version:     m.config.Version,
		Environment: m.config.Environment,
	}
}

// Detailed returns the full health view including per-dependency checks and
// the latest resource and performance figures.
func (m *Monitor) Detailed() model.DetailedHealth {
	snapshot := m.Snapshot()
	detailed := model.DetailedHealth{
		BasicHealth: m.Basic(),
		Checks:      snapshot.Checks,
		Summary:     snapshot.Summary,
	}
	if m.collector != nil {
		detailed.Resources = m.collector.SystemMetrics()
		detailed.Performance = m.collector.HTTPOverview()
	}
	return detailed
}

// Readiness restricts the health view to critical dependencies. The service
// is ready as long as no critical dependency is unhealthy.
func (m *Monitor) Readiness() model.ReadinessReport {
	critical := make(map[string]model.CheckResult)
	ready := true
	for _, dep := range m.registry.List(ScopeCritical) {
		result, ok := m.registry.Result(dep.Name)
		if !ok {
			continue
		}
		critical[dep.Name] = result
		if result.Status == model.StatusUnhealthy {
			ready = false
		}
	}
	return model.ReadinessReport{
		Ready:     ready,
		Status:    m.Overall(),
		Timestamp: time.Now(),
		Critical:  critical,
	}
}

// Liveness reflects process responsiveness only. Responding at all means the
// process is alive, regardless of dependency health.
func (m *Monitor) Liveness() model.LivenessReport {
	return model.LivenessReport{
		Alive:     true,
		Timestamp: time.Now(),
		Uptime:    m.Uptime(),
		PID:       os.Getpid(),
	}
}

func (m *Monitor) publish(e event.Event) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}
