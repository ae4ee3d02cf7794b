package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-monitor/internal/domain/model"
)

// Prober performs one connectivity check against a dependency. A returned
// error marks the attempt as failed; otherwise the finding carries the
// observed status, message and details.
type Prober interface {
	Probe(ctx context.Context) (model.ProbeFinding, error)
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(ctx context.Context) (model.ProbeFinding, error)

// Probe calls f
func (f ProberFunc) Probe(ctx context.Context) (model.ProbeFinding, error) {
	return f(ctx)
}

// Dependency describes one monitored dependency and how to probe it.
type Dependency struct {
	// Name uniquely identifies the dependency
	Name string
	// Type classifies the dependency
	Type model.DependencyType
	// Enabled controls whether sweeps probe the dependency
	Enabled bool
	// Critical marks the dependency as able to take the whole service down
	Critical bool
	// Timeout is the per-probe timeout, zero meaning the configured default
	Timeout time.Duration
	// Retries is the number of additional probe attempts, negative meaning the configured default
	Retries int
	// Interval records the intended probe cadence for operators. Sweeps run
	// on the shared regular and critical schedules.
	Interval time.Duration
	// Prober performs the connectivity check
	Prober Prober
}

// NewDependency creates an enabled, non-critical dependency with the shared
// timeout and retry defaults
func NewDependency(name string, dependencyType model.DependencyType, prober Prober) *Dependency {
	return &Dependency{
		Name:    name,
		Type:    dependencyType,
		Enabled: true,
		Retries: -1,
		Prober:  prober,
	}
}

// WithCritical marks the dependency as critical
func (d *Dependency) WithCritical(critical bool) *Dependency {
	d.Critical = critical
	return d
}

// WithEnabled enables or disables the dependency
func (d *Dependency) WithEnabled(enabled bool) *Dependency {
	d.Enabled = enabled
	return d
}

// WithTimeout sets the per-probe timeout
func (d *Dependency) WithTimeout(timeout time.Duration) *Dependency {
	if timeout < 0 {
		panic(fmt.Sprintf("invalid timeout: %v, must be non-negative", timeout))
	}
	d.Timeout = timeout
	return d
}

// WithRetries sets the number of additional probe attempts
func (d *Dependency) WithRetries(retries int) *Dependency {
	if retries < 0 {
		panic(fmt.Sprintf("invalid retries: %d, must be non-negative", retries))
	}
	d.Retries = retries
	return d
}

// WithInterval records the intended probe cadence
func (d *Dependency) WithInterval(interval time.Duration) *Dependency {
	if interval < 0 {
		panic(fmt.Sprintf("invalid interval: %v, must be non-negative", interval))
	}
	d.Interval = interval
	return d
}

// Validate validates the dependency descriptor
func (d *Dependency) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("dependency name cannot be empty")
	}
	if d.Prober == nil {
		return fmt.Errorf("dependency %s has no prober", d.Name)
	}
	switch d.Type {
	case model.TypeDatabase, model.TypeCache, model.TypeExternalAPI,
		model.TypeFileSystem, model.TypeService:
	default:
		return fmt.Errorf("dependency %s has unknown type %q", d.Name, d.Type)
	}
	return nil
}

// Scope selects which dependencies a sweep covers.
type Scope int

const (
	// ScopeAll covers every enabled dependency
	ScopeAll Scope = iota
	// ScopeCritical covers enabled critical dependencies only
	ScopeCritical
)

// String returns the scope name
func (s Scope) String() string {
	if s == ScopeCritical {
		return "critical"
	}
	return "all"
}

// Registry holds dependency descriptors in registration order together with
// their most recent check results. Descriptors are registered at process
// start and results are mutated in place for the process lifetime.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	deps    map[string]*Dependency
	results map[string]model.CheckResult
}

// NewRegistry creates an empty dependency registry
func NewRegistry() *Registry {
	return &Registry{
		deps:    make(map[string]*Dependency),
		results: make(map[string]model.CheckResult),
	}
}

// Register adds a dependency. Registering an existing name replaces the
// descriptor while keeping its original position and accumulated result.
func (r *Registry) Register(dep *Dependency) error {
	if err := dep.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.deps[dep.Name]; !exists {
		r.order = append(r.order, dep.Name)
	}
	r.deps[dep.Name] = dep
	return nil
}

// Get returns the named dependency descriptor.
func (r *Registry) Get(name string) (*Dependency, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dep, ok := r.deps[name]
	return dep, ok
}

// List returns the dependencies covered by the scope, in registration order.
// Disabled dependencies are never included.
func (r *Registry) List(scope Scope) []*Dependency {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Dependency, 0, len(r.order))
	for _, name := range r.order {
		dep := r.deps[name]
		if !dep.Enabled {
			continue
		}
		if scope == ScopeCritical && !dep.Critical {
			continue
		}
		out = append(out, dep)
	}
	return out
}

// Len returns the number of registered dependencies.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.deps)
}

// SetResult stores the latest check result for the named dependency.
func (r *Registry) SetResult(result model.CheckResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[result.Name] = result
}

// Result returns the latest check result for the named dependency.
func (r *Registry) Result(name string) (model.CheckResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.results[name]
	return result.Clone(), ok
}

// Results returns a copy of all accumulated check results keyed by name.
func (r *Registry) Results() map[string]model.CheckResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]model.CheckResult, len(r.results))
	for name, result := range r.results {
		out[name] = result.Clone()
	}
	return out
}
