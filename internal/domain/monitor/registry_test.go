package monitor

import (
	"context"
	"testing"
	"time"

	"go-monitor/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthyProber() Prober {
	return ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		return model.ProbeFinding{Status: model.StatusHealthy}, nil
	})
}

func TestNewDependency_Defaults(t *testing.T) {
	dep := NewDependency("database", model.TypeDatabase, healthyProber())

	assert.True(t, dep.Enabled)
	assert.False(t, dep.Critical)
	assert.Equal(t, time.Duration(0), dep.Timeout, "zero timeout defers to the configured default")
	assert.Equal(t, -1, dep.Retries, "negative retries defer to the configured default")
}

func TestDependency_Validate(t *testing.T) {
	tests := []struct {
		name    string
		dep     *Dependency
		wantErr string
	}{
		{
			name:    "valid",
			dep:     NewDependency("redis", model.TypeCache, healthyProber()),
			wantErr: "",
		},
		{
			name:    "empty name",
			dep:     NewDependency("", model.TypeCache, healthyProber()),
			wantErr: "name cannot be empty",
		},
		{
			name:    "missing prober",
			dep:     NewDependency("redis", model.TypeCache, nil),
			wantErr: "has no prober",
		},
		{
			name:    "unknown type",
			dep:     NewDependency("redis", model.DependencyType("message_queue"), healthyProber()),
			wantErr: "unknown type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dep.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestRegistry_RegisterRejectsInvalid(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register(NewDependency("", model.TypeCache, healthyProber()))

	require.Error(t, err)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_ListKeepsRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, healthyProber())))
	require.NoError(t, registry.Register(NewDependency("redis", model.TypeCache, healthyProber())))
	require.NoError(t, registry.Register(NewDependency("filesystem", model.TypeFileSystem, healthyProber())))

	deps := registry.List(ScopeAll)

	require.Len(t, deps, 3)
	assert.Equal(t, "database", deps[0].Name)
	assert.Equal(t, "redis", deps[1].Name)
	assert.Equal(t, "filesystem", deps[2].Name)
}

func TestRegistry_ReregisterKeepsPositionAndResult(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, healthyProber())))
	require.NoError(t, registry.Register(NewDependency("redis", model.TypeCache, healthyProber())))

	registry.SetResult(model.CheckResult{Name: "database", Status: model.StatusDegraded})

	// Replace the first descriptor with a critical variant.
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, healthyProber()).WithCritical(true)))

	deps := registry.List(ScopeAll)
	require.Len(t, deps, 2)
	assert.Equal(t, "database", deps[0].Name, "replacement keeps the original position")
	assert.True(t, deps[0].Critical)

	result, ok := registry.Result("database")
	require.True(t, ok, "replacement keeps the accumulated result")
	assert.Equal(t, model.StatusDegraded, result.Status)
}

func TestRegistry_ListFiltersScopeAndEnabled(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewDependency("database", model.TypeDatabase, healthyProber()).WithCritical(true)))
	require.NoError(t, registry.Register(NewDependency("redis", model.TypeCache, healthyProber())))
	require.NoError(t, registry.Register(NewDependency("queue", model.TypeService, healthyProber()).WithCritical(true).WithEnabled(false)))

	all := registry.List(ScopeAll)
	require.Len(t, all, 2, "disabled dependencies are never listed")

	critical := registry.List(ScopeCritical)
	require.Len(t, critical, 1)
	assert.Equal(t, "database", critical[0].Name)
}

func TestRegistry_ResultsReturnsCopy(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewDependency("redis", model.TypeCache, healthyProber())))
	registry.SetResult(model.CheckResult{Name: "redis", Status: model.StatusHealthy})

	results := registry.Results()
	results["redis"] = model.CheckResult{Name: "redis", Status: model.StatusUnhealthy}

	stored, ok := registry.Result("redis")
	require.True(t, ok)
	assert.Equal(t, model.StatusHealthy, stored.Status)
}

func TestScope_String(t *testing.T) {
	assert.Equal(t, "all", ScopeAll.String())
	assert.Equal(t, "critical", ScopeCritical.String())
}
