package monitor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go-monitor/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRunnerConfig() *Config {
	return NewMonitorConfig().
		WithDefaultTimeout(500 * time.Millisecond).
		WithDefaultRetries(1).
		WithRetryBackoffStep(time.Millisecond)
}

func TestProbeRunner_SuccessFirstAttempt(t *testing.T) {
	runner := NewProbeRunner(fastRunnerConfig())
	var attempts atomic.Int32
	dep := NewDependency("redis", model.TypeCache, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		attempts.Add(1)
		return model.ProbeFinding{Details: map[string]string{"idle_conns": "3"}}, nil
	}))

	result := runner.Run(context.Background(), dep, model.CheckMetadata{CheckCount: 4})

	assert.Equal(t, int32(1), attempts.Load())
	assert.Equal(t, model.StatusHealthy, result.Status, "an empty finding status defaults to healthy")
	assert.Equal(t, "OK", result.Message, "an empty finding message defaults to OK")
	assert.Equal(t, int64(5), result.Metadata.CheckCount)
	assert.Equal(t, 0, result.Metadata.ConsecutiveFailures)
	assert.Equal(t, "3", result.Details["idle_conns"])
	assert.False(t, result.LastCheck.IsZero())
}

func TestProbeRunner_FindingStatusAndMessagePreserved(t *testing.T) {
	runner := NewProbeRunner(fastRunnerConfig())
	dep := NewDependency("queue", model.TypeService, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		return model.ProbeFinding{Status: model.StatusDegraded, Message: "backlog above threshold"}, nil
	}))

	result := runner.Run(context.Background(), dep, model.CheckMetadata{})

	assert.Equal(t, model.StatusDegraded, result.Status)
	assert.Equal(t, "backlog above threshold", result.Message)
}

func TestProbeRunner_RetriesAreAdditionalAttempts(t *testing.T) {
	runner := NewProbeRunner(fastRunnerConfig())
	var attempts atomic.Int32
	dep := NewDependency("database", model.TypeDatabase, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		attempts.Add(1)
		return model.ProbeFinding{}, errors.New("connection refused")
	})).WithRetries(2)

	result := runner.Run(context.Background(), dep, model.CheckMetadata{})

	assert.Equal(t, int32(3), attempts.Load(), "two retries mean three attempts")
	assert.Equal(t, model.StatusUnhealthy, result.Status)
	assert.Equal(t, "connection refused", result.Message)
	assert.Equal(t, "connection refused", result.Metadata.LastError)
}

func TestProbeRunner_DefaultRetriesApplyWhenUnset(t *testing.T) {
	runner := NewProbeRunner(fastRunnerConfig()) // DefaultRetries = 1
	var attempts atomic.Int32
	dep := NewDependency("database", model.TypeDatabase, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		attempts.Add(1)
		return model.ProbeFinding{}, errors.New("down")
	}))

	runner.Run(context.Background(), dep, model.CheckMetadata{})

	assert.Equal(t, int32(2), attempts.Load())
}

func TestProbeRunner_ZeroRetriesMeansSingleAttempt(t *testing.T) {
	runner := NewProbeRunner(fastRunnerConfig())
	var attempts atomic.Int32
	dep := NewDependency("database", model.TypeDatabase, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		attempts.Add(1)
		return model.ProbeFinding{}, errors.New("down")
	})).WithRetries(0)

	runner.Run(context.Background(), dep, model.CheckMetadata{})

	assert.Equal(t, int32(1), attempts.Load())
}

func TestProbeRunner_ConsecutiveFailuresRisePerCycle(t *testing.T) {
	runner := NewProbeRunner(fastRunnerConfig())
	failing := NewDependency("database", model.TypeDatabase, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		return model.ProbeFinding{}, errors.New("down")
	})).WithRetries(3)

	first := runner.Run(context.Background(), failing, model.CheckMetadata{})
	second := runner.Run(context.Background(), failing, first.Metadata)

	assert.Equal(t, 1, first.Metadata.ConsecutiveFailures, "one increment per fully failed cycle, not per attempt")
	assert.Equal(t, 2, second.Metadata.ConsecutiveFailures)
	assert.Equal(t, int64(2), second.Metadata.CheckCount)
}

func TestProbeRunner_SuccessResetsFailuresButKeepsLastError(t *testing.T) {
	runner := NewProbeRunner(fastRunnerConfig())
	dep := NewDependency("database", model.TypeDatabase, healthyProber())

	previous := model.CheckMetadata{CheckCount: 3, ConsecutiveFailures: 2, LastError: "connection refused"}
	result := runner.Run(context.Background(), dep, previous)

	assert.Equal(t, 0, result.Metadata.ConsecutiveFailures)
	assert.Equal(t, "connection refused", result.Metadata.LastError, "the last error stays visible until overwritten")
}

func TestProbeRunner_TimeoutFailsAttempt(t *testing.T) {
	runner := NewProbeRunner(fastRunnerConfig())
	dep := NewDependency("external-api", model.TypeExternalAPI, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		<-ctx.Done()
		return model.ProbeFinding{}, ctx.Err()
	})).WithTimeout(20 * time.Millisecond).WithRetries(0)

	result := runner.Run(context.Background(), dep, model.CheckMetadata{})

	assert.Equal(t, model.StatusUnhealthy, result.Status)
	assert.Equal(t, "health check timed out after 20ms", result.Message)
	assert.Equal(t, 1, result.Metadata.ConsecutiveFailures)
}

func TestProbeRunner_PanicCountsAsFailedAttempt(t *testing.T) {
	runner := NewProbeRunner(fastRunnerConfig())
	var attempts atomic.Int32
	dep := NewDependency("filesystem", model.TypeFileSystem, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		if attempts.Add(1) == 1 {
			panic("boom")
		}
		return model.ProbeFinding{}, nil
	})).WithRetries(1)

	result := runner.Run(context.Background(), dep, model.CheckMetadata{})

	assert.Equal(t, int32(2), attempts.Load(), "the panic consumes one attempt and the retry succeeds")
	assert.Equal(t, model.StatusHealthy, result.Status)
}

func TestProbeRunner_PanicOnFinalAttempt(t *testing.T) {
	runner := NewProbeRunner(fastRunnerConfig())
	dep := NewDependency("filesystem", model.TypeFileSystem, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		panic("boom")
	})).WithRetries(0)

	result := runner.Run(context.Background(), dep, model.CheckMetadata{})

	assert.Equal(t, model.StatusUnhealthy, result.Status)
	assert.Equal(t, "probe panicked: boom", result.Message)
}

func TestProbeRunner_BackoffGrowsPerRetry(t *testing.T) {
	config := NewMonitorConfig().
		WithDefaultTimeout(500 * time.Millisecond).
		WithRetryBackoffStep(20 * time.Millisecond)
	runner := NewProbeRunner(config)
	dep := NewDependency("database", model.TypeDatabase, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		return model.ProbeFinding{}, errors.New("down")
	})).WithRetries(2)

	start := time.Now()
	runner.Run(context.Background(), dep, model.CheckMetadata{})
	elapsed := time.Since(start)

	// Backoff before retry one is 20ms and before retry two is 40ms.
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
}

func TestProbeRunner_ContextCancelAbortsRetries(t *testing.T) {
	config := NewMonitorConfig().
		WithDefaultTimeout(500 * time.Millisecond).
		WithRetryBackoffStep(time.Second)
	runner := NewProbeRunner(config)

	var attempts atomic.Int32
	dep := NewDependency("database", model.TypeDatabase, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		attempts.Add(1)
		return model.ProbeFinding{}, errors.New("down")
	})).WithRetries(3)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	result := runner.Run(ctx, dep, model.CheckMetadata{})

	assert.Equal(t, int32(1), attempts.Load(), "cancellation during backoff stops further attempts")
	assert.Equal(t, model.StatusUnhealthy, result.Status)
	assert.Equal(t, "context canceled", result.Message)
}

func TestProbeRunner_SlowSuccessForcedDegraded(t *testing.T) {
	config := NewMonitorConfig().
		WithDegradedLatency(10 * time.Millisecond).
		WithUnhealthyLatency(10 * time.Second)
	runner := NewProbeRunner(config)
	dep := NewDependency("database", model.TypeDatabase, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		time.Sleep(30 * time.Millisecond)
		return model.ProbeFinding{Status: model.StatusHealthy, Message: "fine"}, nil
	}))

	result := runner.Run(context.Background(), dep, model.CheckMetadata{})

	assert.Equal(t, model.StatusDegraded, result.Status)
	assert.Contains(t, result.Message, "exceeds the 10ms degraded threshold")
	assert.Equal(t, 0, result.Metadata.ConsecutiveFailures, "a slow success is still a success")
}

func TestProbeRunner_SlowSuccessForcedUnhealthy(t *testing.T) {
	config := NewMonitorConfig().
		WithDegradedLatency(5 * time.Millisecond).
		WithUnhealthyLatency(20 * time.Millisecond)
	runner := NewProbeRunner(config)
	dep := NewDependency("database", model.TypeDatabase, ProberFunc(func(ctx context.Context) (model.ProbeFinding, error) {
		time.Sleep(50 * time.Millisecond)
		return model.ProbeFinding{Status: model.StatusHealthy}, nil
	}))

	result := runner.Run(context.Background(), dep, model.CheckMetadata{})

	assert.Equal(t, model.StatusUnhealthy, result.Status)
	assert.Contains(t, result.Message, "exceeds the 20ms unhealthy threshold")
	require.Greater(t, result.ResponseTime, 20*time.Millisecond)
}
