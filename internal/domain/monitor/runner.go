package monitor

import (
	"context"
	"fmt"
	"time"

	"go-monitor/internal/domain/model"
	"go-monitor/pkg/log"
)

// ProbeRunner executes probes with timeout and retry handling and turns the
// outcome into a check result.
type ProbeRunner struct {
	config *Config
}

// NewProbeRunner creates a new probe runner
func NewProbeRunner(config *Config) *ProbeRunner {
	if config == nil {
		config = NewMonitorConfig()
	}
	return &ProbeRunner{config: config}
}

// Run probes the dependency once, retrying on failure, and returns the
// resulting check state. The previous metadata carries the accumulated
// counters forward; the check count rises by one per call and consecutive
// failures rise by one per fully failed call, not per attempt.
func (r *ProbeRunner) Run(ctx context.Context, dep *Dependency, previous model.CheckMetadata) model.CheckResult {
	timeout := dep.Timeout
	if timeout <= 0 {
		timeout = r.config.DefaultTimeout
	}
	retries := dep.Retries
	if retries < 0 {
		retries = r.config.DefaultRetries
	}

	metadata := previous
	metadata.CheckCount++

	var lastErr error
	var elapsed time.Duration
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			if err := r.waitBeforeRetry(ctx, attempt); err != nil {
				lastErr = err
				break
			}
		}

		finding, took, err := r.probeOnce(ctx, dep, timeout)
		elapsed = took
		if err == nil {
			metadata.ConsecutiveFailures = 0
			return r.successResult(dep, finding, took, metadata)
		}

		lastErr = err
		log.Warnf("Health check for %s failed on attempt %d of %d: %v", dep.Name, attempt+1, retries+1, err)
	}

	metadata.ConsecutiveFailures++
	metadata.LastError = lastErr.Error()
	return model.CheckResult{
		Name:         dep.Name,
		Status:       model.StatusUnhealthy,
		LastCheck:    time.Now(),
		ResponseTime: elapsed,
		Message:      lastErr.Error(),
		Metadata:     metadata,
	}
}

// probeOnce races the probe against its timeout. The losing probe call is
// abandoned, not killed; the buffered channel lets its goroutine finish and
// exit on its own.
func (r *ProbeRunner) probeOnce(ctx context.Context, dep *Dependency, timeout time.Duration) (model.ProbeFinding, time.Duration, error) {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		finding model.ProbeFinding
		err     error
	}
	done := make(chan outcome, 1)

	start := time.Now()
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- outcome{err: fmt.Errorf("probe panicked: %v", rec)}
			}
		}()
		finding, err := dep.Prober.Probe(probeCtx)
		done <- outcome{finding: finding, err: err}
	}()

	select {
	case out := <-done:
		return out.finding, time.Since(start), out.err
	case <-probeCtx.Done():
		took := time.Since(start)
		if probeCtx.Err() == context.DeadlineExceeded {
			return model.ProbeFinding{}, took, fmt.Errorf("health check timed out after %v", timeout)
		}
		return model.ProbeFinding{}, took, probeCtx.Err()
	}
}

// successResult applies the latency thresholds to a successful probe. A slow
// success is reported degraded or unhealthy even though the probe itself
// passed.
func (r *ProbeRunner) successResult(dep *Dependency, finding model.ProbeFinding, took time.Duration, metadata model.CheckMetadata) model.CheckResult {
	status := finding.Status
	if status == "" {
		status = model.StatusHealthy
	}
	message := finding.Message

	switch {
	case took > r.config.UnhealthyLatency:
		status = model.StatusUnhealthy
		message = fmt.Sprintf("response time %v exceeds the %v unhealthy threshold", took, r.config.UnhealthyLatency)
	case took > r.config.DegradedLatency:
		status = model.StatusDegraded
		message = fmt.Sprintf("response time %v exceeds the %v degraded threshold", took, r.config.DegradedLatency)
	}
	if message == "" {
		message = "OK"
	}

	return model.CheckResult{
		Name:         dep.Name,
		Status:       status,
		LastCheck:    time.Now(),
		ResponseTime: took,
		Message:      message,
		Details:      finding.Details,
		Metadata:     metadata,
	}
}

func (r *ProbeRunner) waitBeforeRetry(ctx context.Context, retry int) error {
	backoff := time.Duration(retry) * r.config.RetryBackoffStep
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(backoff):
		return nil
	}
}
