package schedule

import (
	"context"
	"time"

	"go-monitor/internal/domain/monitor"
	"go-monitor/pkg/log"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
)

// HealthSchedulerConfig holds configuration for the health scheduler
type HealthSchedulerConfig struct {
	RegularInterval  time.Duration
	CriticalInterval time.Duration
	SweepTimeout     time.Duration
	Clock            clockwork.Clock
}

// HealthScheduler drives the periodic dependency sweeps. A full sweep runs on
// the regular interval and a critical-only sweep runs on the tighter critical
// interval, so the dependencies that gate readiness are watched more closely.
type HealthScheduler struct {
	scheduler gocron.Scheduler
	monitor   *monitor.Monitor
	config    *HealthSchedulerConfig
}

// NewHealthScheduler creates a new health scheduler. A nil clock falls back
// to the wall clock.
func NewHealthScheduler(mon *monitor.Monitor, config *HealthSchedulerConfig) (*HealthScheduler, error) {
	if config.Clock == nil {
		config.Clock = clockwork.NewRealClock()
	}
	if config.SweepTimeout <= 0 {
		config.SweepTimeout = config.RegularInterval
	}

	scheduler, err := gocron.NewScheduler(gocron.WithClock(config.Clock))
	if err != nil {
		return nil, err
	}

	return &HealthScheduler{
		scheduler: scheduler,
		monitor:   mon,
		config:    config,
	}, nil
}

// InitHealthScheduleTasks initializes health schedule tasks. The full sweep
// job fires once immediately so the service has results before the first
// interval elapses.
func (scheduler *HealthScheduler) InitHealthScheduleTasks() error {
	_, err := scheduler.scheduler.NewJob(
		gocron.DurationJob(scheduler.config.RegularInterval),
		gocron.NewTask(scheduler.RunSweep, monitor.ScopeAll),
		gocron.WithName("health-sweep-all"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	_, err = scheduler.scheduler.NewJob(
		gocron.DurationJob(scheduler.config.CriticalInterval),
		gocron.NewTask(scheduler.RunSweep, monitor.ScopeCritical),
		gocron.WithName("health-sweep-critical"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.scheduler.Start()
	log.Infof("Health scheduler started, full sweep every %v, critical sweep every %v",
		scheduler.config.RegularInterval, scheduler.config.CriticalInterval)
	return nil
}

// RunSweep executes one sweep over the given scope with the configured
// timeout. A panicking sweep is logged instead of taking the scheduler
// down with it.
func (scheduler *HealthScheduler) RunSweep(scope monitor.Scope) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("Health sweep panicked", "scope", scope, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), scheduler.config.SweepTimeout)
	defer cancel()

	scheduler.monitor.RunSweep(ctx, scope)
}

// Stop gracefully stops the scheduler and waits for running jobs to finish.
func (scheduler *HealthScheduler) Stop() {
	if err := scheduler.scheduler.Shutdown(); err != nil {
		log.Errorf("Failed to shut down health scheduler: %v", err)
	}
}
