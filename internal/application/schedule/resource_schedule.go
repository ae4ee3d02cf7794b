package schedule

import (
	"github.com/robfig/cron/v3"
	"go-monitor/internal/domain/metrics"
	"go-monitor/pkg/log"
)

type ResourceScheduler struct {
	cron    *cron.Cron
	sampler *metrics.ResourceSampler
	spec    string
}

func NewResourceScheduler(sampler *metrics.ResourceSampler, cronExpression string) *ResourceScheduler {
	return &ResourceScheduler{cron: cron.New(), sampler: sampler, spec: cronExpression}
}

// InitResourceScheduleTasks initializes resource sampling schedule tasks
func (scheduler *ResourceScheduler) InitResourceScheduleTasks() {
	_, err := scheduler.cron.AddFunc(scheduler.spec, scheduler.SampleResources)

	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
	scheduler.sampler.Start()

	// Capture a first sample so metrics endpoints have data right away
	scheduler.SampleResources()
}

// SampleResources captures one resource sample. A panicking sample is
// logged instead of taking the cron runner down with it.
func (scheduler *ResourceScheduler) SampleResources() {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("Resource sampling panicked", "panic", r)
		}
	}()

	sample := scheduler.sampler.Sample()

	log.Debugw("Resource sample captured",
		"heap_used", sample.Memory.HeapUsed,
		"memory_used_percent", sample.Memory.SystemUsedPercent,
		"cpu_percent", sample.CPU.Percent,
		"goroutines", sample.CPU.Goroutines,
	)
}

// Stop gracefully stops the resource scheduler and the delay probe.
func (scheduler *ResourceScheduler) Stop() {
	if scheduler.cron != nil {
		ctx := scheduler.cron.Stop()
		<-ctx.Done()
	}
	scheduler.sampler.Stop()
}
