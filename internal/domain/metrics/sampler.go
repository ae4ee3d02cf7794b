package metrics

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go-monitor/internal/domain/event"
	"go-monitor/internal/domain/model"
	"go-monitor/pkg/log"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// ResourceSampler captures process and system resource usage. Each call to
// Sample stores the result on the collector so metrics snapshots carry the
// latest system view. An optional background probe measures how far ticker
// wakeups drift behind their schedule, which approximates runtime scheduler
// congestion.
type ResourceSampler struct {
	config    *SamplerConfig
	collector *Collector
	bus       *event.Bus
	proc      *process.Process
	startTime time.Time

	delay   atomic.Int64
	started atomic.Bool

	mu        sync.Mutex
	lastNumGC uint32

	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewResourceSampler creates a new resource sampler. The event bus may be
// nil, in which case no events are published.
func NewResourceSampler(config *SamplerConfig, collector *Collector, bus *event.Bus) *ResourceSampler {
	if config == nil {
		config = NewSamplerConfig()
	}
	s := &ResourceSampler{
		config:    config,
		collector: collector,
		bus:       bus,
		startTime: time.Now(),
		quit:      make(chan struct{}),
	}
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Errorf("Failed to attach process stats reader: %v", err)
	} else {
		s.proc = proc
		// Prime the reader so the next call reports usage since this point.
		if _, err := proc.Percent(0); err != nil {
			log.Errorf("Failed to prime process cpu reader: %v", err)
		}
	}
	return s
}

// Start launches the scheduler delay probe when enabled. Calling Start more
// than once has no effect.
func (s *ResourceSampler) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	if !s.config.EnableSchedulerDelay {
		return
	}
	s.wg.Add(1)
	go s.delayLoop()
	log.Infof("Scheduler delay probe started with interval %v", s.config.SchedulerDelayInterval)
}

// Stop terminates the scheduler delay probe and waits for it to exit.
func (s *ResourceSampler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}

// SchedulerDelay returns the most recent measured drift between the expected
// and observed probe tick.
func (s *ResourceSampler) SchedulerDelay() time.Duration {
	return time.Duration(s.delay.Load())
}

// Sample captures one resource snapshot, stores it on the collector and
// publishes threshold alerts.
func (s *ResourceSampler) Sample() model.SystemMetrics {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	memory := model.MemoryMetrics{
		HeapUsed:  ms.HeapAlloc,
		HeapTotal: ms.HeapSys,
		External:  ms.Sys - ms.HeapSys,
		Stack:     ms.StackInuse,
	}
	if vm, err := mem.VirtualMemory(); err != nil {
		log.Errorf("Failed to read system memory: %v", err)
	} else {
		memory.SystemTotal = vm.Total
		memory.SystemFree = vm.Available
		memory.SystemUsedPercent = vm.UsedPercent
	}

	cpu := model.CPUMetrics{Goroutines: runtime.NumGoroutine()}
	if s.proc != nil {
		if pct, err := s.proc.Percent(0); err != nil {
			log.Errorf("Failed to read process cpu usage: %v", err)
		} else {
			// Percent sums across cores and can exceed 100 on multicore hosts.
			if pct > 100 {
				pct = 100
			}
			cpu.Percent = pct
		}
	}

	sample := model.SystemMetrics{
		Memory:         memory,
		CPU:            cpu,
		SchedulerDelay: s.SchedulerDelay(),
		SampledAt:      time.Now(),
		Uptime:         time.Since(s.startTime),
	}
	if s.config.EnableGCStats {
		sample.GC = s.gcMetrics(&ms)
	}

	if s.collector != nil {
		s.collector.SetSystemMetrics(sample)
	}
	s.checkThresholds(sample)
	return sample
}

func (s *ResourceSampler) gcMetrics(ms *runtime.MemStats) model.GCMetrics {
	gc := model.GCMetrics{
		Collections: ms.NumGC,
		TotalPause:  time.Duration(ms.PauseTotalNs),
	}
	if ms.NumGC > 0 {
		gc.LastPause = time.Duration(ms.PauseNs[(ms.NumGC+255)%256])
	}

	s.mu.Lock()
	collected := ms.NumGC > s.lastNumGC
	s.lastNumGC = ms.NumGC
	s.mu.Unlock()

	if collected && gc.LastPause > s.config.GCPauseWarn {
		log.Warnf("Long garbage collection pause: %v", gc.LastPause)
	}
	return gc
}

func (s *ResourceSampler) checkThresholds(sample model.SystemMetrics) {
	if sample.Memory.SystemUsedPercent > s.config.MemoryAlertPercent {
		log.Warnf("High memory usage: %.1f%% of system memory in use", sample.Memory.SystemUsedPercent)
		s.publish(event.Event{
			Kind:    event.KindHighMemoryUsage,
			Key:     "memory",
			Message: "system memory usage above alert threshold",
			Details: map[string]string{
				"usedPercent":  fmt.Sprintf("%.1f", sample.Memory.SystemUsedPercent),
				"alertPercent": fmt.Sprintf("%.1f", s.config.MemoryAlertPercent),
			},
		})
	}
	if sample.CPU.Percent > s.config.CPUAlertPercent {
		log.Warnf("High cpu usage: %.1f%% of process cpu in use", sample.CPU.Percent)
		s.publish(event.Event{
			Kind:    event.KindHighCPUUsage,
			Key:     "cpu",
			Message: "process cpu usage above alert threshold",
			Details: map[string]string{
				"usedPercent":  fmt.Sprintf("%.1f", sample.CPU.Percent),
				"alertPercent": fmt.Sprintf("%.1f", s.config.CPUAlertPercent),
			},
		})
	}
}

func (s *ResourceSampler) delayLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.SchedulerDelayInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-s.quit:
			return
		case now := <-ticker.C:
			drift := now.Sub(last) - s.config.SchedulerDelayInterval
			if drift < 0 {
				drift = 0
			}
			s.delay.Store(int64(drift))
			if drift > s.config.SchedulerDelayWarn {
				log.Warnf("Scheduler delay detected: ticks running %v behind schedule", drift)
			}
			last = now
		}
	}
}

func (s *ResourceSampler) publish(e event.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
