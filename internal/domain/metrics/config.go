package metrics

import (
	"fmt"
	"time"
)

// CollectorConfig represents performance metrics collection options
type CollectorConfig struct {
	// WindowCapacity is the maximum number of duration samples retained per endpoint
	WindowCapacity int
	// SlowRequestThreshold is the request duration above which a slow request event is published
	SlowRequestThreshold time.Duration
	// SlowQueryThreshold is the query duration above which the query is retained as slow
	SlowQueryThreshold time.Duration
	// SlowQueryLimit is the maximum number of slow queries retained
	SlowQueryLimit int
	// QueryTextLimit is the maximum number of bytes of query text retained per slow query
	QueryTextLimit int
	// TopEndpoints is the number of slowest endpoints included in snapshots
	TopEndpoints int
}

// NewCollectorConfig creates a new collector configuration with default values
func NewCollectorConfig() *CollectorConfig {
	return &CollectorConfig{
		WindowCapacity:       1000,
		SlowRequestThreshold: 1 * time.Second,
		SlowQueryThreshold:   500 * time.Millisecond,
		SlowQueryLimit:       50,
		QueryTextLimit:       200,
		TopEndpoints:         10,
	}
}

// WithWindowCapacity sets the maximum number of duration samples retained per endpoint
func (c *CollectorConfig) WithWindowCapacity(capacity int) *CollectorConfig {
	if capacity < 1 {
		panic(fmt.Sprintf("invalid window capacity: %d, must be positive", capacity))
	}
	c.WindowCapacity = capacity
	return c
}

// WithSlowRequestThreshold sets the slow request duration threshold
func (c *CollectorConfig) WithSlowRequestThreshold(threshold time.Duration) *CollectorConfig {
	if threshold < 0 {
		panic(fmt.Sprintf("invalid slow request threshold: %v, must be non-negative", threshold))
	}
	c.SlowRequestThreshold = threshold
	return c
}

// WithSlowQueryThreshold sets the slow query duration threshold
func (c *CollectorConfig) WithSlowQueryThreshold(threshold time.Duration) *CollectorConfig {
	if threshold < 0 {
		panic(fmt.Sprintf("invalid slow query threshold: %v, must be non-negative", threshold))
	}
	c.SlowQueryThreshold = threshold
	return c
}

// WithSlowQueryLimit sets the maximum number of slow queries retained
func (c *CollectorConfig) WithSlowQueryLimit(limit int) *CollectorConfig {
	if limit < 1 {
		panic(fmt.Sprintf("invalid slow query limit: %d, must be positive", limit))
	}
	c.SlowQueryLimit = limit
	return c
}

// WithQueryTextLimit sets the maximum number of bytes of query text retained
func (c *CollectorConfig) WithQueryTextLimit(limit int) *CollectorConfig {
	if limit < 1 {
		panic(fmt.Sprintf("invalid query text limit: %d, must be positive", limit))
	}
	c.QueryTextLimit = limit
	return c
}

// WithTopEndpoints sets the number of slowest endpoints included in snapshots
func (c *CollectorConfig) WithTopEndpoints(top int) *CollectorConfig {
	if top < 0 {
		panic(fmt.Sprintf("invalid top endpoints: %d, must be non-negative", top))
	}
	c.TopEndpoints = top
	return c
}

// Validate validates the configuration
func (c *CollectorConfig) Validate() error {
	if c.WindowCapacity < 1 {
		return fmt.Errorf("invalid window capacity: %d, must be positive", c.WindowCapacity)
	}
	if c.SlowRequestThreshold < 0 {
		return fmt.Errorf("invalid slow request threshold: %v, must be non-negative", c.SlowRequestThreshold)
	}
	if c.SlowQueryThreshold < 0 {
		return fmt.Errorf("invalid slow query threshold: %v, must be non-negative", c.SlowQueryThreshold)
	}
	if c.SlowQueryLimit < 1 {
		return fmt.Errorf("invalid slow query limit: %d, must be positive", c.SlowQueryLimit)
	}
	if c.QueryTextLimit < 1 {
		return fmt.Errorf("invalid query text limit: %d, must be positive", c.QueryTextLimit)
	}
	if c.TopEndpoints < 0 {
		return fmt.Errorf("invalid top endpoints: %d, must be non-negative", c.TopEndpoints)
	}
	return nil
}

// SamplerConfig represents resource sampling options
type SamplerConfig struct {
	// MemoryAlertPercent is the system memory usage percentage above which an alert event is published
	MemoryAlertPercent float64
	// CPUAlertPercent is the process CPU usage percentage above which an alert event is published
	CPUAlertPercent float64
	// SchedulerDelayInterval is the tick interval of the scheduler delay probe
	SchedulerDelayInterval time.Duration
	// SchedulerDelayWarn is the scheduler delay above which a warning is logged
	SchedulerDelayWarn time.Duration
	// GCPauseWarn is the garbage collection pause duration above which a warning is logged
	GCPauseWarn time.Duration
	// EnableGCStats enables garbage collection statistics tracking
	EnableGCStats bool
	// EnableSchedulerDelay enables the scheduler delay probe
	EnableSchedulerDelay bool
}

// NewSamplerConfig creates a new sampler configuration with default values
func NewSamplerConfig() *SamplerConfig {
	return &SamplerConfig{
		MemoryAlertPercent:     85,
		CPUAlertPercent:        80,
		SchedulerDelayInterval: 5 * time.Second,
		SchedulerDelayWarn:     50 * time.Millisecond,
		GCPauseWarn:            100 * time.Millisecond,
		EnableGCStats:          true,
		EnableSchedulerDelay:   true,
	}
}

// WithMemoryAlertPercent sets the system memory usage alert threshold
func (c *SamplerConfig) WithMemoryAlertPercent(percent float64) *SamplerConfig {
	if percent < 0 || percent > 100 {
		panic(fmt.Sprintf("invalid memory alert percent: %v, must be between 0 and 100", percent))
	}
	c.MemoryAlertPercent = percent
	return c
}

// WithCPUAlertPercent sets the process CPU usage alert threshold
func (c *SamplerConfig) WithCPUAlertPercent(percent float64) *SamplerConfig {
	if percent < 0 || percent > 100 {
		panic(fmt.Sprintf("invalid cpu alert percent: %v, must be between 0 and 100", percent))
	}
	c.CPUAlertPercent = percent
	return c
}

// WithSchedulerDelayInterval sets the tick interval of the scheduler delay probe
func (c *SamplerConfig) WithSchedulerDelayInterval(interval time.Duration) *SamplerConfig {
	if interval <= 0 {
		panic(fmt.Sprintf("invalid scheduler delay interval: %v, must be positive", interval))
	}
	c.SchedulerDelayInterval = interval
	return c
}

// WithSchedulerDelayWarn sets the scheduler delay warning threshold
func (c *SamplerConfig) WithSchedulerDelayWarn(threshold time.Duration) *SamplerConfig {
	if threshold < 0 {
		panic(fmt.Sprintf("invalid scheduler delay warn threshold: %v, must be non-negative", threshold))
	}
	c.SchedulerDelayWarn = threshold
	return c
}

// WithGCPauseWarn sets the garbage collection pause warning threshold
func (c *SamplerConfig) WithGCPauseWarn(threshold time.Duration) *SamplerConfig {
	if threshold < 0 {
		panic(fmt.Sprintf("invalid gc pause warn threshold: %v, must be non-negative", threshold))
	}
	c.GCPauseWarn = threshold
	return c
}

// WithGCStats enables or disables garbage collection statistics tracking
func (c *SamplerConfig) WithGCStats(enabled bool) *SamplerConfig {
	c.EnableGCStats = enabled
	return c
}

// WithSchedulerDelay enables or disables the scheduler delay probe
func (c *SamplerConfig) WithSchedulerDelay(enabled bool) *SamplerConfig {
	c.EnableSchedulerDelay = enabled
	return c
}

// Validate validates the configuration
func (c *SamplerConfig) Validate() error {
	if c.MemoryAlertPercent < 0 || c.MemoryAlertPercent > 100 {
		return fmt.Errorf("invalid memory alert percent: %v, must be between 0 and 100", c.MemoryAlertPercent)
	}
	if c.CPUAlertPercent < 0 || c.CPUAlertPercent > 100 {
		return fmt.Errorf("invalid cpu alert percent: %v, must be between 0 and 100", c.CPUAlertPercent)
	}
	if c.SchedulerDelayInterval <= 0 {
		return fmt.Errorf("invalid scheduler delay interval: %v, must be positive", c.SchedulerDelayInterval)
	}
	if c.SchedulerDelayWarn < 0 {
		return fmt.Errorf("invalid scheduler delay warn threshold: %v, must be non-negative", c.SchedulerDelayWarn)
	}
	if c.GCPauseWarn < 0 {
		return fmt.Errorf("invalid gc pause warn threshold: %v, must be non-negative", c.GCPauseWarn)
	}
	return nil
}
