package monitor

import (
	"fmt"
	"time"
)

// Config represents health monitoring options
type Config struct {
	// RegularInterval is the interval between sweeps covering all enabled dependencies
	RegularInterval time.Duration
	// CriticalInterval is the interval between sweeps covering critical dependencies only
	CriticalInterval time.Duration
	// DefaultTimeout is the probe timeout applied when a dependency declares none
	DefaultTimeout time.Duration
	// DefaultRetries is the number of additional probe attempts applied when a dependency declares none
	DefaultRetries int
	// DegradedLatency is the response time above which a successful probe is reported degraded
	DegradedLatency time.Duration
	// UnhealthyLatency is the response time above which a successful probe is reported unhealthy
	UnhealthyLatency time.Duration
	// RetryBackoffStep is multiplied by the retry number to produce the delay before each retry
	RetryBackoffStep time.Duration
	// Version is the application version reported in health responses
	Version string
	// Environment is the deployment environment reported in health responses
	Environment string
}

// NewMonitorConfig creates a new health monitoring configuration with default values
func NewMonitorConfig() *Config {
	return &Config{
		RegularInterval:  60 * time.Second,
		CriticalInterval: 30 * time.Second,
		DefaultTimeout:   5 * time.Second,
		DefaultRetries:   3,
		DegradedLatency:  2 * time.Second,
		UnhealthyLatency: 5 * time.Second,
		RetryBackoffStep: 1 * time.Second,
		Version:          "unknown",
		Environment:      "development",
	}
}

// WithRegularInterval sets the interval between sweeps covering all enabled dependencies
func (c *Config) WithRegularInterval(interval time.Duration) *Config {
	if interval <= 0 {
		panic(fmt.Sprintf("invalid regular interval: %v, must be positive", interval))
	}
	c.RegularInterval = interval
	return c
}

// WithCriticalInterval sets the interval between sweeps covering critical dependencies only
func (c *Config) WithCriticalInterval(interval time.Duration) *Config {
	if interval <= 0 {
		panic(fmt.Sprintf("invalid critical interval: %v, must be positive", interval))
	}
	c.CriticalInterval = interval
	return c
}

// WithDefaultTimeout sets the probe timeout applied when a dependency declares none
func (c *Config) WithDefaultTimeout(timeout time.Duration) *Config {
	if timeout <= 0 {
		panic(fmt.Sprintf("invalid default timeout: %v, must be positive", timeout))
	}
	c.DefaultTimeout = timeout
	return c
}

// WithDefaultRetries sets the number of additional probe attempts applied when a dependency declares none
func (c *Config) WithDefaultRetries(retries int) *Config {
	if retries < 0 {
		panic(fmt.Sprintf("invalid default retries: %d, must be non-negative", retries))
	}
	c.DefaultRetries = retries
	return c
}

// WithDegradedLatency sets the degraded response time threshold
func (c *Config) WithDegradedLatency(threshold time.Duration) *Config {
	if threshold <= 0 {
		panic(fmt.Sprintf("invalid degraded latency: %v, must be positive", threshold))
	}
	c.DegradedLatency = threshold
	return c
}

// WithUnhealthyLatency sets the unhealthy response time threshold
func (c *Config) WithUnhealthyLatency(threshold time.Duration) *Config {
	if threshold <= 0 {
		panic(fmt.Sprintf("invalid unhealthy latency: %v, must be positive", threshold))
	}
	c.UnhealthyLatency = threshold
	return c
}

// WithRetryBackoffStep sets the base delay multiplied by the retry number before each retry
func (c *Config) WithRetryBackoffStep(step time.Duration) *Config {
	if step < 0 {
		panic(fmt.Sprintf("invalid retry backoff step: %v, must be non-negative", step))
	}
	c.RetryBackoffStep = step
	return c
}

// WithVersion sets the application version reported in health responses
func (c *Config) WithVersion(version string) *Config {
	c.Version = version
	return c
}

// WithEnvironment sets the deployment environment reported in health responses
func (c *Config) WithEnvironment(environment string) *Config {
	c.Environment = environment
	return c
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.RegularInterval <= 0 {
		return fmt.Errorf("invalid regular interval: %v, must be positive", c.RegularInterval)
	}
	if c.CriticalInterval <= 0 {
		return fmt.Errorf("invalid critical interval: %v, must be positive", c.CriticalInterval)
	}
	if c.DefaultTimeout <= 0 {
		return fmt.Errorf("invalid default timeout: %v, must be positive", c.DefaultTimeout)
	}
	if c.DefaultRetries < 0 {
		return fmt.Errorf("invalid default retries: %d, must be non-negative", c.DefaultRetries)
	}
	if c.DegradedLatency <= 0 {
		return fmt.Errorf("invalid degraded latency: %v, must be positive", c.DegradedLatency)
	}
	if c.UnhealthyLatency <= c.DegradedLatency {
		return fmt.Errorf("invalid unhealthy latency: %v, must exceed degraded latency %v", c.UnhealthyLatency, c.DegradedLatency)
	}
	if c.RetryBackoffStep < 0 {
		return fmt.Errorf("invalid retry backoff step: %v, must be non-negative", c.RetryBackoffStep)
	}
	return nil
}
