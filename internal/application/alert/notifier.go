package alert

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go-monitor/internal/domain/event"
	"go-monitor/internal/domain/gateway/queue"
	"go-monitor/internal/domain/model"
	"go-monitor/pkg/log"

	"golang.org/x/time/rate"
)

type NotifierConfig struct {
	// Cooldown is the minimum interval between two alerts from the same
	// source. Default: 5 minutes
	Cooldown time.Duration
	// Burst is how many alerts a source may emit back to back before the
	// cooldown applies. Default: 1
	Burst int
	// MaxSources bounds the number of tracked sources. When exceeded the
	// throttle state is reset. Default: 256
	MaxSources int
}

// NewNotifierConfig creates a NotifierConfig with default values
func NewNotifierConfig() *NotifierConfig {
	return &NotifierConfig{
		Cooldown:   5 * time.Minute,
		Burst:      1,
		MaxSources: 256,
	}
}

// WithCooldown sets the minimum interval between alerts from one source
func (config *NotifierConfig) WithCooldown(cooldown time.Duration) *NotifierConfig {
	if cooldown <= 0 {
		panic(fmt.Sprintf("invalid cooldown: %d, must be positive", cooldown))
	}
	config.Cooldown = cooldown
	return config
}

// WithBurst sets how many alerts a source may emit before throttling
func (config *NotifierConfig) WithBurst(burst int) *NotifierConfig {
	if burst < 1 {
		panic(fmt.Sprintf("invalid burst: %d, must be at least 1", burst))
	}
	config.Burst = burst
	return config
}

// WithMaxSources sets the bound on tracked alert sources
func (config *NotifierConfig) WithMaxSources(maxSources int) *NotifierConfig {
	if maxSources < 1 {
		panic(fmt.Sprintf("invalid max sources: %d, must be at least 1", maxSources))
	}
	config.MaxSources = maxSources
	return config
}

// Validate checks if the config values are valid
func (config *NotifierConfig) Validate() error {
	if config.Cooldown <= 0 {
		return fmt.Errorf("invalid cooldown: %d, must be positive", config.Cooldown)
	}
	if config.Burst < 1 {
		return fmt.Errorf("invalid burst: %d, must be at least 1", config.Burst)
	}
	if config.MaxSources < 1 {
		return fmt.Errorf("invalid max sources: %d, must be at least 1", config.MaxSources)
	}
	return nil
}

// Notifier turns monitor events into alert log lines, throttled per source
// so a flapping dependency cannot flood the log. When a queue is attached,
// every delivered alert is also forwarded for downstream notification
// pipelines.
type Notifier struct {
	config    *NotifierConfig
	sender    queue.Sender
	queueName string

	mu       sync.Mutex
	limiters map[string]*rate.Limiter

	suppressed atomic.Int64
}

var _ event.Handler = (*Notifier)(nil)

// NewNotifier creates a Notifier. A nil config falls back to defaults.
func NewNotifier(config *NotifierConfig) *Notifier {
	if config == nil {
		config = NewNotifierConfig()
	}
	return &Notifier{
		config:   config,
		limiters: make(map[string]*rate.Limiter),
	}
}

// WithQueueForwarding mirrors every delivered alert onto the named queue.
// Attach before subscribing the notifier to the bus.
func (notifier *Notifier) WithQueueForwarding(sender queue.Sender, queueName string) *Notifier {
	notifier.sender = sender
	notifier.queueName = queueName
	return notifier
}

// HandleEvent implements the event.Handler interface. Events from a source
// inside its cooldown window are counted and dropped.
func (notifier *Notifier) HandleEvent(evt event.Event) {
	if !notifier.allow(string(evt.Kind) + "|" + evt.Key) {
		notifier.suppressed.Add(1)
		return
	}

	keysAndValues := []any{"kind", string(evt.Kind), "source", evt.Key}
	for key, value := range evt.Details {
		keysAndValues = append(keysAndValues, key, value)
	}

	if evt.Kind == event.KindStatusChange && evt.Details["to"] == string(model.StatusUnhealthy) {
		log.Errorw("alert: "+evt.Message, keysAndValues...)
	} else {
		log.Warnw("alert: "+evt.Message, keysAndValues...)
	}

	notifier.forward(evt)
}

// forward sends the alert to the attached queue. Delivery failures are logged
// and never bubble up into event dispatch.
func (notifier *Notifier) forward(evt event.Event) {
	if notifier.sender == nil || notifier.queueName == "" {
		return
	}
	if err := notifier.sender.SendMessage(notifier.queueName, evt); err != nil {
		log.Errorf("Failed to forward alert to queue %s: %v", notifier.queueName, err)
	}
}

// Suppressed returns how many events were dropped by the throttle.
func (notifier *Notifier) Suppressed() int64 {
	return notifier.suppressed.Load()
}

func (notifier *Notifier) allow(source string) bool {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	limiter, ok := notifier.limiters[source]
	if !ok {
		if len(notifier.limiters) >= notifier.config.MaxSources {
			notifier.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rate.Every(notifier.config.Cooldown), notifier.config.Burst)
		notifier.limiters[source] = limiter
	}
	return limiter.Allow()
}
