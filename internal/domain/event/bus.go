package event

import (
	"sync"
	"sync/atomic"
	"time"
)

// Handler consumes monitor events delivered by the Bus.
type Handler interface {
	HandleEvent(evt Event)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(evt Event)

var _ Handler = HandlerFunc(nil)

// HandleEvent implements the Handler interface for HandlerFunc.
func (f HandlerFunc) HandleEvent(evt Event) {
	f(evt)
}

// Bus is a bounded in-process event channel with a single dispatch goroutine.
// Publish never blocks: when the buffer is full the event is dropped and
// counted, so publishers on the request path are never slowed down.
type Bus struct {
	ch       chan Event
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu       sync.RWMutex
	handlers []Handler

	dropped atomic.Int64
	started atomic.Bool
}

// NewBus creates a bus with the given buffer size. Sizes below 1 fall back
// to a buffer of 1.
func NewBus(buffer int) *Bus {
	if buffer < 1 {
		buffer = 1
	}
	return &Bus{
		ch:   make(chan Event, buffer),
		quit: make(chan struct{}),
	}
}

// Subscribe registers a handler. Handlers registered after Start still
// receive subsequent events.
func (b *Bus) Subscribe(handler Handler) {
	b.mu.Lock()
	b.handlers = append(b.handlers, handler)
	b.mu.Unlock()
}

// Publish enqueues an event without blocking. A zero timestamp is stamped
// with the current time. Events that do not fit in the buffer are dropped.
func (b *Bus) Publish(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	select {
	case b.ch <- evt:
	default:
		b.dropped.Add(1)
	}
}

// Dropped returns the number of events discarded because the buffer was full.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Start launches the dispatch goroutine. Starting an already started bus is
// a no-op.
func (b *Bus) Start() {
	if !b.started.CompareAndSwap(false, true) {
		return
	}
	b.wg.Add(1)
	go b.dispatchLoop()
}

// Stop drains buffered events, stops the dispatch goroutine and waits for it
// to finish.
func (b *Bus) Stop() {
	if !b.started.Load() {
		return
	}
	b.stopOnce.Do(func() { close(b.quit) })
	b.wg.Wait()
}

func (b *Bus) dispatchLoop() {
	defer b.wg.Done()
	for {
		select {
		case evt := <-b.ch:
			b.dispatch(evt)
		case <-b.quit:
			for {
				select {
				case evt := <-b.ch:
					b.dispatch(evt)
				default:
					return
				}
			}
		}
	}
}

func (b *Bus) dispatch(evt Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler.HandleEvent(evt)
	}
}
