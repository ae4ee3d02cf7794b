package event

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBus_PublishStampsTimestamp(t *testing.T) {
	bus := NewBus(8)

	var mu sync.Mutex
	var received []Event
	bus.Subscribe(HandlerFunc(func(evt Event) {
		mu.Lock()
		received = append(received, evt)
		mu.Unlock()
	}))

	bus.Start()
	bus.Publish(Event{Kind: KindSlowRequest, Key: "GET /a"})
	bus.Stop()

	require.Len(t, received, 1)
	assert.Equal(t, KindSlowRequest, received[0].Kind)
	assert.False(t, received[0].Timestamp.IsZero(), "publish must stamp a zero timestamp")
}

func TestBus_KeepsExplicitTimestamp(t *testing.T) {
	bus := NewBus(8)

	stamp := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	var got Event
	bus.Subscribe(HandlerFunc(func(evt Event) { got = evt }))

	bus.Start()
	bus.Publish(Event{Kind: KindStatusChange, Timestamp: stamp})
	bus.Stop()

	assert.Equal(t, stamp, got.Timestamp)
}

func TestBus_StopDrainsBufferedEvents(t *testing.T) {
	bus := NewBus(64)

	var count atomic.Int64
	bus.Subscribe(HandlerFunc(func(Event) { count.Add(1) }))

	for i := 0; i < 50; i++ {
		bus.Publish(Event{Kind: KindAggregateHealth})
	}

	bus.Start()
	bus.Stop()

	assert.Equal(t, int64(50), count.Load(), "stop must dispatch every buffered event")
}

func TestBus_DropsWhenBufferFull(t *testing.T) {
	bus := NewBus(2)

	// The dispatch goroutine is not running, so the buffer cannot drain.
	bus.Publish(Event{Kind: KindSlowQuery})
	bus.Publish(Event{Kind: KindSlowQuery})
	bus.Publish(Event{Kind: KindSlowQuery})
	bus.Publish(Event{Kind: KindSlowQuery})

	assert.Equal(t, int64(2), bus.Dropped())

	var count atomic.Int64
	bus.Subscribe(HandlerFunc(func(Event) { count.Add(1) }))
	bus.Start()
	bus.Stop()

	assert.Equal(t, int64(2), count.Load(), "only the buffered events survive")
}

func TestBus_SubscribeAfterStart(t *testing.T) {
	bus := NewBus(8)
	bus.Start()

	var count atomic.Int64
	bus.Subscribe(HandlerFunc(func(Event) { count.Add(1) }))

	bus.Publish(Event{Kind: KindHighMemoryUsage})

	require.Eventually(t, func() bool { return count.Load() == 1 }, time.Second, 5*time.Millisecond)
	bus.Stop()
}

func TestBus_MinimumBuffer(t *testing.T) {
	bus := NewBus(0)

	bus.Publish(Event{Kind: KindSlowRequest})
	bus.Publish(Event{Kind: KindSlowRequest})

	assert.Equal(t, int64(1), bus.Dropped(), "buffer sizes below 1 fall back to 1")
}

func TestBus_StopWithoutStart(t *testing.T) {
	bus := NewBus(4)
	// Must not block or panic.
	bus.Stop()
}
