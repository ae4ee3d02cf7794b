package metrics

import (
	"sort"
	"time"
)

// durationWindow is a fixed-capacity FIFO buffer of recent duration samples.
// When the window is full the oldest sample is evicted first.
type durationWindow struct {
	samples  []time.Duration
	capacity int
}

func newDurationWindow(capacity int) *durationWindow {
	if capacity < 1 {
		capacity = 1
	}
	return &durationWindow{
		samples:  make([]time.Duration, 0, capacity),
		capacity: capacity,
	}
}

// Append adds a sample, evicting the oldest one when the window is full.
func (w *durationWindow) Append(d time.Duration) {
	if len(w.samples) == w.capacity {
		copy(w.samples, w.samples[1:])
		w.samples[len(w.samples)-1] = d
		return
	}
	w.samples = append(w.samples, d)
}

// Len returns the number of retained samples.
func (w *durationWindow) Len() int {
	return len(w.samples)
}

// Values returns the retained samples in insertion order.
func (w *durationWindow) Values() []time.Duration {
	out := make([]time.Duration, len(w.samples))
	copy(out, w.samples)
	return out
}

// Sorted returns an ascending copy of the retained samples. The window
// itself is never reordered.
func (w *durationWindow) Sorted() []time.Duration {
	sorted := make([]time.Duration, len(w.samples))
	copy(sorted, w.samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

// Percentile computes the nearest-rank percentile over a sorted copy of the
// window. No interpolation is performed.
func (w *durationWindow) Percentile(pct int) time.Duration {
	return nearestRank(w.Sorted(), pct)
}

// nearestRank indexes directly into an ascending sample slice at
// floor(len*pct/100). An empty slice yields zero.
func nearestRank(sorted []time.Duration, pct int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted) * pct / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
