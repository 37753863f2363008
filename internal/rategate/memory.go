package rategate

import (
	"context"
	"sync"
	"time"
)

// MemoryWindow is an in-process WindowStore.
// Timestamps are kept most recent first and never exceed capacity.
type MemoryWindow struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	stamps   []time.Time
}

// NewMemoryWindow creates a window admitting capacity dispatches per window.
// Non-positive values fall back to the defaults.
func NewMemoryWindow(capacity int, window time.Duration) *MemoryWindow {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &MemoryWindow{
		capacity: capacity,
		window:   window,
		stamps:   make([]time.Time, 0, capacity),
	}
}

// Reserve implements WindowStore.
func (w *MemoryWindow) Reserve(_ context.Context, now time.Time) (time.Duration, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.stamps) < w.capacity {
		w.pushFront(now)
		return 0, nil
	}

	oldest := w.stamps[len(w.stamps)-1]
	if age := now.Sub(oldest); age < w.window {
		return w.window - age, nil
	}

	w.stamps = w.stamps[:len(w.stamps)-1]
	w.pushFront(now)
	return 0, nil
}

// Len returns the number of recorded timestamps.
func (w *MemoryWindow) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.stamps)
}

func (w *MemoryWindow) pushFront(t time.Time) {
	w.stamps = append(w.stamps, time.Time{})
	copy(w.stamps[1:], w.stamps)
	w.stamps[0] = t
}
