package watcher

import (
	"sync"
	"time"
)

// Change is one batched documentation file change.
type Change struct {
	Path    string
	Removed bool
}

// Debouncer collects changes and emits them in batches after a quiet period.
// Multiple changes to the same path within the window collapse into one,
// keeping re-index churn down while a docs tree is being rewritten.
type Debouncer struct {
	interval time.Duration
	changes  map[string]Change
	mu       sync.Mutex
	timer    *time.Timer
	output   chan []Change
}

// NewDebouncer creates a debouncer with the given quiet interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		changes:  make(map[string]Change),
		output:   make(chan []Change, 16),
	}
}

// Output returns the channel that receives batched changes.
func (d *Debouncer) Output() <-chan []Change {
	return d.output
}

// Add records a change. A later change to the same path replaces the
// earlier one, and the quiet timer restarts.
func (d *Debouncer) Add(path string, removed bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.changes[path] = Change{Path: path, Removed: removed}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.flush)
}

// flush sends the accumulated changes and resets the buffer.
func (d *Debouncer) flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.changes) == 0 {
		return
	}
	batch := make([]Change, 0, len(d.changes))
	for _, change := range d.changes {
		batch = append(batch, change)
	}
	d.changes = make(map[string]Change)

	select {
	case d.output <- batch:
	default:
		// Consumer is behind; drop the batch. The next change re-arms the
		// timer and the consumer does a full re-collect anyway.
	}
}
