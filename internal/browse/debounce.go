// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package browse owns the reactive search state: raw text, committed
// query, category toggles, and the re-query pipeline feeding the
// published view model.
package browse

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of text input into a single commit of the
// latest value after a fixed quiet period. It is an explicit scheduler
// value — pending timer handle, last-seen argument, cancel operation —
// so its behavior is testable without a UI.
type Debouncer struct {
	interval time.Duration
	commit   func(string)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending string
}

// NewDebouncer returns a Debouncer that calls commit with the most
// recent scheduled text once input has been quiet for interval.
func NewDebouncer(interval time.Duration, commit func(string)) *Debouncer {
	return &Debouncer{interval: interval, commit: commit}
}

// Schedule records text as the pending value and restarts the quiet
// period. Any previously scheduled commit is cancelled: N calls within
// the window produce exactly one commit, with the last text.
func (d *Debouncer) Schedule(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = text

	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		// A Stop can lose the race with an already-firing timer;
		// the generation check keeps a superseded commit from running.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.commit(text)
	})
}

// Cancel drops any pending commit without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// Pending returns the last scheduled text, committed or not.
func (d *Debouncer) Pending() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
