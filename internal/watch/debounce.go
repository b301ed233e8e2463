// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package watch

import (
	"sync"
	"time"
)

// debouncer coalesces rapid repeated change events per path. Each path
// moves through idle -> pending -> firing -> idle: the first event arms a
// timer for the quiescence interval, a newer event supersedes the pending
// one by resetting the timer, and only after a full quiet interval does
// the path fire.
type debouncer struct {
	quiescence time.Duration
	fire       func(path string)

	mu      sync.Mutex
	pending map[string]*time.Timer
}

func newDebouncer(quiescence time.Duration, fire func(path string)) *debouncer {
	return &debouncer{
		quiescence: quiescence,
		fire:       fire,
		pending:    make(map[string]*time.Timer),
	}
}

// observe records a change event for path, arming or resetting its timer.
func (d *debouncer) observe(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.pending[path]; ok {
		t.Reset(d.quiescence)
		return
	}
	d.pending[path] = time.AfterFunc(d.quiescence, func() {
		d.mu.Lock()
		delete(d.pending, path)
		d.mu.Unlock()
		d.fire(path)
	})
}

// stop cancels every pending timer.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for path, t := range d.pending {
		t.Stop()
		delete(d.pending, path)
	}
}
