// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package watch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fireRecorder collects fired paths in a goroutine-safe way.
type fireRecorder struct {
	mu    sync.Mutex
	fired []string
}

func (r *fireRecorder) fire(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fired = append(r.fired, path)
}

func (r *fireRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.fired...)
}

func TestDebouncerCoalescesBursts(t *testing.T) {
	rec := &fireRecorder{}
	d := newDebouncer(50*time.Millisecond, rec.fire)
	defer d.stop()

	for i := 0; i < 10; i++ {
		d.observe("chat.json")
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// A quiet period must not produce extra fires.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, []string{"chat.json"}, rec.snapshot())
}

func TestDebouncerNewerEventSupersedes(t *testing.T) {
	rec := &fireRecorder{}
	d := newDebouncer(100*time.Millisecond, rec.fire)
	defer d.stop()

	d.observe("chat.json")
	time.Sleep(60 * time.Millisecond)
	// Still within the quiescence window: the timer resets, nothing fires.
	d.observe("chat.json")
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDebouncerTracksPathsIndependently(t *testing.T) {
	rec := &fireRecorder{}
	d := newDebouncer(30*time.Millisecond, rec.fire)
	defer d.stop()

	d.observe("a.json")
	d.observe("b.json")

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, 2*time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{"a.json", "b.json"}, rec.snapshot())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	rec := &fireRecorder{}
	d := newDebouncer(50*time.Millisecond, rec.fire)

	d.observe("chat.json")
	d.stop()

	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}
