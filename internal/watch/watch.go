// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch monitors an input directory for new or changed chat logs
// and hands quiesced paths to a conversion handler. Change bursts for the
// same path are debounced, and handler calls are serialized through one
// worker so no two conversions of the same input race.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultQuiescence is the minimum quiet interval before a changed file
// is processed.
const DefaultQuiescence = 2 * time.Second

// Handler processes one quiesced file path. It is invoked from a single
// goroutine, never concurrently.
type Handler func(path string)

// Watcher observes one directory using OS-level notifications.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce *debouncer
	work     chan string
	handle   Handler
}

// New creates a Watcher for dir. A quiescence of zero selects
// DefaultQuiescence.
func New(dir string, quiescence time.Duration, handle Handler) (*Watcher, error) {
	if quiescence <= 0 {
		quiescence = DefaultQuiescence
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:    fsw,
		work:   make(chan string, 64),
		handle: handle,
	}
	w.debounce = newDebouncer(quiescence, func(path string) {
		select {
		case w.work <- path:
		default:
			// Queue full; the path will come around again on its next event.
		}
	})
	return w, nil
}

// Run processes filesystem events until ctx is cancelled. Create and
// write events feed the debouncer; quiesced paths are converted one at a
// time by the worker goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	go w.worker(ctx)

	for {
		select {
		case <-ctx.Done():
			w.debounce.stop()
			return ctx.Err()
		case evt, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if evt.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.debounce.observe(evt.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

func (w *Watcher) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case path := <-w.work:
			w.handle(path)
		}
	}
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	w.debounce.stop()
	return w.fsw.Close()
}
