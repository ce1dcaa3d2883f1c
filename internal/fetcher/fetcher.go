// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aora Client Authors

// Package fetcher adapts a zero-argument facade query into UI-observable
// state: data, loading flag, last error, and a manual refetch for
// pull-to-refresh flows. Each Fetcher instance is independent and safe for
// concurrent use.
package fetcher

import (
	"context"
	"sync"
)

// FetchFunc produces one result for the fetcher to hold.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// NotifyFunc is the UI-level notification path invoked on fetch failures.
type NotifyFunc func(err error)

// State is a consistent read of a fetcher's observable state.
type State[T any] struct {
	// Data is the last successfully fetched value. It keeps its previous
	// value when a fetch fails.
	Data T

	// Loading is true while at least one fetch is in flight.
	Loading bool

	// Err is the error of the most recent completed fetch, nil after a
	// success.
	Err error
}

// Fetcher wraps one fetch function with loading/error bookkeeping. Fetch
// errors are absorbed into state (and reported through the notify callback
// when one is set); they never propagate as panics.
type Fetcher[T any] struct {
	fetch  FetchFunc[T]
	notify NotifyFunc

	loadOnce sync.Once

	mu       sync.Mutex
	data     T
	err      error
	seq      uint64
	applied  uint64
	inFlight int
}

// New constructs a Fetcher over fetch. notify may be nil.
func New[T any](fetch FetchFunc[T], notify NotifyFunc) *Fetcher[T] {
	return &Fetcher[T]{fetch: fetch, notify: notify}
}

// Load performs the initial fetch. It runs at most once per fetcher; later
// calls are no-ops so callers can invoke it unconditionally on every render.
func (f *Fetcher[T]) Load(ctx context.Context) {
	f.loadOnce.Do(func() {
		f.do(ctx)
	})
}

// Refetch performs a manual refresh. Overlapping calls are allowed: each
// completion is applied only if no later-issued request has completed
// before it, so a stale response never overwrites a newer one.
func (f *Fetcher[T]) Refetch(ctx context.Context) {
	f.do(ctx)
}

// State returns the current observable state.
func (f *Fetcher[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State[T]{Data: f.data, Loading: f.inFlight > 0, Err: f.err}
}

func (f *Fetcher[T]) do(ctx context.Context) {
	f.mu.Lock()
	f.seq++
	id := f.seq
	f.inFlight++
	f.mu.Unlock()

	data, err := f.fetch(ctx)

	f.mu.Lock()
	f.inFlight--
	if id > f.applied {
		f.applied = id
		if err != nil {
			f.err = err
		} else {
			f.data = data
			f.err = nil
		}
	}
	f.mu.Unlock()

	if err != nil && f.notify != nil {
		f.notify(err)
	}
}
