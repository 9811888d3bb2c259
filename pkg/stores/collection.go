// Package stores implements the data-synchronization layer of the
// granaboard dashboard: one store per domain collection, each owning an
// in-memory snapshot that is fetched from and reconciled against the
// remote API.
//
// Every mutation follows the same discipline: the store issues exactly one
// API call and, when it succeeds, resyncs the whole snapshot with a fresh
// fetch using the last-used filters. Failed mutations leave the snapshot
// untouched and return the error to the caller, so forms can stay open
// for correction.
package stores

import "sync"

// Snapshot is the readable state of a store at one point in time. Items is
// a copy, callers may keep or modify it freely.
type Snapshot[T any] struct {
	Items   []T
	Count   int
	Loading bool
	Err     error
}

// collection holds the cached items of one domain plus the request status.
//
// Fetches are guarded by a monotonically increasing token: the response of
// a fetch is only applied while no newer fetch has been started, so a slow
// stale response can never overwrite a newer one.
type collection[T any] struct {
	mu      sync.Mutex
	items   []T
	count   int
	loading bool
	err     error
	token   uint64
}

func (c *collection[T]) snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)

	return Snapshot[T]{
		Items:   items,
		Count:   c.count,
		Loading: c.loading,
		Err:     c.err,
	}
}

// begin marks the start of a fetch and returns its token.
func (c *collection[T]) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token++
	c.loading = true
	c.err = nil

	return c.token
}

// complete applies the outcome of the fetch identified by token. It reports
// whether the outcome was applied; responses of superseded fetches are
// discarded.
func (c *collection[T]) complete(token uint64, items []T, count int, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.token {
		return false
	}

	c.loading = false
	if err != nil {
		c.err = err
		return true
	}

	c.err = nil
	c.items = items
	c.count = count

	return true
}
