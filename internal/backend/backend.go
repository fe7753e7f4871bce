// Package backend defines the bounded associative store contract shared
// by the eviction policy implementations.
package backend

// Backend is a bounded associative store. Implementations decide which
// entry to displace when a new key arrives at capacity, and maintain
// whatever internal ordering their policy requires. Backends are not
// safe for concurrent use; the facade serializes all calls.
type Backend[K comparable, V any] interface {
	// Put inserts or replaces the value for key, recording an access per
	// the backend's policy. If key is new and the store is full, exactly
	// one entry is evicted first and evicted is true. prev and replaced
	// report the previous value, if any.
	Put(key K, value V) (prev V, replaced, evicted bool)

	// Get returns the value for key and records an access per the
	// backend's policy. A miss never mutates the store.
	Get(key K) (V, bool)

	// Contains reports presence without recording an access.
	Contains(key K) bool

	// Len returns the current number of entries.
	Len() int

	// Cap returns the maximum number of entries.
	Cap() int

	// Clear removes all entries. The store remains usable.
	Clear()

	// Version returns a counter that increments on every structural
	// change: insertion, eviction, clear, and any access-recording
	// relocation. Live iterators compare versions between steps to
	// detect concurrent modification.
	Version() uint64

	// Cursor returns a cursor positioned before the eldest entry (the
	// next eviction victim). Stepping a cursor after a structural change
	// is the caller's error; guard each step with Version.
	Cursor() Cursor[K, V]
}

// Cursor steps through a backend's entries from eldest to newest.
type Cursor[K comparable, V any] interface {
	// Next returns the next entry, or ok == false when exhausted.
	Next() (key K, value V, ok bool)
}
