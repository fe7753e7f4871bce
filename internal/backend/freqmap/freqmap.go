// Package freqmap implements the frequency-ordered bounded store behind
// the LFU policy.
//
// Entries are grouped into buckets of equal access frequency; the
// buckets form a doubly-linked chain in strictly increasing frequency
// order. Eviction takes the physically-first entry of the head bucket.
// Because both new entries and entries freshly demoted into a bucket
// are head-inserted, that victim is the most recently touched member of
// the lowest-frequency group; this matches the long-observed behavior
// of the structure and is kept deliberately.
package freqmap

import "github.com/hoardlib/hoard/internal/backend"

// Compile-time check that Map implements backend.Backend.
var _ backend.Backend[int, int] = (*Map[int, int])(nil)

// Map is a bounded map evicting from its least-frequently-used group.
// The zero value is not usable; call New.
type Map[K comparable, V any] struct {
	maximumSize int

	// index is a non-owning lookup into the entries held by the bucket
	// chain.
	index map[K]*entry[K, V]

	// head is the lowest-frequency bucket, or nil when empty.
	head *bucket[K, V]

	version uint64
}

// New creates an empty Map with the given capacity.
func New[K comparable, V any](maximumSize int) *Map[K, V] {
	return &Map[K, V]{
		maximumSize: maximumSize,
		index:       make(map[K]*entry[K, V]),
	}
}

// Put inserts or replaces the value for key. Replacing an existing key
// updates the value in place: frequency and position are untouched.
// A new key starts at frequency 1, evicting first if the store is full.
func (m *Map[K, V]) Put(key K, value V) (prev V, replaced, evicted bool) {
	if e, ok := m.index[key]; ok {
		prev = e.value
		e.value = value
		return prev, true, false
	}

	if len(m.index) == m.maximumSize {
		m.evict()
		evicted = true
	}

	e := &entry[K, V]{key: key, value: value}
	if m.head == nil || m.head.frequency > 1 {
		b := &bucket[K, V]{frequency: 1}
		if m.head != nil {
			b.insertBefore(m.head)
		}
		m.head = b
	}
	m.head.add(e)
	m.index[key] = e
	m.version++
	return prev, false, evicted
}

// Get returns the value for key, incrementing its frequency by one and
// relocating it to the matching bucket.
func (m *Map[K, V]) Get(key K) (V, bool) {
	e, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	m.recordAccess(e)
	return e.value, true
}

// Contains reports presence without recording an access.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Len returns the current number of entries.
func (m *Map[K, V]) Len() int { return len(m.index) }

// Cap returns the maximum number of entries.
func (m *Map[K, V]) Cap() int { return m.maximumSize }

// Clear removes all entries and drops the whole bucket chain.
func (m *Map[K, V]) Clear() {
	m.index = make(map[K]*entry[K, V])
	m.head = nil
	m.version++
}

// Version returns the structural modification counter.
func (m *Map[K, V]) Version() uint64 { return m.version }

// Cursor returns a cursor walking the bucket chain head to tail and
// each bucket's entries in linked order: eldest frequency group first.
func (m *Map[K, V]) Cursor() backend.Cursor[K, V] {
	c := &cursor[K, V]{}
	if m.head != nil {
		c.bucket = m.head
		c.entry = m.head.first
	}
	return c
}

// recordAccess moves e to the bucket holding frequency+1 entries.
//
// The next-bucket check must come before the sole-member fast path:
// when e is alone in its bucket and the successor already holds
// frequency+1, bumping the bucket in place would leave two buckets with
// the same frequency in the chain.
func (m *Map[K, V]) recordAccess(e *entry[K, V]) {
	b := e.bucket
	switch {
	case b.next != nil && b.next.frequency == b.frequency+1:
		next := b.next
		m.detach(e)
		next.add(e)
	case b.first == e && e.next == nil:
		// Sole member: promote the whole bucket in place.
		b.frequency++
	default:
		nb := &bucket[K, V]{frequency: b.frequency + 1}
		nb.insertAfter(b)
		m.detach(e)
		nb.add(e)
	}
	m.version++
}

// evict removes the physically-first entry of the head bucket.
func (m *Map[K, V]) evict() {
	if m.head == nil || m.head.first == nil {
		panic("freqmap: evict on empty store")
	}
	eldest := m.head.first
	key := eldest.key
	m.detach(eldest)
	delete(m.index, key)
}

// detach removes e from its bucket and, if the bucket empties, unlinks
// the bucket from the chain, advancing head when the head bucket goes.
func (m *Map[K, V]) detach(e *entry[K, V]) {
	b := e.bucket
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		b.first = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	e.prev = nil
	e.next = nil
	e.bucket = nil

	if b.first == nil {
		if b.prev != nil {
			b.prev.next = b.next
		} else {
			m.head = b.next
		}
		if b.next != nil {
			b.next.prev = b.prev
		}
		b.prev = nil
		b.next = nil
	}
}

type cursor[K comparable, V any] struct {
	bucket *bucket[K, V]
	entry  *entry[K, V]
}

func (c *cursor[K, V]) Next() (K, V, bool) {
	if c.entry == nil {
		var k K
		var v V
		return k, v, false
	}
	e := c.entry
	switch {
	case e.next != nil:
		c.entry = e.next
	case c.bucket.next != nil:
		c.bucket = c.bucket.next
		c.entry = c.bucket.first
	default:
		c.bucket = nil
		c.entry = nil
	}
	return e.key, e.value, true
}
