// Package orderedmap implements the access-order and insertion-order
// bounded stores behind the LRU and OldestInsertion policies.
//
// A single implementation covers both: an index map over an intrusive
// doubly-linked list running from head (oldest, next eviction victim)
// to tail (newest), parameterized by a touch-on-access flag. With the
// flag set, every Get and every Put relocates the touched entry to the
// tail; without it, the list records pure insertion order.
package orderedmap

import "github.com/hoardlib/hoard/internal/backend"

// Compile-time check that Map implements backend.Backend.
var _ backend.Backend[int, int] = (*Map[int, int])(nil)

// entry is a node of the ordering list.
type entry[K comparable, V any] struct {
	key   K
	value V
	prev  *entry[K, V]
	next  *entry[K, V]
}

// Map is a bounded ordered map. The zero value is not usable; call New.
type Map[K comparable, V any] struct {
	maximumSize   int
	touchOnAccess bool

	index map[K]*entry[K, V]
	head  *entry[K, V]
	tail  *entry[K, V]

	version uint64
}

// New creates an empty Map with the given capacity. touchOnAccess
// selects least-recently-used order; false keeps insertion order.
func New[K comparable, V any](maximumSize int, touchOnAccess bool) *Map[K, V] {
	return &Map[K, V]{
		maximumSize:   maximumSize,
		touchOnAccess: touchOnAccess,
		index:         make(map[K]*entry[K, V]),
	}
}

// Put inserts or replaces the value for key. Replacement relocates the
// entry to the tail only in touch-on-access mode; in insertion-order
// mode the position is untouched.
func (m *Map[K, V]) Put(key K, value V) (prev V, replaced, evicted bool) {
	if e, ok := m.index[key]; ok {
		prev = e.value
		e.value = value
		if m.touchOnAccess && e != m.tail {
			m.unlink(e)
			m.pushTail(e)
			m.version++
		}
		return prev, true, false
	}

	if len(m.index) == m.maximumSize {
		m.evict()
		evicted = true
	}

	e := &entry[K, V]{key: key, value: value}
	m.pushTail(e)
	m.index[key] = e
	m.version++
	return prev, false, evicted
}

// Get returns the value for key, relocating the entry to the tail in
// touch-on-access mode.
func (m *Map[K, V]) Get(key K) (V, bool) {
	e, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	if m.touchOnAccess && e != m.tail {
		m.unlink(e)
		m.pushTail(e)
		m.version++
	}
	return e.value, true
}

// Contains reports presence without touching the order.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Len returns the current number of entries.
func (m *Map[K, V]) Len() int { return len(m.index) }

// Cap returns the maximum number of entries.
func (m *Map[K, V]) Cap() int { return m.maximumSize }

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.index = make(map[K]*entry[K, V])
	m.head = nil
	m.tail = nil
	m.version++
}

// Version returns the structural modification counter.
func (m *Map[K, V]) Version() uint64 { return m.version }

// Cursor returns a cursor from head (oldest) to tail (newest).
func (m *Map[K, V]) Cursor() backend.Cursor[K, V] {
	return &cursor[K, V]{next: m.head}
}

// evict removes the entry at the oldest end of the order.
func (m *Map[K, V]) evict() {
	e := m.head
	if e == nil {
		panic("orderedmap: evict on empty store")
	}
	m.unlink(e)
	delete(m.index, e.key)
}

func (m *Map[K, V]) pushTail(e *entry[K, V]) {
	e.prev = m.tail
	e.next = nil
	if m.tail != nil {
		m.tail.next = e
	} else {
		m.head = e
	}
	m.tail = e
}

func (m *Map[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		m.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		m.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}

type cursor[K comparable, V any] struct {
	next *entry[K, V]
}

func (c *cursor[K, V]) Next() (K, V, bool) {
	if c.next == nil {
		var k K
		var v V
		return k, v, false
	}
	e := c.next
	c.next = e.next
	return e.key, e.value, true
}
