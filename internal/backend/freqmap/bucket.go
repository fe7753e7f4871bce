package freqmap

// entry is a key/value pair doubly linked with the other entries that
// share its access frequency. The set of equally-frequent entries forms
// the entry's bucket.
type entry[K comparable, V any] struct {
	key   K
	value V

	bucket *bucket[K, V]
	prev   *entry[K, V]
	next   *entry[K, V]
}

// bucket holds all entries with one access frequency. Buckets are
// doubly linked in strictly increasing frequency order, head to tail.
// A bucket never stays in the chain once empty.
//
// Grouping equally-frequent entries makes recording an access constant
// time: without buckets, promoting one entry among thousands sharing
// its count would mean walking past all of them to find its new place.
type bucket[K comparable, V any] struct {
	frequency uint32

	prev *bucket[K, V]
	next *bucket[K, V]

	first *entry[K, V]
}

// insertBefore links b into the chain immediately before next.
func (b *bucket[K, V]) insertBefore(next *bucket[K, V]) {
	b.prev = next.prev
	b.next = next
	if next.prev != nil {
		next.prev.next = b
	}
	next.prev = b
}

// insertAfter links b into the chain immediately after prev.
func (b *bucket[K, V]) insertAfter(prev *bucket[K, V]) {
	b.prev = prev
	b.next = prev.next
	if prev.next != nil {
		prev.next.prev = b
	}
	prev.next = b
}

// add head-inserts e into b. e must not belong to any bucket.
func (b *bucket[K, V]) add(e *entry[K, V]) {
	if e.bucket != nil {
		panic("freqmap: entry already belongs to a bucket")
	}
	e.bucket = b
	e.prev = nil
	e.next = b.first
	if b.first != nil {
		b.first.prev = e
	}
	b.first = e
}
