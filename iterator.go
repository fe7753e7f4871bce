package hoard

import "github.com/hoardlib/hoard/internal/backend"

// Iterator walks the cache from the eldest entry (the next eviction
// victim) to the newest, in the order defined by the active policy at
// the time of each step. It is a live view, not a snapshot: if the
// cache's structure changes between steps, Next returns false and Err
// returns ErrConcurrentModification.
//
// Usage follows the scanner idiom:
//
//	it := cache.Values()
//	for it.Next() {
//	    use(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil {
//	    // traversal raced a mutation
//	}
//
// Each call to Values or Keys returns a fresh iterator, so a failed
// traversal can simply be restarted.
type Iterator[K comparable, V any] struct {
	cache   *Cache[K, V]
	cursor  backend.Cursor[K, V]
	version uint64

	key   K
	value V
	err   error
}

// Next advances to the next entry. It returns false when the traversal
// is exhausted or has been invalidated; check Err to distinguish.
func (it *Iterator[K, V]) Next() bool {
	it.cache.mu.Lock()
	defer it.cache.mu.Unlock()

	if it.err != nil {
		return false
	}
	if it.cache.backend.Version() != it.version {
		it.err = ErrConcurrentModification
		return false
	}

	k, v, ok := it.cursor.Next()
	if !ok {
		return false
	}
	it.key, it.value = k, v
	return true
}

// Key returns the key of the current entry. It is only valid after a
// call to Next that returned true.
func (it *Iterator[K, V]) Key() K { return it.key }

// Value returns the value of the current entry. It is only valid after
// a call to Next that returned true.
func (it *Iterator[K, V]) Value() V { return it.value }

// Err returns ErrConcurrentModification if the traversal observed a
// structural change, or nil if it ended normally or is still running.
func (it *Iterator[K, V]) Err() error { return it.err }
