// Package hoard provides a bounded in-memory key-value cache with a
// pluggable eviction policy.
//
// A cache holds at most a fixed number of entries. When a new key is
// inserted at capacity, exactly one entry is evicted, chosen by the
// policy selected at construction time:
//
//   - LRU evicts the least recently read or written entry.
//   - LFU evicts an entry from the least frequently accessed group.
//   - OldestInsertion evicts the entry inserted longest ago, regardless
//     of how often it has been read.
//
// Example usage:
//
//	cache, err := hoard.New[string, string](128, hoard.LRU)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cache.Put("alpha", "a")
//	if v, ok := cache.Get("alpha"); ok {
//	    fmt.Println(v)
//	}
//
// A Cache is safe for concurrent use by multiple goroutines; every
// operation is serialized under one cache-wide mutex.
package hoard

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/hoardlib/hoard/internal/backend"
	"github.com/hoardlib/hoard/internal/backend/freqmap"
	"github.com/hoardlib/hoard/internal/backend/orderedmap"
	"github.com/hoardlib/hoard/internal/stats"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrInvalidConfiguration indicates a non-positive maximum size or an
	// unrecognized policy was passed to New.
	ErrInvalidConfiguration = errors.New("hoard: invalid configuration")

	// ErrConcurrentModification indicates a live iterator observed a
	// structural change made by another operation. The cache itself
	// remains consistent; only the traversal is invalidated.
	ErrConcurrentModification = errors.New("hoard: concurrent modification during iteration")
)

// Cache is a bounded associative store from K to V.
// A Cache is safe for concurrent use by multiple goroutines.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	backend backend.Backend[K, V]
	policy  Policy
	stats   stats.Collector
	logger  *zap.Logger
}

// New creates a cache holding at most maximumSize entries, evicting
// according to the given policy. It returns an error wrapping
// ErrInvalidConfiguration if maximumSize is not positive or the policy
// is unrecognized.
func New[K comparable, V any](maximumSize int, policy Policy, opts ...Option) (*Cache[K, V], error) {
	if maximumSize <= 0 {
		return nil, fmt.Errorf("%w: maximum size must be positive, got %d", ErrInvalidConfiguration, maximumSize)
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	var b backend.Backend[K, V]
	switch policy {
	case LRU:
		b = orderedmap.New[K, V](maximumSize, true)
	case OldestInsertion:
		b = orderedmap.New[K, V](maximumSize, false)
	case LFU:
		b = freqmap.New[K, V](maximumSize)
	default:
		return nil, fmt.Errorf("%w: unrecognized policy %d", ErrInvalidConfiguration, int(policy))
	}

	c := &Cache[K, V]{
		backend: b,
		policy:  policy,
		stats:   cfg.stats,
		logger:  cfg.logger,
	}

	c.logger.Debug("cache initialized",
		zap.Int("maximumSize", maximumSize),
		zap.Stringer("policy", policy),
	)

	return c, nil
}

// Put associates value with key, inserting or replacing. The access is
// recorded under the active policy. If key is new and the cache is at
// capacity, one entry is evicted first. It returns the previous value
// and true if the key already existed.
//
// Replacing an existing key's value never resets its recorded history:
// for LFU the frequency is untouched, for OldestInsertion the position
// is untouched. For LRU a replacing Put counts as a fresh use.
func (c *Cache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, replaced, evicted := c.backend.Put(key, value)

	c.stats.IncCounter(stats.MetricPuts, 1)
	if evicted {
		c.stats.IncCounter(stats.MetricEvictions, 1)
	}
	c.stats.SetGauge(stats.MetricSize, int64(c.backend.Len()))

	return prev, replaced
}

// Get returns the value associated with key and records an access under
// the active policy. It returns the zero value and false if the key is
// absent; a miss never mutates the cache.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.backend.Get(key)
	if ok {
		c.stats.IncCounter(stats.MetricHits, 1)
	} else {
		c.stats.IncCounter(stats.MetricMisses, 1)
	}
	return v, ok
}

// Contains reports whether key is present. Unlike Get it records no
// access and never affects eviction order.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.backend.Contains(key)
}

// Len returns the current number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.backend.Len()
}

// Cap returns the maximum number of entries the cache can hold.
func (c *Cache[K, V]) Cap() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.backend.Cap()
}

// Policy returns the eviction policy selected at construction.
func (c *Cache[K, V]) Policy() Policy {
	return c.policy
}

// Values returns an iterator over the cached values, ordered from the
// eldest entry (the next eviction victim) to the newest. The iterator is
// a live view: a structural modification to the cache invalidates it,
// and its Err method reports ErrConcurrentModification.
func (c *Cache[K, V]) Values() *Iterator[K, V] {
	return c.newIterator()
}

// Keys returns an iterator over the cached keys, in the same
// eldest-to-newest order as Values.
func (c *Cache[K, V]) Keys() *Iterator[K, V] {
	return c.newIterator()
}

// Dispose clears all entries. The cache remains usable afterwards; this
// is scoped-resource cleanup, not teardown.
func (c *Cache[K, V]) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.backend.Clear()
	c.stats.SetGauge(stats.MetricSize, 0)
	c.logger.Debug("cache disposed")
}

func (c *Cache[K, V]) newIterator() *Iterator[K, V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &Iterator[K, V]{
		cache:   c,
		cursor:  c.backend.Cursor(),
		version: c.backend.Version(),
	}
}
