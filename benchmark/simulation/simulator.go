// Package simulation replays key-access sequences against cache
// implementations and measures hit rates.
package simulation

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hoardlib/hoard"
)

// Target is a cache under measurement. An access is read-through: a
// lookup, followed by an insertion on miss.
type Target interface {
	// Name identifies the target in reports.
	Name() string

	// Access performs one read-through access and reports a hit.
	Access(key uint64) bool
}

// HoardTarget wraps a hoard cache as a simulation target.
type HoardTarget struct {
	name  string
	cache *hoard.Cache[uint64, uint64]
}

// Compile-time check that HoardTarget implements Target.
var _ Target = (*HoardTarget)(nil)

// NewHoardTarget creates a target backed by a hoard cache with the
// given policy and capacity.
func NewHoardTarget(policy hoard.Policy, capacity int) (*HoardTarget, error) {
	cache, err := hoard.New[uint64, uint64](capacity, policy)
	if err != nil {
		return nil, err
	}
	return &HoardTarget{
		name:  "hoard-" + policy.String(),
		cache: cache,
	}, nil
}

func (t *HoardTarget) Name() string { return t.name }

func (t *HoardTarget) Access(key uint64) bool {
	if _, ok := t.cache.Get(key); ok {
		return true
	}
	t.cache.Put(key, key)
	return false
}

// BaselineLRU wraps hashicorp/golang-lru as a reference point for the
// hoard LRU policy.
type BaselineLRU struct {
	cache *lru.Cache[uint64, uint64]
}

// Compile-time check that BaselineLRU implements Target.
var _ Target = (*BaselineLRU)(nil)

// NewBaselineLRU creates a baseline target with the given capacity.
func NewBaselineLRU(capacity int) (*BaselineLRU, error) {
	cache, err := lru.New[uint64, uint64](capacity)
	if err != nil {
		return nil, err
	}
	return &BaselineLRU{cache: cache}, nil
}

func (t *BaselineLRU) Name() string { return "baseline-lru" }

func (t *BaselineLRU) Access(key uint64) bool {
	if _, ok := t.cache.Get(key); ok {
		return true
	}
	t.cache.Add(key, key)
	return false
}

// Result contains the measurements from replaying one sequence against
// one target.
type Result struct {
	TargetName string
	Hits       int
	Misses     int

	// SegmentHitRates holds the hit rate of each fixed-size slice of
	// the sequence, for statistical comparison across targets.
	SegmentHitRates []float64
}

// HitRate returns the overall hit rate as a percentage.
func (r *Result) HitRate() float64 {
	total := r.Hits + r.Misses
	if total == 0 {
		return 0
	}
	return float64(r.Hits) / float64(total) * 100
}

// Replay runs the key sequence against the target, recording a hit rate
// sample for every segmentSize accesses. A trailing partial segment is
// included when it is at least half full.
func Replay(target Target, keys []uint64, segmentSize int) *Result {
	if segmentSize <= 0 {
		segmentSize = 1000
	}

	result := &Result{TargetName: target.Name()}

	segHits, segTotal := 0, 0
	for _, key := range keys {
		if target.Access(key) {
			result.Hits++
			segHits++
		} else {
			result.Misses++
		}
		segTotal++

		if segTotal == segmentSize {
			result.SegmentHitRates = append(result.SegmentHitRates, float64(segHits)/float64(segTotal)*100)
			segHits, segTotal = 0, 0
		}
	}
	if segTotal >= segmentSize/2 && segTotal > 0 {
		result.SegmentHitRates = append(result.SegmentHitRates, float64(segHits)/float64(segTotal)*100)
	}

	return result
}
