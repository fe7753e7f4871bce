// Package workload generates synthetic key-access patterns for
// exercising cache eviction policies.
package workload

import "math/rand"

// Generator produces a deterministic sequence of key accesses over a
// fixed key universe. Generators with the same seed produce the same
// sequence.
type Generator interface {
	// Name identifies the pattern in reports.
	Name() string

	// Keys returns the next n key accesses.
	Keys(n int) []uint64
}

// Uniform draws keys uniformly from the universe. It has no locality at
// all, so every policy should perform the same within noise.
type Uniform struct {
	rng      *rand.Rand
	universe uint64
}

// NewUniform creates a uniform generator over [0, universe).
func NewUniform(universe uint64, seed int64) *Uniform {
	return &Uniform{
		rng:      rand.New(rand.NewSource(seed)),
		universe: universe,
	}
}

func (u *Uniform) Name() string { return "uniform" }

func (u *Uniform) Keys(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = u.rng.Uint64() % u.universe
	}
	return keys
}

// Zipf draws keys from a Zipf distribution: a few keys dominate the
// traffic. Frequency-aware policies should shine here.
type Zipf struct {
	zipf *rand.Zipf
}

// NewZipf creates a Zipf generator over [0, universe) with exponent s
// (must be > 1).
func NewZipf(universe uint64, s float64, seed int64) *Zipf {
	rng := rand.New(rand.NewSource(seed))
	return &Zipf{
		zipf: rand.NewZipf(rng, s, 1, universe-1),
	}
}

func (z *Zipf) Name() string { return "zipf" }

func (z *Zipf) Keys(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = z.zipf.Uint64()
	}
	return keys
}

// Loop cycles through the universe in order, the classic worst case for
// LRU when the universe exceeds the cache capacity.
type Loop struct {
	universe uint64
	next     uint64
}

// NewLoop creates a sequential looping generator over [0, universe).
func NewLoop(universe uint64) *Loop {
	return &Loop{universe: universe}
}

func (l *Loop) Name() string { return "loop" }

func (l *Loop) Keys(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = l.next
		l.next = (l.next + 1) % l.universe
	}
	return keys
}

// Hotspot sends hotProb of the traffic to the first hotFraction of the
// universe and spreads the rest uniformly.
type Hotspot struct {
	rng         *rand.Rand
	universe    uint64
	hotKeys     uint64
	hotProb     float64
}

// NewHotspot creates a hotspot generator. hotFraction and hotProb are
// clamped to (0, 1].
func NewHotspot(universe uint64, hotFraction, hotProb float64, seed int64) *Hotspot {
	hotKeys := uint64(float64(universe) * hotFraction)
	if hotKeys == 0 {
		hotKeys = 1
	}
	return &Hotspot{
		rng:      rand.New(rand.NewSource(seed)),
		universe: universe,
		hotKeys:  hotKeys,
		hotProb:  hotProb,
	}
}

func (h *Hotspot) Name() string { return "hotspot" }

func (h *Hotspot) Keys(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		if h.hotKeys >= h.universe || h.rng.Float64() < h.hotProb {
			keys[i] = h.rng.Uint64() % h.hotKeys
		} else {
			keys[i] = h.hotKeys + h.rng.Uint64()%(h.universe-h.hotKeys)
		}
	}
	return keys
}
