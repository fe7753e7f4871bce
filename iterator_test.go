package hoard

import (
	"errors"
	"testing"
)

func collectValues[K comparable, V any](t *testing.T, c *Cache[K, V]) []V {
	t.Helper()
	var values []V
	it := c.Values()
	for it.Next() {
		values = append(values, it.Value())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("iteration error = %v", err)
	}
	return values
}

func TestIterator_LRUOrder(t *testing.T) {
	c := mustCache[string, int](t, 3, LRU)
	c.Put("A", 1)
	c.Put("B", 2)
	c.Put("C", 3)
	c.Get("A") // A is now newest; B is the next victim.

	want := []string{"B", "C", "A"}
	got := keysOf(t, c)
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIterator_InsertionOrder(t *testing.T) {
	c := mustCache[string, int](t, 3, OldestInsertion)
	c.Put("A", 1)
	c.Put("B", 2)
	c.Put("C", 3)
	c.Get("C") // no effect on order

	want := []int{1, 2, 3}
	got := collectValues(t, c)
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestIterator_LFUOrderByFrequencyGroup(t *testing.T) {
	c := mustCache[string, int](t, 3, LFU)
	c.Put("A", 1)
	c.Put("B", 2)
	c.Put("C", 3)
	c.Get("B")
	c.Get("B")
	c.Get("A")

	// Frequency groups: C=1, A=2, B=3. The head group comes first.
	got := keysOf(t, c)
	want := []string{"C", "A", "B"}
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIterator_FirstEntryIsNextVictim(t *testing.T) {
	for _, policy := range []Policy{LRU, LFU, OldestInsertion} {
		t.Run(policy.String(), func(t *testing.T) {
			c := mustCache[int, int](t, 3, policy)
			c.Put(1, 1)
			c.Put(2, 2)
			c.Put(3, 3)
			c.Get(1)
			c.Get(2)

			it := c.Keys()
			if !it.Next() {
				t.Fatal("Next() = false on non-empty cache")
			}
			victim := it.Key()

			c.Put(4, 4) // force one eviction
			if c.Contains(victim) {
				t.Errorf("first iterated key %d was not the eviction victim", victim)
			}
		})
	}
}

func TestIterator_Empty(t *testing.T) {
	c := mustCache[string, int](t, 2, LFU)
	it := c.Values()
	if it.Next() {
		t.Error("Next() = true on empty cache")
	}
	if err := it.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestIterator_ConcurrentModification(t *testing.T) {
	for _, policy := range []Policy{LRU, LFU, OldestInsertion} {
		t.Run(policy.String(), func(t *testing.T) {
			c := mustCache[string, int](t, 4, policy)
			c.Put("A", 1)
			c.Put("B", 2)
			c.Put("C", 3)

			it := c.Values()
			if !it.Next() {
				t.Fatal("Next() = false, want true")
			}

			c.Put("D", 4) // structural change invalidates the traversal

			if it.Next() {
				t.Error("Next() = true after structural modification")
			}
			if !errors.Is(it.Err(), ErrConcurrentModification) {
				t.Errorf("Err() = %v, want ErrConcurrentModification", it.Err())
			}
		})
	}
}

func TestIterator_GetInvalidatesWhenItRelocates(t *testing.T) {
	c := mustCache[string, int](t, 4, LRU)
	c.Put("A", 1)
	c.Put("B", 2)

	it := c.Keys()
	c.Get("A") // relocates A to the tail

	if it.Next() {
		t.Error("Next() = true after access-order relocation")
	}
	if !errors.Is(it.Err(), ErrConcurrentModification) {
		t.Errorf("Err() = %v, want ErrConcurrentModification", it.Err())
	}
}

func TestIterator_ValueReplacementIsNotStructural(t *testing.T) {
	// Replacing a value under OldestInsertion or LFU keeps the entry in
	// place, so an outstanding traversal survives.
	for _, policy := range []Policy{OldestInsertion, LFU} {
		t.Run(policy.String(), func(t *testing.T) {
			c := mustCache[string, int](t, 4, policy)
			c.Put("A", 1)
			c.Put("B", 2)

			it := c.Keys()
			if !it.Next() {
				t.Fatal("Next() = false, want true")
			}
			c.Put("B", 20) // in-place replacement

			if !it.Next() {
				t.Fatalf("Next() = false after value replacement, err = %v", it.Err())
			}
			if err := it.Err(); err != nil {
				t.Errorf("Err() = %v, want nil", err)
			}
		})
	}
}

func TestIterator_DisposeInvalidates(t *testing.T) {
	c := mustCache[string, int](t, 4, LFU)
	c.Put("A", 1)

	it := c.Values()
	c.Dispose()

	if it.Next() {
		t.Error("Next() = true after Dispose")
	}
	if !errors.Is(it.Err(), ErrConcurrentModification) {
		t.Errorf("Err() = %v, want ErrConcurrentModification", it.Err())
	}
}

func TestIterator_Restartable(t *testing.T) {
	c := mustCache[string, int](t, 4, LRU)
	c.Put("A", 1)
	c.Put("B", 2)

	it := c.Keys()
	it.Next()
	c.Put("C", 3) // invalidate the first traversal
	it.Next()
	if !errors.Is(it.Err(), ErrConcurrentModification) {
		t.Fatalf("Err() = %v, want ErrConcurrentModification", it.Err())
	}

	// A fresh iterator sees the whole cache again.
	if got := keysOf(t, c); len(got) != 3 {
		t.Errorf("restarted traversal saw %v, want 3 keys", got)
	}
}
