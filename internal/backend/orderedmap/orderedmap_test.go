package orderedmap

import "testing"

func listKeys(m *Map[string, int]) []string {
	var keys []string
	for e := m.head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

func assertOrder(t *testing.T, m *Map[string, int], want ...string) {
	t.Helper()
	got := listKeys(m)
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestPut_NewKeysAppendAtTail(t *testing.T) {
	m := New[string, int](4, false)
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)
	assertOrder(t, m, "a", "b", "c")

	if m.tail.key != "c" || m.head.key != "a" {
		t.Errorf("head = %q, tail = %q, want a and c", m.head.key, m.tail.key)
	}
}

func TestPut_EvictsHeadWhenFull(t *testing.T) {
	m := New[string, int](2, false)
	m.Put("a", 1)
	m.Put("b", 2)

	_, _, evicted := m.Put("c", 3)
	if !evicted {
		t.Error("Put at capacity should report an eviction")
	}
	if m.Contains("a") {
		t.Error("a (head) should have been evicted")
	}
	assertOrder(t, m, "b", "c")
}

func TestGet_TouchMovesToTail(t *testing.T) {
	m := New[string, int](4, true)
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	m.Get("a")
	assertOrder(t, m, "b", "c", "a")
}

func TestGet_NoTouchKeepsOrder(t *testing.T) {
	m := New[string, int](4, false)
	m.Put("a", 1)
	m.Put("b", 2)

	m.Get("a")
	assertOrder(t, m, "a", "b")
}

func TestPut_ReplaceTouchesOnlyInAccessMode(t *testing.T) {
	lru := New[string, int](4, true)
	lru.Put("a", 1)
	lru.Put("b", 2)
	lru.Put("a", 10)
	assertOrder(t, lru, "b", "a")

	fifo := New[string, int](4, false)
	fifo.Put("a", 1)
	fifo.Put("b", 2)
	fifo.Put("a", 10)
	assertOrder(t, fifo, "a", "b")
	if v, _ := fifo.Get("a"); v != 10 {
		t.Errorf("a = %d, want 10", v)
	}
}

func TestVersion_BumpsOnStructuralChangesOnly(t *testing.T) {
	m := New[string, int](2, true)

	v0 := m.Version()
	m.Put("a", 1)
	if m.Version() == v0 {
		t.Error("insert should bump the version")
	}

	v1 := m.Version()
	m.Get("missing")
	if m.Version() != v1 {
		t.Error("a miss should not bump the version")
	}

	m.Get("a") // already at the tail: no relocation
	if m.Version() != v1 {
		t.Error("touching the tail entry should not bump the version")
	}

	m.Put("b", 2)
	v2 := m.Version()
	m.Get("a") // relocates
	if m.Version() == v2 {
		t.Error("a relocating Get should bump the version")
	}
}

func TestClear(t *testing.T) {
	m := New[string, int](4, true)
	m.Put("a", 1)
	m.Put("b", 2)

	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	if m.head != nil || m.tail != nil {
		t.Error("head and tail should be nil after Clear")
	}

	m.Put("c", 3)
	assertOrder(t, m, "c")
}

func TestCursor_WalksHeadToTail(t *testing.T) {
	m := New[string, int](4, true)
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)
	m.Get("b")

	cur := m.Cursor()
	var keys []string
	for {
		k, _, ok := cur.Next()
		if !ok {
			break
		}
		keys = append(keys, k)
	}

	want := []string{"a", "c", "b"}
	if len(keys) != len(want) {
		t.Fatalf("cursor keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("cursor keys = %v, want %v", keys, want)
		}
	}
}

func TestCursor_EmptyMap(t *testing.T) {
	m := New[string, int](4, false)
	if _, _, ok := m.Cursor().Next(); ok {
		t.Error("Next() = true on empty map")
	}
}
