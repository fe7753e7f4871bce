package hoard

import "fmt"

// Policy selects which entry is evicted when a new key arrives at
// capacity.
type Policy int

const (
	// LRU evicts the least recently used entry. Both Get and Put count
	// as a use.
	LRU Policy = iota

	// LFU evicts an entry from the group with the smallest recorded
	// access count. A new entry starts with a count of one, so it always
	// gets a chance to prove itself before being displaced.
	LFU

	// OldestInsertion evicts the entry inserted longest ago. Reads and
	// value replacements do not affect the order.
	OldestInsertion
)

// String returns the canonical lower-case name of the policy, as
// accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case LRU:
		return "lru"
	case LFU:
		return "lfu"
	case OldestInsertion:
		return "oldest-insertion"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name to a Policy. It accepts the names
// produced by Policy.String. It returns an error wrapping
// ErrInvalidConfiguration for unknown names.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "lru":
		return LRU, nil
	case "lfu":
		return LFU, nil
	case "oldest-insertion":
		return OldestInsertion, nil
	default:
		return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidConfiguration, name)
	}
}
