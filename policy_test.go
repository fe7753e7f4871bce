package hoard

import (
	"errors"
	"testing"
)

func TestPolicy_StringRoundTrip(t *testing.T) {
	for _, policy := range []Policy{LRU, LFU, OldestInsertion} {
		parsed, err := ParsePolicy(policy.String())
		if err != nil {
			t.Errorf("ParsePolicy(%q) error = %v", policy.String(), err)
			continue
		}
		if parsed != policy {
			t.Errorf("ParsePolicy(%q) = %v, want %v", policy.String(), parsed, policy)
		}
	}
}

func TestParsePolicy_Unknown(t *testing.T) {
	for _, name := range []string{"", "LRU", "mru", "oldest"} {
		if _, err := ParsePolicy(name); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("ParsePolicy(%q) error = %v, want ErrInvalidConfiguration", name, err)
		}
	}
}
