package automaton

import (
	"errors"
	"testing"
)

func TestRuleDecodeExhaustive(t *testing.T) {
	for index := 0; index <= 255; index++ {
		rule, err := NewRule(index)
		if err != nil {
			t.Fatalf("NewRule(%d): %v", index, err)
		}
		for p := 0; p < 8; p++ {
			left := uint8(p >> 2 & 1)
			center := uint8(p >> 1 & 1)
			right := uint8(p & 1)
			got, err := rule.Lookup(left, center, right)
			if err != nil {
				t.Fatalf("rule %d lookup(%d,%d,%d): %v", index, left, center, right, err)
			}
			if want := uint8(index>>p) & 1; got != want {
				t.Fatalf("rule %d neighborhood %d: got %d, want %d", index, p, got, want)
			}
		}
	}
}

func TestRuleExtremes(t *testing.T) {
	zero, err := NewRule(0)
	if err != nil {
		t.Fatal(err)
	}
	full, err := NewRule(255)
	if err != nil {
		t.Fatal(err)
	}
	for p := 0; p < 8; p++ {
		left := uint8(p >> 2 & 1)
		center := uint8(p >> 1 & 1)
		right := uint8(p & 1)
		if got, _ := zero.Lookup(left, center, right); got != 0 {
			t.Fatalf("rule 0 neighborhood %d: got %d, want 0", p, got)
		}
		if got, _ := full.Lookup(left, center, right); got != 1 {
			t.Fatalf("rule 255 neighborhood %d: got %d, want 1", p, got)
		}
	}
}

func TestNewRuleRejectsOutOfRange(t *testing.T) {
	for _, index := range []int{-1, 256, 1000} {
		if _, err := NewRule(index); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("NewRule(%d): got %v, want ErrInvalidRule", index, err)
		}
	}
}

func TestLookupRejectsNonBinaryInput(t *testing.T) {
	rule, err := NewRule(110)
	if err != nil {
		t.Fatal(err)
	}
	cases := [][3]uint8{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}, {255, 1, 1}}
	for _, c := range cases {
		if _, err := rule.Lookup(c[0], c[1], c[2]); !errors.Is(err, ErrInvalidNeighborhood) {
			t.Fatalf("lookup(%d,%d,%d): got %v, want ErrInvalidNeighborhood", c[0], c[1], c[2], err)
		}
	}
}

func TestRuleString(t *testing.T) {
	rule, err := NewRule(90)
	if err != nil {
		t.Fatal(err)
	}
	if got := rule.String(); got != "rule 90" {
		t.Fatalf("String: got %q", got)
	}
	if rule.Index() != 90 {
		t.Fatalf("Index: got %d", rule.Index())
	}
}
