// Package automaton implements Wolfram's elementary cellular automata: an
// 8-entry transition rule, a one-dimensional generation of binary cells, and
// the cycle state machine that explores rule after rule against a display.
package automaton

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRule reports a rule index outside [0, 255].
	ErrInvalidRule = errors.New("rule index out of range")
	// ErrInvalidNeighborhood reports a lookup input that is not 0 or 1.
	ErrInvalidNeighborhood = errors.New("neighborhood cell is not binary")
	// ErrIndexOutOfRange reports a cell access outside a generation's row.
	ErrIndexOutOfRange = errors.New("cell index out of range")
)

// Rule maps every three-cell neighborhood to the next state of the centre
// cell. The mapping is decoded from the rule's Wolfram code at construction
// and never changes.
type Rule struct {
	index int
	table [8]uint8
}

// NewRule decodes the rule with the given Wolfram code. Bit p of the code is
// the output for the neighborhood whose value, read as left*4 + center*2 +
// right, equals p.
func NewRule(index int) (Rule, error) {
	if index < 0 || index > 255 {
		return Rule{}, fmt.Errorf("%w: %d", ErrInvalidRule, index)
	}
	r := Rule{index: index}
	for p := 0; p < 8; p++ {
		r.table[p] = uint8(index>>p) & 1
	}
	return r, nil
}

// Lookup returns the next state for a cell given its own state and those of
// its left and right neighbours. Inputs other than 0 and 1 are rejected;
// generations never produce them.
func (r Rule) Lookup(left, center, right uint8) (uint8, error) {
	if left > 1 || center > 1 || right > 1 {
		return 0, fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidNeighborhood, left, center, right)
	}
	return r.table[left<<2|center<<1|right], nil
}

// Index returns the rule's Wolfram code.
func (r Rule) Index() int { return r.index }

func (r Rule) String() string { return fmt.Sprintf("rule %d", r.index) }
