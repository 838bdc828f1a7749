package automaton

import (
	"fmt"

	"wolfram-ca/pkg/core"
)

// Generation is one row of binary cells. Its length is fixed at
// construction; cells only ever hold 0 or 1.
type Generation struct {
	cells []uint8
}

// NewGeneration creates an all-zero generation of the given length.
// Non-positive lengths are clamped to 1.
func NewGeneration(length int) *Generation {
	if length <= 0 {
		length = 1
	}
	return &Generation{cells: make([]uint8, length)}
}

// Len returns the number of cells in the row.
func (g *Generation) Len() int { return len(g.cells) }

// Get returns the state of the cell at index i.
func (g *Generation) Get(i int) (uint8, error) {
	if i < 0 || i >= len(g.cells) {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(g.cells))
	}
	return g.cells[i], nil
}

// Set stores v at index i, treating any nonzero value as 1.
func (g *Generation) Set(i int, v uint8) error {
	if i < 0 || i >= len(g.cells) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(g.cells))
	}
	if v != 0 {
		v = 1
	}
	g.cells[i] = v
	return nil
}

// Cells exposes the backing row so renderers can read values directly.
func (g *Generation) Cells() []uint8 { return g.cells }

// Randomize zeroes the row, sets one uniformly random cell to 1, then keeps
// setting further random cells to 1 while a fair coin comes up heads. The
// result is a sparse seed row with at least one live cell; hitting the same
// cell twice is allowed and harmless.
func (g *Generation) Randomize(rng *core.RNG) {
	for i := range g.cells {
		g.cells[i] = 0
	}
	g.cells[rng.IntN(len(g.cells))] = 1
	for rng.Chance(0.5) {
		g.cells[rng.IntN(len(g.cells))] = 1
	}
}

// Evolve produces the successor generation under the given rule. Neighbour
// indexing wraps around the ends of the row, so the first and last cells are
// adjacent. The receiver is not modified.
func (g *Generation) Evolve(rule Rule) (*Generation, error) {
	n := len(g.cells)
	next := NewGeneration(n)
	for i := 0; i < n; i++ {
		out, err := rule.Lookup(g.cells[(i-1+n)%n], g.cells[i], g.cells[(i+1)%n])
		if err != nil {
			return nil, err
		}
		next.cells[i] = out
	}
	return next, nil
}
