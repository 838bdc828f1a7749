package core

import (
	"slices"
	"testing"
)

func TestHistorySetRow(t *testing.T) {
	h := NewHistory(4, 3)
	h.SetRow(1, []uint8{1, 0, 1, 1})

	want := []uint8{
		0, 0, 0, 0,
		1, 0, 1, 1,
		0, 0, 0, 0,
	}
	if !slices.Equal(h.Cells(), want) {
		t.Fatalf("canvas after SetRow: got %v, want %v", h.Cells(), want)
	}

	h.Clear()
	for _, c := range h.Cells() {
		if c != 0 {
			t.Fatal("Clear left live cells behind")
		}
	}
}

func TestHistoryRowZeroStartsFreshCycle(t *testing.T) {
	h := NewHistory(4, 3)
	h.SetRow(0, []uint8{1, 1, 1, 1})
	h.SetRow(1, []uint8{1, 0, 0, 1})
	h.SetRow(2, []uint8{0, 1, 1, 0})

	// A new cycle begins at row zero; nothing of the old cycle may survive
	// to be overdrawn one row at a time.
	h.SetRow(0, []uint8{0, 1, 0, 0})

	want := []uint8{
		0, 1, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	if !slices.Equal(h.Cells(), want) {
		t.Fatalf("canvas after new cycle's first row: got %v, want %v", h.Cells(), want)
	}
}

func TestHistoryIgnoresBadRows(t *testing.T) {
	h := NewHistory(4, 3)
	h.SetRow(-1, []uint8{1, 1, 1, 1})
	h.SetRow(3, []uint8{1, 1, 1, 1})
	h.SetRow(0, []uint8{1, 1})
	for _, c := range h.Cells() {
		if c != 0 {
			t.Fatal("out-of-bounds or short rows were written")
		}
	}
}

func TestHistoryClampsDimensions(t *testing.T) {
	h := NewHistory(0, -2)
	if s := h.Size(); s.W != 1 || s.H != 1 {
		t.Fatalf("clamped size: got %+v, want 1x1", s)
	}
}
