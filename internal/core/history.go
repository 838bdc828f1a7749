package core

// History stores the rows an automaton cycle has produced so far, in
// row-major order, for the renderer to draw and redraw. W is the row length
// in cells and H the number of rows the display can hold.
type History struct {
	W, H int
	data []uint8
}

// NewHistory allocates a canvas with the given dimensions.
func NewHistory(w, h int) *History {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &History{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so renderers can read values directly.
func (h *History) Cells() []uint8 { return h.data }

// SetRow copies one generation's cells into row y. Rows are written in order
// within a cycle, so writing row zero begins a new cycle and clears every
// other row first; without that, a restarted cycle would overdraw the
// previous pattern row by row. Rows outside the canvas and rows of the wrong
// length are ignored.
func (h *History) SetRow(y int, cells []uint8) {
	if y < 0 || y >= h.H || len(cells) != h.W {
		return
	}
	if y == 0 {
		h.Clear()
	}
	copy(h.data[y*h.W:(y+1)*h.W], cells)
}

// Clear fills the canvas with zeros.
func (h *History) Clear() {
	for i := range h.data {
		h.data[i] = 0
	}
}

// Size returns the canvas dimensions.
func (h *History) Size() Size { return Size{W: h.W, H: h.H} }
