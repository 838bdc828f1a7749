package core

// Size describes the dimensions of a drawing surface in pixels.
type Size struct {
	W int
	H int
}

// Min returns the smaller of the two dimensions.
func (s Size) Min() int {
	if s.W < s.H {
		return s.W
	}
	return s.H
}

// Geometry carries the presentation parameters for laying out generation
// rows on a screen: the pixel size of one cell and the offsets that centre
// the square drawing area inside the window.
type Geometry struct {
	CellSize float64
	OffX     float64
	OffY     float64
	Screen   Size
}

// NewGeometry builds the initial layout for a screen of the given size.
// Offsets start at zero; they only become nonzero after a resize makes one
// axis longer than the other.
func NewGeometry(cellSize float64, w, h int) Geometry {
	return Geometry{CellSize: cellSize, Screen: Size{W: w, H: h}}
}

// Rescaled returns the geometry adjusted for a new screen size. The cell
// size scales by the ratio of the new to old minimum screen dimension, and
// the offsets re-centre the content along whichever axis is the longer one.
func (g Geometry) Rescaled(w, h int) Geometry {
	next := g
	old := g.Screen.Min()
	if old > 0 {
		next.CellSize = g.CellSize * float64(Size{W: w, H: h}.Min()) / float64(old)
	}
	next.Screen = Size{W: w, H: h}

	next.OffX = 0
	if diff := w - h; diff > 0 {
		next.OffX = float64(diff / 2)
	}
	next.OffY = 0
	if diff := h - w; diff > 0 {
		next.OffY = float64(diff / 2)
	}
	return next
}

// RowTop returns the y coordinate of the top edge of row n.
func (g Geometry) RowTop(n int) float64 {
	return g.OffY + float64(n)*g.CellSize
}

// FitsRow reports whether row n still fits above the bottom of the centred
// drawing area.
func (g Geometry) FitsRow(n int) bool {
	return g.RowTop(n)+g.CellSize <= float64(g.Screen.H)-g.OffY
}

// RowsThatFit returns how many generation rows the current layout can hold.
func (g Geometry) RowsThatFit() int {
	if g.CellSize <= 0 {
		return 0
	}
	n := 0
	for g.FitsRow(n) {
		n++
	}
	return n
}
