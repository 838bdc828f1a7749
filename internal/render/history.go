//go:build ebiten

package render

import (
	"image/color"

	"wolfram-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// HistoryPainter keeps the rows produced during one automaton cycle in an
// offscreen image, one pixel per cell, and blits it to the screen scaled to
// the current cell size and centering offsets.
type HistoryPainter struct {
	hist *core.History
	img  *ebiten.Image
	buf  []byte

	on  color.Color
	off color.Color
}

// NewHistoryPainter allocates a painter over a canvas of w cells by h rows.
func NewHistoryPainter(w, h int, on, off color.Color) *HistoryPainter {
	hist := core.NewHistory(w, h)
	p := &HistoryPainter{
		hist: hist,
		img:  ebiten.NewImage(hist.W, hist.H),
		buf:  make([]byte, 4*hist.W*hist.H),
		on:   on,
		off:  off,
	}
	p.flush()
	return p
}

// SetRow records one generation's cells at row y and refreshes the image.
// Row zero starts a new cycle, discarding whatever the previous cycle left
// on the canvas.
func (p *HistoryPainter) SetRow(y int, cells []uint8) {
	p.hist.SetRow(y, cells)
	p.flush()
}

// Repaint rebuilds the whole canvas from the given rows, oldest first. A nil
// argument clears it.
func (p *HistoryPainter) Repaint(rows [][]uint8) {
	p.hist.Clear()
	for y, cells := range rows {
		p.hist.SetRow(y, cells)
	}
	p.flush()
}

// Blit draws the canvas onto dst under the provided geometry.
func (p *HistoryPainter) Blit(dst *ebiten.Image, geom core.Geometry) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(geom.CellSize, geom.CellSize)
	op.GeoM.Translate(geom.OffX, geom.OffY)
	dst.DrawImage(p.img, op)
}

func (p *HistoryPainter) flush() {
	fillBinaryRGBA(p.buf, p.hist.Cells(), p.on, p.off)
	p.img.WritePixels(p.buf)
}
