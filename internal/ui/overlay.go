//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"wolfram-ca/internal/automaton"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
)

type statusProvider interface {
	Rule() automaton.Rule
	Phase() automaton.Phase
	GenerationCount() int
}

// Overlay draws a small status readout (rule, generation, phase) in the top
// left corner. Tab toggles it.
type Overlay struct {
	cycle   statusProvider
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs an overlay reading from the given cycle.
func NewOverlay(cycle statusProvider) *Overlay {
	o := &Overlay{cycle: cycle}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw renders the status panel onto the screen when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.cycle == nil {
		return
	}

	lines := []string{
		o.cycle.Rule().String(),
		fmt.Sprintf("generation %d", o.cycle.GenerationCount()),
		o.cycle.Phase().String(),
	}

	width := 0
	for _, line := range lines {
		if w := len(line) * basicfont.Face7x13.Advance; w > width {
			width = w
		}
	}
	height := len(lines) * lineHeight

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(height+2*panelPadding))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 230})
	screen.DrawImage(o.pixel, op)

	for i, line := range lines {
		y := panelPadding + (i+1)*lineHeight - 4
		text.Draw(screen, line, basicfont.Face7x13, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
