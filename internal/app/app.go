//go:build ebiten

package app

import (
	"image/color"
	"time"

	"wolfram-ca/internal/automaton"
	"wolfram-ca/internal/render"
	"wolfram-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a cycle controller to the ebiten.Game interface: it forwards
// ticks, feeds rendered generations into the history painter, and turns
// window-size changes into resize notifications.
type Game struct {
	cycle   *automaton.Cycle
	painter *render.HistoryPainter
	overlay *ui.Overlay

	winW, winH int

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided cycle controller.
func New(cycle *automaton.Cycle) *Game {
	geom := cycle.Geometry()
	return &Game{
		cycle:   cycle,
		painter: render.NewHistoryPainter(cycle.RowLength(), geom.RowsThatFit(), color.Black, color.White),
		overlay: ui.NewOverlay(cycle),
		winW:    geom.Screen.W,
		winH:    geom.Screen.H,
	}
}

// Update handles per-frame input and advances the cycle by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.cycle.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.cycle.Reset()
		g.painter.Repaint(nil)
	}

	if w, h := ebiten.WindowSize(); w > 0 && h > 0 && (w != g.winW || h != g.winH) {
		g.winW, g.winH = w, h
		g.redraw(g.cycle.Resize(w, h))
	}

	g.overlay.Update()

	if (!g.paused || g.tickOnce) && g.cycle.Running() {
		g.tickOnce = false
		req, err := g.cycle.Tick(time.Now())
		if err != nil {
			return err
		}
		if req != nil {
			g.painter.SetRow(req.Row, req.Generation.Cells())
		}
	}
	return nil
}

func (g *Game) redraw(req automaton.RedrawRequest) {
	rows := make([][]uint8, len(req.Generations))
	for i, gen := range req.Generations {
		rows[i] = gen.Cells()
	}
	g.painter.Repaint(rows)
}

// Draw renders the history canvas and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	g.painter.Blit(screen, g.cycle.Geometry())
	g.overlay.Draw(screen)
}

// Layout maps the window one-to-one onto the logical screen so resizes reach
// the cycle controller in pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
