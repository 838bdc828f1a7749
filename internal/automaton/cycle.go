package automaton

import (
	"fmt"
	"time"

	icore "wolfram-ca/internal/core"
	"wolfram-ca/pkg/core"
)

// RandomRule asks the cycle to start with whichever rule the shuffled pool
// traversal puts first.
const RandomRule = -1

// Phase names the state the cycle machine is in. Exactly one phase holds at
// a time.
type Phase int

const (
	// PhaseStepping means the cycle is evolving and emitting one
	// generation per tick.
	PhaseStepping Phase = iota
	// PhaseDelay means the display is full and the cycle is waiting out
	// the configured pause before restarting with the next rule.
	PhaseDelay
	// PhasePaused means the display is full and cycling is disabled; the
	// cycle stays put until an external reset.
	PhasePaused
	// PhaseStopped means an external quit was requested.
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseStepping:
		return "stepping"
	case PhaseDelay:
		return "delay"
	case PhasePaused:
		return "paused"
	case PhaseStopped:
		return "stopped"
	}
	return "unknown"
}

// Config holds the parameters for a cycle controller.
type Config struct {
	// RowLength is the number of cells in a generation. It is independent
	// of the screen width and fixed for the life of the controller.
	RowLength int
	// CellSize is the width and height of one cell in pixels.
	CellSize float64
	// CycleDelay is the pause between one cycle filling the display and
	// the next cycle starting.
	CycleDelay time.Duration
	// Rule pins the first cycle's rule, or RandomRule to take the first
	// entry of the shuffled pool. Later cycles always traverse the pool.
	Rule int
	// Pool is the set of rule indices the controller cycles through.
	Pool []int
	// Cycle selects whether to restart with a new rule after the display
	// fills, or to pause permanently.
	Cycle bool

	ScreenW int
	ScreenH int

	Seed int64
}

// DefaultConfig mirrors the classic presentation: an 800x800 window, 5px
// cells, a 2.5s pause between cycles, and the curated rule pool.
func DefaultConfig() Config {
	return Config{
		RowLength:  160,
		CellSize:   5,
		CycleDelay: 2500 * time.Millisecond,
		Rule:       RandomRule,
		Pool:       Curated(),
		Cycle:      true,
		ScreenW:    800,
		ScreenH:    800,
		Seed:       1337,
	}
}

// RenderRequest asks the presentation layer to draw one generation at a row
// position under the given geometry.
type RenderRequest struct {
	Generation *Generation
	Row        int
	Geom       icore.Geometry
}

// RedrawRequest asks the presentation layer to redraw every generation
// produced so far under fresh geometry, after a resize.
type RedrawRequest struct {
	Geom        icore.Geometry
	Generations []*Generation
}

// Cycle drives the continuous exploration of rules: evolve a random row
// until the display is full, wait, pick the next rule, start over. It is
// tick-driven and single-threaded; the owner calls Tick once per frame.
type Cycle struct {
	cfg  Config
	geom icore.Geometry
	rng  *core.RNG

	order  []int
	cursor int
	rule   Rule

	generations []*Generation
	genNum      int

	delay   icore.Countdown
	phase   Phase
	running bool
}

// New validates the configuration and builds a controller in the stepping
// phase, holding one freshly randomized generation. The rule pool is
// shuffled once here; cycles traverse it with a wrapping cursor rather than
// reshuffling.
func New(cfg Config) (*Cycle, error) {
	if cfg.RowLength <= 0 {
		return nil, fmt.Errorf("row length must be positive, got %d", cfg.RowLength)
	}
	if cfg.CellSize <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %g", cfg.CellSize)
	}
	if cfg.CycleDelay < 0 {
		return nil, fmt.Errorf("cycle delay must not be negative, got %s", cfg.CycleDelay)
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		return nil, fmt.Errorf("screen dimensions must be positive, got %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
	if len(cfg.Pool) == 0 {
		cfg.Pool = Curated()
	}
	for _, idx := range cfg.Pool {
		if idx < 0 || idx > 255 {
			return nil, fmt.Errorf("%w: pool entry %d", ErrInvalidRule, idx)
		}
	}

	rng := core.NewRNG(cfg.Seed)
	order := append([]int(nil), cfg.Pool...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	start := cfg.Rule
	if start == RandomRule {
		start = order[0]
	}
	rule, err := NewRule(start)
	if err != nil {
		return nil, err
	}

	first := NewGeneration(cfg.RowLength)
	first.Randomize(rng)

	return &Cycle{
		cfg:         cfg,
		geom:        icore.NewGeometry(cfg.CellSize, cfg.ScreenW, cfg.ScreenH),
		rng:         rng,
		order:       order,
		rule:        rule,
		generations: []*Generation{first},
		phase:       PhaseStepping,
		running:     true,
	}, nil
}

// Tick performs at most one state transition. In the stepping phase it
// returns a request to draw the current generation and evolves its
// successor; in the delay phase it waits out the pause, resetting for a new
// rule once the pause expires (the first row of the new cycle is drawn by
// that same tick). Paused and stopped cycles ignore ticks.
func (c *Cycle) Tick(now time.Time) (*RenderRequest, error) {
	switch c.phase {
	case PhasePaused, PhaseStopped:
		return nil, nil
	case PhaseDelay:
		if !c.delay.Expired(now, c.cfg.CycleDelay) {
			return nil, nil
		}
		c.delay.Clear()
		c.reset()
		c.phase = PhaseStepping
	}

	if !c.geom.FitsRow(c.genNum) {
		if c.cfg.Cycle {
			c.phase = PhaseDelay
			c.delay.Begin(now)
		} else {
			c.phase = PhasePaused
		}
		return nil, nil
	}

	cur := c.generations[c.genNum]
	next, err := cur.Evolve(c.rule)
	if err != nil {
		return nil, err
	}
	req := &RenderRequest{Generation: cur, Row: c.genNum, Geom: c.geom}
	c.generations = append(c.generations, next)
	c.genNum++
	return req, nil
}

// reset discards the old cycle and seeds a new one: a single randomized
// generation of the configured row length and the next rule in traversal
// order.
func (c *Cycle) reset() {
	first := NewGeneration(c.cfg.RowLength)
	first.Randomize(c.rng)
	c.generations = []*Generation{first}
	c.genNum = 0

	c.cursor = (c.cursor + 1) % len(c.order)
	c.rule, _ = NewRule(c.order[c.cursor])
}

// Reset forces a new cycle immediately, leaving a stopped controller
// stopped.
func (c *Cycle) Reset() {
	if c.phase == PhaseStopped {
		return
	}
	c.delay.Clear()
	c.reset()
	c.phase = PhaseStepping
}

// Resize rescales the presentation geometry for a new screen size and
// returns everything the renderer needs to redraw from scratch. Automaton
// state is untouched.
func (c *Cycle) Resize(w, h int) RedrawRequest {
	c.geom = c.geom.Rescaled(w, h)
	return RedrawRequest{Geom: c.geom, Generations: c.Generations()}
}

// Stop clears the running flag. The cycle ignores all further ticks.
func (c *Cycle) Stop() {
	c.running = false
	c.phase = PhaseStopped
}

// Running reports whether an external stop has been requested.
func (c *Cycle) Running() bool { return c.running }

// Phase returns the current state of the cycle machine.
func (c *Cycle) Phase() Phase { return c.phase }

// Rule returns the rule driving the current cycle.
func (c *Cycle) Rule() Rule { return c.rule }

// Geometry returns the current presentation geometry.
func (c *Cycle) Geometry() icore.Geometry { return c.geom }

// RowLength returns the configured number of cells per generation.
func (c *Cycle) RowLength() int { return c.cfg.RowLength }

// GenerationCount returns how many generations have been rendered this
// cycle.
func (c *Cycle) GenerationCount() int { return c.genNum }

// Generations returns the generations rendered so far this cycle, oldest
// first. The trailing unrendered successor is excluded.
func (c *Cycle) Generations() []*Generation {
	return c.generations[:c.genNum]
}
