package app

import (
	"flag"
	"time"

	"wolfram-ca/internal/automaton"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize float64
	Length   int
	Rule     int
	Delay    float64
	Cycle    bool
	AllRules bool
	TPS      int
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    800,
		Height:   800,
		CellSize: 5,
		Rule:     automaton.RandomRule,
		Delay:    2.5,
		Cycle:    true,
		TPS:      60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.Float64Var(&c.CellSize, "cell-size", c.CellSize, "width and height of one cell in pixels")
	fs.IntVar(&c.Length, "length", c.Length, "cells per generation (0 derives it from width and cell size)")
	fs.IntVar(&c.Rule, "rule", c.Rule, "rule for the first cycle (-1 picks randomly)")
	fs.Float64Var(&c.Delay, "delay", c.Delay, "seconds to pause between cycles")
	fs.BoolVar(&c.Cycle, "cycle", c.Cycle, "start a new rule after the display fills")
	fs.BoolVar(&c.AllRules, "all-rules", c.AllRules, "cycle through all 256 rules instead of the curated pool")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for row randomization and pool shuffling (0 seeds from the clock)")
}

// Controller translates the flag values into a cycle configuration.
func (c *Config) Controller() automaton.Config {
	cfg := automaton.DefaultConfig()
	cfg.ScreenW = c.Width
	cfg.ScreenH = c.Height
	cfg.CellSize = c.CellSize
	cfg.RowLength = c.Length
	if cfg.RowLength <= 0 && c.CellSize > 0 {
		cfg.RowLength = int(float64(c.Width) / c.CellSize)
	}
	cfg.Rule = c.Rule
	cfg.CycleDelay = time.Duration(c.Delay * float64(time.Second))
	cfg.Cycle = c.Cycle
	cfg.Pool = automaton.Curated()
	if c.AllRules {
		cfg.Pool = automaton.All()
	}
	cfg.Seed = c.Seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
