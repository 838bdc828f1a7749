//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wolfram-ca/internal/app"
	"wolfram-ca/internal/automaton"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	cycle, err := automaton.New(cfg.Controller())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(cycle)

	ebiten.SetWindowTitle("wolfram-ca")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
