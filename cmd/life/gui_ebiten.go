//go:build ebiten

package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"lifelab/internal/app"
)

func runGUI(cmd *cobra.Command, args []string) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		log.Fatalf("life gui: %v", err)
	}
	world, err := buildWorld(cfg, flagIn)
	if err != nil {
		log.Fatalf("life gui: %v", err)
	}
	if world.Width() == 0 || world.Height() == 0 {
		log.Fatalf("life gui: cannot open a window for an empty %dx%d grid", world.Width(), world.Height())
	}

	scale := flagScale
	if scale < 1 {
		scale = 1
	}
	game := app.New(world.State(), cfg, scale)

	ebiten.SetWindowTitle("life")
	ebiten.SetWindowSize(world.Width()*scale, world.Height()*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
