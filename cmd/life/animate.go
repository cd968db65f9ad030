package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"lifelab/internal/app"
	"lifelab/internal/config"
)

var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Animate a world in the terminal",
	Long: `Animate steps a world at --rate generations per second, redrawing
it as bordered text. On a terminal the frame is drawn in place; when the
output is piped, frames are printed one after another.`,
	Args: cobra.NoArgs,
	Run:  runAnimate,
}

func init() {
	addSimFlags(animateCmd)
	animateCmd.Flags().Float64VarP(&flagRate, "rate", "r", config.Default().Rate, "generations per second")
}

func runAnimate(cmd *cobra.Command, args []string) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		log.Fatalf("life animate: %v", err)
	}
	world, err := buildWorld(cfg, flagIn)
	if err != nil {
		log.Fatalf("life animate: %v", err)
	}

	interactive := isatty.IsTerminal(os.Stdout.Fd())
	timer := app.NewFixedStep(cfg.Rate)

	for gen := 0; gen <= cfg.Steps; {
		if !timer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		if interactive {
			fmt.Print("\x1b[H\x1b[2J")
		}
		fmt.Print(world.State().String())
		fmt.Printf("gen %d  pop %d\n", gen, world.AliveCells())

		if gen < cfg.Steps {
			world.Step(cfg.Wrap)
		}
		gen++
	}
}
