package main

import (
	"github.com/spf13/cobra"

	"lifelab/internal/config"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the world in a window (requires the ebiten build tag)",
	Long: `Gui opens an interactive window. Keys: space pauses, N steps once
while paused, R rewinds to the starting state, S reseeds a random soup,
+ and - double or halve the step rate, and Q or escape quits.

The GUI is only compiled in with the 'ebiten' build tag; without it this
command explains how to rebuild.`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	addSimFlags(guiCmd)
	guiCmd.Flags().Float64VarP(&flagRate, "rate", "r", config.Default().Rate, "generations per second")
	guiCmd.Flags().IntVar(&flagScale, "scale", 4, "pixels per cell")
}
