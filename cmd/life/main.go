// Command life simulates Conway's Game of Life: run headless batches,
// animate in the terminal, inspect and convert saved grids, or open the
// GUI when built with the ebiten tag.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"lifelab/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life simulator",
	Long: `life simulates Conway's Game of Life over bounded or toroidal grids.

States live in two file formats: plain text (.gol) and packed binary
(.bgol). Runs start from a saved file, a named pattern, or a random soup.`,
}

// Simulation knobs shared by run, animate and gui. Explicitly set flags
// override the config file, which overrides the built-in defaults.
var (
	flagConfig  string
	flagIn      string
	flagOut     string
	flagWidth   int
	flagHeight  int
	flagWrap    bool
	flagSeed    int64
	flagDensity float64
	flagSteps   int
	flagRate    float64
	flagPattern string
	flagScale   int
)

func addSimFlags(cmd *cobra.Command) {
	def := config.Default()
	f := cmd.Flags()
	f.StringVarP(&flagConfig, "config", "c", "", "YAML run configuration file")
	f.StringVarP(&flagIn, "in", "i", "", "start from a saved grid (.gol or .bgol)")
	f.IntVarP(&flagWidth, "width", "W", def.Width, "grid width")
	f.IntVarP(&flagHeight, "height", "H", def.Height, "grid height")
	f.BoolVarP(&flagWrap, "wrap", "w", def.Wrap, "wrap the edges toroidally")
	f.Int64Var(&flagSeed, "seed", def.Seed, "random soup seed")
	f.Float64Var(&flagDensity, "density", def.Density, "random soup density in [0,1]")
	f.IntVarP(&flagSteps, "steps", "n", def.Steps, "generations to simulate")
	f.StringVarP(&flagPattern, "pattern", "p", "", "seed pattern placed mid-grid")
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.AddCommand(runCmd, animateCmd, renderCmd, convertCmd, infoCmd, patternCmd, guiCmd)
}
