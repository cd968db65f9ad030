package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"lifelab/internal/codec"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Show the dimensions and population of a saved grid",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func runInfo(cmd *cobra.Command, args []string) {
	g, err := codec.Load(args[0])
	if err != nil {
		log.Fatalf("life info: %v", err)
	}
	fmt.Printf("file:  %s\n", args[0])
	fmt.Printf("size:  %dx%d (%d cells)\n", g.Width(), g.Height(), g.TotalCells())
	fmt.Printf("alive: %d\n", g.AliveCells())
	fmt.Printf("dead:  %d\n", g.DeadCells())
}
