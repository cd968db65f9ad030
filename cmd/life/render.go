package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"lifelab/internal/codec"
)

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Print a saved grid as bordered text",
	Args:  cobra.ExactArgs(1),
	Run:   runRender,
}

func runRender(cmd *cobra.Command, args []string) {
	g, err := codec.Load(args[0])
	if err != nil {
		log.Fatalf("life render: %v", err)
	}
	fmt.Print(g.String())
}
