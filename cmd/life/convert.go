package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"lifelab/internal/codec"
)

var convertCmd = &cobra.Command{
	Use:   "convert SRC DST",
	Short: "Convert a saved grid between the text and binary formats",
	Long: `Convert reads SRC and writes DST, with both formats chosen by file
extension: .gol for plain text, .bgol for packed binary.`,
	Args: cobra.ExactArgs(2),
	Run:  runConvert,
}

func runConvert(cmd *cobra.Command, args []string) {
	src, dst := args[0], args[1]
	g, err := codec.Load(src)
	if err != nil {
		log.Fatalf("life convert: %v", err)
	}
	if err := codec.Save(dst, g); err != nil {
		log.Fatalf("life convert: %v", err)
	}
	fmt.Printf("wrote %s (%dx%d, %d alive)\n", dst, g.Width(), g.Height(), g.AliveCells())
}
