package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"lifelab/internal/codec"
	"lifelab/internal/pattern"
)

var patternCmd = &cobra.Command{
	Use:   "pattern [NAME]",
	Short: "List the built-in patterns, or print or save one",
	Long: `Without arguments, pattern lists the built-in seeds. With a name it
prints the pattern as bordered text, or writes it to --out as a grid file.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPattern,
}

func init() {
	patternCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write the pattern to this file")
}

func runPattern(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		for _, name := range pattern.Names() {
			g, err := pattern.ByName(name)
			if err != nil {
				log.Fatalf("life pattern: %v", err)
			}
			fmt.Printf("%-12s %dx%d, %d alive\n", name, g.Width(), g.Height(), g.AliveCells())
		}
		return
	}

	g, err := pattern.ByName(args[0])
	if err != nil {
		log.Fatalf("life pattern: %v", err)
	}
	if flagOut != "" {
		if err := codec.Save(flagOut, g); err != nil {
			log.Fatalf("life pattern: %v", err)
		}
		fmt.Printf("wrote %s\n", flagOut)
		return
	}
	fmt.Print(g.String())
}
