//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func runGUI(cmd *cobra.Command, args []string) {
	fmt.Fprintln(os.Stderr, "The gui command requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life gui` or build with `-tags ebiten`.")
	os.Exit(2)
}
