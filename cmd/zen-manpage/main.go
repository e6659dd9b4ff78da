package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/zen/cmd/zen"
)

// Writes the zen(1) page to stdout; packaging uses `zen man <dir>` for the
// per-command pages.
func main() {
	rootCmd := zen.NewRootCmd()

	if err := doc.GenMan(rootCmd, zen.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "zen-manpage: %v\n", err)
		os.Exit(1)
	}
}
