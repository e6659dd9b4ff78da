package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/zen/cmd/zen"
	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/style"
)

func main() {
	rootCmd := zen.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))

		if errors.IsConfigurationError(err) {
			fmt.Fprintln(os.Stderr, style.MutedStyle.Render(zen.MsgHintSettingsCheck))
		}
		os.Exit(1)
	}
}
