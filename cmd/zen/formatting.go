package zen

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// emphasize is bold on a color terminal and plain everywhere else, so help
// piped to a pager or a test buffer stays free of escape codes.
func emphasize(s string) string {
	if os.Getenv("NO_COLOR") != "" || !stdoutIsTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// initTemplateFormatting registers the funcs used by usage-template.txt
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold": emphasize,
		"heading": func(s string) string {
			return emphasize(strings.ToUpper(s))
		},
	})
}
