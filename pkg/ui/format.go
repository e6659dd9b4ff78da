package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how results are written
type Format int

const (
	FormatAuto     Format = iota // terminal when writing to a color tty, text otherwise
	FormatTerminal               // lipgloss trees and tables
	FormatText                   // plain text, stable for diffs and scripts
	FormatJSON                   // indented JSON
)

// FormatNames lists the accepted --format values, indexed by Format
var FormatNames = []string{"auto", "term", "text", "json"}

var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(FormatNames) {
		return "unknown"
	}
	return FormatNames[f]
}

// ParseFormat parses a --format value, case-insensitively
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(s)]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format %q (use %s)", s, strings.Join(FormatNames, ", ")).
		WithDetail("format", s)
}

// DetectFormat resolves FormatAuto for a destination file. NO_COLOR,
// pipes and colorless terminals all get plain text.
func DetectFormat(output *os.File) Format {
	fd := output.Fd()
	switch {
	case os.Getenv("NO_COLOR") != "":
		return FormatText
	case !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd):
		return FormatText
	case termenv.NewOutput(output).ColorProfile() == termenv.Ascii:
		return FormatText
	}
	return FormatTerminal
}
