package expander

import (
	"strings"

	"github.com/arthur-debert/zen/pkg/extract"
)

// TextSource is the host's view of the document being edited
type TextSource interface {
	// Selection returns the selected text, or "" when nothing is selected
	Selection() string
	// LineBeforeCursor returns the current line from its start to the caret
	LineBeforeCursor() string
	// LinePadding returns the leading whitespace of the caret's line
	LinePadding() string
}

// FindAbbreviation returns the selection if there is one, otherwise the
// abbreviation that ends at the caret
func FindAbbreviation(src TextSource) string {
	if sel := src.Selection(); sel != "" {
		return sel
	}
	return extract.Abbreviation(src.LineBeforeCursor())
}

// StringSource is a TextSource over an in-memory document
type StringSource struct {
	Text   string
	Cursor int
	// SelectionStart and SelectionEnd delimit the selection; equal values
	// mean nothing is selected
	SelectionStart int
	SelectionEnd   int
}

// NewStringSource creates a source with the caret at the end of text
func NewStringSource(text string) *StringSource {
	return &StringSource{Text: text, Cursor: len(text)}
}

// Selection implements TextSource
func (s *StringSource) Selection() string {
	start, end := clamp(s.SelectionStart, len(s.Text)), clamp(s.SelectionEnd, len(s.Text))
	if start >= end {
		return ""
	}
	return s.Text[start:end]
}

// LineBeforeCursor implements TextSource
func (s *StringSource) LineBeforeCursor() string {
	cursor := clamp(s.Cursor, len(s.Text))
	before := s.Text[:cursor]
	if i := strings.LastIndexAny(before, "\r\n"); i >= 0 {
		return before[i+1:]
	}
	return before
}

// LinePadding implements TextSource
func (s *StringSource) LinePadding() string {
	line := s.LineBeforeCursor()
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
