// Package render serializes element trees to markup.
//
// Compact rendering concatenates markup with no whitespace. Formatted
// rendering breaks and indents around block-level elements and leaves a
// cursor marker in every empty attribute value and every element without
// content.
package render

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/arthur-debert/zen/pkg/resources"
	"github.com/arthur-debert/zen/pkg/tree"
)

// CursorMarker marks where the caret should land after expansion
const CursorMarker = "|"

var (
	reLineBreak    = regexp.MustCompile(`\r?\n`)
	reAnyLineBreak = regexp.MustCompile(`\r?\n|\r`)
)

// LineEnding supplies the line break used in formatted output
type LineEnding interface {
	Newline() string
}

// Newline is a fixed LineEnding
type Newline string

// Newline implements LineEnding
func (n Newline) Newline() string { return string(n) }

// Renderer turns trees into strings using one indentation unit
type Renderer struct {
	indentation string
	lineEnding  LineEnding
}

// New creates a renderer. A nil lineEnding falls back to "\n".
func New(indentation string, lineEnding LineEnding) *Renderer {
	if lineEnding == nil {
		lineEnding = Newline("\n")
	}
	return &Renderer{indentation: indentation, lineEnding: lineEnding}
}

// FromSettings creates a renderer using the configured indentation and
// newline
func FromSettings(s *resources.Settings) *Renderer {
	return New(s.Indentation, Newline(s.Newline))
}

// Render serializes node and its descendants
func (r *Renderer) Render(node tree.Node, format bool) string {
	return r.render(node, format, false)
}

func (r *Renderer) render(node tree.Node, format, indent bool) string {
	switch n := node.(type) {
	case *tree.Tag:
		return r.renderTag(n, format, indent)
	case *tree.Snippet:
		return r.renderSnippet(n, format)
	default:
		return ""
	}
}

func (r *Renderer) renderTag(t *tree.Tag, format, indent bool) string {
	nl := r.lineEnding.Newline()
	cursor := ""
	if format {
		cursor = CursorMarker
	}

	var attrs strings.Builder
	for _, a := range t.Attributes() {
		value := a.Value
		if value == "" {
			value = cursor
		}
		attrs.WriteString(" " + a.Name + `="` + value + `"`)
	}

	content := ""
	if !t.IsEmpty() {
		content = r.renderChildren(t.Children(), format)
	}

	var start, end string
	if !t.IsRoot() {
		if t.IsEmpty() {
			start = "<" + t.Name() + attrs.String() + " />"
		} else {
			start = "<" + t.Name() + attrs.String() + ">"
			end = "</" + t.Name() + ">"
		}
	}

	if format {
		if !t.IsRoot() && t.HasBlockChildren() {
			start += nl + r.indentation
			end = nl + end
		}
		if content != "" {
			level := 0
			if indent {
				level = 1
			}
			content = r.PadString(content, level)
		} else {
			start += cursor
		}
	}

	sep := ""
	if format && t.IsBlock() {
		sep = nl
	}
	return repeat(t.Count(), sep, func(i string) string {
		return strings.ReplaceAll(start, "$", i) + content + end
	})
}

func (r *Renderer) renderSnippet(s *tree.Snippet, format bool) string {
	nl := r.lineEnding.Newline()
	data := s.Template()
	padding := ""

	if format {
		data = reLineBreak.ReplaceAllString(data, nl)
		for _, line := range strings.Split(data, nl) {
			if strings.Contains(line, resources.ChildToken) {
				padding = line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
				break
			}
		}
	}

	begin, end, _ := strings.Cut(data, resources.ChildToken)

	content := r.renderChildren(s.Children(), format)
	if padding != "" {
		content = r.PadWith(content, padding)
	}

	sep := ""
	if format {
		sep = nl
	}
	return repeat(s.Count(), sep, func(i string) string {
		return strings.ReplaceAll(begin, "$", i) + content + strings.ReplaceAll(end, "$", i)
	})
}

// renderChildren concatenates children, breaking after every block-level
// child but the last when formatting
func (r *Renderer) renderChildren(children []tree.Node, format bool) string {
	var b strings.Builder
	for i, child := range children {
		b.WriteString(r.render(child, format, true))
		if format && child.IsBlock() && i != len(children)-1 {
			b.WriteString(r.lineEnding.Newline())
		}
	}
	return b.String()
}

// PadString indents every line of text but the first by level units
func (r *Renderer) PadString(text string, level int) string {
	return r.PadWith(text, strings.Repeat(r.indentation, level))
}

// PadWith prefixes every line of text but the first with pad. Lines are
// rejoined with the configured newline.
func (r *Renderer) PadWith(text, pad string) string {
	nl := r.lineEnding.Newline()
	lines := r.splitLines(text)
	return strings.Join(lines, nl+pad)
}

func (r *Renderer) splitLines(text string) []string {
	nl := r.lineEnding.Newline()
	switch nl {
	case "\n", "\r\n", "":
		return reLineBreak.Split(text, -1)
	case "\r":
		return reAnyLineBreak.Split(text, -1)
	}
	return regexp.MustCompile(`\r?\n|` + regexp.QuoteMeta(nl)).Split(text, -1)
}

func repeat(count int, sep string, unit func(index string) string) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = unit(strconv.Itoa(i + 1))
	}
	return strings.Join(parts, sep)
}
