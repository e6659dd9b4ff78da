package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dlclark/regexp2"
)

// An innermost [name]...[/name] pair: the body holds no further opening tag
var reMarkup = regexp2.MustCompile(`\[([a-z]+)\]((?:(?!\[[a-z]+\]).)*?)\[/\1\]`, regexp2.Singleline)

// MarkupParser renders [name]text[/name] markup with lipgloss styles.
// Tags without a registered style are left in place.
type MarkupParser struct {
	styles map[string]lipgloss.Style
}

// NewMarkupParser creates a parser knowing the package styles
func NewMarkupParser() *MarkupParser {
	return &MarkupParser{
		styles: map[string]lipgloss.Style{
			"title":    TitleStyle,
			"subtitle": SubtitleStyle,
			"success":  SuccessStyle,
			"error":    ErrorStyle,
			"info":     InfoStyle,
			"path":     PathStyle,
			"muted":    MutedStyle,
			"bold":     lipgloss.NewStyle().Bold(true),

			"tag":       TagStyle,
			"attr":      AttributeStyle,
			"snippet":   SnippetStyle,
			"expando":   ExpandoStyle,
			"reference": ReferenceStyle,
		},
	}
}

// AddStyle registers or replaces the style of a tag
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
}

// Render styles nested markup from the inside out
func (p *MarkupParser) Render(text string) string {
	for {
		changed := false
		out, err := reMarkup.ReplaceFunc(text, func(m regexp2.Match) string {
			style, ok := p.styles[m.GroupByNumber(1).String()]
			if !ok {
				return m.String()
			}
			changed = true
			return style.Render(m.GroupByNumber(2).String())
		}, -1, -1)
		if err != nil || !changed {
			return text
		}
		text = out
	}
}

var defaultParser = NewMarkupParser()

// Render renders markup with the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}
