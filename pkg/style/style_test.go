package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestMarkupRender(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "no markup here", "no markup here"},
		{"element tags", "[tag]div[/tag] [attr]class[/attr]", "div class"},
		{"nested", "[bold][snippet]cc:ie[/snippet][/bold]", "cc:ie"},
		{"unknown tag kept", "[nope]x[/nope]", "[nope]x[/nope]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.input)
			assert.Contains(t, got, tt.want)
			assert.NotContains(t, got, "[tag]")
			assert.NotContains(t, got, "[snippet]")
		})
	}
}

func TestRenderUnknownInsideKnown(t *testing.T) {
	got := Render("[tag]a [nope]b[/nope][/tag]")
	assert.Contains(t, got, "[nope]b[/nope]")
}

func TestRenderMultiline(t *testing.T) {
	p := NewMarkupParser()
	p.AddStyle("plain", lipgloss.NewStyle())
	assert.Equal(t, "one\ntwo", p.Render("[plain]one\ntwo[/plain]"))
}

func TestAddStyle(t *testing.T) {
	p := NewMarkupParser()
	p.AddStyle("custom", lipgloss.NewStyle())
	assert.Equal(t, "value", p.Render("[custom]value[/custom]"))
}
