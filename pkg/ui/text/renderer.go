// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/zen/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders display views as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.TreeResult:
		return r.renderTree(v.Root, 0)
	case *display.TreeNode:
		return r.renderTree(v, 0)
	case *display.Listing:
		return r.renderListing(v)
	case *display.SettingsReport:
		return r.renderReport(v)
	case string:
		_, err := fmt.Fprintln(r.output, v)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderTree(n *display.TreeNode, depth int) error {
	label := n.Label()
	if n.Kind == display.KindSnippet {
		label += " (snippet)"
	}
	if _, err := fmt.Fprintf(r.output, "%s%s\n", strings.Repeat("  ", depth), label); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := r.renderTree(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderListing(l *display.Listing) error {
	width := 0
	for _, item := range l.Items {
		if len(item.Key) > width {
			width = len(item.Key)
		}
	}
	for _, item := range l.Items {
		if _, err := fmt.Fprintf(r.output, "%-*s  %s\n", width, item.Key, item.Value); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderReport(rep *display.SettingsReport) error {
	var b strings.Builder
	for _, src := range rep.Sources {
		fmt.Fprintf(&b, "source: %s\n", src)
	}
	for _, ty := range rep.Types {
		marker := ""
		if ty.Default {
			marker = " (default)"
		}
		fmt.Fprintf(&b, "%s%s: %d abbreviations, %d snippets\n", ty.Name, marker, ty.Abbreviations, ty.Snippets)
	}
	if rep.Valid {
		b.WriteString("settings are valid\n")
	} else {
		fmt.Fprintf(&b, "settings are invalid: %s\n", rep.Error)
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
