// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/style"
	"github.com/arthur-debert/zen/pkg/ui/display"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	ltree "github.com/charmbracelet/lipgloss/tree"
)

// Renderer draws trees and tables with lipgloss
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders display views with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.TreeResult:
		header := style.Render("[subtitle]" + v.Abbreviation + "[/subtitle] [muted](" + v.DocType + ")[/muted]")
		return r.println(header + "\n" + r.tree(v.Root).String())
	case *display.TreeNode:
		return r.println(r.tree(v).String())
	case *display.Listing:
		return r.println(r.table(v))
	case *display.SettingsReport:
		return r.println(r.report(v))
	case string:
		return r.println(v)
	default:
		return r.println(fmt.Sprintf("%+v", result))
	}
}

func (r *Renderer) tree(n *display.TreeNode) *ltree.Tree {
	t := ltree.Root(r.label(n)).
		Enumerator(ltree.RoundedEnumerator).
		EnumeratorStyle(style.MutedStyle)
	for _, c := range n.Children {
		if len(c.Children) == 0 {
			t.Child(r.label(c))
			continue
		}
		t.Child(r.tree(c))
	}
	return t
}

func (r *Renderer) label(n *display.TreeNode) string {
	if n.Kind == display.KindRoot {
		return style.MutedStyle.Render("(root)")
	}

	var b strings.Builder
	if n.Kind == display.KindSnippet {
		b.WriteString(style.SnippetStyle.Render(n.Name))
	} else {
		b.WriteString(style.TagStyle.Render(n.Name))
	}
	for _, a := range n.Attributes {
		b.WriteString(" " + style.AttributeStyle.Render(a.Name) + "=" + strconv.Quote(a.Value))
	}
	if n.Count > 1 {
		b.WriteString(" " + style.InfoStyle.Render("×"+strconv.Itoa(n.Count)))
	}
	if len(n.Classes) > 0 {
		b.WriteString(" " + style.MutedStyle.Render("["+strings.Join(n.Classes, ", ")+"]"))
	}
	return b.String()
}

func (r *Renderer) table(l *display.Listing) string {
	rows := make([][]string, 0, len(l.Items))
	for _, item := range l.Items {
		rows = append(rows, []string{item.Key, item.Kind, item.Value})
	}

	kindStyles := map[string]lipgloss.Style{
		"abbreviation": style.TagStyle,
		"expando":      style.ExpandoStyle,
		"reference":    style.ReferenceStyle,
		"snippet":      style.SnippetStyle,
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.BorderColor)).
		Headers("KEY", "KIND", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Inherit(style.SubtitleStyle)
			}
			if col == 1 && row >= 0 && row < len(rows) {
				if s, ok := kindStyles[rows[row][1]]; ok {
					return base.Inherit(s)
				}
			}
			return base
		})

	title := style.TitleStyle.Render(l.DocType + " " + l.Section)
	return title + "\n" + t.String()
}

func (r *Renderer) report(rep *display.SettingsReport) string {
	var lines []string
	for _, src := range rep.Sources {
		lines = append(lines, style.MutedStyle.Render("source ")+style.PathStyle.Render(src))
	}
	for _, ty := range rep.Types {
		name := style.TagStyle.Render(ty.Name)
		if ty.Default {
			name += style.MutedStyle.Render(" (default)")
		}
		lines = append(lines, fmt.Sprintf("%s %s  %d abbreviations, %d snippets",
			style.InfoIndicator, name, ty.Abbreviations, ty.Snippets))
	}
	if rep.Valid {
		lines = append(lines, style.SuccessIndicator+" "+style.SuccessStyle.Render("settings are valid"))
	} else {
		lines = append(lines, style.ErrorIndicator+" "+style.ErrorStyle.Render("settings are invalid: ")+rep.Error)
	}
	return style.BoxStyle.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

// RenderError renders an error with its code
func (r *Renderer) RenderError(err error) error {
	code := errors.GetErrorCode(err)
	return r.println(style.ErrorIndicator + " " + style.ErrorStyle.Render(string(code)) + " " + err.Error())
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(style.Render(msg))
}
