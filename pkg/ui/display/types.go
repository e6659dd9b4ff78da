// Package display holds the output-neutral views the CLI renders.
// Every renderer (terminal, text, JSON) consumes these types only.
package display

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/zen/pkg/resources"
	"github.com/arthur-debert/zen/pkg/tree"
)

// Node kinds
const (
	KindRoot    = "root"
	KindTag     = "tag"
	KindSnippet = "snippet"
)

// Attribute is a rendered name/value pair
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TreeNode is a parse tree node prepared for display
type TreeNode struct {
	Kind       string      `json:"kind"`
	Name       string      `json:"name,omitempty"`
	Count      int         `json:"count"`
	Attributes []Attribute `json:"attributes,omitempty"`
	// Classes lists the element classifications of a tag (empty, block, inline)
	Classes  []string    `json:"classes,omitempty"`
	Children []*TreeNode `json:"children,omitempty"`
}

// TreeResult is the output of `zen tree`
type TreeResult struct {
	Abbreviation string    `json:"abbreviation"`
	DocType      string    `json:"type"`
	Root         *TreeNode `json:"root"`
}

// FromTree converts a parse tree into its display form
func FromTree(n tree.Node) *TreeNode {
	node := &TreeNode{
		Name:  n.Name(),
		Count: n.Count(),
	}

	switch v := n.(type) {
	case *tree.Tag:
		node.Kind = KindTag
		if v.IsRoot() {
			node.Kind = KindRoot
		} else {
			node.Classes = classify(v)
		}
	case *tree.Snippet:
		node.Kind = KindSnippet
	}

	for _, a := range n.Attributes() {
		node.Attributes = append(node.Attributes, Attribute{Name: a.Name, Value: a.Value})
	}
	for _, c := range n.Children() {
		node.Children = append(node.Children, FromTree(c))
	}
	return node
}

func classify(t *tree.Tag) []string {
	var classes []string
	if t.IsEmpty() {
		classes = append(classes, "empty")
	}
	if t.IsBlock() {
		classes = append(classes, "block")
	}
	if t.IsInline() {
		classes = append(classes, "inline")
	}
	return classes
}

// Label is the compact one-line description of a node:
// name, attributes and multiplier
func (n *TreeNode) Label() string {
	if n.Kind == KindRoot {
		return "(root)"
	}

	var b strings.Builder
	b.WriteString(n.Name)
	for _, a := range n.Attributes {
		b.WriteString(" " + a.Name + `="` + a.Value + `"`)
	}
	if n.Count > 1 {
		b.WriteString(" *")
		b.WriteString(strconv.Itoa(n.Count))
	}
	return b.String()
}

// ListItem is one row of a resource listing
type ListItem struct {
	Key   string `json:"key"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// Listing is the output of `zen list`
type Listing struct {
	DocType string     `json:"type"`
	Section string     `json:"section"`
	Items   []ListItem `json:"items"`
}

// Sections accepted by `zen list`
const (
	SectionAbbreviations = "abbreviations"
	SectionSnippets      = "snippets"
	SectionElements      = "elements"
)

// NewListing builds a listing of one section of a resource set
func NewListing(res *resources.ResourceSet, section string) *Listing {
	l := &Listing{DocType: res.Type, Section: section, Items: []ListItem{}}

	switch section {
	case SectionSnippets:
		for _, name := range res.SnippetNames() {
			tmpl, _ := res.Snippet(name)
			l.Items = append(l.Items, ListItem{Key: name, Kind: "snippet", Value: oneLine(tmpl)})
		}
	case SectionElements:
		for _, kind := range []string{resources.ElementsEmpty, resources.ElementsBlock, resources.ElementsInline} {
			l.Items = append(l.Items, ListItem{Key: kind, Kind: "elements", Value: res.Elements(kind).String()})
		}
	default:
		l.Section = SectionAbbreviations
		for _, key := range res.Keys() {
			entry := res.Abbreviations[key]
			l.Items = append(l.Items, ListItem{Key: key, Kind: string(entry.Type), Value: entry.Describe()})
		}
	}
	return l
}

// TypeSummary counts the resources of one document type
type TypeSummary struct {
	Name          string `json:"name"`
	Abbreviations int    `json:"abbreviations"`
	Snippets      int    `json:"snippets"`
	Default       bool   `json:"default,omitempty"`
}

// SettingsReport is the output of `zen settings check`
type SettingsReport struct {
	Sources []string      `json:"sources"`
	Types   []TypeSummary `json:"types"`
	Valid   bool          `json:"valid"`
	Error   string        `json:"error,omitempty"`
}

// NewSettingsReport summarizes compiled settings and their validation
func NewSettingsReport(s *resources.Settings, sources []string, validation error) *SettingsReport {
	r := &SettingsReport{Sources: sources, Valid: validation == nil}
	if validation != nil {
		r.Error = validation.Error()
	}
	for _, name := range s.TypeNames() {
		res := s.Types[name]
		r.Types = append(r.Types, TypeSummary{
			Name:          name,
			Abbreviations: len(res.Abbreviations),
			Snippets:      len(res.Snippets),
			Default:       name == s.DefaultType,
		})
	}
	return r
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return strings.ReplaceAll(s, "\t", `\t`)
}
