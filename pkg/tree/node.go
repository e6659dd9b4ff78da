package tree

import (
	"strings"

	"github.com/arthur-debert/zen/pkg/resources"
)

// Node is an element of an abbreviation tree: a generated tag or a snippet
type Node interface {
	Name() string
	Count() int
	Children() []Node
	Attributes() []resources.Attribute
	AddChild(child Node)
	AddAttribute(name, value string)
	IsBlock() bool
}

type element struct {
	name       string
	count      int
	children   []Node
	attributes []resources.Attribute
}

func newElement(name string, count int) element {
	if count < 1 {
		count = 1
	}
	return element{name: name, count: count}
}

func (e *element) Name() string                      { return e.name }
func (e *element) Count() int                        { return e.count }
func (e *element) Children() []Node                  { return e.children }
func (e *element) Attributes() []resources.Attribute { return e.attributes }
func (e *element) AddChild(child Node)               { e.children = append(e.children, child) }

func (e *element) AddAttribute(name, value string) {
	e.attributes = append(e.attributes, resources.Attribute{Name: name, Value: value})
}

// Tag is an element generated from a tag name, optionally resolved through
// the abbreviation table. The tree root is a Tag without a name.
type Tag struct {
	element
	abbr *resources.Abbreviation
	res  *resources.ResourceSet
}

// NewRoot returns the synthetic, nameless root of a tree
func NewRoot(res *resources.ResourceSet) *Tag {
	return &Tag{element: newElement("", 1), res: res}
}

// NewTag creates a tag for name, which is lower-cased and looked up in the
// abbreviation table. A matching abbreviation supplies the real element
// name and its default attributes.
func NewTag(name string, count int, res *resources.ResourceSet) (*Tag, error) {
	name = strings.ToLower(name)
	abbr, err := res.Resolve(name)
	if err != nil {
		return nil, err
	}

	t := &Tag{element: newElement(name, count), abbr: abbr, res: res}
	if abbr != nil {
		t.name = abbr.Name
		for _, a := range abbr.Attributes {
			t.AddAttribute(a.Name, a.Value)
		}
	}
	return t, nil
}

// IsRoot reports whether t is the synthetic tree root
func (t *Tag) IsRoot() bool { return t.name == "" }

// Abbreviation returns the resolved abbreviation entry, or nil
func (t *Tag) Abbreviation() *resources.Abbreviation { return t.abbr }

// IsEmpty reports whether the element renders self-closing
func (t *Tag) IsEmpty() bool {
	return (t.abbr != nil && t.abbr.IsEmpty) || t.res.IsEmptyElement(t.name)
}

func (t *Tag) IsInline() bool { return t.res.IsInline(t.name) }
func (t *Tag) IsBlock() bool  { return t.res.IsBlock(t.name) }

// HasBlockChildren reports whether any direct child is block level
func (t *Tag) HasBlockChildren() bool {
	for _, c := range t.children {
		if c.IsBlock() {
			return true
		}
	}
	return false
}

// Snippet is an element rendered from a named template
type Snippet struct {
	element
	res *resources.ResourceSet
}

// NewSnippet creates a snippet node. Snippets ignore attributes when
// rendered.
func NewSnippet(name string, count int, res *resources.ResourceSet) *Snippet {
	return &Snippet{element: newElement(name, count), res: res}
}

// Template returns the raw snippet text
func (s *Snippet) Template() string {
	tmpl, _ := s.res.Snippet(s.name)
	return tmpl
}

// IsBlock is always true for snippets
func (s *Snippet) IsBlock() bool { return true }
