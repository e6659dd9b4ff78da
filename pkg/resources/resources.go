package resources

import (
	"sort"

	"github.com/arthur-debert/zen/pkg/errors"
)

// ChildToken is the placeholder a snippet template uses for its children
const ChildToken = "${child}"

// ResourceSet bundles the resources of one document type
type ResourceSet struct {
	Type          string
	Abbreviations map[string]Entry
	Snippets      map[string]string
	ElementTypes  map[string]ElementSet
}

// NewResourceSet creates an empty resource set for docType
func NewResourceSet(docType string) *ResourceSet {
	return &ResourceSet{
		Type:          docType,
		Abbreviations: make(map[string]Entry),
		Snippets:      make(map[string]string),
		ElementTypes:  make(map[string]ElementSet),
	}
}

// Snippet returns the template registered under name
func (r *ResourceSet) Snippet(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	s, ok := r.Snippets[name]
	return s, ok
}

// IsSnippet reports whether name is a known snippet
func (r *ResourceSet) IsSnippet(name string) bool {
	_, ok := r.Snippet(name)
	return ok
}

// Lookup returns the abbreviation table entry for key
func (r *ResourceSet) Lookup(key string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	e, ok := r.Abbreviations[key]
	return e, ok
}

// Expando returns the replacement text of the expando registered under key.
// Keys of other entry types are not expandos.
func (r *ResourceSet) Expando(key string) (string, bool) {
	e, ok := r.Lookup(key)
	if !ok || e.Type != EntryExpando {
		return "", false
	}
	return e.Value, true
}

// Resolve returns the abbreviation a tag name expands to, following at most
// one reference. A name with no entry is a plain tag and resolves to nil.
// A reference to a missing key, or to anything but an abbreviation, is a
// configuration error.
func (r *ResourceSet) Resolve(name string) (*Abbreviation, error) {
	entry, ok := r.Lookup(name)
	if !ok {
		return nil, nil
	}

	switch entry.Type {
	case EntryAbbreviation:
		return entry.Abbreviation, nil
	case EntryExpando:
		return nil, nil
	}

	target, ok := r.Lookup(entry.Value)
	if !ok {
		return nil, errors.Newf(errors.ErrUnresolvedReference,
			"abbreviation %q refers to unknown key %q", name, entry.Value).
			WithDetail("type", r.Type).
			WithDetail("key", name)
	}
	if target.Type != EntryAbbreviation {
		return nil, errors.Newf(errors.ErrReferenceChain,
			"abbreviation %q refers to %q, which is a %s, not an abbreviation", name, entry.Value, target.Type).
			WithDetail("type", r.Type).
			WithDetail("key", name)
	}
	return target.Abbreviation, nil
}

// Elements returns the named classification set, or an empty set
func (r *ResourceSet) Elements(kind string) ElementSet {
	if r == nil || r.ElementTypes == nil {
		return ElementSet{}
	}
	if set, ok := r.ElementTypes[kind]; ok {
		return set
	}
	return ElementSet{}
}

// IsEmptyElement reports whether name is in the "empty" set
func (r *ResourceSet) IsEmptyElement(name string) bool {
	return r.Elements(ElementsEmpty).Has(name)
}

// IsInline reports whether name is in the "inline_level" set
func (r *ResourceSet) IsInline(name string) bool {
	return r.Elements(ElementsInline).Has(name)
}

// IsBlock reports whether name is in the "block_level" set
func (r *ResourceSet) IsBlock(name string) bool {
	return r.Elements(ElementsBlock).Has(name)
}

// Keys returns the abbreviation keys in sorted order
func (r *ResourceSet) Keys() []string {
	keys := make([]string, 0, len(r.Abbreviations))
	for k := range r.Abbreviations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SnippetNames returns the snippet names in sorted order
func (r *ResourceSet) SnippetNames() []string {
	names := make([]string, 0, len(r.Snippets))
	for k := range r.Snippets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Validate resolves every reference of the set and returns the first failure
func (r *ResourceSet) Validate() error {
	for _, key := range r.Keys() {
		if r.Abbreviations[key].Type != EntryReference {
			continue
		}
		if _, err := r.Resolve(key); err != nil {
			return err
		}
	}
	return nil
}

// Settings is the compiled configuration: presentation options plus one
// resource set per document type.
type Settings struct {
	Indentation string
	Newline     string
	DefaultType string
	Types       map[string]*ResourceSet
}

// NewSettings creates settings with the given presentation options
func NewSettings(indentation, newline, defaultType string) *Settings {
	return &Settings{
		Indentation: indentation,
		Newline:     newline,
		DefaultType: defaultType,
		Types:       make(map[string]*ResourceSet),
	}
}

// ResourceSet returns the resources of docType. An empty docType selects
// the default type.
func (s *Settings) ResourceSet(docType string) (*ResourceSet, error) {
	if docType == "" {
		docType = s.DefaultType
	}
	res, ok := s.Types[docType]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownDocType, "no resources for document type %q", docType).
			WithDetail("type", docType)
	}
	return res, nil
}

// TypeNames returns the document types in sorted order
func (s *Settings) TypeNames() []string {
	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every document type; see ResourceSet.Validate
func (s *Settings) Validate() error {
	if _, ok := s.Types[s.DefaultType]; !ok {
		return errors.Newf(errors.ErrConfigValid, "default type %q has no resources", s.DefaultType)
	}
	for _, name := range s.TypeNames() {
		if err := s.Types[name].Validate(); err != nil {
			return err
		}
	}
	return nil
}
