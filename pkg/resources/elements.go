package resources

import (
	"sort"
	"strings"
)

// Element classification names used in element_types
const (
	ElementsEmpty  = "empty"
	ElementsInline = "inline_level"
	ElementsBlock  = "block_level"
)

// ElementSet is a set of element names
type ElementSet map[string]bool

// NewElementSet builds a set from a comma separated list, trimming each
// token. Empty tokens are dropped.
func NewElementSet(list string) ElementSet {
	set := make(ElementSet)
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		set[item] = true
	}
	return set
}

// Has reports membership of name
func (s ElementSet) Has(name string) bool {
	return s[name]
}

// String renders the set back into its comma separated form, sorted
func (s ElementSet) String() string {
	return strings.Join(s.Names(), ",")
}

// Names returns the members in sorted order
func (s ElementSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
