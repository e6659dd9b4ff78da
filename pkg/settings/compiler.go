package settings

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/zen/pkg/resources"
	"github.com/dlclark/regexp2"
)

// Keys with special meaning inside a document type
const (
	KeyAbbreviations = "abbreviations"
	KeySnippets      = "snippets"
	KeyElementTypes  = "element_types"
	KeyExtends       = "extends"
)

var (
	// A single opening or self-closing tag, optionally namespaced (xsl:when)
	reTag = regexp2.MustCompile(
		`^<([\w\-]+(?:\:\w+)?)((?:\s+[\w\-]+(?:\s*=\s*(?:(?:"[^"]*")|(?:'[^']*')|[^>\s]+))?)*)\s*(\/?)>`,
		regexp2.None)

	// name="value" or name='value'; the closing quote must match the opening one
	reAttrs = regexp2.MustCompile(`([\w\-]+)\s*=\s*(['"])(.*?)\2`, regexp2.None)
)

// Parse walks a raw settings tree and returns a copy in which every
// "abbreviations" table has been compiled into map[string]resources.Entry.
// Every other object-valued property is walked recursively; leaves are
// copied unchanged.
func Parse(raw map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		m, isMap := value.(map[string]interface{})
		switch {
		case key == KeyAbbreviations && isMap:
			out[key] = ParseAbbreviations(m)
		case isMap:
			out[key] = Parse(m)
		default:
			out[key] = value
		}
	}
	return out
}

// ParseAbbreviations compiles one abbreviations table
func ParseAbbreviations(table map[string]interface{}) map[string]resources.Entry {
	entries := make(map[string]resources.Entry, len(table))
	for key, value := range table {
		key = strings.TrimSpace(key)
		entries[key] = ParseEntry(key, toString(value))
	}
	return entries
}

// ParseEntry classifies a single abbreviation definition. It never fails:
// anything that is neither an expando key nor a tag is kept as a reference
// and only checked when a tree is built.
func ParseEntry(key, value string) resources.Entry {
	if strings.HasSuffix(key, "+") {
		return resources.NewExpandoEntry(key, value)
	}

	if m, err := reTag.FindStringMatch(value); err == nil && m != nil {
		groups := m.Groups()
		abbr := &resources.Abbreviation{
			Name:       groups[1].String(),
			IsEmpty:    groups[3].String() == "/",
			Attributes: parseAttributes(groups[2].String()),
		}
		return resources.NewAbbreviationEntry(key, abbr)
	}

	return resources.NewReferenceEntry(key, strings.TrimSpace(value))
}

func parseAttributes(attrs string) []resources.Attribute {
	if attrs == "" {
		return nil
	}

	var result []resources.Attribute
	m, err := reAttrs.FindStringMatch(attrs)
	for err == nil && m != nil {
		groups := m.Groups()
		result = append(result, resources.Attribute{
			Name:  groups[1].String(),
			Value: groups[3].String(),
		})
		m, err = reAttrs.FindNextMatch(m)
	}
	return result
}

// CreateMaps returns a copy of raw in which every comma separated list
// under an "element_types" property has become a resources.ElementSet.
// Other object-valued properties are walked recursively.
func CreateMaps(raw map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		m, isMap := value.(map[string]interface{})
		switch {
		case key == KeyElementTypes && isMap:
			sets := make(map[string]resources.ElementSet, len(m))
			for kind, list := range m {
				sets[kind] = resources.NewElementSet(toString(list))
			}
			out[key] = sets
		case isMap:
			out[key] = CreateMaps(m)
		default:
			out[key] = value
		}
	}
	return out
}

// Extend deep-merges child into parent, in place. When both sides hold an
// object under the same key the objects are merged recursively; otherwise
// the child's value replaces the parent's.
func Extend(parent, child map[string]interface{}) {
	for key, childVal := range child {
		if childMap, ok := childVal.(map[string]interface{}); ok {
			if parentMap, ok := parent[key].(map[string]interface{}); ok {
				Extend(parentMap, childMap)
				continue
			}
		}
		parent[key] = cloneValue(childVal)
	}
}

// Clone returns a deep copy of a raw settings tree
func Clone(raw map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(val interface{}) interface{} {
	switch v := val.(type) {
	case map[string]interface{}:
		return Clone(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case []interface{}:
		// YAML users sometimes write element lists as sequences
		parts := make([]string, len(s))
		for i, item := range s {
			parts[i] = toString(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
