package resources

// EntryType discriminates the three kinds of abbreviation table entries
type EntryType string

const (
	// EntryAbbreviation expands to a tag with default attributes
	EntryAbbreviation EntryType = "abbreviation"
	// EntryExpando is literal replacement text for a trailing "+" key
	EntryExpando EntryType = "expando"
	// EntryReference names another abbreviation key to resolve through
	EntryReference EntryType = "reference"
)

// Attribute is a single name="value" pair. An empty Value renders as a
// cursor slot when output is formatted.
type Attribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Abbreviation is the expansion target of an abbreviation entry
type Abbreviation struct {
	Name       string      `json:"name"`
	IsEmpty    bool        `json:"is_empty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// Entry is one compiled abbreviation table entry. Abbreviation is set only
// for EntryAbbreviation; Value is set for expandos and references.
type Entry struct {
	Type         EntryType     `json:"type"`
	Key          string        `json:"key"`
	Value        string        `json:"value,omitempty"`
	Abbreviation *Abbreviation `json:"abbreviation,omitempty"`
}

// NewAbbreviationEntry creates an abbreviation entry
func NewAbbreviationEntry(key string, abbr *Abbreviation) Entry {
	return Entry{Type: EntryAbbreviation, Key: key, Abbreviation: abbr}
}

// NewExpandoEntry creates an expando entry
func NewExpandoEntry(key, value string) Entry {
	return Entry{Type: EntryExpando, Key: key, Value: value}
}

// NewReferenceEntry creates a reference entry
func NewReferenceEntry(key, target string) Entry {
	return Entry{Type: EntryReference, Key: key, Value: target}
}

// Describe returns a one-line, human readable summary of the entry
func (e Entry) Describe() string {
	switch e.Type {
	case EntryAbbreviation:
		if e.Abbreviation == nil {
			return ""
		}
		s := "<" + e.Abbreviation.Name
		for _, a := range e.Abbreviation.Attributes {
			s += " " + a.Name + `="` + a.Value + `"`
		}
		if e.Abbreviation.IsEmpty {
			return s + " />"
		}
		return s + ">"
	case EntryReference:
		return "-> " + e.Value
	default:
		return e.Value
	}
}
