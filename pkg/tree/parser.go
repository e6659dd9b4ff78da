// Package tree turns abbreviations into element trees.
//
// An abbreviation is a sequence of tokens of the form
//
//	(op)?(name)(#id)?(.class)*(*count)?
//
// where op is '>' (descend into the previous element) or '+' (sibling).
// A trailing "name+" is first replaced by the expando registered under that
// key. Names that match a snippet become Snippet nodes, every other name
// becomes a Tag resolved through the abbreviation table.
package tree

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/resources"
	"github.com/rs/zerolog"
)

var reExpando = regexp.MustCompile(`(?i)[a-z][\w:\-]*\+$`)

// Parser builds trees against compiled settings
type Parser struct {
	settings *resources.Settings
	logger   zerolog.Logger
}

// NewParser creates a parser for the given settings
func NewParser(s *resources.Settings) *Parser {
	return &Parser{
		settings: s,
		logger:   logging.GetLogger("tree"),
	}
}

// Parse builds the tree of abbr for docType ("" selects the default type).
// An abbreviation that does not fully match the grammar yields an
// ErrInvalidAbbreviation error; resource problems yield configuration
// errors.
func (p *Parser) Parse(abbr, docType string) (*Tag, error) {
	res, err := p.settings.ResourceSet(docType)
	if err != nil {
		return nil, err
	}
	return parse(abbr, res, p.logger)
}

// Parse builds the tree of abbr against a single resource set
func Parse(abbr string, res *resources.ResourceSet) (*Tag, error) {
	return parse(abbr, res, logging.GetLogger("tree"))
}

func parse(abbr string, res *resources.ResourceSet, logger zerolog.Logger) (*Tag, error) {
	if abbr == "" {
		return nil, errors.New(errors.ErrInvalidAbbreviation, "empty abbreviation")
	}

	source := abbr
	abbr = ExpandExpando(abbr, res)
	if abbr != source {
		logger.Trace().Str("abbreviation", source).Str("expanded", abbr).Msg("Replaced expando")
	}

	tokens, residue := scan(abbr)
	if residue >= 0 {
		return nil, errors.Newf(errors.ErrInvalidAbbreviation, "invalid abbreviation %q", source).
			WithDetail("offset", residue).
			WithDetail("residue", abbr[residue:])
	}

	root := NewRoot(res)
	var parent Node = root
	var last Node

	for _, tok := range tokens {
		var current Node
		if res.IsSnippet(tok.name) {
			current = NewSnippet(tok.name, tok.count, res)
		} else {
			tag, err := NewTag(tok.name, tok.count, res)
			if err != nil {
				return nil, errors.Wrapf(err, errors.GetErrorCode(err), "cannot build %q", source)
			}
			current = tag
		}

		if tok.id != "" {
			current.AddAttribute("id", tok.id)
		}
		if len(tok.classes) > 0 {
			current.AddAttribute("class", strings.Join(tok.classes, " "))
		}

		if tok.op == '>' && last != nil {
			parent = last
		}
		parent.AddChild(current)
		last = current

		logger.Trace().
			Str("name", current.Name()).
			Int("count", current.Count()).
			Str("parent", parent.Name()).
			Msg("Placed node")
	}

	return root, nil
}

// ExpandExpando replaces a trailing "name+" with the expando registered
// under that exact key. Anything else is returned unchanged.
func ExpandExpando(abbr string, res *resources.ResourceSet) string {
	loc := reExpando.FindStringIndex(abbr)
	if loc == nil {
		return abbr
	}
	value, ok := res.Expando(abbr[loc[0]:loc[1]])
	if !ok {
		return abbr
	}
	return abbr[:loc[0]] + value
}
