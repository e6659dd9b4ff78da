package expand

import (
	"github.com/arthur-debert/zen/pkg/commands/session"
	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/expander"
	"github.com/arthur-debert/zen/pkg/logging"
)

// ExpandOptions defines the options for the Expand command.
type ExpandOptions struct {
	Session session.Options

	// Abbreviations are expanded as given, one result each.
	Abbreviations []string
	// Text, when set, is searched for an abbreviation at its end instead.
	Text string

	// Compact disables indentation and line breaks.
	Compact bool
	// Cursor strips the cursor markers and records the first offset.
	Cursor bool
	// Check parses each output as markup and counts its elements. It
	// requires Compact.
	Check bool
}

// Item is the outcome for one abbreviation
type Item struct {
	expander.Result
	// Cursor is the caret offset in Output, -1 when not requested or absent
	Cursor int `json:"cursor"`
	// Elements is the element count found by Check
	Elements int `json:"elements,omitempty"`
}

// ExpandResult holds one item per abbreviation, in input order
type ExpandResult struct {
	DocType string `json:"type"`
	Items   []Item `json:"items"`
}

// Expand renders every requested abbreviation.
func Expand(opts ExpandOptions) (*ExpandResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Expand").Msg("Executing command")

	if len(opts.Abbreviations) == 0 && opts.Text == "" {
		return nil, errors.New(errors.ErrInvalidInput, "nothing to expand")
	}
	if opts.Check && !opts.Compact {
		return nil, errors.New(errors.ErrInvalidInput, "checking requires compact output").
			WithDetail("option", "check")
	}

	sess, err := session.Load(opts.Session)
	if err != nil {
		return nil, err
	}
	ex := expander.New(sess.Settings, nil)
	format := !opts.Compact

	var results []expander.Result
	if opts.Text != "" {
		r, err := ex.ExpandText(opts.Text, sess.DocType, format)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	for _, abbr := range opts.Abbreviations {
		r, err := ex.Expand(abbr, sess.DocType, format)
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "failed to expand %q", abbr).
				WithDetail("abbreviation", abbr)
		}
		results = append(results, r)
	}

	out := &ExpandResult{DocType: sess.DocType, Items: make([]Item, len(results))}
	for i, r := range results {
		item := Item{Result: r, Cursor: -1}
		if opts.Cursor {
			item.Output, item.Cursor = expander.PlaceCursor(r.Output)
		}
		if opts.Check && r.Expanded {
			n, err := expander.CountElements(stripMarkers(item.Output))
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrMalformedOutput, "%q expands to malformed markup", r.Abbreviation).
					WithDetail("abbreviation", r.Abbreviation).
					WithDetail("output", item.Output)
			}
			item.Elements = n
		}
		out.Items[i] = item
	}

	log.Info().Str("command", "Expand").Int("count", len(out.Items)).Msg("Command finished")
	return out, nil
}

func stripMarkers(output string) string {
	s, _ := expander.PlaceCursor(output)
	return s
}
