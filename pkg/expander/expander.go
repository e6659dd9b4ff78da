// Package expander wires extraction, parsing and rendering together.
//
// It is the entry point for hosts: editors hand it the text before the
// caret (or a selection) and insert the Output of the returned Result. An
// abbreviation that does not parse is not an error here; the Result simply
// reports Expanded == false.
package expander

import (
	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/extract"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/render"
	"github.com/arthur-debert/zen/pkg/resources"
	"github.com/arthur-debert/zen/pkg/tree"
	"github.com/rs/zerolog"
)

// Result is the outcome of one expansion
type Result struct {
	// Abbreviation is the text that was expanded (after extraction)
	Abbreviation string `json:"abbreviation"`
	// Output is the rendered markup, empty when nothing was expanded
	Output   string `json:"output"`
	Expanded bool   `json:"expanded"`
}

// Expander expands abbreviations against one compiled Settings value.
// It holds no mutable state and may be shared between goroutines.
type Expander struct {
	settings *resources.Settings
	parser   *tree.Parser
	renderer *render.Renderer
	logger   zerolog.Logger
}

// New creates an expander. A nil lineEnding uses the configured newline.
func New(s *resources.Settings, lineEnding render.LineEnding) *Expander {
	if lineEnding == nil {
		lineEnding = render.Newline(s.Newline)
	}
	return &Expander{
		settings: s,
		parser:   tree.NewParser(s),
		renderer: render.New(s.Indentation, lineEnding),
		logger:   logging.GetLogger("expander"),
	}
}

// Settings returns the settings the expander was built with
func (e *Expander) Settings() *resources.Settings { return e.settings }

// Renderer returns the renderer used for output
func (e *Expander) Renderer() *render.Renderer { return e.renderer }

// Parse builds the tree of abbr without rendering it
func (e *Expander) Parse(abbr, docType string) (*tree.Tag, error) {
	return e.parser.Parse(abbr, docType)
}

// Expand renders abbr for docType. Configuration problems are returned as
// errors; an invalid abbreviation yields an unexpanded Result.
func (e *Expander) Expand(abbr, docType string, format bool) (Result, error) {
	result := Result{Abbreviation: abbr}

	root, err := e.parser.Parse(abbr, docType)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrInvalidAbbreviation) {
			e.logger.Debug().Str("abbreviation", abbr).Msg("Not an abbreviation")
			return result, nil
		}
		return result, err
	}

	result.Output = e.renderer.Render(root, format)
	result.Expanded = true
	e.logger.Debug().
		Str("abbreviation", abbr).
		Str("type", docType).
		Bool("format", format).
		Int("length", len(result.Output)).
		Msg("Expanded abbreviation")
	return result, nil
}

// ExpandText extracts the abbreviation at the end of text and expands it
func (e *Expander) ExpandText(text, docType string, format bool) (Result, error) {
	abbr := extract.Abbreviation(text)
	if abbr == "" {
		return Result{}, nil
	}
	return e.Expand(abbr, docType, format)
}

// ExpandSource expands the abbreviation a host text source points at.
// Formatted output is indented to the padding of the caret's line so it
// can be inserted in place.
func (e *Expander) ExpandSource(src TextSource, docType string, format bool) (Result, error) {
	abbr := FindAbbreviation(src)
	if abbr == "" {
		return Result{}, nil
	}
	result, err := e.Expand(abbr, docType, format)
	if err != nil || !result.Expanded || !format {
		return result, err
	}
	if pad := src.LinePadding(); pad != "" {
		result.Output = e.renderer.PadWith(result.Output, pad)
	}
	return result, nil
}
