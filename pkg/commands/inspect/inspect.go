package inspect

import (
	"github.com/arthur-debert/zen/pkg/commands/session"
	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/extract"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/tree"
	"github.com/arthur-debert/zen/pkg/ui/display"
)

// TreeOptions defines the options for the Tree command.
type TreeOptions struct {
	Session      session.Options
	Abbreviation string
}

// Tree parses an abbreviation and returns its tree without rendering it.
// Unlike expansion, an abbreviation that does not parse is an error here.
func Tree(opts TreeOptions) (*display.TreeResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Tree").Str("abbreviation", opts.Abbreviation).Msg("Executing command")

	sess, err := session.Load(opts.Session)
	if err != nil {
		return nil, err
	}

	root, err := tree.NewParser(sess.Settings).Parse(opts.Abbreviation, sess.DocType)
	if err != nil {
		return nil, err
	}

	return &display.TreeResult{
		Abbreviation: opts.Abbreviation,
		DocType:      sess.DocType,
		Root:         display.FromTree(root),
	}, nil
}

// ExtractResult is the output of the Extract command
type ExtractResult struct {
	Text         string `json:"text"`
	Abbreviation string `json:"abbreviation"`
}

// Extract finds the abbreviation at the end of text. It needs no settings.
func Extract(text string) (*ExtractResult, error) {
	abbr := extract.Abbreviation(text)
	if abbr == "" {
		return nil, errors.New(errors.ErrNotFound, "no abbreviation before the end of the text").
			WithDetail("text", text)
	}
	return &ExtractResult{Text: text, Abbreviation: abbr}, nil
}
