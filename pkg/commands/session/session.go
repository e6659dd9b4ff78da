// Package session loads the settings a command runs against and applies
// the global CLI overrides on top of them.
package session

import (
	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/paths"
	"github.com/arthur-debert/zen/pkg/resources"
	"github.com/arthur-debert/zen/pkg/settings"
)

// SourceBuiltin names the embedded defaults in Session.Sources
const SourceBuiltin = "(built-in)"

// Options are the settings related flags shared by every command
type Options struct {
	// ConfigFiles are layered after the user settings file, in order
	ConfigFiles []string
	// DocType overrides default_type when set
	DocType string
	// Newline overrides the newline option when set (lf, crlf, cr)
	Newline string
	// SkipUserConfig ignores the XDG settings file
	SkipUserConfig bool
}

// Session is the loaded configuration of one command invocation
type Session struct {
	// Raw is the merged settings tree before compilation
	Raw      map[string]interface{}
	Settings *resources.Settings
	// DocType is the document type commands operate on
	DocType string
	// Sources lists the layers that were merged, lowest first
	Sources []string
}

// Load merges the configured layers and compiles them
func Load(opts Options) (*Session, error) {
	log := logging.GetLogger("core.commands")

	files := make([]string, len(opts.ConfigFiles))
	for i, f := range opts.ConfigFiles {
		expanded, err := paths.ExpandHome(f)
		if err != nil {
			return nil, err
		}
		files[i] = expanded
	}

	raw, err := settings.Load(settings.LoadOptions{
		Files:          files,
		SkipUserConfig: opts.SkipUserConfig,
	})
	if err != nil {
		return nil, err
	}
	if opts.Newline != "" {
		raw["newline"] = opts.Newline
	}

	s, err := settings.Build(raw)
	if err != nil {
		return nil, err
	}

	docType := opts.DocType
	if docType == "" {
		docType = s.DefaultType
	}
	if _, err := s.ResourceSet(docType); err != nil {
		return nil, errors.Wrapf(err, errors.ErrUnknownDocType, "unknown document type %q (available: %v)", docType, s.TypeNames()).
			WithDetail("type", docType)
	}

	sources := []string{SourceBuiltin}
	if !opts.SkipUserConfig {
		if path := settings.UserConfigPath(); path != "" {
			sources = append(sources, path)
		}
	}
	sources = append(sources, files...)

	log.Debug().
		Strs("sources", sources).
		Str("type", docType).
		Msg("Settings loaded")

	return &Session{Raw: raw, Settings: s, DocType: docType, Sources: sources}, nil
}

// ResourceSet returns the resources of the session's document type
func (s *Session) ResourceSet() (*resources.ResourceSet, error) {
	return s.Settings.ResourceSet(s.DocType)
}
