package configure

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/zen/pkg/commands/session"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/settings"
	"github.com/arthur-debert/zen/pkg/ui/display"
)

// DumpOptions defines the options for the Dump command.
type DumpOptions struct {
	Session session.Options
	// Format is toml (default) or yaml.
	Format string
}

// Dump serializes the merged settings tree, before compilation.
func Dump(opts DumpOptions) ([]byte, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Dump").Str("format", opts.Format).Msg("Executing command")

	sess, err := session.Load(opts.Session)
	if err != nil {
		return nil, err
	}
	return settings.Dump(sess.Raw, opts.Format)
}

// CheckOptions defines the options for the Check command.
type CheckOptions struct {
	Session session.Options
}

// Check compiles the settings and resolves every reference in every
// document type. A failed validation is part of the report, not an error;
// only settings that cannot be loaded at all return one.
func Check(opts CheckOptions) (*display.SettingsReport, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Check").Msg("Executing command")

	sess, err := session.Load(opts.Session)
	if err != nil {
		return nil, err
	}

	validation := sess.Settings.Validate()
	if validation != nil {
		log.Warn().Err(validation).Msg("Settings failed validation")
	}
	return display.NewSettingsReport(sess.Settings, sess.Sources, validation), nil
}

// InitOptions defines the options for the Init command.
type InitOptions struct {
	// Path defaults to $XDG_CONFIG_HOME/zen/settings.toml.
	Path  string
	Force bool
}

// InitResult reports where the starter settings were written
type InitResult struct {
	Path string `json:"path"`
}

// Init writes the commented starter settings file.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Init").Str("path", opts.Path).Bool("force", opts.Force).Msg("Executing command")

	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}
	if err := settings.Init(ctx, path, opts.Force); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &InitResult{Path: abs}, nil
}

// DefaultPath is where Init writes when no path is given
func DefaultPath() string {
	return settings.UserConfigCandidates()[0]
}
