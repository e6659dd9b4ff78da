// Package commands provides high-level command implementations for zen.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the expansion engine. Every command loads
// its settings through session, then returns a value the ui package can
// render.
//
// Each command is implemented in its own subdirectory:
//   - session/   - Settings loading shared by all commands
//   - expand/    - Expand command
//   - inspect/   - Tree and Extract commands
//   - list/      - List command
//   - configure/ - Settings Dump, Check and Init commands
package commands

import (
	"context"

	"github.com/arthur-debert/zen/pkg/commands/configure"
	"github.com/arthur-debert/zen/pkg/commands/expand"
	"github.com/arthur-debert/zen/pkg/commands/inspect"
	"github.com/arthur-debert/zen/pkg/commands/list"
	"github.com/arthur-debert/zen/pkg/commands/session"
	"github.com/arthur-debert/zen/pkg/ui/display"
)

// SessionOptions are the settings flags shared by every command.
type SessionOptions = session.Options

// Expand renders abbreviations.
type ExpandOptions = expand.ExpandOptions
type ExpandResult = expand.ExpandResult

func Expand(opts ExpandOptions) (*ExpandResult, error) {
	return expand.Expand(opts)
}

// Tree parses an abbreviation without rendering it.
type TreeOptions = inspect.TreeOptions

func Tree(opts TreeOptions) (*display.TreeResult, error) {
	return inspect.Tree(opts)
}

// Extract finds the abbreviation at the end of a text.
type ExtractResult = inspect.ExtractResult

func Extract(text string) (*ExtractResult, error) {
	return inspect.Extract(text)
}

// List shows one section of a document type's resources.
type ListOptions = list.ListOptions

func List(opts ListOptions) (*display.Listing, error) {
	return list.List(opts)
}

// DumpSettings serializes the merged settings.
type DumpSettingsOptions = configure.DumpOptions

func DumpSettings(opts DumpSettingsOptions) ([]byte, error) {
	return configure.Dump(opts)
}

// CheckSettings validates the merged settings.
type CheckSettingsOptions = configure.CheckOptions

func CheckSettings(opts CheckSettingsOptions) (*display.SettingsReport, error) {
	return configure.Check(opts)
}

// InitSettings writes the starter settings file.
type InitSettingsOptions = configure.InitOptions
type InitSettingsResult = configure.InitResult

func InitSettings(ctx context.Context, opts InitSettingsOptions) (*InitSettingsResult, error) {
	return configure.Init(ctx, opts)
}
