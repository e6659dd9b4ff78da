package zen

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "Expand Zen Coding abbreviations into markup"
	MsgExpandShort        = "Expand abbreviations"
	MsgExtractShort       = "Print the abbreviation at the end of a text"
	MsgTreeShort          = "Show the element tree of an abbreviation"
	MsgListShort          = "List the resources of a document type"
	MsgSettingsShort      = "Inspect and create settings files"
	MsgSettingsDumpShort  = "Print the merged settings"
	MsgSettingsCheckShort = "Validate the merged settings"
	MsgSettingsInitShort  = "Write a starter settings file"
	MsgManShort           = "Generate man pages"
	MsgCompletionShort    = "Generate shell completion script"

	// Status messages
	MsgNotExpanded       = "not an abbreviation: %q\n"
	MsgCursorOffset      = "cursor: %d\n"
	MsgElementCount      = "%q: %d elements, well-formed\n"
	MsgSettingsWritten   = "Wrote starter settings to %s"
	MsgManWritten        = "Wrote man pages to %s"
	MsgHintSettingsCheck = "Run 'zen settings check' to validate your settings."

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrNothingToDo  = "give at least one abbreviation, or --stdin"
	MsgErrReadStdin    = "failed to read stdin: %w"
	MsgErrNotExpanded  = "%d abbreviation(s) could not be expanded"
	MsgErrInvalid      = "settings are not valid: %s"
	MsgErrGenerateMan  = "failed to generate man pages: %w"
	MsgErrCreateManDir = "failed to create %s: %w"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Settings file layered over the defaults (repeatable)"
	MsgFlagType         = "Document type (html, xsl, css, ...)"
	MsgFlagNewline      = "Line ending of formatted output (lf, crlf, cr)"
	MsgFlagFormat       = "Output format (auto, term, text, json)"
	MsgFlagExpandFormat = "Output format (text, json)"
	MsgFlagCompact      = "Render without indentation or line breaks"
	MsgFlagStdin        = "Expand the abbreviation at the end of stdin"
	MsgFlagCursor       = "Strip caret markers and print the first offset on stderr"
	MsgFlagCheck        = "Fail unless every expansion is well-formed markup (needs --compact)"
	MsgFlagOutput       = "Serialization of the dump (toml, yaml)"
	MsgFlagForce        = "Replace an existing settings file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/expand-long.txt
	msgExpandLongRaw string
	MsgExpandLong    = strings.TrimSpace(msgExpandLongRaw)

	//go:embed msgs/expand-example.txt
	msgExpandExampleRaw string
	MsgExpandExample    = strings.TrimRight(msgExpandExampleRaw, "\n")

	//go:embed msgs/extract-long.txt
	msgExtractLongRaw string
	MsgExtractLong    = strings.TrimSpace(msgExtractLongRaw)

	//go:embed msgs/tree-long.txt
	msgTreeLongRaw string
	MsgTreeLong    = strings.TrimSpace(msgTreeLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/settings-long.txt
	msgSettingsLongRaw string
	MsgSettingsLong    = strings.TrimSpace(msgSettingsLongRaw)

	//go:embed msgs/settings-example.txt
	msgSettingsExampleRaw string
	MsgSettingsExample    = strings.TrimRight(msgSettingsExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
