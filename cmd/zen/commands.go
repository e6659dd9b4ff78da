package zen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/zen/internal/version"
	"github.com/arthur-debert/zen/pkg/commands"
	"github.com/arthur-debert/zen/pkg/commands/list"
	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// globalFlags are the persistent flags every command reads
type globalFlags struct {
	verbosity   int
	configFiles []string
	docType     string
	newline     string
}

func (g *globalFlags) session() commands.SessionOptions {
	return commands.SessionOptions{
		ConfigFiles: g.configFiles,
		DocType:     g.docType,
		Newline:     g.newline,
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "zen",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Info(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// no subcommand
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringArrayVar(&flags.configFiles, "config", nil, MsgFlagConfig)
	pf.StringVarP(&flags.docType, "type", "t", "", MsgFlagType)
	pf.StringVar(&flags.newline, "newline", "", MsgFlagNewline)
	_ = rootCmd.RegisterFlagCompletionFunc("newline", cobra.FixedCompletions(
		[]string{"lf", "crlf", "cr"}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("config", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"toml", "yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newExpandCmd(flags))
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newTreeCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newSettingsCmd(flags))
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if err := initTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// newRenderer builds the renderer selected by a --format flag
func newRenderer(cmd *cobra.Command, format string) (ui.Renderer, error) {
	f, err := ui.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(f, cmd.OutOrStdout())
}

func addFormatFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "format", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(ui.FormatNames, cobra.ShellCompDirectiveNoFileComp))
}

func newExpandCmd(flags *globalFlags) *cobra.Command {
	var (
		compact bool
		stdin   bool
		cursor  bool
		check   bool
		format  string
	)

	cmd := &cobra.Command{
		Use:     "expand [abbreviation...]",
		Short:   MsgExpandShort,
		Long:    MsgExpandLong,
		Example: MsgExpandExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.ExpandOptions{
				Session:       flags.session(),
				Abbreviations: args,
				Compact:       compact,
				Cursor:        cursor,
				Check:         check,
			}
			if stdin {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf(MsgErrReadStdin, err)
				}
				opts.Text = strings.TrimRight(string(data), "\r\n")
			}
			if len(opts.Abbreviations) == 0 && opts.Text == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrNothingToDo)
			}

			log.Info().
				Int("count", len(args)).
				Bool("stdin", stdin).
				Bool("compact", compact).
				Msg("Expanding abbreviations")

			result, err := commands.Expand(opts)
			if err != nil {
				return err
			}

			if format == "json" {
				renderer, err := newRenderer(cmd, format)
				if err != nil {
					return err
				}
				return renderer.RenderResult(result)
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			failed := 0
			for _, item := range result.Items {
				if !item.Expanded {
					failed++
					_, _ = fmt.Fprintf(errOut, MsgNotExpanded, item.Abbreviation)
					continue
				}
				_, _ = fmt.Fprintln(out, item.Output)
				if cursor && item.Cursor >= 0 {
					_, _ = fmt.Fprintf(errOut, MsgCursorOffset, item.Cursor)
				}
				if check {
					_, _ = fmt.Fprintf(errOut, MsgElementCount, item.Abbreviation, item.Elements)
				}
			}
			if failed > 0 {
				return errors.Newf(errors.ErrInvalidAbbreviation, MsgErrNotExpanded, failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&compact, "compact", "c", false, MsgFlagCompact)
	cmd.Flags().BoolVar(&stdin, "stdin", false, MsgFlagStdin)
	cmd.Flags().BoolVar(&cursor, "cursor", false, MsgFlagCursor)
	cmd.Flags().BoolVar(&check, "check", false, MsgFlagCheck)
	cmd.Flags().StringVar(&format, "format", "text", MsgFlagExpandFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "extract <text>",
		Short:   MsgExtractShort,
		Long:    MsgExtractLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Extract(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Abbreviation)
			return err
		},
	}
}

func newTreeCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "tree <abbreviation>",
		Short:   MsgTreeShort,
		Long:    MsgTreeLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, format)
			if err != nil {
				return err
			}

			result, err := commands.Tree(commands.TreeOptions{
				Session:      flags.session(),
				Abbreviation: args[0],
			})
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}
	addFormatFlag(cmd, &format)

	return cmd
}

func newListCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:       "list [section]",
		Short:     MsgListShort,
		Long:      MsgListLong,
		Example:   MsgListExample,
		ValidArgs: list.Sections,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		GroupID:   "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, format)
			if err != nil {
				return err
			}

			opts := commands.ListOptions{Session: flags.session()}
			if len(args) > 0 {
				opts.Section = args[0]
			}
			listing, err := commands.List(opts)
			if err != nil {
				return err
			}
			return renderer.RenderResult(listing)
		},
	}
	addFormatFlag(cmd, &format)

	return cmd
}

func newSettingsCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Short:   MsgSettingsShort,
		Long:    MsgSettingsLong,
		Example: MsgSettingsExample,
		GroupID: "core",
	}

	var output string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: MsgSettingsDumpShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := commands.DumpSettings(commands.DumpSettingsOptions{
				Session: flags.session(),
				Format:  output,
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	dumpCmd.Flags().StringVarP(&output, "output", "o", "toml", MsgFlagOutput)
	_ = dumpCmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(
		[]string{"toml", "yaml"}, cobra.ShellCompDirectiveNoFileComp))

	var format string
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: MsgSettingsCheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, format)
			if err != nil {
				return err
			}

			report, err := commands.CheckSettings(commands.CheckSettingsOptions{Session: flags.session()})
			if err != nil {
				return err
			}
			if err := renderer.RenderResult(report); err != nil {
				return err
			}
			if !report.Valid {
				return errors.Newf(errors.ErrConfigValid, MsgErrInvalid, report.Error)
			}
			return nil
		},
	}
	addFormatFlag(checkCmd, &format)

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: MsgSettingsInitShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.InitSettingsOptions{Force: force}
			if len(args) > 0 {
				opts.Path = args[0]
			}
			result, err := commands.InitSettings(cmd.Context(), opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgSettingsWritten+"\n", result.Path)
			return err
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	cmd.AddCommand(dumpCmd, checkCmd, initCmd)
	return cmd
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man <dir>",
		Short:   MsgManShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "misc",
		Hidden:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf(MsgErrCreateManDir, dir, err)
			}
			if err := doc.GenManTree(cmd.Root(), ManHeader(), dir); err != nil {
				return fmt.Errorf(MsgErrGenerateMan, err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten+"\n", dir)
			return err
		},
	}
}

// ManHeader is the header shared by every generated man page
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "ZEN",
		Section: "1",
		Source:  "zen " + version.Version,
		Manual:  "zen manual",
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
