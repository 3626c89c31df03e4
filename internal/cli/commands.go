package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/codemerge/internal/commands"
	"github.com/arthur-debert/codemerge/internal/version"
	"github.com/arthur-debert/codemerge/pkg/cobrax/topics"
	"github.com/arthur-debert/codemerge/pkg/config"
	"github.com/arthur-debert/codemerge/pkg/core"
	"github.com/arthur-debert/codemerge/pkg/errors"
	"github.com/arthur-debert/codemerge/pkg/logging"
	"github.com/arthur-debert/codemerge/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	verbosity  int
	configFile string
	output     string
	progress   string
	dedupe     bool
	workers    int
	maxFiles   int
}

// overrideKeys maps flag names to configuration keys
var overrideKeys = map[string]string{
	"output":    "output",
	"progress":  "progress",
	"dedupe":    "dedupe",
	"workers":   "workers",
	"max-files": "max_files",
}

// overrides collects the configuration flags the user actually set
func (g *globalFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	values := map[string]interface{}{
		"output":    g.output,
		"progress":  g.progress,
		"dedupe":    g.dedupe,
		"workers":   g.workers,
		"max-files": g.maxFiles,
	}

	out := make(map[string]interface{})
	for flag, key := range overrideKeys {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			out[key] = values[flag]
		}
	}
	return out
}

func (g *globalFlags) common(cmd *cobra.Command, args []string) core.CommonOptions {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	return core.CommonOptions{
		Root:       root,
		ConfigFile: g.configFile,
		Overrides:  g.overrides(cmd),
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	var format string

	rootCmd := &cobra.Command{
		Use:     "codemerge [dir]",
		Short:   commands.MsgRootShort,
		Long:    commands.MsgRootLong,
		Example: commands.MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithWriter(g.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, args, g, format)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&g.verbosity, "verbose", "v", commands.MsgFlagVerbose)
	pf.StringVarP(&g.configFile, "config", "c", "", commands.MsgFlagConfig)
	pf.StringVarP(&g.output, "output", "o", "", commands.MsgFlagOutput)
	pf.StringVar(&g.progress, "progress", "", commands.MsgFlagProgress)
	pf.BoolVar(&g.dedupe, "dedupe", false, commands.MsgFlagDedupe)
	pf.IntVar(&g.workers, "workers", 1, commands.MsgFlagWorkers)
	pf.IntVar(&g.maxFiles, "max-files", 0, commands.MsgFlagMaxFiles)

	rootCmd.Flags().StringVarP(&format, "format", "f", "auto", commands.MsgFlagFormat)

	rootCmd.AddCommand(newListCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())

	// Topic-based help replaces cobra's help command; logging is not set up
	// yet, so a failure only costs the topics.
	if err := topics.InitializeWithOptions(rootCmd, commands.HelpTopics(), topics.Options{
		Renderer: topics.NewGlamourRenderer(os.Stdout),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: help topics unavailable: %v\n", err)
	}

	return rootCmd
}

func runMerge(cmd *cobra.Command, args []string, g *globalFlags, format string) error {
	f, err := ui.ParseFormat(format)
	if err != nil {
		return err
	}
	if f == ui.FormatXML {
		return errors.New(errors.ErrInvalidInput, "xml output is only available for 'list'")
	}

	opts := core.MergeOptions{
		CommonOptions: g.common(cmd, args),
		Version:       version.Version,
		ProgressOut:   cmd.OutOrStdout(),
	}

	// A progress bar would corrupt machine-readable output
	if f == ui.FormatJSON || f == ui.FormatYAML {
		if _, set := opts.Overrides["progress"]; !set {
			opts.Overrides["progress"] = config.ProgressNone
		}
	}

	log.Info().
		Str("root", opts.Root).
		Interface("overrides", opts.Overrides).
		Msg("Merging")

	result, err := core.Merge(cmd.Context(), opts)
	if err != nil {
		return err
	}

	return ui.WriteSummary(cmd.OutOrStdout(), f, result)
}

func newListCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list [dir]",
		Short:   commands.MsgListShort,
		Long:    commands.MsgListLong,
		Example: commands.MsgListExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			opts := core.ListOptions{CommonOptions: g.common(cmd, args)}
			log.Info().Str("root", opts.Root).Msg("Listing")

			result, err := core.List(cmd.Context(), opts)
			if err != nil {
				return err
			}

			return ui.WriteList(cmd.OutOrStdout(), f, result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", commands.MsgFlagFormat)
	return cmd
}

func newConfigCmd(g *globalFlags) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config [dir]",
		Short:   commands.MsgConfigShort,
		Long:    commands.MsgConfigLong,
		Example: commands.MsgConfigExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			opts := g.common(cmd, args)
			cfg, err := config.Load(config.LoadOptions{
				Root:       opts.Root,
				ConfigFile: opts.ConfigFile,
				Overrides:  opts.Overrides,
			})
			if err != nil {
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "cannot render configuration")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, commands.MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: commands.MsgVersionShort,
		Long:  commands.MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, commands.MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, commands.MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, commands.MsgBuiltFormat, version.Date)
			}
		},
	}
}
