package hublfix

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hedgehog-cloud/hublfix/internal/version"
	"github.com/hedgehog-cloud/hublfix/pkg/cobrax/topics"
	"github.com/hedgehog-cloud/hublfix/pkg/commands"
	"github.com/hedgehog-cloud/hublfix/pkg/config"
	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/filesystem"
	"github.com/hedgehog-cloud/hublfix/pkg/logging"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
	"github.com/hedgehog-cloud/hublfix/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbosity int
	dryRun    bool
	root      string
	dir       string
	format    string
	keep      int
}

// overrides turns the flags the user actually set into config keys.
func (g *globalOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	out := map[string]interface{}{}
	if flags.Changed("dir") {
		out["templates.dir"] = g.dir
	}
	if flags.Changed("format") {
		out["output.format"] = g.format
	}
	if flags.Changed("keep") {
		out["consolidate.keep"] = g.keep
	}
	return out
}

// session is what a command needs once flags and configuration are resolved.
type session struct {
	cfg      *config.Config
	fs       types.FS
	renderer ui.Renderer
	errOut   ui.Renderer
}

func (g *globalOptions) rootDir() (string, error) {
	if g.root != "" {
		return g.root, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, MsgErrWorkDir)
	}
	return wd, nil
}

// styledHelp reports whether help topics may use ANSI styling, which is only
// when the output format resolves to term. An unreadable configuration
// leaves the --format flag in charge.
func (g *globalOptions) styledHelp() bool {
	name := g.format
	if name == config.FormatAuto {
		if root, err := g.rootDir(); err == nil {
			if cfg, err := config.Load(root, nil); err == nil {
				name = cfg.Output.Format
			}
		}
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return false
	}
	return format.Resolve(os.Stdout) == ui.FormatTerminal
}

func (g *globalOptions) open(cmd *cobra.Command) (*session, error) {
	root, err := g.rootDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root, g.overrides(cmd))
	if err != nil {
		return nil, err
	}

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}
	errRenderer, err := ui.NewRenderer(format, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		fs:       filesystem.NewOS(),
		renderer: renderer,
		errOut:   errRenderer,
	}, nil
}

// report renders a run result, then the error if there is one. A partial
// result from a run that failed midway is still shown.
func (s *session) report(result interface{}, err error) error {
	if result != nil {
		if rr, ok := result.(*types.RunResult); !ok || rr != nil {
			if rerr := s.renderer.RenderResult(result); rerr != nil {
				return rerr
			}
		}
	}
	if err != nil {
		_ = s.errOut.RenderError(err)
		return &ReportedError{Err: err}
	}
	return nil
}

// ReportedError wraps an error that was already shown to the user.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }
func (e *ReportedError) Unwrap() error { return e.Err }

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "hublfix",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	pf.StringVar(&opts.root, "root", "", MsgFlagRoot)
	pf.StringVarP(&opts.dir, "dir", "d", "", MsgFlagDir)
	pf.StringVar(&opts.format, "format", config.FormatAuto, MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "config", Title: "CONFIGURATION:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newScanCmd(opts))
	rootCmd.AddCommand(newConsolidateCmd(opts))
	rootCmd.AddCommand(newInlineCmd(opts))
	rootCmd.AddCommand(newFixCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newVersionCmd())

	if _, err := topics.InitializeWithOptions(rootCmd, TopicsFS(), "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewMarkdownRenderer(opts.styledHelp),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newScanCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "scan [files...]",
		Short:             MsgScanShort,
		Long:              MsgScanLong,
		GroupID:           "core",
		ValidArgsFunction: templateCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			result, err := commands.Scan(commands.ScanOptions{
				FS:     s.fs,
				Config: s.cfg,
				Files:  args,
			})
			return s.report(result, err)
		},
	}
}

func newConsolidateCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "consolidate [files...]",
		Short:             MsgConsolidateShort,
		Long:              MsgConsolidateLong,
		GroupID:           "core",
		ValidArgsFunction: templateCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			result, err := commands.Consolidate(commands.ConsolidateOptions{
				FS:     s.fs,
				Config: s.cfg,
				Files:  args,
				DryRun: opts.dryRun,
			})
			return s.report(result, err)
		},
	}
	cmd.Flags().IntVarP(&opts.keep, "keep", "k", 0, MsgFlagKeep)
	return cmd
}

func newInlineCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "inline [files...]",
		Short:             MsgInlineShort,
		Long:              MsgInlineLong,
		GroupID:           "core",
		ValidArgsFunction: templateCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			result, err := commands.Inline(commands.InlineOptions{
				FS:     s.fs,
				Config: s.cfg,
				Files:  args,
				DryRun: opts.dryRun,
			})
			return s.report(result, err)
		},
	}
}

func newFixCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "fix [files...]",
		Short:             MsgFixShort,
		Long:              MsgFixLong,
		GroupID:           "core",
		ValidArgsFunction: templateCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			result, err := commands.Fix(commands.FixOptions{
				FS:     s.fs,
				Config: s.cfg,
				Files:  args,
				DryRun: opts.dryRun,
			})
			return s.report(result, err)
		},
	}
	cmd.Flags().IntVarP(&opts.keep, "keep", "k", 0, MsgFlagKeep)
	return cmd
}

func newWatchCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_ = s.renderer.RenderMessage(fmt.Sprintf(MsgWatching, s.cfg.TemplatesDir()))
			err = commands.Watch(ctx, commands.WatchOptions{
				FS:     s.fs,
				Config: s.cfg,
				DryRun: opts.dryRun,
				OnResult: func(result *types.RunResult, err error) {
					// Problems with one template never stop the watch.
					_ = s.report(result, err)
				},
			})
			return s.report(nil, err)
		},
	}
	cmd.Flags().IntVarP(&opts.keep, "keep", "k", 0, MsgFlagKeep)
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var initFile, defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}

			if initFile || defaults {
				result, err := commands.GenConfig(commands.GenConfigOptions{
					Root:  s.cfg.Root,
					Write: initFile,
					FS:    s.fs,
				})
				return s.report(result, err)
			}

			data, err := config.Dump(s.cfg)
			if err != nil {
				return s.report(nil, err)
			}
			compiled, err := s.cfg.Compile()
			if err != nil {
				return s.report(nil, err)
			}
			out := cmd.OutOrStdout()
			if len(s.cfg.Sources) == 0 {
				_, _ = fmt.Fprint(out, MsgNoConfigFile)
			}
			for _, src := range s.cfg.Sources {
				_, _ = fmt.Fprintf(out, MsgConfigSource, src)
			}
			if compiled.Lookback != s.cfg.Annotation.Lookback {
				_, _ = fmt.Fprintf(out, MsgLookbackRaised, compiled.Lookback)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, MsgFlagInit)
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	cmd.MarkFlagsMutuallyExclusive("init", "defaults")
	return cmd
}

// templateCompletion completes template names from the configured directory.
func templateCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.Load(".", nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	entries, err := filesystem.NewOS().ReadDir(cfg.TemplatesDir())
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, cfg.TemplatesDir()+string(os.PathSeparator)+e.Name())
		}
	}
	return names, cobra.ShellCompDirectiveDefault
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return errors.New(errors.ErrInternal, MsgErrNoHelp)
		},
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

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "HUBLFIX",
				Section: "1",
				Source:  "hublfix " + version.Version,
				Manual:  "hublfix manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}
