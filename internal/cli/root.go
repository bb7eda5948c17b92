package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pweiskircher/base-converter/internal/cli/middleware"
	"github.com/pweiskircher/base-converter/internal/commands"
	"github.com/pweiskircher/base-converter/internal/config"
	"github.com/pweiskircher/base-converter/internal/contracts"
	"github.com/pweiskircher/base-converter/internal/converter"
	"github.com/pweiskircher/base-converter/internal/editor"
	"github.com/pweiskircher/base-converter/internal/logging"
	"github.com/pweiskircher/base-converter/internal/output"
	"github.com/pweiskircher/base-converter/internal/tui"
	"github.com/spf13/cobra"
)

type AppContext struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Now       func() time.Time
	WorkDir   string
	LookupEnv func(string) (string, bool)

	// Interactive runs the form; tests replace it to avoid a terminal.
	Interactive  func(ctx context.Context, in io.Reader, out io.Writer, base converter.Base, log logging.Logger) error
	// LaunchEditor defaults to editor.Launch.
	LaunchEditor func(ctx context.Context, editorCmd string, path string, streams editor.Streams) error
}

type GlobalFlags struct {
	JSON       bool
	ConfigPath string
	LogLevel   string
}

type executionState struct {
	global      GlobalFlags
	commandName string
	settings    *config.RuntimeSettings
}

func (state *executionState) outputMode() contracts.OutputMode {
	if state.settings != nil {
		return state.settings.OutputMode
	}
	if state.global.JSON {
		return contracts.OutputModeJSON
	}
	return contracts.OutputModeHuman
}

func (state *executionState) resolvedCommandName() string {
	if state.commandName != "" {
		return state.commandName
	}
	return "root"
}

// Run executes the CLI using shared output and exit-code plumbing.
func Run(args []string, stdout io.Writer, stderr io.Writer) int {
	return RunWithApp(args, AppContext{
		Stdin:  os.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Now:    time.Now,
	})
}

func RunWithApp(args []string, app AppContext) int {
	app = normalizeAppContext(app)

	root, state := newRootCommand(app)
	root.SetArgs(args)
	root.SetOut(app.Stdout)
	root.SetErr(app.Stderr)

	err := root.Execute()
	if err == nil {
		return int(contracts.ExitCodeSuccess)
	}

	var exitErr *codedExitError
	if errors.As(err, &exitErr) {
		return int(exitErr.Code)
	}

	report := output.Report{CommandName: state.resolvedCommandName()}
	if renderErr := output.Write(state.outputMode(), app.Stdout, app.Stderr, report, 0, err); renderErr != nil {
		_, _ = fmt.Fprintln(app.Stderr, output.FormatDiagnostic(renderErr))
	}

	return int(contracts.ExitCodeFatal)
}

// NewRootCommand constructs the Cobra command tree for the CLI.
func NewRootCommand(app AppContext) *cobra.Command {
	root, _ := newRootCommand(app)
	return root
}

func newRootCommand(app AppContext) (*cobra.Command, *executionState) {
	app = normalizeAppContext(app)
	state := &executionState{}

	root := &cobra.Command{
		Use:           "base-converter",
		Short:         "Convert integers between decimal, binary, octal and hexadecimal",
		Long:          "Convert integers between decimal, binary, octal and hexadecimal.\n\n" + exitCodeHelp(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&state.global.JSON, "json", false, "emit machine-readable JSON envelope output")
	root.PersistentFlags().StringVar(&state.global.ConfigPath, "config", "", "path to config file (default "+contracts.DefaultConfigFilePath+")")
	root.PersistentFlags().StringVar(&state.global.LogLevel, "log-level", "", "log level written to stderr (trace, debug, info, warn, error)")

	root.AddCommand(
		newConvertCommand(app, state),
		newFormatCommand(app, state),
		newBasesCommand(app, state),
		newInteractiveCommand(app, state),
		newConfigCommand(app, state),
	)

	return root, state
}

func exitCodeHelp() string {
	var b strings.Builder
	b.WriteString("Exit codes:")
	for _, code := range []contracts.ExitCode{contracts.ExitCodeSuccess, contracts.ExitCodeInvalid, contracts.ExitCodeFatal} {
		fmt.Fprintf(&b, "\n  %d  %s", code, contracts.ExitCodeMeaning[code])
	}
	return b.String()
}

func newConvertCommand(app AppContext, state *executionState) *cobra.Command {
	from := ""

	cmd := &cobra.Command{
		Use:   "convert <number>",
		Short: "Convert a number and show it in every base",
		Long:  "Convert a number and show it in every base.\nUse -- before negative numbers, e.g. `convert -- -42`.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd.Context(), app, state, contracts.CommandConvert, from, func(ctx context.Context, settings config.RuntimeSettings, log logging.Logger) (output.Report, error) {
				report := commands.RunConvert(commands.ConvertOptions{Input: args[0], Base: settings.Base})
				log.Info().Str("input", args[0]).Str("base", settings.Base.Name()).Str("base_source", string(settings.BaseSource)).Bool("valid", report.Conversion.Valid).Msg("converted")
				return report, nil
			})
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "base of the input (decimal, binary, octal, hexadecimal)")
	return cmd
}

func newFormatCommand(app AppContext, state *executionState) *cobra.Command {
	to := ""

	cmd := &cobra.Command{
		Use:   "format <decimal-value>",
		Short: "Render a decimal integer in one or every base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd.Context(), app, state, contracts.CommandFormat, "", func(ctx context.Context, settings config.RuntimeSettings, log logging.Logger) (output.Report, error) {
				options := commands.FormatOptions{Value: args[0]}
				if strings.TrimSpace(to) != "" {
					target, err := converter.ParseBase(to)
					if err != nil {
						return output.Report{CommandName: string(contracts.CommandFormat)}, fmt.Errorf("invalid --to: %w", err)
					}
					options.Target = &target
				}
				return commands.RunFormat(options)
			})
		},
	}
	cmd.Flags().StringVarP(&to, "to", "t", "", "only render this base")
	return cmd
}

func newBasesCommand(app AppContext, state *executionState) *cobra.Command {
	return &cobra.Command{
		Use:   "bases",
		Short: "List supported bases with their radix and prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd.Context(), app, state, contracts.CommandBases, "", func(ctx context.Context, settings config.RuntimeSettings, log logging.Logger) (output.Report, error) {
				return commands.RunBases(), nil
			})
		},
	}
}

func newInteractiveCommand(app AppContext, state *executionState) *cobra.Command {
	from := ""

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"ui"},
		Short:   "Open the live conversion form",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state.commandName = string(contracts.CommandInteractive)
			settings, err := resolveSettings(app, state, from)
			if err != nil {
				return err
			}
			log := newLogger(app, settings)
			runner := middleware.WithCommandLog(contracts.CommandInteractive, log, func(ctx context.Context) error {
				return app.Interactive(ctx, app.Stdin, app.Stdout, settings.Base, log)
			})
			return runner(commandContext(cmd))
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "initially selected base")
	return cmd
}

func newConfigCommand(app AppContext, state *executionState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	force := false
	defaultBase := ""
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd.Context(), app, state, contracts.CommandConfigInit, defaultBase, func(ctx context.Context, settings config.RuntimeSettings, log logging.Logger) (output.Report, error) {
				return commands.RunConfigInit(app.WorkDir, commands.ConfigInitOptions{
					ConfigPath:  state.global.ConfigPath,
					DefaultBase: settings.Base,
					Force:       force,
				})
			})
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	initCmd.Flags().StringVar(&defaultBase, "default-base", "", "default base to record in the file")

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the config file in $VISUAL or $EDITOR and validate it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd.Context(), app, state, contracts.CommandConfigEdit, "", func(ctx context.Context, settings config.RuntimeSettings, log logging.Logger) (output.Report, error) {
				editorCmd := editor.Resolve(app.LookupEnv)
				log.Debug().Str("editor", editorCmd).Msg("launching editor")
				return commands.RunConfigEdit(ctx, app.WorkDir, commands.ConfigEditOptions{
					ConfigPath: state.global.ConfigPath,
					Editor:     editorCmd,
					Streams:    editor.Streams{Stdin: app.Stdin, Stdout: app.Stdout, Stderr: app.Stderr},
					Launch:     app.LaunchEditor,
				})
			})
		},
	}

	cmd.AddCommand(initCmd, editCmd)
	return cmd
}

type commandFunc func(ctx context.Context, settings config.RuntimeSettings, log logging.Logger) (output.Report, error)

func runCommand(ctx context.Context, app AppContext, state *executionState, name contracts.CommandName, baseFlag string, fn commandFunc) error {
	state.commandName = string(name)

	settings, err := resolveSettings(app, state, baseFlag)
	if err != nil {
		return err
	}
	log := newLogger(app, settings)

	start := app.Now()
	var report output.Report
	runner := middleware.WithCommandLog(name, log, middleware.WithRecover(name, func(ctx context.Context) error {
		var runErr error
		report, runErr = fn(ctx, settings, log)
		return runErr
	}))
	runErr := runner(contextOrBackground(ctx))

	if report.CommandName == "" {
		report.CommandName = string(name)
	}
	if err := output.Write(settings.OutputMode, app.Stdout, app.Stderr, report, app.Now().Sub(start), runErr); err != nil {
		return err
	}

	if code := output.ResolveExitCode(report, runErr); code != contracts.ExitCodeSuccess {
		return &codedExitError{Code: code}
	}
	return nil
}

// resolveSettings loads the config file and applies flag and env precedence.
// The config subcommands ignore an unreadable or invalid file so it can be
// replaced or repaired.
func resolveSettings(app AppContext, state *executionState, baseFlag string) (config.RuntimeSettings, error) {
	if state.settings != nil {
		return *state.settings, nil
	}

	configPath := state.global.ConfigPath
	explicit := strings.TrimSpace(configPath) != ""
	if !explicit {
		configPath = filepath.Join(app.WorkDir, contracts.DefaultConfigFilePath)
	}

	cfg, _, err := config.ReadOptional(configPath, explicit)
	if err != nil {
		if !toleratesBrokenConfig(state.commandName) {
			return config.RuntimeSettings{}, err
		}
		cfg = contracts.Config{}
	}

	settings, err := config.Resolve(cfg, config.RuntimeFlags{
		Base:     baseFlag,
		JSON:     state.global.JSON,
		LogLevel: state.global.LogLevel,
	}, config.EnvironmentFromLookup(app.LookupEnv))
	if err != nil {
		return config.RuntimeSettings{}, err
	}

	state.settings = &settings
	return settings, nil
}

func toleratesBrokenConfig(commandName string) bool {
	return commandName == string(contracts.CommandConfigInit) || commandName == string(contracts.CommandConfigEdit)
}

func newLogger(app AppContext, settings config.RuntimeSettings) logging.Logger {
	return logging.New(logging.Options{
		Level:     settings.LogLevel,
		Format:    settings.LogFormat,
		Component: "cli",
		Writer:    app.Stderr,
	})
}

func normalizeAppContext(app AppContext) AppContext {
	if app.Now == nil {
		app.Now = time.Now
	}
	if app.Stdin == nil {
		app.Stdin = os.Stdin
	}
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.LookupEnv == nil {
		app.LookupEnv = os.LookupEnv
	}
	if app.Interactive == nil {
		app.Interactive = tui.Run
	}
	if app.LaunchEditor == nil {
		app.LaunchEditor = editor.Launch
	}
	if app.WorkDir == "" {
		if wd, err := os.Getwd(); err == nil {
			app.WorkDir = wd
		} else {
			app.WorkDir = "."
		}
	}
	return app
}

func commandContext(cmd *cobra.Command) context.Context {
	return contextOrBackground(cmd.Context())
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

type codedExitError struct {
	Code contracts.ExitCode
}

func (err codedExitError) Error() string {
	return fmt.Sprintf("exit with code %d", err.Code)
}
