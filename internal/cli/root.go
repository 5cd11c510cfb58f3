// Package cli implements the finplan command-line interface.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mesh-intelligence/finplan/internal/logger"
	"github.com/mesh-intelligence/finplan/internal/paths"
	"github.com/mesh-intelligence/finplan/internal/prototype"
	"github.com/mesh-intelligence/finplan/internal/theme"
	"github.com/mesh-intelligence/finplan/internal/tracing"
	"github.com/mesh-intelligence/finplan/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	jsonMode  bool
	theme     string
	logLevel  string
}

// app is the state shared by every subcommand of one root command.
type app struct {
	flags     rootFlags
	configDir string
	settings  *settings
	log       *logger.Logger
	tracer    *tracing.Provider
	plans     *prototype.PlanRegistry
	span      trace.Span
}

// skipSetup lists commands that run without loading configuration.
var skipSetup = map[string]bool{
	"version": true,
	"help":    true,
}

// NewRootCmd creates the top-level "finplan" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{
		log: logger.Discard(),
	}

	root := &cobra.Command{
		Use:   "finplan",
		Short: "Financial planning with creational patterns",
		Long: "finplan builds savings simulators, opens accounts, recommends savings\n" +
			"strategies, renders themed dashboards, and customises plan templates.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipSetup[cmd.Name()] {
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.finish(cmd.Context(), nil)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/finplan)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.flags.theme, "theme", "", "dashboard theme: "+strings.Join(theme.Names(), ", "))
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newPlanCmd(a))
	root.AddCommand(newSimulateCmd(a))
	root.AddCommand(newAccountCmd(a))
	root.AddCommand(newRecommendCmd(a))
	root.AddCommand(newDashboardCmd(a))
	root.AddCommand(newDemoCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)
	return exitCode(err)
}

// exitCode maps domain errors to exitUserError and everything else to
// exitSysError.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrUnknownVariant),
		errors.Is(err, types.ErrInvalidConfiguration),
		errors.Is(err, types.ErrBuilderConsumed),
		isUsageError(err):
		return exitUserError
	default:
		return exitSysError
	}
}

// isUsageError reports cobra argument and flag errors.
func isUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag") ||
		strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "requires ") ||
		strings.Contains(msg, "invalid argument")
}

// setup loads configuration, then builds the logger, tracer and plan registry.
func (a *app) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	a.configDir = configDir

	s, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.flags.theme != "" {
		s.Theme = a.flags.theme
	}
	if a.flags.logLevel != "" {
		s.LogLevel = a.flags.logLevel
	}
	a.settings = s

	a.log = logger.New(
		logger.WithLevel(s.LogLevel),
		logger.WithFormat(s.LogFormat),
		logger.WithOutput(cmd.ErrOrStderr()),
	)

	if s.Tracing.Writer == nil {
		s.Tracing.Writer = cmd.ErrOrStderr()
	}
	a.tracer, err = tracing.NewProvider(s.Tracing)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	a.plans = prototype.NewPlanRegistry()
	prototype.SeedDefaults(a.plans)
	if err := registerPlans(a.plans, s.Plans); err != nil {
		return fmt.Errorf("load plans: %w", err)
	}

	ctx, span := a.tracer.Start(cmd.Context(), "finplan."+strings.ReplaceAll(commandPath(cmd), " ", "."))
	a.span = span
	cmd.SetContext(ctx)

	a.log.DebugContext(ctx, "config loaded",
		"config_dir", configDir,
		"theme", s.Theme,
		"plans", a.plans.Len(),
	)
	return nil
}

// finish ends the command span and flushes the tracer. Safe to call more
// than once.
func (a *app) finish(ctx context.Context, cmdErr error) error {
	if a.span != nil {
		if cmdErr != nil {
			a.span.RecordError(cmdErr)
			a.span.SetStatus(codes.Error, cmdErr.Error())
		}
		a.span.End()
		a.span = nil
	}
	if a.tracer != nil {
		if ctx == nil {
			ctx = context.Background()
		}
		err := a.tracer.Shutdown(ctx)
		a.tracer = nil
		return err
	}
	return nil
}

// commandPath returns the command path without the root name.
func commandPath(cmd *cobra.Command) string {
	path := cmd.CommandPath()
	if i := strings.IndexByte(path, ' '); i >= 0 {
		return path[i+1:]
	}
	return path
}

// fail logs err, closes the span and returns err for cobra to report.
func (a *app) fail(cmd *cobra.Command, msg string, err error) error {
	a.log.ErrorContextErr(cmd.Context(), msg, err)
	_ = a.finish(cmd.Context(), err)
	return err
}

// themeFactory resolves the active theme.
func (a *app) themeFactory() (theme.Factory, error) {
	name := defaultTheme
	if a.settings != nil && a.settings.Theme != "" {
		name = a.settings.Theme
	}
	return theme.ForName(name)
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
