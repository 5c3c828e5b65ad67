// root.go — command tree, persistent flags and exit status mapping.
//
// Package cli wires the fruitbowl command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xgx-io/fruitbowl/internal/config"
	"github.com/xgx-io/fruitbowl/internal/logging"
)

// ErrUsage marks errors caused by bad flags or arguments.
var ErrUsage = errors.New("usage error")

// Version is overridden at build time via -ldflags.
var Version = "0.1.0-dev"

// app is the state shared by every subcommand.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	colorMode  string

	cfg config.Config
	log *slog.Logger
}

// NewRootCommand builds the command tree writing to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		cfg:    config.Default(),
		log:    logging.Discard(),
	}

	root := &cobra.Command{
		Use:           "fruitbowl",
		Short:         "Result codes and Jenkins string hashes",
		Long:          `fruitbowl inspects result codes, builds breadcrumb traces and computes one-at-a-time string hashes.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a fruitbowl.toml file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(newCodesCmd(a))
	root.AddCommand(newExplainCmd(a))
	root.AddCommand(newHashCmd(a))
	root.AddCommand(newTraceCmd(a))
	root.AddCommand(newVersionCmd(a))

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	levelName := a.cfg.Log.Level
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	a.log = logging.New(a.stderr, level)

	switch a.colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(a.stdout)
	default:
		return fmt.Errorf("%w: --color must be auto, on or off (got %q)", ErrUsage, a.colorMode)
	}

	a.log.Debug("command start", "command", cmd.CommandPath(), "config", a.configPath)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, ErrUsage) {
		return 2
	}
	return 1
}

// usageArgs marks positional-argument failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}
