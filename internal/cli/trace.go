// trace.go — the trace command: a recursive breadcrumb Result kept by a
// Recorder.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xgx-io/fruitbowl"
)

type traceOptions struct {
	code     string
	depth    int
	severity string
	verbose  bool
	fail     bool
}

func newTraceCmd(a *app) *cobra.Command {
	var opts traceOptions
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Build a breadcrumb Result through a recursive call chain",
		Long: `Build a Result at the bottom of a recursive call chain and append
"n=<level>" at each level on the way back up, then print the trail.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTrace(opts)
		},
	}
	cmd.Flags().StringVar(&opts.code, "code", "BUFFER_OVERFLOW", "code raised at the base case")
	cmd.Flags().IntVar(&opts.depth, "depth", 8, "recursion depth")
	cmd.Flags().StringVar(&opts.severity, "severity", "", "severity of the base Result (default from config)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print the code, severity and reference count header")
	cmd.Flags().BoolVar(&opts.fail, "fail", false, "exit non-zero when the trail is a failure")
	return cmd
}

func (a *app) runTrace(opts traceOptions) error {
	code, err := fruitbowl.ParseCode(opts.code)
	if err != nil {
		return fmt.Errorf("%w: --code: %w", ErrUsage, err)
	}
	if opts.depth < 0 {
		return fmt.Errorf("%w: --depth must not be negative", ErrUsage)
	}
	sev, err := a.cfg.Severity()
	if err != nil {
		return err
	}
	if opts.severity != "" {
		if sev, err = fruitbowl.ParseSeverity(opts.severity); err != nil {
			return fmt.Errorf("%w: --severity: %w", ErrUsage, err)
		}
	}

	var rec fruitbowl.Recorder
	got := rec.Run(func() fruitbowl.Result {
		return descend(fruitbowl.NewWithSeverity(code, sev), opts.depth)
	})
	a.log.Debug("trace built", "code", got.String(), "depth", opts.depth)

	last := rec.Last()
	defer last.Release()

	if a.cfg.Result.Severity {
		fmt.Fprintf(a.stdout, "%s %s\n", paintSeverity(last.Severity()), paintCode(got))
	}
	if opts.verbose {
		fmt.Fprintf(a.stdout, "%+v\n", last)
	} else {
		fmt.Fprintf(a.stdout, "%v\n", last)
	}

	if opts.fail {
		return last.Err()
	}
	return nil
}

// descend recurses n levels, raising base at the bottom and appending the
// level number on the way back.
func descend(base fruitbowl.Result, n int) fruitbowl.Result {
	if n == 0 {
		return base.Append("Base case reached")
	}
	return descend(base, n-1).Appendf("n=%d", n)
}
