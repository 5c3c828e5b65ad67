// hash.go — the hash command: arguments or stdin lines through jhash.
//
// Flags not given on the command line fall back to the [hash] config table.
package cli

import (
	"bufio"
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"github.com/xgx-io/fruitbowl"
	"github.com/xgx-io/fruitbowl/internal/config"
	"github.com/xgx-io/fruitbowl/jhash"
)

type hashOptions struct {
	retain     bool
	limit      int
	terminator string
	expect     string
}

// hashLine is one computed hash, ready for printing.
type hashLine struct {
	input    string
	value    uint32
	consumed int
	retained []byte
}

func newHashCmd(a *app) *cobra.Command {
	var opts hashOptions
	cmd := &cobra.Command{
		Use:   "hash [STRING...]",
		Short: "Hash each argument, or each line of stdin",
		Long: `Hash each argument with the Jenkins one-at-a-time hash.

With no arguments, every line read from stdin is hashed. --limit caps the
bytes taken from each input and --terminator stops at the first occurrence of
a byte (which is not hashed).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("retain") {
				opts.retain = a.cfg.Hash.Retain
			}
			if !cmd.Flags().Changed("terminator") {
				opts.terminator = a.cfg.Hash.Terminator
			}
			return a.runHash(opts, args)
		},
	}
	cmd.Flags().BoolVar(&opts.retain, "retain", false, "print the exact bytes that were hashed")
	cmd.Flags().IntVar(&opts.limit, "limit", -1, "hash at most N bytes of each input (-1 for no limit)")
	cmd.Flags().StringVar(&opts.terminator, "terminator", "", `stop before this byte (single character, \0, \n or \t)`)
	cmd.Flags().StringVar(&opts.expect, "expect", "", "fail unless every input hashes to this value (e.g. 0x2A4A780F)")
	return cmd
}

func (a *app) runHash(opts hashOptions, args []string) error {
	term, hasTerm, err := config.ParseTerminator(opts.terminator)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	var want uint32
	if opts.expect != "" {
		v, err := strconv.ParseUint(opts.expect, 0, 64)
		if err != nil {
			return fmt.Errorf("%w: --expect %q: %w", ErrUsage, opts.expect, err)
		}
		if want, err = safecast.Conv[uint32](v); err != nil {
			return fmt.Errorf("%w: --expect %q: %w", ErrUsage, opts.expect, err)
		}
	}

	inputs := args
	if len(inputs) == 0 {
		sc := bufio.NewScanner(a.stdin)
		for sc.Scan() {
			inputs = append(inputs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return fruitbowl.Errorf(fruitbowl.ReadFault, "reading stdin: %v", err).Err()
		}
		a.log.Debug("read stdin", "lines", len(inputs))
	}

	for _, in := range inputs {
		line := hashInput(in, opts.limit, term, hasTerm, opts.retain)
		a.printHash(line, opts.retain)
		if opts.expect != "" && line.value != want {
			return fruitbowl.Errorf(fruitbowl.UnknownHash,
				"input %q hashed to 0x%08X, want 0x%08X", in, line.value, want).Err()
		}
	}
	return nil
}

func hashInput(in string, limit int, term byte, hasTerm, retain bool) hashLine {
	var opts []jhash.Option
	if retain {
		opts = append(opts, jhash.WithRetention())
	}
	h := jhash.New(opts...)
	data := []byte(in)
	var n int
	if hasTerm {
		n = h.AddBounded(data, limit, term)
	} else {
		n = h.AddN(data, limit)
	}
	h.SetDone(true)
	return hashLine{input: in, value: h.Get(), consumed: n, retained: h.Retained()}
}

func (a *app) printHash(l hashLine, retain bool) {
	fmt.Fprintf(a.stdout, "%s  %d/%d bytes  %q", hashColor.Sprintf("0x%08X", l.value), l.consumed, len(l.input), l.input)
	if retain {
		fmt.Fprintf(a.stdout, "  retained=%q", l.retained)
	}
	fmt.Fprintln(a.stdout)
}
