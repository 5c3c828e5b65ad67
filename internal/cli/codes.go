// codes.go — the codes and explain commands.
package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xgx-io/fruitbowl"
)

type codePayload struct {
	Name  string `json:"name"`
	Value uint8  `json:"value"`
	Text  string `json:"text"`
}

func newCodesCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List every result code with its default message",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			codes := fruitbowl.Codes()
			if asJSON {
				out := make([]codePayload, len(codes))
				for i, c := range codes {
					out[i] = codePayload{Name: c.String(), Value: uint8(c), Text: c.Text()}
				}
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, c := range codes {
				fmt.Fprintf(tw, "0x%02X\t%s\t%s\n", uint8(c), c, c.Text())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain CODE",
		Short: "Describe one result code, by name or number",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := fruitbowl.ParseCode(args[0])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			fmt.Fprintf(a.stdout, "%s 0x%02X\n%s\n", paintCode(c), uint8(c), c.Text())
			return nil
		},
	}
}
