package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/randalmurphal/textparser/pkg/textparser"
	"github.com/spf13/cobra"
)

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List named delimiter presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTART\tEND")
			for _, name := range textparser.PresetNames() {
				d, _ := textparser.LookupPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, d.Start(), d.End())
			}
			return w.Flush()
		},
	}
}
