package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OCharnyshevich/ecoenchants/internal/storage"
)

func newListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered enchantments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := storage.NewSnapshot(a.plugin.Version(), a.plugin.Registry())
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tKIND\tMAX\tCURSE\tCONFLICTS")
			for _, e := range snap.Enchantments {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%d\n", e.Key, e.Kind, e.MaxLevel, e.Curse, len(e.Conflicts))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
