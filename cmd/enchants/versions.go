package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OCharnyshevich/ecoenchants/pkg/gamedata"
)

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List built-in host data versions",
		Args:  cobra.NoArgs,
		// Overrides the root setup: no data dir or config is needed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range gamedata.RegisteredVersions() {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}
