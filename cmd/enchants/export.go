package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OCharnyshevich/ecoenchants/internal/storage"
)

func newExportCmd(a *app) *cobra.Command {
	var diff bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the resolved registry to registry.json in the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var prev *storage.Snapshot
			if diff {
				var err error
				if prev, err = a.store.LoadSnapshot(); err != nil {
					return err
				}
			}

			path, err := a.store.SaveRegistry(a.plugin.Version(), a.plugin.Registry())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, path)

			if diff {
				changes := storage.NewSnapshot(a.plugin.Version(), a.plugin.Registry()).Changes(prev)
				if len(changes) == 0 {
					fmt.Fprintln(out, "no changes")
				}
				for _, c := range changes {
					fmt.Fprintln(out, c)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&diff, "diff", false, "print what changed since the previous export")
	return cmd
}
