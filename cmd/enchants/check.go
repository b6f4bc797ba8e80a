package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <key> <other>",
		Short: "Report whether two enchantments conflict, from both sides",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := a.plugin.Registry()
			e, err := reg.Lookup(args[0])
			if err != nil {
				return err
			}
			other, err := reg.Lookup(args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s conflicts with %s: %t\n", e.Key(), other.Key(), e.ConflictsWith(other))
			fmt.Fprintf(out, "%s conflicts with %s: %t\n", other.Key(), e.Key(), other.ConflictsWith(e))
			return nil
		},
	}
}
