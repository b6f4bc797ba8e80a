package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OCharnyshevich/ecoenchants/internal/custom"
	"github.com/OCharnyshevich/ecoenchants/internal/enchant"
	"github.com/OCharnyshevich/ecoenchants/internal/storage"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <key>",
		Short: "Show one enchantment with overrides applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.plugin.Registry().Lookup(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "key:       %s\n", e.Key())
			fmt.Fprintf(out, "kind:      %s\n", storage.Kind(e))
			fmt.Fprintf(out, "max level: %d", e.MaxLevel())
			if v, ok := enchant.VanillaOf(e); ok && v.MaxLevel() != e.MaxLevel() {
				fmt.Fprintf(out, " (game default %d)", v.MaxLevel())
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "curse:     %t\n", e.Curse())
			fmt.Fprintf(out, "treasure:  %t\n", e.Treasure())

			if v, ok := enchant.VanillaOf(e); ok {
				d := v.Data()
				costs := make([]string, 0, e.MaxLevel())
				for level := 1; level <= e.MaxLevel(); level++ {
					costs = append(costs, fmt.Sprintf("%d-%d", d.MinCost.At(level), d.MaxCost.At(level)))
				}
				fmt.Fprintf(out, "cost:      %s\n", strings.Join(costs, ", "))
			}

			if c, ok := e.(*custom.Enchantment); ok {
				fmt.Fprintf(out, "type:      %s\n", c.Type())
				fmt.Fprintf(out, "enabled:   %t\n", c.Enabled())
			}

			var conflicts []string
			for _, other := range enchant.Conflicting(e, a.plugin.Registry().All()) {
				if other.Key() != e.Key() {
					conflicts = append(conflicts, other.Key().String())
				}
			}
			if len(conflicts) == 0 {
				conflicts = []string{"none"}
			}
			fmt.Fprintf(out, "conflicts: %s\n", strings.Join(conflicts, ", "))
			return nil
		},
	}
}
