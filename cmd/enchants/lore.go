package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OCharnyshevich/ecoenchants/internal/display"
)

var formatCode = regexp.MustCompile(display.SectionSign + `[0-9a-fk-orw]`)

func newLoreCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "lore <key[:level]>...",
		Short: "Render the lore an item with these enchantments would show",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make([]display.Entry, 0, len(args))
			for _, arg := range args {
				en, err := a.parseEntry(arg)
				if err != nil {
					return err
				}
				entries = append(entries, en)
			}

			res := a.plugin.Renderer().Render(entries)
			out := cmd.OutOrStdout()
			for _, line := range res.Lore {
				if plain {
					line = formatCode.ReplaceAllString(line, "")
				}
				fmt.Fprintln(out, line)
			}
			for _, k := range res.Removed {
				a.log.Warn("enchantment is disabled and would be removed", "key", k)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "strip formatting codes")
	return cmd
}

// parseEntry accepts "sharpness", "sharpness:5" or "eco:cubism:2". A
// trailing numeric segment is the level; it defaults to 1.
func (a *app) parseEntry(arg string) (display.Entry, error) {
	key, level := arg, 1
	if i := strings.LastIndex(arg, ":"); i >= 0 {
		if n, err := strconv.Atoi(arg[i+1:]); err == nil {
			key, level = arg[:i], n
		}
	}
	if level < 1 {
		return display.Entry{}, fmt.Errorf("%s: level must be at least 1", arg)
	}

	e, err := a.plugin.Registry().Lookup(key)
	if err != nil {
		return display.Entry{}, err
	}
	return display.Entry{Enchantment: e, Level: level}, nil
}
