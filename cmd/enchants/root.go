package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/OCharnyshevich/ecoenchants/internal/config"
	"github.com/OCharnyshevich/ecoenchants/internal/plugin"
	"github.com/OCharnyshevich/ecoenchants/internal/storage"
)

// app carries state shared by every subcommand once setup has run.
type app struct {
	dataDir string
	verbose bool

	log    *slog.Logger
	cfg    *config.Config
	store  *storage.Storage
	plugin *plugin.Plugin
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "enchants",
		Short:        "Inspect the server enchantment registry with plugin overrides applied",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.dataDir, "data-dir", "./plugins/ecoenchants", "plugin data directory")
	flags.String("version", "", "host data version (overrides config.yaml)")
	flags.String("scheme", "", "minecraft-data enchantments.json to load instead of the built-in table")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		if err := v.BindPFlag("version", flags.Lookup("version")); err != nil {
			return err
		}
		if err := v.BindPFlag("scheme_file", flags.Lookup("scheme")); err != nil {
			return err
		}
		return a.setup(cmd, v)
	}

	root.AddCommand(
		newListCmd(a),
		newInfoCmd(a),
		newCheckCmd(a),
		newLoreCmd(a),
		newExportCmd(a),
		newVersionsCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, v *viper.Viper) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	store, err := storage.New(a.dataDir, a.log)
	if err != nil {
		return fmt.Errorf("open data dir: %w", err)
	}
	a.store = store

	if err := config.Read(v, store.Dir()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg.CustomDir = store.Path(cfg.CustomDir)
	cfg.SchemeFile = store.Path(cfg.SchemeFile)
	a.cfg = cfg

	a.plugin = plugin.New(cfg, a.log)
	return a.plugin.Enable()
}
