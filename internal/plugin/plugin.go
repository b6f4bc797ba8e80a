// Package plugin wires host data, vanilla overrides and custom enchantments
// into one registry at startup.
package plugin

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/OCharnyshevich/ecoenchants/internal/config"
	"github.com/OCharnyshevich/ecoenchants/internal/custom"
	"github.com/OCharnyshevich/ecoenchants/internal/display"
	"github.com/OCharnyshevich/ecoenchants/internal/enchant"
	"github.com/OCharnyshevich/ecoenchants/pkg/gamedata"

	// Built-in host data versions.
	_ "github.com/OCharnyshevich/ecoenchants/pkg/gamedata/versions/pc_1_19_4"
)

var errAlreadyEnabled = errors.New("plugin already enabled")

// Plugin owns the enchantment registry for the lifetime of the process.
type Plugin struct {
	cfg      *config.Config
	log      *slog.Logger
	registry *enchant.Registry
	renderer *display.Renderer
	data     *gamedata.GameData
	enabled  bool
}

// New creates a Plugin. Paths in cfg are used as given.
func New(cfg *config.Config, log *slog.Logger) *Plugin {
	return &Plugin{
		cfg:      cfg,
		log:      log,
		registry: enchant.NewRegistry(),
		renderer: display.NewRenderer(cfg),
	}
}

// Enable loads host data, registers every vanilla enchantment wrapped with
// its configured overrides, then registers the custom enchantments.
// It must be called once, before the registry is shared. Nothing is kept
// when it fails.
func (p *Plugin) Enable() error {
	if p.enabled {
		return errAlreadyEnabled
	}

	data, err := p.loadHostData()
	if err != nil {
		return err
	}
	overrides, err := p.cfg.Overrides()
	if err != nil {
		return err
	}
	customs, err := custom.LoadDir(p.cfg.CustomDir)
	if err != nil {
		return fmt.Errorf("load custom enchantments: %w", err)
	}

	reg := enchant.NewRegistry()
	p.registerVanilla(reg, data, overrides)
	if err := p.registerCustom(reg, customs); err != nil {
		return err
	}
	p.checkOverrideConflicts(reg, overrides)

	p.registry = reg
	p.data = data
	p.enabled = true
	p.log.Info("enchantments enabled",
		"version", data.Version,
		"registered", reg.Len(),
		"overrides", len(overrides),
	)
	return nil
}

func (p *Plugin) loadHostData() (*gamedata.GameData, error) {
	if p.cfg.SchemeFile != "" {
		data, err := gamedata.LoadEnchantmentsFile(p.cfg.SchemeFile, p.cfg.Version)
		if err != nil {
			return nil, fmt.Errorf("load scheme: %w", err)
		}
		p.log.Info("loaded host data from scheme", "path", p.cfg.SchemeFile)
		return data, nil
	}

	data, err := gamedata.Load(p.cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("load host data: %w (available: %v)", err, gamedata.RegisteredVersions())
	}
	return data, nil
}

func (p *Plugin) registerVanilla(reg *enchant.Registry, data *gamedata.GameData, overrides map[enchant.Key]enchant.OverrideData) {
	matched := make(map[enchant.Key]bool, len(overrides))
	for _, d := range data.Enchantments.All() {
		v := enchant.NewVanilla(d)
		od, ok := overrides[v.Key()]
		if ok {
			matched[v.Key()] = true
			p.log.Debug("overriding vanilla enchantment", "key", v.Key(), "maxLevel", od.MaxLevel != nil, "conflicts", od.Conflicts != nil)
		}
		enchant.NewOverride(v, od).Register(reg)
	}

	var unknown []string
	for k := range overrides {
		if !matched[k] {
			unknown = append(unknown, k.String())
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		p.log.Warn("vanilla overrides match no enchantment", "keys", unknown)
	}
}

func (p *Plugin) registerCustom(reg *enchant.Registry, list []*custom.Enchantment) error {
	for _, e := range list {
		if _, exists := reg.Get(e.Key()); exists {
			return fmt.Errorf("custom enchantment %s: key already registered", e.Key())
		}
	}

	missing := custom.ResolveConflicts(list, func(k enchant.Key) bool {
		_, ok := reg.Get(k)
		return ok
	})
	if len(missing) > 0 {
		p.log.Warn("custom conflicts match no enchantment", "keys", keyStrings(missing))
	}

	for _, e := range list {
		// Disabled enchantments stay registered so items carrying them still
		// resolve; the lore renderer reports them for removal.
		if !e.Enabled() {
			p.log.Info("registered disabled enchantment", "key", e.Key())
		}
		reg.Register(e)
	}
	return nil
}

// checkOverrideConflicts warns about configured conflict entries that cannot
// take effect. Custom enchantments decide conflicts against vanilla ones
// themselves, so naming one in a vanilla override does nothing.
func (p *Plugin) checkOverrideConflicts(reg *enchant.Registry, overrides map[enchant.Key]enchant.OverrideData) {
	var unknown, ignored []string
	for _, od := range overrides {
		for k := range od.Conflicts {
			e, ok := reg.Get(k)
			if !ok && k.Namespace == enchant.MinecraftNamespace {
				e, ok = reg.Get(enchant.Key{Namespace: custom.DefaultNamespace, Name: k.Name})
			}
			switch {
			case !ok:
				unknown = append(unknown, k.String())
			case isCustom(e):
				ignored = append(ignored, e.Key().String())
			}
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		p.log.Warn("vanilla override conflicts match no enchantment", "keys", unknown)
	}
	if len(ignored) > 0 {
		sort.Strings(ignored)
		p.log.Warn("vanilla override conflicts name custom enchantments; list the vanilla key in the custom definition instead", "keys", ignored)
	}
}

func isCustom(e enchant.Enchantment) bool {
	_, ok := e.(*custom.Enchantment)
	return ok
}

func keyStrings(keys []enchant.Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}

// Registry returns the enchantment registry.
func (p *Plugin) Registry() *enchant.Registry { return p.registry }

// Renderer returns the lore renderer configured for this plugin.
func (p *Plugin) Renderer() *display.Renderer { return p.renderer }

// Version reports the loaded host data version; empty before Enable.
func (p *Plugin) Version() string {
	if p.data == nil {
		return ""
	}
	return p.data.Version
}
