package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/OCharnyshevich/ecoenchants/internal/enchant"
)

const (
	FileName = "config"
	FileType = "yaml"
)

// Config holds the plugin configuration.
type Config struct {
	Version    string `mapstructure:"version" json:"version"`         // host data version, e.g. "pc-1.19.4"
	SchemeFile string `mapstructure:"scheme_file" json:"scheme_file"` // optional enchantments.json replacing the compiled table
	CustomDir  string `mapstructure:"custom_dir" json:"custom_dir"`   // relative to the data dir unless absolute

	Vanilla      map[string]VanillaOverride `mapstructure:"vanilla" json:"vanilla"`
	Names        map[string]string          `mapstructure:"names" json:"names"`
	Descriptions map[string]string          `mapstructure:"descriptions" json:"descriptions"`
	RarityColors map[string]string          `mapstructure:"rarity_colors" json:"rarity_colors"`

	Lore Lore `mapstructure:"lore" json:"lore"`
}

// VanillaOverride is the per-enchantment override block. Nil fields defer to
// the game; an explicit empty conflicts list means "conflicts with nothing".
type VanillaOverride struct {
	MaxLevel  *int      `mapstructure:"max_level" json:"max_level,omitempty"`
	Conflicts *[]string `mapstructure:"conflicts" json:"conflicts,omitempty"`
}

// Lore controls how enchantments are rendered into item lore.
type Lore struct {
	Colors                Colors   `mapstructure:"colors" json:"colors"`
	UseNumerals           bool     `mapstructure:"use_numerals" json:"use_numerals"`
	NumbersAboveThreshold int      `mapstructure:"use_numbers_above_threshold" json:"use_numbers_above_threshold"`
	Describe              Describe `mapstructure:"describe" json:"describe"`
	Shrink                Shrink   `mapstructure:"shrink" json:"shrink"`
}

// Colors use '&' colour codes.
type Colors struct {
	Normal      string `mapstructure:"normal" json:"normal"`
	Curse       string `mapstructure:"curse" json:"curse"`
	Special     string `mapstructure:"special" json:"special"`
	Artifact    string `mapstructure:"artifact" json:"artifact"`
	Description string `mapstructure:"description" json:"description"`
}

type Describe struct {
	Enabled     bool `mapstructure:"enabled" json:"enabled"`
	BeforeLines int  `mapstructure:"before_lines" json:"before_lines"`
	Wrap        int  `mapstructure:"wrap" json:"wrap"`
}

type Shrink struct {
	Enabled        bool `mapstructure:"enabled" json:"enabled"`
	AfterLines     int  `mapstructure:"after_lines" json:"after_lines"`
	MaximumPerLine int  `mapstructure:"maximum_per_line" json:"maximum_per_line"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:   "pc-1.19.4",
		CustomDir: "enchants",
		Lore: Lore{
			Colors: Colors{
				Normal:      "&7",
				Curse:       "&c",
				Special:     "&d",
				Artifact:    "&6",
				Description: "&8",
			},
			UseNumerals:           true,
			NumbersAboveThreshold: 10,
			Describe: Describe{
				BeforeLines: 5,
				Wrap:        30,
			},
			Shrink: Shrink{
				Enabled:        true,
				AfterLines:     10,
				MaximumPerLine: 2,
			},
		},
	}
}

// SetDefaults registers every DefaultConfig value with v so that file and
// flag values layer on top of them.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("scheme_file", d.SchemeFile)
	v.SetDefault("custom_dir", d.CustomDir)
	v.SetDefault("lore.colors.normal", d.Lore.Colors.Normal)
	v.SetDefault("lore.colors.curse", d.Lore.Colors.Curse)
	v.SetDefault("lore.colors.special", d.Lore.Colors.Special)
	v.SetDefault("lore.colors.artifact", d.Lore.Colors.Artifact)
	v.SetDefault("lore.colors.description", d.Lore.Colors.Description)
	v.SetDefault("lore.use_numerals", d.Lore.UseNumerals)
	v.SetDefault("lore.use_numbers_above_threshold", d.Lore.NumbersAboveThreshold)
	v.SetDefault("lore.describe.enabled", d.Lore.Describe.Enabled)
	v.SetDefault("lore.describe.before_lines", d.Lore.Describe.BeforeLines)
	v.SetDefault("lore.describe.wrap", d.Lore.Describe.Wrap)
	v.SetDefault("lore.shrink.enabled", d.Lore.Shrink.Enabled)
	v.SetDefault("lore.shrink.after_lines", d.Lore.Shrink.AfterLines)
	v.SetDefault("lore.shrink.maximum_per_line", d.Lore.Shrink.MaximumPerLine)
}

// Read loads config.yaml from dir into v. A missing file is not an error.
func Read(v *viper.Viper, dir string) error {
	v.SetConfigName(FileName)
	v.SetConfigType(FileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load decodes v into a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the plugin cannot work with.
func (c *Config) Validate() error {
	if c.Version == "" && c.SchemeFile == "" {
		return errors.New("config: version or scheme_file is required")
	}
	if c.Lore.NumbersAboveThreshold < 0 {
		return fmt.Errorf("config: lore.use_numbers_above_threshold must not be negative")
	}
	if c.Lore.Describe.Wrap < 0 || c.Lore.Describe.BeforeLines < 0 {
		return fmt.Errorf("config: lore.describe values must not be negative")
	}
	if c.Lore.Shrink.Enabled && c.Lore.Shrink.MaximumPerLine < 1 {
		return fmt.Errorf("config: lore.shrink.maximum_per_line must be at least 1")
	}
	if _, err := c.Overrides(); err != nil {
		return err
	}
	return nil
}

// Overrides converts the vanilla block into override data keyed by
// enchantment key. Entries that override nothing are dropped.
func (c *Config) Overrides() (map[enchant.Key]enchant.OverrideData, error) {
	out := make(map[enchant.Key]enchant.OverrideData, len(c.Vanilla))
	for raw, v := range c.Vanilla {
		key, err := enchant.ParseKey(raw)
		if err != nil {
			return nil, fmt.Errorf("config: vanilla: %w", err)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("config: vanilla: %s listed twice", key)
		}

		var d enchant.OverrideData
		if v.MaxLevel != nil {
			if *v.MaxLevel < 1 {
				return nil, fmt.Errorf("config: vanilla.%s.max_level must be at least 1, got %d", raw, *v.MaxLevel)
			}
			lvl := *v.MaxLevel
			d.MaxLevel = &lvl
		}
		if v.Conflicts != nil {
			set, err := enchant.ParseKeySet(*v.Conflicts)
			if err != nil {
				return nil, fmt.Errorf("config: vanilla.%s.conflicts: %w", raw, err)
			}
			d.Conflicts = set
		}
		if !d.IsZero() {
			out[key] = d
		}
	}
	return out, nil
}

// DefaultFile is written to config.yaml on first run.
const DefaultFile = `# Enchantment plugin configuration

# Host data version; see "enchants versions".
version: pc-1.19.4

# Optional minecraft-data enchantments.json that replaces the built-in table.
# scheme_file: scheme/pc-1.19.4/enchantments.json

# Directory of custom enchantment definitions (*.toml).
custom_dir: enchants

# Per-enchantment overrides of vanilla data. Omit a field to keep the game's
# behaviour; an empty conflicts list removes every conflict. Custom
# enchantments decide their own conflicts, so naming one here has no effect:
# add the vanilla key to the custom definition's conflicts instead.
vanilla:
  # sharpness:
  #   max_level: 7
  #   conflicts: [smite]

lore:
  use_numerals: true
  use_numbers_above_threshold: 10
  describe:
    enabled: false
    before_lines: 5
    wrap: 30
  shrink:
    enabled: true
    after_lines: 10
    maximum_per_line: 2
`
