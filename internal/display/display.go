// Package display renders item enchantments into lore lines.
package display

import (
	"strconv"
	"strings"

	"github.com/OCharnyshevich/ecoenchants/internal/config"
	"github.com/OCharnyshevich/ecoenchants/internal/custom"
	"github.com/OCharnyshevich/ecoenchants/internal/enchant"
)

// Marker prefixes every line the renderer writes so it can be removed again.
const Marker = SectionSign + "w"

// Entry is one enchantment on an item.
type Entry struct {
	Enchantment enchant.Enchantment
	Level       int
}

// Result is the outcome of rendering an item's enchantments.
type Result struct {
	Lore []string
	// Removed lists disabled custom enchantments the caller should strip
	// from the item.
	Removed []enchant.Key
}

// Renderer turns enchantments into lore. It is safe for concurrent use.
type Renderer struct {
	lore         config.Lore
	colors       config.Colors
	names        map[string]string
	descriptions map[string]string
	rarityColors map[string]string
}

func NewRenderer(cfg *config.Config) *Renderer {
	colors := cfg.Lore.Colors
	colors.Normal = Colorize(colors.Normal)
	colors.Curse = Colorize(colors.Curse)
	colors.Special = Colorize(colors.Special)
	colors.Artifact = Colorize(colors.Artifact)
	colors.Description = Colorize(colors.Description)

	rarity := make(map[string]string, len(cfg.RarityColors))
	for k, v := range cfg.RarityColors {
		rarity[strings.ToLower(k)] = Colorize(v)
	}

	return &Renderer{
		lore:         cfg.Lore,
		colors:       colors,
		names:        cfg.Names,
		descriptions: cfg.Descriptions,
		rarityColors: rarity,
	}
}

// Render builds the enchantment lines for entries: normal enchantments first,
// then curses, each group in input order.
func (r *Renderer) Render(entries []Entry) Result {
	describe := r.lore.Describe.Enabled && len(entries) <= r.lore.Describe.BeforeLines

	var normal, curses []string
	var res Result
	for _, en := range entries {
		e := en.Enchantment
		typ := custom.TypeNormal
		if e.Curse() {
			typ = custom.TypeCurse
		}

		color := ""
		var name string
		var description []string

		if c, ok := e.(*custom.Enchantment); ok {
			typ = c.Type()
			name = c.DisplayName()
			description = c.Description()
			if !c.Enabled() {
				res.Removed = append(res.Removed, c.Key())
			}
			if rc, ok := r.rarityColors[c.Rarity()]; ok && typ != custom.TypeCurse {
				color = rc
			}
		} else {
			name = r.vanillaName(e)
			if d := r.lookup(r.descriptions, e.Key()); d != "" {
				description = wrapWords(d, r.lore.Describe.Wrap)
			}
		}
		if color == "" {
			color = r.typeColor(typ)
		}

		maxLevelOne := e.MaxLevel() == 1 && en.Level == 1
		if !maxLevelOne && typ != custom.TypeCurse {
			name += " " + r.level(en.Level)
		}

		lines := []string{Marker + color + name}
		if describe {
			for _, d := range description {
				lines = append(lines, Marker+r.colors.Description+d)
			}
		}
		if typ == custom.TypeCurse {
			curses = append(curses, lines...)
		} else {
			normal = append(normal, lines...)
		}
	}

	combined := append(normal, curses...)
	if r.lore.Shrink.Enabled && len(entries) > r.lore.Shrink.AfterLines {
		combined = shrink(combined, r.lore.Shrink.MaximumPerLine)
	}
	res.Lore = combined
	return res
}

// Apply replaces any previously rendered enchantment lines in lore with a
// fresh rendering of entries, placed before the remaining lore.
func (r *Renderer) Apply(lore []string, entries []Entry) Result {
	res := r.Render(entries)
	res.Lore = append(res.Lore, Revert(lore)...)
	return res
}

// Revert drops every line written by a Renderer.
func Revert(lore []string) []string {
	out := make([]string, 0, len(lore))
	for _, l := range lore {
		if !strings.HasPrefix(l, Marker) {
			out = append(out, l)
		}
	}
	return out
}

func (r *Renderer) level(n int) string {
	if r.lore.UseNumerals && n < r.lore.NumbersAboveThreshold {
		return Numeral(n)
	}
	return strconv.Itoa(n)
}

func (r *Renderer) typeColor(t custom.Type) string {
	switch t {
	case custom.TypeArtifact:
		return r.colors.Artifact
	case custom.TypeSpecial:
		return r.colors.Special
	case custom.TypeCurse:
		return r.colors.Curse
	default:
		return r.colors.Normal
	}
}

func (r *Renderer) vanillaName(e enchant.Enchantment) string {
	if n := r.lookup(r.names, e.Key()); n != "" {
		return n
	}
	if v, ok := enchant.VanillaOf(e); ok && v.Data().DisplayName != "" {
		return v.Data().DisplayName
	}
	return humanize(e.Key().Name)
}

// lookup finds a per-enchantment string by full key or, for vanilla keys,
// by bare name.
func (r *Renderer) lookup(m map[string]string, k enchant.Key) string {
	if s, ok := m[k.String()]; ok {
		return s
	}
	if k.Namespace == enchant.MinecraftNamespace {
		return m[k.Name]
	}
	return ""
}

func shrink(lines []string, perLine int) []string {
	if perLine < 1 {
		perLine = 1
	}
	out := make([]string, 0, (len(lines)+perLine-1)/perLine)
	for i := 0; i < len(lines); i += perLine {
		end := min(i+perLine, len(lines))
		out = append(out, strings.Join(lines[i:end], ", "))
	}
	return out
}
