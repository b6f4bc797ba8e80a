package custom

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/OCharnyshevich/ecoenchants/internal/enchant"
)

// DefaultNamespace is used for definition keys written without a namespace.
const DefaultNamespace = "ecoenchants"

// Definition is the on-disk form of a custom enchantment.
type Definition struct {
	Key                     string   `toml:"key"`
	Name                    string   `toml:"name"`
	Description             []string `toml:"description"`
	Type                    string   `toml:"type"`
	Rarity                  string   `toml:"rarity"`
	MaxLevel                int      `toml:"max_level"`
	Treasure                bool     `toml:"treasure"`
	Conflicts               []string `toml:"conflicts"`
	ConflictsWithEverything bool     `toml:"conflicts_with_everything"`
	Enabled                 bool     `toml:"enabled"`
}

// Build validates d and returns the enchantment it describes.
func (d Definition) Build() (*Enchantment, error) {
	raw := strings.TrimSpace(d.Key)
	if raw == "" {
		return nil, errors.New("missing key")
	}
	if !strings.Contains(raw, ":") {
		raw = DefaultNamespace + ":" + raw
	}
	key, err := enchant.ParseKey(raw)
	if err != nil {
		return nil, err
	}
	if key.Namespace == enchant.MinecraftNamespace {
		return nil, fmt.Errorf("key %s: custom enchantments may not use the %s namespace", key, enchant.MinecraftNamespace)
	}

	typ, err := ParseType(d.Type)
	if err != nil {
		return nil, fmt.Errorf("key %s: %w", key, err)
	}

	if d.MaxLevel < 1 {
		return nil, fmt.Errorf("key %s: max_level must be at least 1, got %d", key, d.MaxLevel)
	}

	conflicts, err := enchant.ParseKeySet(d.Conflicts)
	if err != nil {
		return nil, fmt.Errorf("key %s: conflicts: %w", key, err)
	}
	var unqualified []string
	for _, c := range d.Conflicts {
		if !strings.Contains(c, ":") {
			unqualified = append(unqualified, enchant.MustParseKey(c).Name)
		}
	}

	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = key.Name
	}

	description := make([]string, len(d.Description))
	copy(description, d.Description)

	return &Enchantment{
		key:         key,
		name:        name,
		description: description,
		typ:         typ,
		rarity:      strings.ToLower(strings.TrimSpace(d.Rarity)),
		maxLevel:    d.MaxLevel,
		treasure:    d.Treasure,
		conflicts:   conflicts,
		unqualified: unqualified,
		everything:  d.ConflictsWithEverything,
		enabled:     d.Enabled,
	}, nil
}

// DecodeFile reads one definition. enabled defaults to true when the file
// does not set it.
func DecodeFile(path string) (Definition, error) {
	var d Definition
	meta, err := toml.DecodeFile(path, &d)
	if err != nil {
		return Definition{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if !meta.IsDefined("enabled") {
		d.Enabled = true
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Definition{}, fmt.Errorf("decode %s: unknown field %q", path, undecoded[0].String())
	}
	return d, nil
}

// LoadDir builds every *.toml definition in dir, in file name order. A
// missing directory yields no enchantments.
func LoadDir(dir string) ([]*Enchantment, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	if len(paths) == 0 {
		if _, statErr := os.Stat(dir); statErr != nil && !os.IsNotExist(statErr) {
			return nil, fmt.Errorf("stat %s: %w", dir, statErr)
		}
		return nil, nil
	}
	sort.Strings(paths)

	out := make([]*Enchantment, 0, len(paths))
	seen := make(map[enchant.Key]string, len(paths))
	for _, p := range paths {
		d, err := DecodeFile(p)
		if err != nil {
			return nil, err
		}
		e, err := d.Build()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if prev, dup := seen[e.Key()]; dup {
			return nil, fmt.Errorf("%s: key %s already defined in %s", p, e.Key(), prev)
		}
		seen[e.Key()] = p
		out = append(out, e)
	}
	return out, nil
}

// ResolveConflicts points conflict entries written without a namespace at an
// enchantment that exists: the minecraft key when known holds it, otherwise
// the same name under DefaultNamespace. Members of list always count as
// known. It returns the conflict keys that still name nothing, sorted.
// It must run before the enchantments are shared.
func ResolveConflicts(list []*Enchantment, known func(enchant.Key) bool) []enchant.Key {
	own := make(map[enchant.Key]bool, len(list))
	for _, e := range list {
		own[e.key] = true
	}
	exists := func(k enchant.Key) bool { return own[k] || known(k) }

	missing := enchant.NewKeySet()
	for _, e := range list {
		for _, name := range e.unqualified {
			mk := enchant.MinecraftKey(name)
			if exists(mk) {
				continue
			}
			if ck := (enchant.Key{Namespace: DefaultNamespace, Name: name}); exists(ck) {
				delete(e.conflicts, mk)
				e.conflicts[ck] = struct{}{}
			}
		}
		e.unqualified = nil

		for k := range e.conflicts {
			if !exists(k) {
				missing[k] = struct{}{}
			}
		}
	}
	return missing.Keys()
}
