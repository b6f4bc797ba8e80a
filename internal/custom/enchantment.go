// Package custom holds enchantments defined by the plugin rather than the
// game. They decide their own conflicts, including with vanilla ones.
package custom

import "github.com/OCharnyshevich/ecoenchants/internal/enchant"

var (
	_ enchant.Enchantment     = (*Enchantment)(nil)
	_ enchant.ConflictDecider = (*Enchantment)(nil)
)

// Enchantment is a plugin-defined enchantment. It is immutable once built.
type Enchantment struct {
	key         enchant.Key
	name        string
	description []string
	typ         Type
	rarity      string
	maxLevel    int
	treasure    bool
	conflicts   enchant.KeySet
	unqualified []string
	everything  bool
	enabled     bool
}

func (e *Enchantment) Key() enchant.Key { return e.key }

func (e *Enchantment) MaxLevel() int { return e.maxLevel }

func (e *Enchantment) Curse() bool { return e.typ == TypeCurse }

func (e *Enchantment) Treasure() bool { return e.treasure }

func (e *Enchantment) DisplayName() string { return e.name }

func (e *Enchantment) Type() Type { return e.typ }

func (e *Enchantment) Rarity() string { return e.rarity }

func (e *Enchantment) Enabled() bool { return e.enabled }

func (e *Enchantment) Description() []string {
	out := make([]string, len(e.description))
	copy(out, e.description)
	return out
}

// Conflicts returns the keys this enchantment names as incompatible.
func (e *Enchantment) Conflicts() enchant.KeySet { return e.conflicts.Clone() }

// ConflictsWithEverything reports whether nothing may be combined with e.
func (e *Enchantment) ConflictsWithEverything() bool { return e.everything }

// DecideConflict reports a conflict when either side conflicts with
// everything or names the other in its conflict list. Only custom
// enchantments can name e back: a vanilla enchantment reaches this through
// its wrapper, so its exclusions and configured conflicts are not consulted.
func (e *Enchantment) DecideConflict(other enchant.Enchantment) bool {
	if e.everything || e.conflicts.Has(other.Key()) {
		return true
	}
	o, ok := other.(*Enchantment)
	if !ok {
		return false
	}
	return o.everything || o.conflicts.Has(e.key)
}

func (e *Enchantment) ConflictsWith(other enchant.Enchantment) bool {
	return e.DecideConflict(other)
}
