package enchant

import "github.com/OCharnyshevich/ecoenchants/pkg/gamedata"

var _ Enchantment = (*Vanilla)(nil)

// Vanilla is the host default behaviour for a game-data enchantment.
type Vanilla struct {
	data gamedata.Enchantment
	key  Key
}

func NewVanilla(data gamedata.Enchantment) *Vanilla {
	return &Vanilla{data: data, key: MinecraftKey(data.Name)}
}

func (v *Vanilla) Key() Key { return v.key }

func (v *Vanilla) MaxLevel() int { return v.data.MaxLevel }

func (v *Vanilla) Curse() bool { return v.data.Curse }

func (v *Vanilla) Treasure() bool { return v.data.TreasureOnly }

// Data returns the underlying game-data record.
func (v *Vanilla) Data() gamedata.Enchantment { return v.data }

// ConflictsWith applies vanilla compatibility: an enchantment conflicts with
// itself and with anything either side excludes. Enchantments that do not
// resolve to a vanilla one never conflict.
func (v *Vanilla) ConflictsWith(other Enchantment) bool {
	o := vanillaOf(other)
	if o == nil {
		return false
	}
	if o.key == v.key {
		return true
	}
	return v.data.Excludes(o.data.Name) || o.data.Excludes(v.data.Name)
}

// vanillaOf follows Unwrap chains until it reaches a *Vanilla.
func vanillaOf(e Enchantment) *Vanilla {
	for {
		switch t := e.(type) {
		case *Vanilla:
			return t
		case Unwrapper:
			e = t.Unwrap()
		default:
			return nil
		}
	}
}

// VanillaOf returns the vanilla enchantment e resolves to, if any.
func VanillaOf(e Enchantment) (*Vanilla, bool) {
	v := vanillaOf(e)
	return v, v != nil
}
