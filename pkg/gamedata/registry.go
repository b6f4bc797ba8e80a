package gamedata

type EnchantmentRegistry interface {
	ByID(id int) (Enchantment, bool)
	ByName(name string) (Enchantment, bool)
	All() []Enchantment
}

type enchantmentRegistry struct {
	all    []Enchantment
	byID   map[int]int
	byName map[string]int
}

// NewEnchantmentRegistry indexes list by ID and name. Later entries win on
// duplicate IDs or names; All keeps the input order.
func NewEnchantmentRegistry(list []Enchantment) EnchantmentRegistry {
	r := &enchantmentRegistry{
		all:    list,
		byID:   make(map[int]int, len(list)),
		byName: make(map[string]int, len(list)),
	}
	for i, e := range list {
		r.byID[e.ID] = i
		r.byName[e.Name] = i
	}
	return r
}

func (r *enchantmentRegistry) ByID(id int) (Enchantment, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Enchantment{}, false
	}
	return r.all[i], true
}

func (r *enchantmentRegistry) ByName(name string) (Enchantment, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Enchantment{}, false
	}
	return r.all[i], true
}

func (r *enchantmentRegistry) All() []Enchantment {
	out := make([]Enchantment, len(r.all))
	copy(out, r.all)
	return out
}
