package gamedata

// Enchantment is a vanilla enchantment record as published by minecraft-data.
type Enchantment struct {
	ID           int
	Name         string
	DisplayName  string
	MaxLevel     int
	MinCost      EnchantCost
	MaxCost      EnchantCost
	Exclude      []string
	Category     string
	Weight       int
	TreasureOnly bool
	Curse        bool
	Tradeable    bool
	Discoverable bool
}

// EnchantCost is a linear enchanting table cost: A*level + B.
type EnchantCost struct {
	A int
	B int
}

// At returns the cost for the given enchantment level.
func (c EnchantCost) At(level int) int {
	return c.A*level + c.B
}

// Excludes reports whether name is listed as incompatible with e.
func (e Enchantment) Excludes(name string) bool {
	for _, x := range e.Exclude {
		if x == name {
			return true
		}
	}
	return false
}
