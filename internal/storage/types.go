package storage

// Snapshot is the serializable view of a resolved enchantment registry.
type Snapshot struct {
	Version      string            `json:"version"`
	Enchantments []EnchantmentData `json:"enchantments"`
}

// EnchantmentData describes one registered enchantment as gameplay code sees it.
type EnchantmentData struct {
	Key             string   `json:"key"`
	Kind            string   `json:"kind"` // "vanilla", "override" or "custom"
	MaxLevel        int      `json:"max_level"`
	DefaultMaxLevel int      `json:"default_max_level,omitempty"`
	Curse           bool     `json:"curse,omitempty"`
	Treasure        bool     `json:"treasure,omitempty"`
	Conflicts       []string `json:"conflicts"`
}
