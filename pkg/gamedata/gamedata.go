package gamedata

// GameData is the host data set for one pinned server version.
type GameData struct {
	Version      string
	Enchantments EnchantmentRegistry
}
