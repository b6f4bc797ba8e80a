// Package enchant models server enchantments as seen by gameplay code and
// lets plugin data override vanilla behaviour per enchantment.
package enchant

// Enchantment is the host-facing view of an enchantment. Gameplay code only
// ever holds enchantments through this interface.
type Enchantment interface {
	Key() Key
	MaxLevel() int
	Curse() bool
	Treasure() bool
	ConflictsWith(other Enchantment) bool
}

// ConflictDecider is implemented by plugin-defined enchantments that decide
// for themselves whether they conflict with another enchantment. When the
// other side of a conflict check implements it, its answer is final.
type ConflictDecider interface {
	DecideConflict(other Enchantment) bool
}

// Unwrapper is implemented by enchantments that delegate to another one.
type Unwrapper interface {
	Unwrap() Enchantment
}

// Registrar accepts enchantments during startup wiring.
type Registrar interface {
	Register(e Enchantment)
}
