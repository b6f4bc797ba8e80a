package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_Changes(t *testing.T) {
	prev := &Snapshot{Enchantments: []EnchantmentData{
		{Key: "minecraft:sharpness", Kind: KindVanilla, MaxLevel: 5, Conflicts: []string{"minecraft:smite"}},
		{Key: "minecraft:smite", Kind: KindVanilla, MaxLevel: 5, Conflicts: []string{"minecraft:sharpness"}},
		{Key: "ecoenchants:old", Kind: KindCustom, MaxLevel: 1, Conflicts: []string{}},
	}}
	cur := &Snapshot{Enchantments: []EnchantmentData{
		{Key: "minecraft:sharpness", Kind: KindOverride, MaxLevel: 7, Conflicts: []string{}},
		{Key: "minecraft:smite", Kind: KindVanilla, MaxLevel: 5, Conflicts: []string{"minecraft:sharpness"}},
		{Key: "ecoenchants:cubism", Kind: KindCustom, MaxLevel: 4, Conflicts: []string{}},
	}}

	assert.Equal(t, []string{
		"+ ecoenchants:cubism",
		"- ecoenchants:old",
		"~ minecraft:sharpness: kind vanilla -> override",
		"~ minecraft:sharpness: max_level 5 -> 7",
		"~ minecraft:sharpness: conflicts [minecraft:smite] -> []",
	}, cur.Changes(prev))
}

func TestSnapshot_ChangesFromNothing(t *testing.T) {
	cur := &Snapshot{Enchantments: []EnchantmentData{{Key: "minecraft:smite"}}}
	assert.Equal(t, []string{"+ minecraft:smite"}, cur.Changes(nil))
	assert.Empty(t, cur.Changes(cur))
}
