package gamedata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/ecoenchants/pkg/gamedata"
)

const enchantmentsJSON = `[
  {"id": 13, "name": "sharpness", "displayName": "Sharpness", "maxLevel": 5,
   "minCost": {"a": 11, "b": -10}, "maxCost": {"a": 11, "b": 10},
   "exclude": ["smite", "bane_of_arthropods"], "category": "weapon", "weight": 10,
   "treasureOnly": false, "curse": false, "tradeable": true, "discoverable": true},
  {"id": 38, "name": "vanishing_curse", "displayName": "Curse of Vanishing", "maxLevel": 1,
   "minCost": {"a": 0, "b": 25}, "maxCost": {"a": 0, "b": 50},
   "exclude": [], "category": "vanishable", "weight": 1,
   "treasureOnly": true, "curse": true, "tradeable": true, "discoverable": true}
]`

func TestParseEnchantments(t *testing.T) {
	list, err := gamedata.ParseEnchantments([]byte(enchantmentsJSON))
	require.NoError(t, err)
	require.Len(t, list, 2)

	sharp := list[0]
	assert.Equal(t, "sharpness", sharp.Name)
	assert.Equal(t, 5, sharp.MaxLevel)
	assert.Equal(t, 1, sharp.MinCost.At(1))
	assert.Equal(t, 45, sharp.MinCost.At(5))
	assert.True(t, sharp.Excludes("smite"))
	assert.False(t, sharp.Excludes("looting"))

	curse := list[1]
	assert.True(t, curse.Curse)
	assert.True(t, curse.TreasureOnly)
}

func TestParseEnchantments_Errors(t *testing.T) {
	_, err := gamedata.ParseEnchantments([]byte(`{"not": "an array"}`))
	assert.Error(t, err)

	_, err = gamedata.ParseEnchantments([]byte(`[{"id": 1, "maxLevel": 2}]`))
	assert.ErrorContains(t, err, "missing name")
}

func TestLoadEnchantmentsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enchantments.json")
	require.NoError(t, os.WriteFile(path, []byte(enchantmentsJSON), 0o644))

	gd, err := gamedata.LoadEnchantmentsFile(path, "pc-test")
	require.NoError(t, err)
	assert.Equal(t, "pc-test", gd.Version)

	e, ok := gd.Enchantments.ByID(38)
	require.True(t, ok)
	assert.Equal(t, "vanishing_curse", e.Name)

	_, err = gamedata.LoadEnchantmentsFile(filepath.Join(t.TempDir(), "missing.json"), "pc-test")
	assert.Error(t, err)
}

func TestEnchantmentRegistry(t *testing.T) {
	reg := gamedata.NewEnchantmentRegistry([]gamedata.Enchantment{
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b"},
	})

	b, ok := reg.ByName("b")
	require.True(t, ok)
	assert.Equal(t, 2, b.ID)

	_, ok = reg.ByID(99)
	assert.False(t, ok)
	_, ok = reg.ByName("nonexistent")
	assert.False(t, ok)

	all := reg.All()
	require.Len(t, all, 2)
	all[0].Name = "mutated"
	a, _ := reg.ByID(1)
	assert.Equal(t, "a", a.Name, "All returns a copy")
}
