package display

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/ecoenchants/internal/config"
	"github.com/OCharnyshevich/ecoenchants/internal/custom"
	"github.com/OCharnyshevich/ecoenchants/internal/enchant"
	"github.com/OCharnyshevich/ecoenchants/pkg/gamedata/versions/pc_1_19_4"
)

func vanilla(t *testing.T, name string) enchant.Enchantment {
	t.Helper()
	d, ok := pc_1_19_4.New().Enchantments.ByName(name)
	require.True(t, ok, "missing %s", name)
	return enchant.NewVanilla(d)
}

func customEnchant(t *testing.T, d custom.Definition) *custom.Enchantment {
	t.Helper()
	e, err := d.Build()
	require.NoError(t, err)
	return e
}

func TestRender_Basics(t *testing.T) {
	r := NewRenderer(config.DefaultConfig())

	res := r.Render([]Entry{
		{Enchantment: vanilla(t, "vanishing_curse"), Level: 1},
		{Enchantment: vanilla(t, "sharpness"), Level: 5},
		{Enchantment: vanilla(t, "mending"), Level: 1},
		{Enchantment: vanilla(t, "efficiency"), Level: 12},
	})

	assert.Equal(t, []string{
		"§w§7Sharpness V",
		"§w§7Mending",
		"§w§7Efficiency 12",
		"§w§cCurse of Vanishing",
	}, res.Lore)
	assert.Empty(t, res.Removed)
}

func TestRender_OverriddenMaxLevelShowsLevel(t *testing.T) {
	r := NewRenderer(config.DefaultConfig())
	three := 3
	mending := enchant.NewOverride(vanilla(t, "mending"), enchant.OverrideData{MaxLevel: &three})

	res := r.Render([]Entry{{Enchantment: mending, Level: 1}})
	assert.Equal(t, []string{"§w§7Mending I"}, res.Lore)
}

func TestRender_ArabicWhenNumeralsOff(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Lore.UseNumerals = false
	r := NewRenderer(cfg)

	res := r.Render([]Entry{{Enchantment: vanilla(t, "sharpness"), Level: 4}})
	assert.Equal(t, []string{"§w§7Sharpness 4"}, res.Lore)
}

func TestRender_CustomEnchantments(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RarityColors = map[string]string{"Legendary": "&e"}
	r := NewRenderer(cfg)

	artifact := customEnchant(t, custom.Definition{Key: "lava_artifact", Name: "Lava Artifact", Type: "artifact", MaxLevel: 1, Enabled: true})
	special := customEnchant(t, custom.Definition{Key: "soulbound", Name: "Soulbound", Type: "special", MaxLevel: 1, Enabled: true})
	legendary := customEnchant(t, custom.Definition{Key: "cubism", Name: "Cubism", Rarity: "legendary", MaxLevel: 4, Enabled: false})
	curse := customEnchant(t, custom.Definition{Key: "breaklessness", Name: "Breaklessness", Type: "curse", Rarity: "legendary", MaxLevel: 3, Enabled: true})

	res := r.Render([]Entry{
		{Enchantment: curse, Level: 2},
		{Enchantment: artifact, Level: 1},
		{Enchantment: special, Level: 1},
		{Enchantment: legendary, Level: 3},
	})

	assert.Equal(t, []string{
		"§w§6Lava Artifact",
		"§w§dSoulbound",
		"§w§eCubism III",
		"§w§cBreaklessness",
	}, res.Lore)
	assert.Equal(t, []enchant.Key{legendary.Key()}, res.Removed)
}

func TestRender_Describe(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Lore.Describe.Enabled = true
	cfg.Lore.Describe.Wrap = 16
	cfg.Descriptions = map[string]string{"sharpness": "Increases melee damage dealt"}
	r := NewRenderer(cfg)

	cubism := customEnchant(t, custom.Definition{Key: "cubism", Name: "Cubism", Description: []string{"Hurts slimes more"}, MaxLevel: 4, Enabled: true})

	res := r.Render([]Entry{
		{Enchantment: vanilla(t, "sharpness"), Level: 1},
		{Enchantment: cubism, Level: 2},
	})
	assert.Equal(t, []string{
		"§w§7Sharpness I",
		"§w§8Increases melee",
		"§w§8damage dealt",
		"§w§7Cubism II",
		"§w§8Hurts slimes more",
	}, res.Lore)
}

func TestRender_DescribeSkippedAboveThreshold(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Lore.Describe.Enabled = true
	cfg.Lore.Describe.BeforeLines = 1
	cfg.Descriptions = map[string]string{"sharpness": "Increases melee damage"}
	r := NewRenderer(cfg)

	res := r.Render([]Entry{
		{Enchantment: vanilla(t, "sharpness"), Level: 1},
		{Enchantment: vanilla(t, "looting"), Level: 1},
	})
	assert.Len(t, res.Lore, 2)
}

func TestRender_NamesFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Names = map[string]string{"minecraft:looting": "Plunder"}
	r := NewRenderer(cfg)

	res := r.Render([]Entry{{Enchantment: vanilla(t, "looting"), Level: 2}})
	assert.Equal(t, []string{"§w§7Plunder II"}, res.Lore)
}

func TestRender_Shrink(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Lore.Shrink.AfterLines = 2
	cfg.Lore.Shrink.MaximumPerLine = 2
	r := NewRenderer(cfg)

	names := []string{"sharpness", "looting", "unbreaking", "vanishing_curse", "knockback"}
	entries := make([]Entry, 0, len(names))
	for _, n := range names {
		entries = append(entries, Entry{Enchantment: vanilla(t, n), Level: 1})
	}

	res := r.Render(entries)
	assert.Equal(t, []string{
		"§w§7Sharpness I, §w§7Looting I",
		"§w§7Unbreaking I, §w§7Knockback I",
		"§w§cCurse of Vanishing",
	}, res.Lore)
}

func TestRevertAndApply(t *testing.T) {
	r := NewRenderer(config.DefaultConfig())

	lore := []string{"§w§7Old Enchant II", "A trusty blade", "§w§cCurse of Old"}
	assert.Equal(t, []string{"A trusty blade"}, Revert(lore))

	res := r.Apply(lore, []Entry{{Enchantment: vanilla(t, "sharpness"), Level: 3}})
	assert.Equal(t, []string{"§w§7Sharpness III", "A trusty blade"}, res.Lore)

	again := r.Apply(res.Lore, []Entry{{Enchantment: vanilla(t, "sharpness"), Level: 3}})
	assert.Equal(t, res.Lore, again.Lore, "applying twice is stable")
}

func ExampleNumeral() {
	fmt.Println(Numeral(4), Numeral(9), Numeral(12))
	// Output: IV IX XII
}
