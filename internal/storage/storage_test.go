package storage

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/ecoenchants/internal/config"
	"github.com/OCharnyshevich/ecoenchants/internal/custom"
	"github.com/OCharnyshevich/ecoenchants/internal/enchant"
	"github.com/OCharnyshevich/ecoenchants/pkg/gamedata"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRegistry(t *testing.T) *enchant.Registry {
	t.Helper()
	reg := enchant.NewRegistry()

	seven := 7
	sharp := enchant.NewVanilla(gamedata.Enchantment{Name: "sharpness", MaxLevel: 5, Exclude: []string{"smite"}})
	smite := enchant.NewVanilla(gamedata.Enchantment{Name: "smite", MaxLevel: 5, Exclude: []string{"sharpness"}})

	enchant.NewOverride(sharp, enchant.OverrideData{MaxLevel: &seven}).Register(reg)
	enchant.NewOverride(smite, enchant.OverrideData{}).Register(reg)

	cubism, err := custom.Definition{Key: "cubism", MaxLevel: 4, Conflicts: []string{"smite"}}.Build()
	require.NoError(t, err)
	reg.Register(cubism)
	return reg
}

func TestNew_WritesDefaultConfigOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := New(dir, testLogger())
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())

	path := filepath.Join(dir, "config.yaml")
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFile, string(got))

	require.NoError(t, os.WriteFile(path, []byte("version: pc-test\n"), 0o644))
	_, err = New(dir, testLogger())
	require.NoError(t, err)

	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version: pc-test\n", string(got), "existing config must not be replaced")
}

func TestPath(t *testing.T) {
	s, err := New(t.TempDir(), testLogger())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(s.Dir(), "enchants"), s.Path("enchants"))
	assert.Equal(t, "/abs/enchants", s.Path("/abs/enchants"))
	assert.Equal(t, "", s.Path(""))
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	s, err := New(t.TempDir(), testLogger())
	require.NoError(t, err)

	snap, err := s.LoadSnapshot()
	require.NoError(t, err)
	assert.Nil(t, snap)

	path, err := s.SaveRegistry("pc-test", testRegistry(t))
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.NoFileExists(t, path+".tmp")

	snap, err = s.LoadSnapshot()
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "pc-test", snap.Version)
	require.Len(t, snap.Enchantments, 3)

	sharp := snap.Enchantments[0]
	assert.Equal(t, "minecraft:sharpness", sharp.Key)
	assert.Equal(t, KindOverride, sharp.Kind)
	assert.Equal(t, 7, sharp.MaxLevel)
	assert.Equal(t, 5, sharp.DefaultMaxLevel)
	assert.Equal(t, []string{"minecraft:smite"}, sharp.Conflicts)

	smite := snap.Enchantments[1]
	assert.Equal(t, KindVanilla, smite.Kind)
	assert.Equal(t, []string{"minecraft:sharpness", "ecoenchants:cubism"}, smite.Conflicts)

	cubism := snap.Enchantments[2]
	assert.Equal(t, KindCustom, cubism.Kind)
	assert.Equal(t, []string{"minecraft:smite"}, cubism.Conflicts)
}

func TestLoadSnapshot_Corrupt(t *testing.T) {
	s, err := New(t.TempDir(), testLogger())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "registry.json"), []byte("{"), 0o644))

	_, err = s.LoadSnapshot()
	assert.Error(t, err)
}
