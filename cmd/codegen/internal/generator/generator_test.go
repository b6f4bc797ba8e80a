package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemeJSON = `[
  {"id": 13, "name": "sharpness", "displayName": "Sharpness", "maxLevel": 5,
   "minCost": {"a": 11, "b": -10}, "maxCost": {"a": 11, "b": 10},
   "exclude": ["smite", "bane_of_arthropods"], "category": "weapon", "weight": 10,
   "treasureOnly": false, "curse": false, "tradeable": true, "discoverable": true},
  {"id": 6, "name": "aqua_affinity", "displayName": "Aqua Affinity", "maxLevel": 1,
   "minCost": {"a": 0, "b": 1}, "maxCost": {"a": 0, "b": 41},
   "exclude": [], "category": "armor_head", "weight": 2,
   "treasureOnly": false, "curse": false, "tradeable": true, "discoverable": true}
]`

func TestRun_GeneratesEnchantmentTable(t *testing.T) {
	scheme := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(scheme, "enchantments.json"), []byte(schemeJSON), 0o644))

	err := Run(Config{SchemeDir: scheme, OutDir: out, Package: "pc_test", Version: "pc-test"})
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(out, "pc_test", "enchantments.go"))
	require.NoError(t, err)

	got := string(src)
	assert.Contains(t, got, "package pc_test")
	assert.Contains(t, got, `const Version = "pc-test"`)
	assert.Contains(t, got, `Exclude: []string{"smite", "bane_of_arthropods"}`)
	assert.Contains(t, got, `Name: "aqua_affinity"`)
	assert.Contains(t, got, "Exclude: nil")
	assert.Less(t, strings.Index(got, `"aqua_affinity"`), strings.Index(got, `"sharpness"`), "entries should be sorted by id")
}

func TestRun_MissingScheme(t *testing.T) {
	err := Run(Config{SchemeDir: t.TempDir(), OutDir: t.TempDir(), Package: "pc_test", Version: "pc-test"})
	require.Error(t, err)
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, "nil", stringSlice(nil))
	assert.Equal(t, `[]string{"a", "b"}`, stringSlice([]string{"a", "b"}))
}
