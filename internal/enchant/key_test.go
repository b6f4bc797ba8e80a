package enchant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	k, err := ParseKey("sharpness")
	require.NoError(t, err)
	assert.Equal(t, MinecraftKey("sharpness"), k)

	k, err = ParseKey(" Eco:Cubism ")
	require.NoError(t, err)
	assert.Equal(t, Key{Namespace: "eco", Name: "cubism"}, k)
	assert.Equal(t, "eco:cubism", k.String())

	k, err = ParseKey("eco:artifacts/lava")
	require.NoError(t, err)
	assert.Equal(t, "artifacts/lava", k.Name)
}

func TestParseKey_Invalid(t *testing.T) {
	for _, s := range []string{"", ":", "eco:", ":name", "bad key", "a/b:c", "eco:semi;colon"} {
		_, err := ParseKey(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestKeySet(t *testing.T) {
	s := NewKeySet(MinecraftKey("smite"), MinecraftKey("bane_of_arthropods"))

	assert.True(t, s.Has(MinecraftKey("smite")))
	assert.False(t, s.Has(MinecraftKey("looting")))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []Key{MinecraftKey("bane_of_arthropods"), MinecraftKey("smite")}, s.Keys())

	var absent KeySet
	assert.Nil(t, absent.Clone())
	assert.NotNil(t, NewKeySet().Clone())
}

func TestParseKeySet(t *testing.T) {
	s, err := ParseKeySet([]string{"smite", "eco:cubism"})
	require.NoError(t, err)
	assert.True(t, s.Has(MustParseKey("eco:cubism")))

	_, err = ParseKeySet([]string{"smite", "no way"})
	assert.Error(t, err)
}
