package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemeURL(t *testing.T) {
	assert.Equal(t,
		"git::https://github.com/PrismarineJS/minecraft-data.git//data/pc/1.19.4",
		schemeURL("https://github.com/PrismarineJS/minecraft-data.git", "pc", "1.19.4"))
	assert.Equal(t, filepath.Join("scheme", "pc-1.19.4"), schemePath("scheme", "pc", "1.19.4"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validate("./scheme", "pc", "1.19.4"))
	assert.Error(t, validate("", "pc", "1.19.4"))
	assert.Error(t, validate("./scheme", "", "1.19.4"))
	assert.Error(t, validate("./scheme", "pc", ""))
}

func TestDownload_LocalDir(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "enchantments.json"), []byte("[]"), 0o644))

	dst := filepath.Join(t.TempDir(), "pc-test")
	require.NoError(t, os.MkdirAll(dst, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "stale.json"), []byte("{}"), 0o644))

	require.NoError(t, download(context.Background(), dst, "file::"+src))

	assert.FileExists(t, filepath.Join(dst, "enchantments.json"))
	assert.NoFileExists(t, filepath.Join(dst, "stale.json"))
}
