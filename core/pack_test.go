package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackMetaRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vanilla-1.20.1")

	meta := PackMeta{Version: "1.20.1"}
	meta.Source.Manifest = "https://example.com/version_manifest.json"
	meta.Source.HashFormat = "sha1"
	meta.Source.Hash = "0123456789abcdef0123456789abcdef01234567"
	meta.AddLanguage("ja_jp")
	meta.AddLanguage("de_de")
	meta.AddLanguage("ja_jp")
	require.NoError(t, meta.Write(dir))

	loaded, err := LoadPackMeta(dir)
	require.NoError(t, err)
	assert.Equal(t, "1.20.1", loaded.Version)
	assert.Equal(t, meta.Source, loaded.Source)
	assert.Equal(t, []string{"de_de", "ja_jp"}, loaded.Languages)
}

func TestLoadOrCreatePackMetaMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadPackMeta(dir)
	assert.True(t, os.IsNotExist(err))

	meta, err := LoadOrCreatePackMeta(dir, "1.19.4")
	require.NoError(t, err)
	assert.Equal(t, "1.19.4", meta.Version)
	assert.Empty(t, meta.Languages)
}

func TestHashReader(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "hash")
	require.NoError(t, err)
	_, err = f.WriteString("abc")
	require.NoError(t, err)
	_, err = f.Seek(0, 0)
	require.NoError(t, err)
	defer f.Close()

	sum, err := HashReader("SHA1", f)
	require.NoError(t, err)
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", sum)

	_, err = HashReader("murmur2", f)
	assert.Error(t, err)
}

func TestListPacks(t *testing.T) {
	root := t.TempDir()
	for _, v := range []string{"1.9", "1.20.1", "23w31a"} {
		require.NoError(t, PackMeta{Version: v}.Write(filepath.Join(root, "vanilla-"+v)))
	}
	require.NoError(t, os.Mkdir(filepath.Join(root, "my-pack"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hi"), 0644))

	packs, err := ListPacks(root)
	require.NoError(t, err)
	require.Len(t, packs, 3)
	var versions []string
	for _, p := range packs {
		versions = append(versions, p.Meta.Version)
	}
	// Compared as versions, not strings
	assert.Equal(t, []string{"23w31a", "1.20.1", "1.9"}, versions)
	assert.Equal(t, filepath.Join(root, "vanilla-1.9"), packs[2].Dir)

	packs, err = ListPacks(filepath.Join(root, "missing"))
	require.NoError(t, err)
	assert.Empty(t, packs)
}

func TestRemovePack(t *testing.T) {
	root := t.TempDir()

	withMeta := filepath.Join(root, "1.20.1")
	require.NoError(t, PackMeta{Version: "1.20.1"}.Write(withMeta))
	require.NoError(t, RemovePack(withMeta))
	assert.NoDirExists(t, withMeta)

	// Left behind by an interrupted download, no respack.toml
	partial := filepath.Join(root, "1.19")
	require.NoError(t, os.MkdirAll(filepath.Join(partial, "assets"), 0755))
	require.NoError(t, RemovePack(partial))
	assert.NoDirExists(t, partial)

	err := RemovePack(filepath.Join(root, "missing"))
	assert.True(t, os.IsNotExist(err))

	file := filepath.Join(root, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("hi"), 0644))
	assert.Error(t, RemovePack(file))
	assert.FileExists(t, file)
}
