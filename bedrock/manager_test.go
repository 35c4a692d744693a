package bedrock

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestPack(t *testing.T) *Manager {
	m, err := LoadPack(filepath.Join("testdata", "pack"), zerolog.Nop())
	require.NoError(t, err)
	return m
}

func TestLoadPack(t *testing.T) {
	m := loadTestPack(t)

	assert.Equal(t, []string{"minecraft:armor_stand", "minecraft:pig"}, m.EntityTypes())
	assert.Equal(t, []string{"animation.pig.setup", "animation.pig.sniff", "animation.quadruped.walk"}, m.AnimationNames())
	assert.ElementsMatch(t, []string{"entity/broken.entity.json", "animations/broken.animation.json"}, m.Failed)
}

func TestLoadPackNewestDefinitionWins(t *testing.T) {
	m := loadTestPack(t)

	pig, ok := m.Definition("minecraft:pig")
	require.True(t, ok)
	assert.Equal(t, "1.8.0", pig.MinEngineVersion.String())
	assert.Equal(t, "pig", pig.MaterialIdentifiers["default"])
	assert.Equal(t, filepath.Join("testdata", "pack", "textures", "entity", "pig", "pig_saddle"), pig.TexturePaths["saddled"])
	assert.Len(t, pig.AnimationNames, 3)

	same, ok := m.Definition("pig")
	require.True(t, ok)
	assert.Same(t, pig, same)
}

func TestLoadPackIgnoreFile(t *testing.T) {
	m := loadTestPack(t)

	_, ok := m.Definition("minecraft:cow")
	assert.False(t, ok)

	stand, ok := m.Definition("armor_stand")
	require.True(t, ok)
	assert.Empty(t, stand.MaterialIdentifiers)
	assert.False(t, stand.MinEngineVersion.IsSpecified())
}

func TestLoadPackAnimations(t *testing.T) {
	m := loadTestPack(t)

	sniff, ok := m.Animation("animation.pig.sniff")
	require.True(t, ok)
	assert.Equal(t, HoldOnLastFrame, sniff.Loop)
	assert.Equal(t, float32(1.5), sniff.Length)
	rot := sniff.Bones["head"].Rotation
	require.Len(t, rot.Keyframes, 3)
	assert.Equal(t, LerpCatmullRom, rot.Keyframes[1].Lerp)
	assert.Equal(t, float32(-15), rot.Keyframes[1].Post.Vec.X())

	walk, ok := m.Animation("animation.quadruped.walk")
	require.True(t, ok)
	assert.Equal(t, Loop, walk.Loop)
	assert.False(t, walk.Bones["leg0"].Rotation.Keyframes[0].Pre.IsConstant())

	_, ok = m.Animation("animation.pig.fly")
	assert.False(t, ok)
}

func TestSuggest(t *testing.T) {
	m := loadTestPack(t)

	suggestions := m.Suggest("pig", 10)
	assert.ElementsMatch(t, []string{"minecraft:pig", "animation.pig.setup", "animation.pig.sniff"}, suggestions)
	assert.Len(t, m.Suggest("pig", 1), 1)
	assert.Empty(t, m.Suggest("zzz", 10))

	// No limit
	assert.Len(t, m.Suggest("pig", 0), 3)
	assert.Len(t, m.Suggest("pig", -1), 3)
}

func TestLoadPackMissingRoot(t *testing.T) {
	_, err := LoadPack(filepath.Join("testdata", "nothing"), zerolog.Nop())
	assert.Error(t, err)

	// A pack without entity folders loads empty
	m, err := LoadPack(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, m.EntityTypes())
	assert.Empty(t, m.Failed)
}
