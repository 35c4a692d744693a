package bedrock

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDefinitionFromJSON(t *testing.T) {
	def, err := RenderDefinitionFromJSON("res", decode(t, `{
		"format_version": "1.10.0",
		"minecraft:client_entity": {
			"description": {
				"identifier": "minecraft:pig",
				"min_engine_version": "1.8.0",
				"materials": {"default": "pig"},
				"textures": {"default": "textures/entity/pig/pig"},
				"geometry": {"default": "geometry.pig.v1.8"},
				"animations": {"setup": "animation.pig.setup"},
				"render_controllers": ["controller.render.pig"]
			}
		}
	}`))
	require.NoError(t, err)
	assert.Equal(t, ResourceLocation{Namespace: "minecraft", Path: "pig"}, def.EntityType)
	assert.Equal(t, 0, def.FormatVersion.Compare(MustParseVersion("1.10.0")))
	assert.Equal(t, 0, def.MinEngineVersion.Compare(MustParseVersion("1.8.0")))
	assert.Equal(t, map[string]string{"default": "pig"}, def.MaterialIdentifiers)
	assert.Equal(t, map[string]string{"default": filepath.Join("res", "textures", "entity", "pig", "pig")}, def.TexturePaths)
	assert.Equal(t, map[string]string{"default": "geometry.pig.v1.8"}, def.GeometryNames)
	assert.Equal(t, map[string]string{"setup": "animation.pig.setup"}, def.AnimationNames)
}

func TestRenderDefinitionOptionalKeys(t *testing.T) {
	def, err := RenderDefinitionFromJSON("res", decode(t, `{
		"format_version": "1.8.0",
		"minecraft:client_entity": {"description": {"identifier": "custom:thing"}}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "custom:thing", def.EntityType.String())
	assert.False(t, def.MinEngineVersion.IsSpecified())
	for _, m := range []map[string]string{def.MaterialIdentifiers, def.TexturePaths, def.GeometryNames, def.AnimationNames} {
		assert.NotNil(t, m)
		assert.Empty(t, m)
	}
}

func TestRenderDefinitionErrors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		missing bool
	}{
		{"no format version", `{"minecraft:client_entity": {"description": {"identifier": "pig"}}}`, true},
		{"no client entity", `{"format_version": "1.8.0"}`, true},
		{"no description", `{"format_version": "1.8.0", "minecraft:client_entity": {}}`, true},
		{"no identifier", `{"format_version": "1.8.0", "minecraft:client_entity": {"description": {}}}`, true},
		{"bad format version", `{"format_version": "one", "minecraft:client_entity": {"description": {"identifier": "pig"}}}`, false},
		{"empty identifier", `{"format_version": "1.8.0", "minecraft:client_entity": {"description": {"identifier": "minecraft:"}}}`, false},
		{"materials not an object", `{"format_version": "1.8.0", "minecraft:client_entity": {"description": {"identifier": "pig", "materials": ["pig"]}}}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderDefinitionFromJSON("res", decode(t, tt.json))
			require.Error(t, err)
			if tt.missing {
				assert.ErrorIs(t, err, ErrMissingKey)
			}
		})
	}
}

func TestParseResourceLocation(t *testing.T) {
	loc, err := ParseResourceLocation("pig")
	require.NoError(t, err)
	assert.Equal(t, "minecraft:pig", loc.String())

	loc, err = ParseResourceLocation(":pig")
	require.NoError(t, err)
	assert.Equal(t, "minecraft:pig", loc.String())

	loc, err = ParseResourceLocation("mymod:entity/boat")
	require.NoError(t, err)
	assert.Equal(t, ResourceLocation{Namespace: "mymod", Path: "entity/boat"}, loc)

	_, err = ParseResourceLocation("")
	assert.Error(t, err)
}

func TestVersionCompare(t *testing.T) {
	assert.Equal(t, -1, MustParseVersion("1.8.0").Compare(MustParseVersion("1.10.0")))
	assert.Equal(t, 1, MustParseVersion("1.16.100").Compare(MustParseVersion("1.16.0")))
	assert.Equal(t, 0, MustParseVersion("1.8").Compare(MustParseVersion("1.8.0")))
	assert.Equal(t, -1, Unspecified.Compare(MustParseVersion("0.0.1")))
	assert.Equal(t, 1, MustParseVersion("0.0.1").Compare(Unspecified))
	assert.Equal(t, 0, Unspecified.Compare(Version{}))
	assert.Equal(t, "unspecified", Unspecified.String())
	assert.Equal(t, "1.8", MustParseVersion("1.8").String())

	_, err := ParseVersion("latest")
	assert.Error(t, err)
	assert.Panics(t, func() { MustParseVersion("latest") })
}
