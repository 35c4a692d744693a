package bedrock

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
)

// ErrMissingKey is returned when a required key is absent from a definition
var ErrMissingKey = errors.New("missing required key")

// EntityRenderDefinition is the description of a minecraft:client_entity file.
// Definitions are shared once loaded and must not be modified.
type EntityRenderDefinition struct {
	FormatVersion    Version
	MinEngineVersion Version
	EntityType       ResourceLocation
	// Texture name => texture path, prefixed with the resource root
	TexturePaths map[string]string
	// Material name => material identifier
	MaterialIdentifiers map[string]string
	// Variant name => geometry name
	GeometryNames map[string]string
	// State name => animation name
	AnimationNames map[string]string
}

type clientEntityFile struct {
	FormatVersion *string `mapstructure:"format_version"`
	ClientEntity  *struct {
		Description *clientEntityDescription `mapstructure:"description"`
	} `mapstructure:"minecraft:client_entity"`
}

type clientEntityDescription struct {
	Identifier       *string           `mapstructure:"identifier"`
	MinEngineVersion *string           `mapstructure:"min_engine_version"`
	Materials        map[string]string `mapstructure:"materials"`
	Textures         map[string]string `mapstructure:"textures"`
	Geometry         map[string]string `mapstructure:"geometry"`
	Animations       map[string]string `mapstructure:"animations"`
}

// RenderDefinitionFromJSON builds a definition from the decoded JSON of a client entity file.
// Texture paths are joined onto resourceRoot. Missing name maps become empty maps.
func RenderDefinitionFromJSON(resourceRoot string, data map[string]interface{}) (*EntityRenderDefinition, error) {
	var file clientEntityFile
	err := weakDecode(data, &file)
	if err != nil {
		return nil, fmt.Errorf("invalid client entity: %w", err)
	}
	if file.FormatVersion == nil {
		return nil, fmt.Errorf("%w: format_version", ErrMissingKey)
	}
	if file.ClientEntity == nil || file.ClientEntity.Description == nil {
		return nil, fmt.Errorf("%w: minecraft:client_entity.description", ErrMissingKey)
	}
	desc := file.ClientEntity.Description
	if desc.Identifier == nil {
		return nil, fmt.Errorf("%w: identifier", ErrMissingKey)
	}

	def := &EntityRenderDefinition{
		MinEngineVersion:    Unspecified,
		TexturePaths:        make(map[string]string, len(desc.Textures)),
		MaterialIdentifiers: orEmpty(desc.Materials),
		GeometryNames:       orEmpty(desc.Geometry),
		AnimationNames:      orEmpty(desc.Animations),
	}
	def.FormatVersion, err = ParseVersion(*file.FormatVersion)
	if err != nil {
		return nil, err
	}
	def.EntityType, err = ParseResourceLocation(*desc.Identifier)
	if err != nil {
		return nil, err
	}
	if desc.MinEngineVersion != nil {
		def.MinEngineVersion, err = ParseVersion(*desc.MinEngineVersion)
		if err != nil {
			return nil, err
		}
	}
	for k, v := range desc.Textures {
		def.TexturePaths[k] = filepath.Join(resourceRoot, filepath.FromSlash(v))
	}
	return def, nil
}

func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return make(map[string]string)
	}
	return m
}

// weakDecode decodes a generic JSON tree into out, converting between numbers and strings where needed
func weakDecode(input interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
