package bedrock

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/sahilm/fuzzy"
	"golang.org/x/exp/slices"
)

// IgnoreFile lists paths, in gitignore syntax relative to the pack root, that LoadPack skips
const IgnoreFile = ".respackignore"

const (
	entityFolder    = "entity"
	animationFolder = "animations"
)

// Manager holds the entity resources of a Bedrock resource pack
type Manager struct {
	Root        string
	definitions map[ResourceLocation]*EntityRenderDefinition
	animations  map[string]*EntityAnimation
	// Files that could not be parsed, relative to Root
	Failed []string
}

// LoadPack reads entity/**.json and animations/**.json under root. Files that fail to parse are logged,
// recorded in Failed and skipped. When several files define the same entity, the one with the highest
// min_engine_version wins.
func LoadPack(root string, logger zerolog.Logger) (*Manager, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	ignored, err := loadIgnore(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", IgnoreFile, err)
	}

	m := &Manager{
		Root:        root,
		definitions: make(map[ResourceLocation]*EntityRenderDefinition),
		animations:  make(map[string]*EntityAnimation),
	}

	err = walkJSON(root, entityFolder, ignored, func(rel string, data map[string]interface{}) error {
		def, err := RenderDefinitionFromJSON(root, data)
		if err != nil {
			return err
		}
		if existing, ok := m.definitions[def.EntityType]; ok && existing.MinEngineVersion.Compare(def.MinEngineVersion) > 0 {
			logger.Debug().Str("file", rel).Str("entity", def.EntityType.String()).Msg("Skipping older entity definition")
			return nil
		}
		m.definitions[def.EntityType] = def
		return nil
	}, m.failed(logger))
	if err != nil {
		return nil, err
	}

	err = walkJSON(root, animationFolder, ignored, func(rel string, data map[string]interface{}) error {
		anims, _, err := AnimationsFromJSON(data)
		if err != nil {
			return err
		}
		for name, anim := range anims {
			m.animations[name] = anim
		}
		return nil
	}, m.failed(logger))
	if err != nil {
		return nil, err
	}

	logger.Info().Str("root", root).Int("entities", len(m.definitions)).Int("animations", len(m.animations)).
		Int("failed", len(m.Failed)).Msg("Loaded entity resources")
	return m, nil
}

func (m *Manager) failed(logger zerolog.Logger) func(rel string, err error) {
	return func(rel string, err error) {
		logger.Warn().Str("file", rel).Err(err).Msg("Failed to load entity resource")
		m.Failed = append(m.Failed, rel)
	}
}

func loadIgnore(root string) (*gitignore.GitIgnore, error) {
	data, err := os.ReadFile(filepath.Join(root, IgnoreFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return gitignore.CompileIgnoreLines(), nil
		}
		return nil, err
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	return gitignore.CompileIgnoreLines(lines...), nil
}

// walkJSON decodes every .json file under root/folder and passes it to load. Per-file failures go to
// onError; only errors walking the directory itself are returned.
func walkJSON(root string, folder string, ignored *gitignore.GitIgnore,
	load func(rel string, data map[string]interface{}) error, onError func(rel string, err error)) error {
	dir := filepath.Join(root, folder)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relSlash := filepath.ToSlash(rel)
		if ignored.MatchesPath(relSlash) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			onError(relSlash, err)
			return nil
		}
		var data map[string]interface{}
		err = json.Unmarshal(raw, &data)
		if err != nil {
			onError(relSlash, err)
			return nil
		}
		err = load(relSlash, data)
		if err != nil {
			onError(relSlash, err)
		}
		return nil
	})
}

// Definition looks up the render definition of an entity type, e.g. minecraft:pig or just pig
func (m *Manager) Definition(id string) (*EntityRenderDefinition, bool) {
	loc, err := ParseResourceLocation(id)
	if err != nil {
		return nil, false
	}
	def, ok := m.definitions[loc]
	return def, ok
}

func (m *Manager) Animation(name string) (*EntityAnimation, bool) {
	anim, ok := m.animations[name]
	return anim, ok
}

// EntityTypes returns the identifiers of all loaded definitions, sorted
func (m *Manager) EntityTypes() []string {
	ids := make([]string, 0, len(m.definitions))
	for loc := range m.definitions {
		ids = append(ids, loc.String())
	}
	slices.Sort(ids)
	return ids
}

// AnimationNames returns the names of all loaded animations, sorted
func (m *Manager) AnimationNames() []string {
	names := make([]string, 0, len(m.animations))
	for name := range m.animations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Suggest returns up to limit entity types and animation names that fuzzily match query, best match first.
// A limit of zero or less returns every match.
func (m *Manager) Suggest(query string, limit int) []string {
	candidates := append(m.EntityTypes(), m.AnimationNames()...)
	matches := fuzzy.Find(query, candidates)
	if limit <= 0 || limit > len(matches) {
		limit = len(matches)
	}
	out := make([]string, 0, limit)
	for _, match := range matches {
		if len(out) >= limit {
			break
		}
		out = append(out, match.Str)
	}
	return out
}
