package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/unascribed/FlexVer/go/flexver"
	"golang.org/x/exp/slices"
)

// PackMetaFile is the name of the metadata file written into every downloaded pack directory
const PackMetaFile = "respack.toml"

// PackMeta stores what was downloaded into a pack directory, in respack.toml
type PackMeta struct {
	Version string `toml:"version"`
	Source  struct {
		Manifest   string `toml:"manifest"`
		ClientURL  string `toml:"client-url,omitempty"`
		HashFormat string `toml:"hash-format,omitempty"`
		Hash       string `toml:"hash,omitempty"`
	} `toml:"source"`
	Extracted time.Time `toml:"extracted,omitempty"`
	Languages []string  `toml:"languages,omitempty"`
}

// LoadPackMeta loads the metadata of the pack in dir. A missing file is reported through os.IsNotExist.
func LoadPackMeta(dir string) (PackMeta, error) {
	var meta PackMeta
	if _, err := toml.DecodeFile(filepath.Join(dir, PackMetaFile), &meta); err != nil {
		return PackMeta{}, err
	}
	return meta, nil
}

// LoadOrCreatePackMeta loads the metadata of the pack in dir, or returns a fresh one for version
func LoadOrCreatePackMeta(dir string, version string) (PackMeta, error) {
	meta, err := LoadPackMeta(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return PackMeta{Version: version}, nil
		}
		return PackMeta{}, err
	}
	return meta, nil
}

// AddLanguage records a fetched language code, keeping the list sorted and free of duplicates
func (meta *PackMeta) AddLanguage(lang string) {
	if slices.Contains(meta.Languages, lang) {
		return
	}
	meta.Languages = append(meta.Languages, lang)
	slices.Sort(meta.Languages)
}

// Write saves the pack metadata into dir
func (meta PackMeta) Write(dir string) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, PackMetaFile))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	// Disable indentation
	enc.Indent = ""
	return enc.Encode(meta)
}

// InstalledPack is a downloaded pack directory and its metadata
type InstalledPack struct {
	Dir  string
	Meta PackMeta
}

// ListPacks returns the packs in packsDir that have a metadata file, newest version first.
// A missing packsDir has no packs.
func ListPacks(packsDir string) ([]InstalledPack, error) {
	entries, err := os.ReadDir(packsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var packs []InstalledPack
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(packsDir, e.Name())
		meta, err := LoadPackMeta(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", filepath.Join(dir, PackMetaFile), err)
		}
		packs = append(packs, InstalledPack{Dir: dir, Meta: meta})
	}
	slices.SortStableFunc(packs, func(a, b InstalledPack) int {
		return int(flexver.Compare(b.Meta.Version, a.Meta.Version))
	})
	return packs, nil
}

// RemovePack deletes a pack directory. The metadata file is optional, so directories left behind
// by an interrupted download can still be removed. A missing dir returns an os.ErrNotExist error.
func RemovePack(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return os.RemoveAll(dir)
}
