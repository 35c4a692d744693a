package resource

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	packMetaName = "pack.mcmeta"
	assetsPrefix = "assets/"
	// Format written into pack.mcmeta files for jars that don't ship one (pre-1.13 jars)
	defaultPackFormat = 4
)

type packMcmeta struct {
	Pack struct {
		Description string `json:"description"`
		PackFormat  int    `json:"pack_format"`
	} `json:"pack"`
}

// ExtractAssets copies everything under assets/ and the pack.mcmeta file from a client jar into target.
// Files already in target are overwritten if the jar contains them, and left alone otherwise.
// When the jar has no pack.mcmeta, one is written with the given description.
// It returns the number of files written.
func ExtractAssets(r *zip.Reader, target string, description string) (int, error) {
	err := os.MkdirAll(target, 0755)
	if err != nil {
		return 0, fmt.Errorf("failed to create pack directory %s: %w", target, err)
	}

	written := 0
	foundMeta := false
	for _, f := range r.File {
		name := path.Clean(f.Name)
		if name == packMetaName {
			foundMeta = true
		} else if !strings.HasPrefix(name, assetsPrefix) || f.FileInfo().IsDir() {
			continue
		}

		dest, err := safeJoin(target, name)
		if err != nil {
			return written, err
		}
		err = extractFile(f, dest)
		if err != nil {
			return written, err
		}
		written++
	}

	if !foundMeta {
		err = writeDefaultPackMeta(filepath.Join(target, packMetaName), description)
		if err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// safeJoin joins a slash separated archive path onto dir, refusing paths that escape it
func safeJoin(dir string, name string) (string, error) {
	dest := filepath.Join(dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(dir, dest)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(name) {
		return "", fmt.Errorf("archive entry %s escapes the target directory", name)
	}
	return dest, nil
}

func extractFile(f *zip.File, dest string) error {
	err := os.MkdirAll(filepath.Dir(dest), 0755)
	if err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dest, err)
	}
	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s in archive: %w", f.Name, err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	_, err = io.Copy(out, src)
	if err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to extract %s: %w", f.Name, err)
	}
	return out.Close()
}

func writeDefaultPackMeta(dest string, description string) error {
	meta := packMcmeta{}
	meta.Pack.Description = description
	meta.Pack.PackFormat = defaultPackFormat
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0644)
}
