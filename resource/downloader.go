// Package resource downloads vanilla resource packs and language files into versioned pack directories.
package resource

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/respack/respack/core"
	"github.com/respack/respack/mojang"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrVersionNotFound = errors.New("version not found in manifest")
	ErrNoClientJar     = errors.New("version has no client jar")
	ErrLangNotFound    = errors.New("language not found in asset index")
	ErrHashMismatch    = errors.New("downloaded file hash does not match")
)

// Downloader fetches vanilla resources from Mojang's servers. A Downloader may be reused, but downloads
// into the same pack directory must not run concurrently.
type Downloader struct {
	Client       *http.Client
	PacksDir     string
	TempDir      string
	ManifestURL  string
	ResourcesURL string
	VerifyHash   bool
	Log          zerolog.Logger
}

type Option func(*Downloader)

func WithClient(client *http.Client) Option {
	return func(d *Downloader) { d.Client = client }
}

// WithTempDir sets where client jars are downloaded to before extraction; the system default is used otherwise
func WithTempDir(dir string) Option {
	return func(d *Downloader) { d.TempDir = dir }
}

func WithManifestURL(url string) Option {
	return func(d *Downloader) { d.ManifestURL = url }
}

func WithResourcesURL(url string) Option {
	return func(d *Downloader) { d.ResourcesURL = url }
}

func WithVerifyHash(verify bool) Option {
	return func(d *Downloader) { d.VerifyHash = verify }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(d *Downloader) { d.Log = logger }
}

// NewDownloader creates a Downloader storing packs in packsDir
func NewDownloader(packsDir string, opts ...Option) *Downloader {
	d := &Downloader{
		Client:       &http.Client{},
		PacksDir:     packsDir,
		ManifestURL:  mojang.DefaultManifestURL,
		ResourcesURL: mojang.DefaultResourcesURL,
		VerifyHash:   true,
		Log:          log.Logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// PackDir returns the directory resources for version are stored in
func (d *Downloader) PackDir(version string) string {
	return filepath.Join(d.PacksDir, "vanilla-"+version)
}

// DownloadResource downloads the client jar of version and extracts its assets into PackDir(version).
// status may be nil.
func (d *Downloader) DownloadResource(ctx context.Context, version string, status Status) (err error) {
	if status == nil {
		status = StatusFuncs{}
	}
	logger := d.Log.With().Str("version", version).Logger()
	logger.Info().Msg("Downloading resource")

	status.Start()
	defer func() {
		status.Complete(err == nil)
	}()

	info, err := d.resolveVersionInfo(ctx, logger, version, status)
	if err != nil {
		return err
	}

	jar, ok := info.Client()
	if !ok {
		return stageFailed(logger, StageGetVersionInfo, fmt.Errorf("%w: %s", ErrNoClientJar, version))
	}

	status.UpdateStatus(StageDownloadJar, "")
	jarPath, hash, err := d.downloadToTemp(ctx, jar.URL, jar.Size, StageDownloadJar, status)
	if err != nil {
		return stageFailed(logger.With().Str("url", jar.URL).Logger(), StageDownloadJar,
			fmt.Errorf("failed to download client jar: %w", err))
	}
	defer os.Remove(jarPath)

	if d.VerifyHash && len(jar.SHA1) > 0 && !strings.EqualFold(jar.SHA1, hash) {
		return stageFailed(logger, StageDownloadJar,
			fmt.Errorf("%w: client jar has sha1 %s, expected %s", ErrHashMismatch, hash, jar.SHA1))
	}

	status.UpdateStatus(StageExtractAsset, "")
	target := d.PackDir(version)
	zipFile, err := zip.OpenReader(jarPath)
	if err != nil {
		return stageFailed(logger, StageExtractAsset, fmt.Errorf("failed to read client jar: %w", err))
	}
	defer zipFile.Close()

	count, err := ExtractAssets(&zipFile.Reader, target, "Vanilla resources for Minecraft "+version)
	if err != nil {
		return stageFailed(logger, StageExtractAsset, err)
	}

	meta, err := core.LoadOrCreatePackMeta(target, version)
	if err != nil {
		return stageFailed(logger, StageExtractAsset, fmt.Errorf("failed to read pack metadata: %w", err))
	}
	meta.Version = version
	meta.Source.Manifest = d.ManifestURL
	meta.Source.ClientURL = jar.URL
	meta.Source.HashFormat = "sha1"
	meta.Source.Hash = hash
	meta.Extracted = time.Now().UTC().Truncate(time.Second)
	err = meta.Write(target)
	if err != nil {
		return stageFailed(logger, StageExtractAsset, fmt.Errorf("failed to write pack metadata: %w", err))
	}

	logger.Info().Int("files", count).Str("dir", target).Msg("Resources successfully downloaded and extracted")
	return nil
}

// DownloadLanguage downloads the language file lang (e.g. de_de) of version into PackDir(version).
// en_us is not listed in asset indexes; it ships inside the client jar fetched by DownloadResource.
func (d *Downloader) DownloadLanguage(ctx context.Context, version string, lang string, status Status) (err error) {
	if status == nil {
		status = StatusFuncs{}
	}
	lang = strings.ToLower(lang)
	logger := d.Log.With().Str("version", version).Str("lang", lang).Logger()
	logger.Info().Msg("Downloading language file")

	status.Start()
	defer func() {
		status.Complete(err == nil)
	}()

	info, err := d.resolveVersionInfo(ctx, logger, version, status)
	if err != nil {
		return err
	}

	status.UpdateStatus(StageGetAssetIndex, "")
	index, err := mojang.FetchAssetIndex(ctx, d.Client, info.AssetIndex.URL)
	if err != nil {
		return stageFailed(logger.With().Str("url", info.AssetIndex.URL).Logger(), StageGetAssetIndex, err)
	}

	assetPath := mojang.LangAssetPath(lang)
	hash, err := mojang.FindObjectHash(index, assetPath)
	if err != nil {
		return stageFailed(logger, StageGetAssetIndex, fmt.Errorf("%w: %w", ErrLangNotFound, err))
	}

	status.UpdateStatus(StageDownloadLangText, "")
	url := mojang.ObjectURL(d.ResourcesURL, hash)
	tempPath, gotHash, err := d.downloadToTemp(ctx, url, 0, StageDownloadLangText, status)
	if err != nil {
		return stageFailed(logger.With().Str("url", url).Logger(), StageDownloadLangText,
			fmt.Errorf("failed to download %s: %w", assetPath, err))
	}
	defer os.Remove(tempPath)

	if d.VerifyHash && !strings.EqualFold(hash, gotHash) {
		return stageFailed(logger, StageDownloadLangText,
			fmt.Errorf("%w: %s has sha1 %s, expected %s", ErrHashMismatch, assetPath, gotHash, hash))
	}

	target := d.PackDir(version)
	dest := filepath.Join(target, "assets", filepath.FromSlash(assetPath))
	err = copyFile(tempPath, dest)
	if err != nil {
		return stageFailed(logger, StageDownloadLangText, err)
	}

	meta, err := core.LoadOrCreatePackMeta(target, version)
	if err != nil {
		return stageFailed(logger, StageDownloadLangText, fmt.Errorf("failed to read pack metadata: %w", err))
	}
	meta.AddLanguage(lang)
	err = meta.Write(target)
	if err != nil {
		return stageFailed(logger, StageDownloadLangText, fmt.Errorf("failed to write pack metadata: %w", err))
	}

	logger.Info().Str("file", dest).Msgf("Successfully downloaded %s for %s", assetPath, version)
	return nil
}

// resolveVersionInfo runs the manifest stages shared by every download: fetch the manifest, find the
// version entry and fetch its version info. Nothing else is requested when the version is missing.
func (d *Downloader) resolveVersionInfo(ctx context.Context, logger zerolog.Logger, version string, status Status) (mojang.VersionInfo, error) {
	status.UpdateStatus(StageDownloadManifest, "")
	manifest, err := mojang.FetchManifest(ctx, d.Client, d.ManifestURL)
	if err != nil {
		return mojang.VersionInfo{}, stageFailed(logger.With().Str("url", d.ManifestURL).Logger(), StageDownloadManifest, err)
	}

	entry, ok := manifest.Find(version)
	if !ok {
		return mojang.VersionInfo{}, stageFailed(logger, StageDownloadManifest, fmt.Errorf("%w: %s", ErrVersionNotFound, version))
	}

	status.UpdateStatus(StageGetVersionInfo, "")
	info, err := mojang.FetchVersionInfo(ctx, d.Client, entry.URL)
	if err != nil {
		return mojang.VersionInfo{}, stageFailed(logger.With().Str("url", entry.URL).Logger(), StageGetVersionInfo, err)
	}
	return info, nil
}

// downloadToTemp saves url into a temporary file, returning its path and sha1 hash.
// size is used for progress when the server doesn't send a content length.
func (d *Downloader) downloadToTemp(ctx context.Context, url string, size int64, stage Stage, status Status) (string, string, error) {
	res, err := core.GetWithUA(ctx, d.Client, url, "")
	if err != nil {
		return "", "", err
	}
	defer res.Body.Close()

	tempFile, err := os.CreateTemp(d.TempDir, "download-tmp")
	if err != nil {
		return "", "", fmt.Errorf("failed to create temporary file for download: %w", err)
	}

	total := res.ContentLength
	if total <= 0 {
		total = size
	}
	h, err := core.GetHashImpl("sha1")
	if err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempFile.Name())
		return "", "", err
	}
	body := io.TeeReader(newProgressReader(res.Body, total, stage, status), h)
	_, err = io.Copy(tempFile, body)
	if err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempFile.Name())
		return "", "", err
	}
	err = tempFile.Close()
	if err != nil {
		_ = os.Remove(tempFile.Name())
		return "", "", fmt.Errorf("failed to close temporary file for download: %w", err)
	}
	return tempFile.Name(), fmt.Sprintf("%x", h.Sum(nil)), nil
}

func copyFile(src string, dest string) error {
	err := os.MkdirAll(filepath.Dir(dest), 0755)
	if err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dest, err)
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	_, err = io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return out.Close()
}

func stageFailed(logger zerolog.Logger, stage Stage, err error) error {
	logger.Warn().Str("stage", stage.Key()).Err(err).Msg("Resource download failed")
	return err
}
