package cmdshared

import (
	"fmt"

	"github.com/respack/respack/core"
	"github.com/respack/respack/resource"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// GetPacksDir returns the configured pack directory, or the default one in the local store
func GetPacksDir() (string, error) {
	if dir := viper.GetString("pack-dir"); dir != "" {
		return dir, nil
	}
	dir, err := core.GetDefaultPackDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate pack directory: %w", err)
	}
	return dir, nil
}

// NewDownloader creates a resource downloader from the current configuration
func NewDownloader() (*resource.Downloader, error) {
	packsDir, err := GetPacksDir()
	if err != nil {
		return nil, err
	}
	tempDir, err := core.GetCacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate cache directory: %w", err)
	}
	return resource.NewDownloader(packsDir,
		resource.WithTempDir(tempDir),
		resource.WithManifestURL(viper.GetString("manifest-url")),
		resource.WithResourcesURL(viper.GetString("resources-url")),
		resource.WithVerifyHash(viper.GetBool("download.verify")),
		resource.WithLogger(log.Logger),
	), nil
}
