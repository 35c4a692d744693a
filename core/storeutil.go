package core

import (
	"os"
	"path/filepath"
	"runtime"
)

func GetLocalStore() (string, error) {
	if //goland:noinspection GoBoolExpressions
	runtime.GOOS == "linux" {
		// Prefer $XDG_DATA_HOME over $XDG_CACHE_HOME
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome != "" {
			return filepath.Join(dataHome, "respack"), nil
		}
	}
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "respack"), nil
}

func GetLocalCache() (string, error) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userCacheDir, "respack"), nil
}

// GetDefaultPackDir returns the directory versioned packs are stored in when no pack-dir is configured
func GetDefaultPackDir() (string, error) {
	localStore, err := GetLocalStore()
	if err != nil {
		return "", err
	}
	return filepath.Join(localStore, "resourcepacks"), nil
}

// GetCacheDir returns the directory for temporary downloads, creating it if needed
func GetCacheDir() (string, error) {
	localCache, err := GetLocalCache()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(localCache, "temp")
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return "", err
	}
	return dir, nil
}
