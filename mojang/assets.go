package mojang

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/respack/respack/core"
)

// ErrObjectNotFound is returned by FindObjectHash when the asset index has no entry for a path
var ErrObjectNotFound = errors.New("asset not found in asset index")

// FetchAssetIndex downloads an asset index and returns it unparsed; indexes are large and usually only
// searched for a handful of entries
func FetchAssetIndex(ctx context.Context, client *http.Client, url string) (string, error) {
	res, err := core.GetWithUA(ctx, client, url, "application/json")
	if err != nil {
		return "", fmt.Errorf("failed to download asset index from %s: %w", url, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read asset index from %s: %w", url, err)
	}
	return string(data), nil
}

// FindObjectHash finds the content hash of assetPath (e.g. minecraft/lang/de_de.json) in the text of an asset index
func FindObjectHash(index string, assetPath string) (string, error) {
	expr, err := regexp2.Compile(`"`+regexp2.Escape(assetPath)+`"\s*:\s*\{\s*"hash"\s*:\s*"([\da-fA-F]{40})"`, regexp2.None)
	if err != nil {
		return "", err
	}
	match, err := expr.FindStringMatch(index)
	if err != nil {
		return "", err
	}
	if match == nil {
		return "", fmt.Errorf("%w: %s", ErrObjectNotFound, assetPath)
	}
	return strings.ToLower(match.GroupByNumber(1).String()), nil
}

// ObjectURL returns the download URL of a content-addressed resource object
func ObjectURL(base string, hash string) string {
	return strings.TrimSuffix(base, "/") + "/" + hash[:2] + "/" + hash
}

// LangAssetPath returns the asset index path of a language file
func LangAssetPath(lang string) string {
	return "minecraft/lang/" + strings.ToLower(lang) + ".json"
}
