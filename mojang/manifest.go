// Package mojang talks to the launcher metadata endpoints Mojang publishes for Minecraft: Java Edition.
package mojang

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/respack/respack/core"
	"github.com/unascribed/FlexVer/go/flexver"
)

const (
	DefaultManifestURL  = "https://launchermeta.mojang.com/mc/game/version_manifest.json"
	DefaultResourcesURL = "https://resources.download.minecraft.net"
)

type Manifest struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []ManifestVersion `json:"versions"`
}

type ManifestVersion struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	Time        time.Time `json:"time"`
	ReleaseTime time.Time `json:"releaseTime"`
}

// Find returns the manifest entry with the given version id
func (m Manifest) Find(id string) (ManifestVersion, bool) {
	for _, v := range m.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return ManifestVersion{}, false
}

// Sorted returns the versions newest first; versions released at the same instant are ordered with FlexVer
func (m Manifest) Sorted() []ManifestVersion {
	out := make([]ManifestVersion, len(m.Versions))
	copy(out, m.Versions)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ReleaseTime.Equal(out[j].ReleaseTime) {
			return flexver.Less(out[j].ID, out[i].ID)
		}
		return out[i].ReleaseTime.After(out[j].ReleaseTime)
	})
	return out
}

// Download is a file listed in the downloads section of a version info file
type Download struct {
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

type VersionInfo struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	AssetIndex struct {
		ID   string `json:"id"`
		SHA1 string `json:"sha1"`
		Size int64  `json:"size"`
		URL  string `json:"url"`
	} `json:"assetIndex"`
	Downloads map[string]Download `json:"downloads"`
}

// Client returns the client jar download, if the version has one
func (v VersionInfo) Client() (Download, bool) {
	dl, ok := v.Downloads["client"]
	if !ok || len(dl.URL) == 0 {
		return Download{}, false
	}
	return dl, true
}

func FetchManifest(ctx context.Context, client *http.Client, url string) (Manifest, error) {
	out := Manifest{}
	err := fetchJSON(ctx, client, url, &out)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to download version manifest: %w", err)
	}
	return out, nil
}

func FetchVersionInfo(ctx context.Context, client *http.Client, url string) (VersionInfo, error) {
	out := VersionInfo{}
	err := fetchJSON(ctx, client, url, &out)
	if err != nil {
		return VersionInfo{}, fmt.Errorf("failed to download version info from %s: %w", url, err)
	}
	return out, nil
}

func fetchJSON(ctx context.Context, client *http.Client, url string, out interface{}) error {
	res, err := core.GetWithUA(ctx, client, url, "application/json")
	if err != nil {
		return err
	}
	defer res.Body.Close()

	dec := json.NewDecoder(res.Body)
	return dec.Decode(out)
}
