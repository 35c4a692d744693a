package resource

import (
	"strings"

	"github.com/fatih/camelcase"
	"github.com/igorsobreira/titlecase"
)

// Stage is a step of a download that is reported to a Status
type Stage int

const (
	StageDownloadManifest Stage = iota
	StageGetVersionInfo
	StageDownloadJar
	StageExtractAsset
	StageGetAssetIndex
	StageDownloadLangText
)

var stageNames = [...]string{
	"DownloadManifest",
	"GetVersionInfo",
	"DownloadJar",
	"ExtractAsset",
	"GetAssetIndex",
	"DownloadLangText",
}

// Key returns the translation key of the stage, e.g. resource.info.download_jar
func (s Stage) Key() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "resource.info.unknown"
	}
	parts := camelcase.Split(stageNames[s])
	return "resource.info." + strings.ToLower(strings.Join(parts, "_"))
}

// DisplayName returns a human readable name of the stage, e.g. Download Jar
func (s Stage) DisplayName() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Unknown"
	}
	return titlecase.Title(strings.Join(camelcase.Split(stageNames[s]), " "))
}

func (s Stage) String() string {
	return s.Key()
}
