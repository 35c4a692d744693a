package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/respack/respack/cmdshared"
	"github.com/respack/respack/mojang"
	"github.com/respack/respack/resource"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// versionsCmd represents the versions command
var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List the Minecraft versions available to download",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dl, err := cmdshared.NewDownloader()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		manifest, err := fetchManifest(cmd.Context(), dl)
		if err != nil {
			fmt.Printf("Failed to get version manifest: %v\n", err)
			os.Exit(1)
		}

		versions := filterVersions(manifest.Sorted(), viper.GetBool("versions.snapshots"))
		for _, v := range versions {
			marker := ""
			if _, err := os.Stat(dl.PackDir(v.ID)); err == nil {
				marker = " (downloaded)"
			}
			fmt.Printf("%-24s %-10s %s%s\n", v.ID, v.Type, v.ReleaseTime.Format("2006-01-02"), marker)
		}
	},
}

func fetchManifest(ctx context.Context, dl *resource.Downloader) (mojang.Manifest, error) {
	return mojang.FetchManifest(ctx, dl.Client, dl.ManifestURL)
}

// filterVersions keeps releases, and snapshots and other version types if all is set
func filterVersions(versions []mojang.ManifestVersion, all bool) []mojang.ManifestVersion {
	if all {
		return versions
	}
	i := 0
	for _, v := range versions {
		if v.Type == "release" {
			versions[i] = v
			i++
		}
	}
	return versions[:i]
}

func init() {
	rootCmd.AddCommand(versionsCmd)

	versionsCmd.Flags().BoolP("snapshots", "s", false, "Include snapshots and other pre-release versions")
	_ = viper.BindPFlag("versions.snapshots", versionsCmd.Flags().Lookup("snapshots"))
}
