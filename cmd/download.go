package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/respack/respack/cmdshared"
	"github.com/respack/respack/resource"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const menuVersionCount = 15

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download [version]",
	Short: "Download the vanilla resources of a Minecraft version",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		dl, err := cmdshared.NewDownloader()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		var version string
		if len(args) == 1 {
			version = args[0]
		} else {
			version, err = chooseVersion(ctx, dl)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}

		status := &cmdshared.ProgressStatus{}
		fmt.Printf("Downloading resources for %s...\n", version)
		err = dl.DownloadResource(ctx, version, status)
		if err != nil {
			fmt.Printf("Failed to download resources for %s: %v\n", version, err)
			os.Exit(1)
		}

		for _, lang := range viper.GetStringSlice("download.lang") {
			err = downloadLanguage(ctx, dl, version, lang)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
		fmt.Printf("Resources for %s saved to %s\n", version, dl.PackDir(version))
	},
}

func chooseVersion(ctx context.Context, dl *resource.Downloader) (string, error) {
	manifest, err := fetchManifest(ctx, dl)
	if err != nil {
		return "", fmt.Errorf("failed to get version manifest: %w", err)
	}
	if viper.GetBool("download.latest") {
		return manifest.Latest.Release, nil
	}
	if viper.GetBool("download.snapshot") {
		return manifest.Latest.Snapshot, nil
	}

	versions := filterVersions(manifest.Sorted(), false)
	if len(versions) > menuVersionCount {
		versions = versions[:menuVersionCount]
	}
	fmt.Println("Which version do you want to download resources for?")
	picked, err := cmdshared.PickVersion(versions)
	if err != nil {
		return "", err
	}
	return picked.ID, nil
}

func downloadLanguage(ctx context.Context, dl *resource.Downloader, version string, lang string) error {
	fmt.Printf("Downloading language %s for %s...\n", lang, version)
	err := dl.DownloadLanguage(ctx, version, lang, &cmdshared.ProgressStatus{})
	if err != nil {
		return fmt.Errorf("failed to download language %s for %s: %w", lang, version, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().Bool("latest", false, "Download the latest release without asking")
	_ = viper.BindPFlag("download.latest", downloadCmd.Flags().Lookup("latest"))
	downloadCmd.Flags().Bool("snapshot", false, "Download the latest snapshot without asking")
	_ = viper.BindPFlag("download.snapshot", downloadCmd.Flags().Lookup("snapshot"))
	downloadCmd.Flags().StringSliceP("lang", "l", nil, "Language codes to download after the resources, e.g. en_us")
	_ = viper.BindPFlag("download.lang", downloadCmd.Flags().Lookup("lang"))
	downloadCmd.Flags().Bool("no-verify", false, "Skip verifying the hash of the client jar")
	downloadCmd.PreRun = func(cmd *cobra.Command, args []string) {
		if noVerify, _ := cmd.Flags().GetBool("no-verify"); noVerify {
			viper.Set("download.verify", false)
		}
	}
}
