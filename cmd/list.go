package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/respack/respack/cmdshared"
	"github.com/respack/respack/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the downloaded resource packs",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		packsDir, err := cmdshared.GetPacksDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		packs, err := core.ListPacks(packsDir)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if len(packs) == 0 {
			fmt.Printf("No resource packs downloaded to %s\n", packsDir)
			return
		}

		for _, pack := range packs {
			if !viper.GetBool("list.details") {
				fmt.Println(pack.Meta.Version)
				continue
			}
			langs := "none"
			if len(pack.Meta.Languages) > 0 {
				langs = strings.Join(pack.Meta.Languages, ", ")
			}
			fmt.Printf("%s (extracted %s, languages: %s)\n", pack.Meta.Version, pack.Meta.Extracted.Format("2006-01-02 15:04"), langs)
			fmt.Printf("  %s\n", pack.Dir)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("details", "d", false, "Print extraction time, languages and location of each pack")
	_ = viper.BindPFlag("list.details", listCmd.Flags().Lookup("details"))
}
