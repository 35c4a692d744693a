package cmd

import (
	"fmt"
	"os"

	"github.com/respack/respack/cmdshared"
	"github.com/spf13/cobra"
)

// langCmd represents the lang command
var langCmd = &cobra.Command{
	Use:     "lang <version> <language>",
	Short:   "Download a language file into the resource pack of a Minecraft version",
	Example: "  respack lang 1.20.1 de_de",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		dl, err := cmdshared.NewDownloader()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		err = downloadLanguage(cmd.Context(), dl, args[0], args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Language %s saved to %s\n", args[1], dl.PackDir(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(langCmd)
}
