package cmd

import (
	"fmt"
	"os"

	"github.com/respack/respack/cmdshared"
	"github.com/respack/respack/core"
	"github.com/spf13/cobra"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:     "remove <version>",
	Short:   "Remove a downloaded resource pack",
	Aliases: []string{"delete", "rm"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args[0]) == 0 {
			fmt.Println("You must specify a version.")
			os.Exit(1)
		}
		dl, err := cmdshared.NewDownloader()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		dir := dl.PackDir(args[0])
		if _, err := os.Stat(dir); err != nil {
			if os.IsNotExist(err) {
				fmt.Printf("Resources for %s have not been downloaded.\n", args[0])
			} else {
				fmt.Println(err)
			}
			os.Exit(1)
		}

		if !cmdshared.PromptYesNo(fmt.Sprintf("Delete %s? [Y/n]: ", dir)) {
			fmt.Println("Cancelled!")
			return
		}
		err = core.RemovePack(dir)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Resources for %s removed successfully!\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
