package cmd

import (
	"fmt"
	"os"

	"github.com/respack/respack/cmdshared"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open <version>",
	Short: "Open the directory of a downloaded resource pack",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dl, err := cmdshared.NewDownloader()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		dir := dl.PackDir(args[0])
		if _, err := os.Stat(dir); err != nil {
			fmt.Printf("Resources for %s have not been downloaded: %v\n", args[0], err)
			os.Exit(1)
		}
		fmt.Printf("Opening %s\n", dir)
		err = open.Start(dir)
		if err != nil {
			fmt.Printf("Failed to open %s: %v\n", dir, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
