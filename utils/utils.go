// Package utils holds commands for managing respack itself.
package utils

import (
	"github.com/respack/respack/cmd"
	"github.com/spf13/cobra"
)

// utilsCmd represents the base command when called without any subcommands
var utilsCmd = &cobra.Command{
	Use:   "utils",
	Short: "Utilities for managing respack itself",
}

func init() {
	cmd.Add(utilsCmd)
}
