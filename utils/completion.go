package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/respack/respack/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:       "completion [bash/zsh/fish/powershell]",
	Short:     "Installs bash/zsh/fish/powershell completion commands",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Run: func(cmd *cobra.Command, args []string) {
		shell := args[0]
		if viper.GetBool("utils.completion.source") {
			err := genCompletion(cmd.Root(), shell, os.Stdout)
			if err != nil {
				fmt.Printf("Error generating completion file: %s\n", err)
				os.Exit(1)
			}
			return
		}

		file, err := saveCompletion(cmd.Root(), shell)
		if err != nil {
			fmt.Printf("Error saving completion file: %s\n", err)
			os.Exit(1)
		}
		if shell != "bash" {
			fmt.Println("Completions saved to " + file)
			fmt.Println("Load this file from your shell profile to enable them.")
			return
		}

		// Get the value of $HOME (changed from os.UserHomeDir() for Cygwin/MSYS2 support)
		home := os.Getenv("HOME")
		if home == "" {
			fmt.Printf("Failed to get $HOME location")
			os.Exit(1)
		}
		installed, err := appendOnce(filepath.Join(home, ".bashrc"), ". "+file)
		if err != nil {
			fmt.Printf("Failed to write to bashrc: %s\n", err)
			os.Exit(1)
		}
		if installed {
			fmt.Println("Completions installed! Restart your shell to load them.")
		} else {
			fmt.Println("Completions already installed!")
		}
	},
}

func genCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unsupported shell %s", shell)
}

// saveCompletion writes the completion script for shell into the local store and returns its absolute path
func saveCompletion(root *cobra.Command, shell string) (string, error) {
	dir, err := core.GetLocalStore()
	if err != nil {
		return "", err
	}
	err = os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return "", err
	}
	file, err := filepath.Abs(filepath.Join(dir, "completion."+shell))
	if err != nil {
		return "", err
	}
	f, err := os.Create(file)
	if err != nil {
		return "", err
	}
	err = genCompletion(root, shell, f)
	if err != nil {
		_ = f.Close()
		return "", err
	}
	return file, f.Close()
}

// appendOnce adds line to the file at path unless it already contains it, and reports whether it did
func appendOnce(path string, line string) (bool, error) {
	data, err := os.ReadFile(path)
	if err == nil && strings.Contains(string(data), line) {
		return false, nil
	}
	err = os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return false, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, err
	}
	_, err = f.WriteString("\n" + line + "\n")
	if err != nil {
		_ = f.Close()
		return false, err
	}
	return true, f.Close()
}

func init() {
	utilsCmd.AddCommand(completionCmd)

	completionCmd.Flags().Bool("source", false, "Output the source of the commands to be installed, rather than installing them")
	_ = viper.BindPFlag("utils.completion.source", completionCmd.Flags().Lookup("source"))
}
