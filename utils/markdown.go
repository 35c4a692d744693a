package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/viper"
)

// markdownCmd represents the markdown command
var markdownCmd = &cobra.Command{
	Use:     "markdown",
	Short:   "Generate markdown documentation for every respack command",
	Aliases: []string{"md"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		outDir := viper.GetString("utils.markdown.dir")
		err := os.MkdirAll(outDir, os.ModePerm)
		if err != nil {
			fmt.Printf("Error creating directory: %s\n", err)
			os.Exit(1)
		}
		err = genMarkdown(cmd.Root(), outDir, viper.GetString("utils.markdown.base-url"), time.Now())
		if err != nil {
			fmt.Printf("Error generating markdown: %s\n", err)
			os.Exit(1)
		}
		fmt.Println("Generated markdown successfully!")
	},
}

// genMarkdown writes one page per command under root, each with front matter naming the command.
// Links between pages drop the .md extension and are prefixed with baseURL, as static site generators expect.
func genMarkdown(root *cobra.Command, outDir string, baseURL string, generated time.Time) error {
	root.DisableAutoGenTag = true
	date := generated.UTC().Format("2006-01-02")
	prepender := func(filename string) string {
		name := strings.TrimSuffix(filepath.Base(filename), ".md")
		return fmt.Sprintf("---\ntitle: %q\ndate: %s\n---\n\n", strings.ReplaceAll(name, "_", " "), date)
	}
	linkHandler := func(name string) string {
		name = strings.TrimSuffix(name, ".md")
		if baseURL == "" {
			return name
		}
		return strings.TrimSuffix(baseURL, "/") + "/" + name
	}
	return doc.GenMarkdownTreeCustom(root, outDir, prepender, linkHandler)
}

func init() {
	utilsCmd.AddCommand(markdownCmd)

	markdownCmd.Flags().String("dir", ".", "The destination directory to save docs in")
	_ = viper.BindPFlag("utils.markdown.dir", markdownCmd.Flags().Lookup("dir"))
	markdownCmd.Flags().String("base-url", "", "Prefix for links between generated pages")
	_ = viper.BindPFlag("utils.markdown.base-url", markdownCmd.Flags().Lookup("base-url"))
}
