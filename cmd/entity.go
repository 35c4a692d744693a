package cmd

import (
	"fmt"
	"os"

	"github.com/respack/respack/bedrock"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

const suggestionCount = 5

// entityCmd represents the entity command
var entityCmd = &cobra.Command{
	Use:   "entity <pack-root> [identifier]",
	Short: "List the entities of a Bedrock resource pack, or show the render definition of one",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		m := loadBedrockPack(args[0])

		if len(args) == 1 {
			for _, id := range m.EntityTypes() {
				fmt.Println(id)
			}
			return
		}

		def, ok := m.Definition(args[1])
		if !ok {
			notFound("Entity", args[1], m)
		}
		fmt.Printf("%s\n", def.EntityType)
		fmt.Printf("  format version:     %s\n", def.FormatVersion)
		fmt.Printf("  min engine version: %s\n", def.MinEngineVersion)
		printNames("materials", def.MaterialIdentifiers)
		printNames("textures", def.TexturePaths)
		printNames("geometry", def.GeometryNames)
		printNames("animations", def.AnimationNames)
	},
}

func loadBedrockPack(root string) *bedrock.Manager {
	m, err := bedrock.LoadPack(root, log.Logger)
	if err != nil {
		fmt.Printf("Failed to load pack: %v\n", err)
		os.Exit(1)
	}
	if len(m.Failed) > 0 {
		fmt.Println(failedSummary(len(m.Failed)))
	}
	return m
}

// failedSummary points at the per-file warnings LoadPack logged, which show at the default log level
func failedSummary(count int) string {
	if count == 1 {
		return "1 file could not be loaded (see the warnings above)"
	}
	return fmt.Sprintf("%d files could not be loaded (see the warnings above)", count)
}

func notFound(kind string, name string, m *bedrock.Manager) {
	fmt.Printf("%s %s not found.\n", kind, name)
	suggestions := m.Suggest(name, suggestionCount)
	if len(suggestions) > 0 {
		fmt.Println("Did you mean:")
		for _, s := range suggestions {
			fmt.Printf("  %s\n", s)
		}
	}
	os.Exit(1)
}

func printNames(title string, names map[string]string) {
	if len(names) == 0 {
		return
	}
	fmt.Printf("  %s:\n", title)
	for _, k := range sortedKeys(names) {
		fmt.Printf("    %s = %s\n", k, names[k])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func init() {
	rootCmd.AddCommand(entityCmd)
}
