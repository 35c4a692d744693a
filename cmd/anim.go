package cmd

import (
	"fmt"

	"github.com/respack/respack/bedrock"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// animCmd represents the anim command
var animCmd = &cobra.Command{
	Use:     "anim <pack-root> <name>",
	Short:   "Show an entity animation of a Bedrock resource pack",
	Aliases: []string{"animation"},
	Example: "  respack anim ./vanilla_pack animation.pig.sniff --at 0.5",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		m := loadBedrockPack(args[0])
		anim, ok := m.Animation(args[1])
		if !ok {
			notFound("Animation", args[1], m)
		}

		fmt.Printf("%s\n", args[1])
		fmt.Printf("  loop:   %s\n", anim.Loop)
		fmt.Printf("  length: %gs\n", anim.Length)

		sample := viper.IsSet("anim.at")
		at := float32(viper.GetFloat64("anim.at"))
		for _, name := range sortedKeys(anim.Bones) {
			bone := anim.Bones[name]
			fmt.Printf("  bone %s:\n", name)
			printChannel("rotation", bone.Rotation, sample, at)
			printChannel("position", bone.Position, sample, at)
			printChannel("scale", bone.Scale, sample, at)
		}
	},
}

func printChannel(title string, c bedrock.Channel, sample bool, at float32) {
	if c.Empty() {
		return
	}
	if sample {
		v := c.Sample(at)
		fmt.Printf("    %-8s at %gs: [%g, %g, %g]\n", title, at, v.X(), v.Y(), v.Z())
		return
	}
	fmt.Printf("    %-8s %d keyframes\n", title, len(c.Keyframes))
	for _, k := range c.Keyframes {
		value := fmt.Sprintf("[%g, %g, %g]", k.Post.Vec.X(), k.Post.Vec.Y(), k.Post.Vec.Z())
		if !k.Post.IsConstant() {
			value += " (molang)"
		}
		fmt.Printf("      %gs %s\n", k.Time, value)
	}
}

func init() {
	rootCmd.AddCommand(animCmd)

	animCmd.Flags().Float64("at", 0, "Print the value of each channel at this time in seconds")
	_ = viper.BindPFlag("anim.at", animCmd.Flags().Lookup("at"))
}
