package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/respack/respack/mojang"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "respack",
	Short: "A command line tool for fetching vanilla Minecraft resources and inspecting entity packs",
}

// Execute starts the root command for respack
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Add adds a new command as a subcommand to respack
func Add(newCommand *cobra.Command) {
	rootCmd.AddCommand(newCommand)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("pack-dir", "", "The directory to store versioned resource packs in (default is the respack data directory)")
	_ = viper.BindPFlag("pack-dir", rootCmd.PersistentFlags().Lookup("pack-dir"))

	rootCmd.PersistentFlags().String("manifest-url", mojang.DefaultManifestURL, "The Minecraft version manifest to use")
	_ = viper.BindPFlag("manifest-url", rootCmd.PersistentFlags().Lookup("manifest-url"))

	rootCmd.PersistentFlags().String("resources-url", mojang.DefaultResourcesURL, "The server to download resource objects from")
	_ = viper.BindPFlag("resources-url", rootCmd.PersistentFlags().Lookup("resources-url"))

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Accept all prompts with the default option (non-interactive mode)")
	_ = viper.BindPFlag("non-interactive", rootCmd.PersistentFlags().Lookup("yes"))

	viper.SetDefault("download.verify", true)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.respack.toml)")

	// Accept --pack_dir for --pack-dir
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".respack" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".respack")
	}

	viper.SetEnvPrefix("respack")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	initLogging()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("Using config file")
		// The config file may change the level
		initLogging()
	}
}

func initLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("level", viper.GetString("log-level")).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
