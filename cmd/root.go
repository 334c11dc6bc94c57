// Package cmd is for command line interactions with the jst application
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "jst",
	Short: `Build, search, and inspect journaled sequence trees over a
reference sequence and the variants carried against it.`,
	Version:                    "0.1.0",
	SuggestionsMinimumDistance: 2,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("settings", "s", "settings.yaml", "optional settings file")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (no command prints extra output for it)")
	viper.BindPFlag("display.quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("display.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig loads settings.yaml if present. A missing settings file is
// not an error: every setting has a default applied in config.NewConfig.
func initConfig() {
	settings, _ := rootCmd.PersistentFlags().GetString("settings")
	if _, err := os.Stat(settings); err != nil {
		return
	}
	viper.SetConfigFile(settings)
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("failed to read settings file %q: %v", settings, err)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
