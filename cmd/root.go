// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ghfolio",
	Short: "A portfolio viewer for a GitHub user's public repositories.",
	Long: `ghfolio fetches a user's public repositories, filters them down to
portfolio-ready projects (described, linked, not forks or private), and
renders them as cards with aggregate stats - interactively in the terminal
or as JSON for scripting.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}

// initConfig wires viper: GHFOLIO_* environment variables plus an optional
// config file for defaults like the account to show.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "ghfolio"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("GHFOLIO")
	viper.AutomaticEnv()

	viper.SetDefault("user", "")
	viper.SetDefault("sort", "recency")
	viper.SetDefault("per_page", 100)

	// The config file is optional.
	_ = viper.ReadInConfig()
}
