// Copyright Musicdott B.V., 2026. All rights reserved.

// Package main is the entry point for the musicdott-migrate CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jeroenhonig/Musicdott/internal/media"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the musicdott-migrate CLI.
var rootCmd = &cobra.Command{
	Use:   "musicdott-migrate",
	Short: "Migrate Musicdott 1.0 CSV exports to the 2.0 JSON model",
	Long: `musicdott-migrate converts the CSV exports of the legacy Musicdott 1.0
platform into the JSON documents the 2.0 importer consumes. Each dataset is
a subcommand: songs, notation, and students. Use all to batch-convert a full
export, and inspect to survey an unfamiliar dump first.

Conversion is row-by-row: rows that cannot be parsed are logged and skipped,
never fatal. Every run is recorded in a SQLite ledger next to the output
files unless --no-ledger is given.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./musicdott-migrate.yaml or ~/.config/musicdott-migrate/config.yaml)")
	rootCmd.PersistentFlags().String("out-dir", "", "directory for generated JSON files (default \"export\")")
	rootCmd.PersistentFlags().String("fieldmap", "", "YAML file overriding the legacy column aliases")
	rootCmd.PersistentFlags().Bool("no-ledger", false, "skip recording this run in the migration ledger")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("musicdott-migrate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "musicdott-migrate"))
		}
	}

	viper.SetDefault("output.dir", "export")
	viper.SetDefault("schedule.timezone", "Europe/Amsterdam")
	viper.SetDefault("schedule.default_lesson_minutes", 30)
	viper.SetDefault("embed.groove_host", media.DefaultGrooveHost)
	viper.SetDefault("ledger.path", "")
	viper.SetDefault("ledger.disabled", false)

	viper.SetEnvPrefix("MUSICDOTT_MIGRATE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
