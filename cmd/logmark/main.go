// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the logmark CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the logmark CLI.
var rootCmd = &cobra.Command{
	Use:   "logmark",
	Short: "Convert AI Studio chat logs into Markdown notes",
	Long: `logmark converts Google AI Studio chat-log JSON exports into Markdown
documents suitable for a personal knowledge base. It extracts embedded
images into an assets directory, renders localized headers and metadata,
and can watch a directory for new exports or maintain a full-text search
index over everything it has converted.

Each operation is a subcommand: convert, watch, and index.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./logmark.yaml or ~/.config/logmark/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("logmark")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "logmark"))
		}
	}

	viper.SetEnvPrefix("LOGMARK")
	viper.AutomaticEnv()

	setConfigDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
