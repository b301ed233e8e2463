// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/avolkov/logmark/internal/convert"
	"github.com/avolkov/logmark/internal/locale"
	"github.com/avolkov/logmark/pkg/types"
)

const (
	defaultInputDir  = "input"
	defaultOutputDir = "output"
	defaultIndexDir  = "index"
	configFileName   = "logmark.yaml"
)

func setConfigDefaults() {
	def := types.DefaultConvertConfig()
	viper.SetDefault("language", def.Language)
	viper.SetDefault("enable_frontmatter", def.EnableFrontmatter)
	viper.SetDefault("enable_metadata_table", def.EnableMetadataTable)
	viper.SetDefault("enable_grounding_metadata", def.EnableGroundingMetadata)
	viper.SetDefault("enable_drive_indicator", def.EnableDriveIndicator)
	viper.SetDefault("drive_indicator", def.DriveIndicator)
	viper.SetDefault("filename_template", def.FilenameTemplate)
	viper.SetDefault("date_format", def.DateFormat)
	viper.SetDefault("index.index_dir", defaultIndexDir)
	viper.SetDefault("index.max_results", 20)
	viper.SetDefault("watch.quiescence", "2s")
}

// loadConvertConfig resolves the conversion settings from viper. An
// unsupported language code falls back to "en" with a warning rather
// than failing the run.
func loadConvertConfig() types.ConvertConfig {
	var cfg types.ConvertConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid config values: %v. Using defaults.\n", err)
		return types.DefaultConvertConfig()
	}
	if !locale.Supported(cfg.Language) {
		fmt.Fprintf(os.Stderr, "Warning: unsupported language %q. Defaulting to 'en'.\n", cfg.Language)
		cfg.Language = "en"
	}
	return cfg
}

// loadLocale resolves the localization snapshot for the active language,
// layering any user-supplied tables from the config file over the
// built-in ones.
func loadLocale(lang string) locale.Table {
	overrides := map[string]locale.Table{}
	if err := viper.UnmarshalKey("localization", &overrides); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid localization table: %v. Using built-in strings.\n", err)
		overrides = nil
	}
	return locale.Resolve(lang, overrides)
}

// ensureConfigFile writes a commented default logmark.yaml on first run
// so the available settings are discoverable without reading source.
func ensureConfigFile() {
	if viper.ConfigFileUsed() != "" {
		return
	}
	if _, err := os.Stat(configFileName); err == nil {
		return
	}

	def := types.DefaultConvertConfig()
	header := fmt.Sprintf(`# --- logmark settings ---

# Language for the generated Markdown files. (en/ru)
language: '%s'

# Enable/disable the YAML frontmatter block at the start of each file.
enable_frontmatter: %t

# Enable/disable the metadata table with run settings (Model, Temperature, etc.).
enable_metadata_table: %t

# Enable/disable the grounding metadata block (web search sources).
enable_grounding_metadata: %t

# Template for the output filename.
# Available variables: {date}, {basename}, {drive_indicator}
filename_template: '%s'

# Go time layout for the {date} variable in the filename.
date_format: '%s'

# --- Localization settings ---
# Any key set here replaces the built-in text for that language.
`, def.Language, def.EnableFrontmatter, def.EnableMetadataTable,
		def.EnableGroundingMetadata, def.FilenameTemplate, def.DateFormat)

	tables, err := marshalLocalization(locale.Builtin())
	if err == nil {
		header += tables
	}

	if err := os.WriteFile(configFileName, []byte(header), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create %s: %v. Using default settings.\n", configFileName, err)
		return
	}
	fmt.Fprintf(os.Stderr, "Info: created %s with default settings.\n", configFileName)
}

var (
	styleOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleSkip = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleFail = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// printSummary renders the batch outcome with one styled line per bucket.
// Skip and failure lines appear only when their counts are non-zero.
func printSummary(result convert.BatchResult) {
	fmt.Println(styleOK.Render(fmt.Sprintf("Successfully converted: %d", result.Converted)))
	if result.Skipped > 0 {
		fmt.Println(styleSkip.Render(fmt.Sprintf("Skipped (already exist): %d", result.Skipped)))
	}
	if result.Failed > 0 {
		fmt.Println(styleFail.Render(fmt.Sprintf("Errors: %d", result.Failed)))
	}
}

// marshalLocalization renders localization tables as a YAML document for
// inclusion in the generated config file.
func marshalLocalization(tables map[string]locale.Table) (string, error) {
	data, err := yaml.Marshal(map[string]any{"localization": tables})
	if err != nil {
		return "", fmt.Errorf("marshaling localization: %w", err)
	}
	return string(data), nil
}
