package types

import "time"

// ConvertConfig holds settings for the conversion stage. Immutable for the
// duration of a run; the batch driver owns it and passes it by value.
type ConvertConfig struct {
	// Language selects the localization table ("en" or "ru").
	Language string `json:"language" yaml:"language" mapstructure:"language"`

	// EnableFrontmatter controls the YAML frontmatter block at the start
	// of each document.
	EnableFrontmatter bool `json:"enable_frontmatter" yaml:"enable_frontmatter" mapstructure:"enable_frontmatter"`

	// EnableMetadataTable controls the run-settings table (model,
	// temperature, top-P, top-K, web search).
	EnableMetadataTable bool `json:"enable_metadata_table" yaml:"enable_metadata_table" mapstructure:"enable_metadata_table"`

	// EnableGroundingMetadata controls the web-search sources block
	// appended to grounded model turns.
	EnableGroundingMetadata bool `json:"enable_grounding_metadata" yaml:"enable_grounding_metadata" mapstructure:"enable_grounding_metadata"`

	// EnableDriveIndicator adds DriveIndicator to the output filename when
	// the source log references Google Drive files. Requires a pre-scan of
	// each input; fast mode disables it.
	EnableDriveIndicator bool `json:"enable_drive_indicator" yaml:"enable_drive_indicator" mapstructure:"enable_drive_indicator"`

	// DriveIndicator is the marker substituted for {drive_indicator}.
	DriveIndicator string `json:"drive_indicator" yaml:"drive_indicator" mapstructure:"drive_indicator"`

	// FilenameTemplate names output documents. Variables: {date},
	// {basename}, {drive_indicator}.
	FilenameTemplate string `json:"filename_template" yaml:"filename_template" mapstructure:"filename_template"`

	// DateFormat is the Go reference layout for the {date} variable.
	DateFormat string `json:"date_format" yaml:"date_format" mapstructure:"date_format"`

	// FrontmatterTemplate is the frontmatter body. Variables: {title},
	// {cdate}, {mdate}. Empty selects the built-in localized template.
	FrontmatterTemplate string `json:"frontmatter_template,omitempty" yaml:"frontmatter_template,omitempty" mapstructure:"frontmatter_template"`
}

// DefaultConvertConfig returns the built-in conversion settings.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		Language:                "en",
		EnableFrontmatter:       true,
		EnableMetadataTable:     true,
		EnableGroundingMetadata: true,
		EnableDriveIndicator:    false,
		DriveIndicator:          "[A] ",
		FilenameTemplate:        "{date} - {drive_indicator}{basename}.md",
		DateFormat:              "2006-01-02",
	}
}

// IndexConfig holds settings for the conversion index.
type IndexConfig struct {
	// IndexDir is the directory holding the SQLite database.
	IndexDir string `json:"index_dir" yaml:"index_dir" mapstructure:"index_dir"`

	// MaxResults is the default maximum number of search hits (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// WatchConfig holds settings for watch mode.
type WatchConfig struct {
	// Quiescence is the minimum quiet interval before a changed file is
	// re-processed (default 2s).
	Quiescence time.Duration `json:"quiescence" yaml:"quiescence" mapstructure:"quiescence"`
}
