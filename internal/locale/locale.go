// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locale resolves the localized strings used when rendering a
// document. A Table is resolved once per run and passed around as an
// immutable snapshot; any key missing from the active language falls back
// to the built-in English text.
package locale

import "strings"

// Table holds every localized string and template for one language.
// Template strings use {name} placeholders expanded at render time.
type Table struct {
	UserHeader                string          `yaml:"user_header" mapstructure:"user_header"`
	ModelHeader               string          `yaml:"model_header" mapstructure:"model_header"`
	ThoughtBlockTemplate      string          `yaml:"thought_block_template" mapstructure:"thought_block_template"`
	SystemInstructionHeader   string          `yaml:"system_instruction_header" mapstructure:"system_instruction_header"`
	SystemInstructionTemplate string          `yaml:"system_instruction_template" mapstructure:"system_instruction_template"`
	MetadataTable             MetadataLabels  `yaml:"metadata_table" mapstructure:"metadata_table"`
	Grounding                 GroundingLabels `yaml:"grounding_metadata" mapstructure:"grounding_metadata"`
	FrontmatterTemplate       string          `yaml:"frontmatter_template" mapstructure:"frontmatter_template"`
}

// MetadataLabels holds the run-settings table strings.
type MetadataLabels struct {
	HeaderParameter string `yaml:"header_parameter" mapstructure:"header_parameter"`
	HeaderValue     string `yaml:"header_value" mapstructure:"header_value"`
	Model           string `yaml:"model" mapstructure:"model"`
	Temperature     string `yaml:"temperature" mapstructure:"temperature"`
	TopP            string `yaml:"top_p" mapstructure:"top_p"`
	TopK            string `yaml:"top_k" mapstructure:"top_k"`
	WebSearch       string `yaml:"web_search" mapstructure:"web_search"`
	SearchEnabled   string `yaml:"search_enabled" mapstructure:"search_enabled"`
	SearchDisabled  string `yaml:"search_disabled" mapstructure:"search_disabled"`
}

// GroundingLabels holds the web-search sources block strings.
type GroundingLabels struct {
	SpoilerHeader     string `yaml:"spoiler_header" mapstructure:"spoiler_header"`
	QueriesHeader     string `yaml:"queries_header" mapstructure:"queries_header"`
	SourcesHeader     string `yaml:"sources_header" mapstructure:"sources_header"`
	SourcePlaceholder string `yaml:"source_placeholder" mapstructure:"source_placeholder"`
}

// RoleHeader returns the localized header for a speaker role. Roles other
// than user/model get a generic capitalized header.
func (t Table) RoleHeader(role string) string {
	switch role {
	case "user":
		return t.UserHeader
	case "model":
		return t.ModelHeader
	default:
		if role == "" {
			return "##"
		}
		return "## " + strings.ToUpper(role[:1]) + role[1:]
	}
}

// Builtin returns a copy of the shipped localization tables, keyed by
// language code.
func Builtin() map[string]Table {
	out := make(map[string]Table, len(builtin))
	for k, v := range builtin {
		out[k] = v
	}
	return out
}

// Supported reports whether lang has a built-in table.
func Supported(lang string) bool {
	_, ok := builtin[lang]
	return ok
}

// Resolve returns the localization snapshot for lang, layered as:
// built-in English, then the built-in table for lang, then any
// user-supplied override for lang. Unsupported language codes silently
// resolve to English. Every empty field falls back to the layer below.
func Resolve(lang string, overrides map[string]Table) Table {
	t := builtin["en"]
	if b, ok := builtin[lang]; ok {
		t = merge(t, b)
	} else {
		lang = "en"
	}
	if o, ok := overrides[lang]; ok {
		t = merge(t, o)
	}
	return t
}

// merge overlays non-empty fields of over onto base.
func merge(base, over Table) Table {
	out := base
	setIf(&out.UserHeader, over.UserHeader)
	setIf(&out.ModelHeader, over.ModelHeader)
	setIf(&out.ThoughtBlockTemplate, over.ThoughtBlockTemplate)
	setIf(&out.SystemInstructionHeader, over.SystemInstructionHeader)
	setIf(&out.SystemInstructionTemplate, over.SystemInstructionTemplate)
	setIf(&out.FrontmatterTemplate, over.FrontmatterTemplate)

	setIf(&out.MetadataTable.HeaderParameter, over.MetadataTable.HeaderParameter)
	setIf(&out.MetadataTable.HeaderValue, over.MetadataTable.HeaderValue)
	setIf(&out.MetadataTable.Model, over.MetadataTable.Model)
	setIf(&out.MetadataTable.Temperature, over.MetadataTable.Temperature)
	setIf(&out.MetadataTable.TopP, over.MetadataTable.TopP)
	setIf(&out.MetadataTable.TopK, over.MetadataTable.TopK)
	setIf(&out.MetadataTable.WebSearch, over.MetadataTable.WebSearch)
	setIf(&out.MetadataTable.SearchEnabled, over.MetadataTable.SearchEnabled)
	setIf(&out.MetadataTable.SearchDisabled, over.MetadataTable.SearchDisabled)

	setIf(&out.Grounding.SpoilerHeader, over.Grounding.SpoilerHeader)
	setIf(&out.Grounding.QueriesHeader, over.Grounding.QueriesHeader)
	setIf(&out.Grounding.SourcesHeader, over.Grounding.SourcesHeader)
	setIf(&out.Grounding.SourcePlaceholder, over.Grounding.SourcePlaceholder)
	return out
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
