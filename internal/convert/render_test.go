// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avolkov/logmark/internal/locale"
	"github.com/avolkov/logmark/pkg/types"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-08-15 - My Awesome Log", "My Awesome Log"},
		{"Log without date", "Log without date"},
		// The pattern requires a non-empty title part.
		{"2025-08-15 -", "2025-08-15 -"},
		{"2025-8-15 - short month", "2025-8-15 - short month"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanTitle(tt.in), "CleanTitle(%q)", tt.in)
	}
}

func TestExpandTemplate(t *testing.T) {
	got := expandTemplate("{date} - {basename}.md", map[string]string{
		"date":     "2026-01-02",
		"basename": "chat",
	})
	assert.Equal(t, "2026-01-02 - chat.md", got)

	// Unknown placeholders pass through untouched.
	got = expandTemplate("{title} {unknown}", map[string]string{"title": "T"})
	assert.Equal(t, "T {unknown}", got)
}

func TestFormatGroundingPlaceholders(t *testing.T) {
	loc := locale.Resolve("en", nil).Grounding

	g := &types.Grounding{
		GroundingSources: []types.GroundingSource{
			{Title: "Named", URI: "https://a.example/x", ReferenceNumber: 7},
			{}, // no URI at all
		},
	}

	out := formatGrounding(g, loc)

	assert.Contains(t, out, "> 7. [Named](https://a.example/x)")
	assert.Contains(t, out, "> 2. [Source]()", "missing URI uses the localized placeholder")
	assert.NotContains(t, out, "**Search Queries:**", "no queries section without queries")
}

func TestRenderTurnEmpty(t *testing.T) {
	assert.Equal(t, "", renderTurn("## User", nil))
	assert.Equal(t, "", renderTurn("## User", []Block{{Kind: BlockText, Text: ""}}))
	assert.Equal(t, "## User\n\nhello", renderTurn("## User", []Block{{Kind: BlockText, Text: "hello"}}))
}

func TestRenderMetadataTableMinimal(t *testing.T) {
	loc := locale.Resolve("en", nil).MetadataTable
	out := renderMetadataTable(&types.RunSettings{}, loc)

	assert.Contains(t, out, "| **Model** | `N/A` |")
	assert.Contains(t, out, "| **Web Search** | Disabled |")
	assert.NotContains(t, out, "**Temperature**")
}
