// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationSourcePrecedence(t *testing.T) {
	text := "x"
	c := Chunk{Role: "user", Text: &text}

	tests := []struct {
		name string
		doc  LogDocument
		want int
	}{
		{
			name: "chunks win over pendingInputs and history",
			doc: LogDocument{
				ChunkedPrompt: &ChunkedPrompt{
					Chunks:        []Chunk{c, c},
					PendingInputs: []Chunk{c},
				},
				History: []Chunk{c, c, c},
			},
			want: 2,
		},
		{
			name: "pendingInputs when chunks empty",
			doc: LogDocument{
				ChunkedPrompt: &ChunkedPrompt{PendingInputs: []Chunk{c}},
				History:       []Chunk{c, c},
			},
			want: 1,
		},
		{
			name: "history when chunkedPrompt absent",
			doc:  LogDocument{History: []Chunk{c, c, c}},
			want: 3,
		},
		{
			name: "nothing populated",
			doc:  LogDocument{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.doc.Conversation(), tt.want)
		})
	}
}

func TestSystemText(t *testing.T) {
	var doc LogDocument
	assert.Equal(t, "", doc.SystemText())

	doc.SystemInstruction = &SystemInstruction{Text: "  be brief \n"}
	assert.Equal(t, "be brief", doc.SystemText())
}

func TestHasDriveReference(t *testing.T) {
	text := "x"
	assert.False(t, (&LogDocument{History: []Chunk{{Role: "user", Text: &text}}}).HasDriveReference())

	top := LogDocument{History: []Chunk{{Role: "user", DriveImage: &DriveRef{ID: "1"}}}}
	assert.True(t, top.HasDriveReference())

	nested := LogDocument{History: []Chunk{{Role: "user", Parts: []Part{{DriveImage: &DriveRef{ID: "2"}}}}}}
	assert.True(t, nested.HasDriveReference())
}

func TestRunSettingsModelName(t *testing.T) {
	assert.Equal(t, "N/A", (*RunSettings)(nil).ModelName())
	assert.Equal(t, "N/A", (&RunSettings{}).ModelName())
	assert.Equal(t, "gemini-2.5-pro", (&RunSettings{Model: "models/gemini-2.5-pro"}).ModelName())
	assert.Equal(t, "flat-name", (&RunSettings{Model: "flat-name"}).ModelName())
}

func TestRunSettingsSearchEnabled(t *testing.T) {
	var rs RunSettings
	require.NoError(t, json.Unmarshal([]byte(`{"googleSearch":{}}`), &rs))
	assert.True(t, rs.SearchEnabled())

	rs = RunSettings{}
	require.NoError(t, json.Unmarshal([]byte(`{"googleSearch":null}`), &rs))
	assert.False(t, rs.SearchEnabled())

	rs = RunSettings{}
	require.NoError(t, json.Unmarshal([]byte(`{"enableSearchAsATool":true}`), &rs))
	assert.True(t, rs.SearchEnabled())

	assert.False(t, (&RunSettings{}).SearchEnabled())
}

// Text must distinguish an explicit empty string from an absent field.
func TestChunkTextPresence(t *testing.T) {
	var present Chunk
	require.NoError(t, json.Unmarshal([]byte(`{"role":"user","text":""}`), &present))
	require.NotNil(t, present.Text)
	assert.Equal(t, "", *present.Text)

	var absent Chunk
	require.NoError(t, json.Unmarshal([]byte(`{"role":"user"}`), &absent))
	assert.Nil(t, absent.Text)
}
