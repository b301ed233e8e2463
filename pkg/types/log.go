// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"strings"
)

// LogDocument is the parsed form of an AI Studio chat-log export. The
// export format changed several times; the conversation may live under
// chunkedPrompt.chunks, chunkedPrompt.pendingInputs, or a top-level
// history field. All fields are decoded once at parse time.
type LogDocument struct {
	// SystemInstruction holds the persona or task text given to the model.
	SystemInstruction *SystemInstruction `json:"systemInstruction,omitempty"`

	// ChunkedPrompt holds the conversation in newer export versions.
	ChunkedPrompt *ChunkedPrompt `json:"chunkedPrompt,omitempty"`

	// History holds the conversation in the oldest export version.
	History []Chunk `json:"history,omitempty"`

	// RunSettings holds model parameters recorded with the session.
	RunSettings *RunSettings `json:"runSettings,omitempty"`
}

// SystemInstruction wraps the system prompt text.
type SystemInstruction struct {
	Text string `json:"text"`
}

// ChunkedPrompt groups the two chunk containers used by newer exports.
type ChunkedPrompt struct {
	Chunks        []Chunk `json:"chunks,omitempty"`
	PendingInputs []Chunk `json:"pendingInputs,omitempty"`
}

// Conversation returns the chunk sequence to convert: chunkedPrompt.chunks,
// falling back to chunkedPrompt.pendingInputs, falling back to the
// top-level history field. The first populated source wins.
func (d *LogDocument) Conversation() []Chunk {
	if d.ChunkedPrompt != nil {
		if len(d.ChunkedPrompt.Chunks) > 0 {
			return d.ChunkedPrompt.Chunks
		}
		if len(d.ChunkedPrompt.PendingInputs) > 0 {
			return d.ChunkedPrompt.PendingInputs
		}
	}
	return d.History
}

// SystemText returns the trimmed system instruction, or "" if absent.
func (d *LogDocument) SystemText() string {
	if d.SystemInstruction == nil {
		return ""
	}
	return strings.TrimSpace(d.SystemInstruction.Text)
}

// HasDriveReference reports whether any chunk or nested part references a
// Google Drive file. Used for the optional filename indicator.
func (d *LogDocument) HasDriveReference() bool {
	for _, c := range d.Conversation() {
		if c.DriveImage != nil {
			return true
		}
		for _, p := range c.Parts {
			if p.DriveImage != nil {
				return true
			}
		}
	}
	return false
}

// Chunk is one atomic entry in the conversation history. A chunk with an
// empty Role does not participate in turn grouping. Text is a pointer so
// an explicit empty string in the source is distinguishable from absence.
type Chunk struct {
	Role         string      `json:"role,omitempty"`
	Text         *string     `json:"text,omitempty"`
	IsThought    bool        `json:"isThought,omitempty"`
	Grounding    *Grounding  `json:"grounding,omitempty"`
	DriveImage   *DriveRef   `json:"driveImage,omitempty"`
	YoutubeVideo *VideoRef   `json:"youtubeVideo,omitempty"`
	InlineData   *InlineData `json:"inlineData,omitempty"`
	Parts        []Part      `json:"parts,omitempty"`
}

// Part is a nested content element inside a chunk. Some export versions
// duplicate a chunk's content both top-level and inside parts.
type Part struct {
	Text       *string     `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
	DriveImage *DriveRef   `json:"driveImage,omitempty"`
}

// DriveRef references a file stored in Google Drive.
type DriveRef struct {
	ID string `json:"id,omitempty"`
}

// VideoRef references a YouTube video.
type VideoRef struct {
	ID string `json:"id,omitempty"`
}

// InlineData is an embedded binary payload, base64-encoded in the export.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Grounding is search-derived metadata attached to a model response.
type Grounding struct {
	WebSearchQueries []string          `json:"webSearchQueries,omitempty"`
	GroundingSources []GroundingSource `json:"groundingSources,omitempty"`
}

// IsEmpty reports whether the payload carries no queries and no sources.
func (g *Grounding) IsEmpty() bool {
	return g == nil || (len(g.WebSearchQueries) == 0 && len(g.GroundingSources) == 0)
}

// GroundingSource is one source consulted during grounded generation.
type GroundingSource struct {
	URI             string `json:"uri,omitempty"`
	Title           string `json:"title,omitempty"`
	ReferenceNumber int    `json:"referenceNumber,omitempty"`
}

// RunSettings holds the model parameters recorded with a session.
// Temperature, TopP, and TopK are pointers because their metadata rows
// render only when the source carries them.
type RunSettings struct {
	Model               string          `json:"model,omitempty"`
	Temperature         *float64        `json:"temperature,omitempty"`
	TopP                *float64        `json:"topP,omitempty"`
	TopK                *float64        `json:"topK,omitempty"`
	GoogleSearch        json.RawMessage `json:"googleSearch,omitempty"`
	EnableSearchAsATool bool            `json:"enableSearchAsATool,omitempty"`
}

// ModelName returns the last path segment of a namespaced model id, e.g.
// "models/gemini-2.5-pro" becomes "gemini-2.5-pro".
func (r *RunSettings) ModelName() string {
	if r == nil || r.Model == "" {
		return "N/A"
	}
	parts := strings.Split(r.Model, "/")
	return parts[len(parts)-1]
}

// SearchEnabled reports whether web search was active for the session:
// either a googleSearch key is present or enableSearchAsATool is set.
func (r *RunSettings) SearchEnabled() bool {
	return (len(r.GoogleSearch) > 0 && string(r.GoogleSearch) != "null") || r.EnableSearchAsATool
}
