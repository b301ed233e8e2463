// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the outcome of one log-to-Markdown conversion.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)

// ConversionResult is the outcome of one file conversion. A conversion
// either fully succeeds (document written, assets written) or fully fails
// with a human-readable reason; there is no partial state.
type ConversionResult struct {
	Status ConversionStatus `json:"status"`
	Reason string           `json:"reason,omitempty"`
}

// OK reports whether the conversion produced a document.
func (r ConversionResult) OK() bool {
	return r.Status == ConversionDone
}
