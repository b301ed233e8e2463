// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strings"
	"time"

	"github.com/avolkov/logmark/internal/locale"
	"github.com/avolkov/logmark/pkg/types"
)

// BlockKind discriminates the renderable content units of a turn.
type BlockKind int

const (
	BlockText BlockKind = iota
	BlockThought
	BlockNote // collapsible system-instruction block
	BlockImage
	BlockLink
	BlockGrounding
)

// Block is one renderable unit owned by exactly one turn. Text holds the
// final Markdown for the block.
type Block struct {
	Kind BlockKind
	Text string
}

// Extractor turns segmented chunks into ordered content blocks, writing
// embedded binary assets as a side effect. One Extractor serves one
// document conversion.
type Extractor struct {
	cfg     types.ConvertConfig
	loc     locale.Table
	docPath string

	now      func() time.Time
	assetSeq int
}

func newExtractor(cfg types.ConvertConfig, loc locale.Table, docPath string) *Extractor {
	return &Extractor{cfg: cfg, loc: loc, docPath: docPath, now: time.Now}
}

// ExtractTurn produces the ordered block list for one turn. Thought blocks
// collected from a model turn are hoisted to the front regardless of input
// order; the grounding block, when enabled and present, is appended last.
// If this is the first turn, it is from the user, and a system instruction
// exists, a collapsible note block leads the turn.
func (e *Extractor) ExtractTurn(t Turn, first bool, systemText string) []Block {
	var (
		blocks    []Block
		thoughts  []Block
		grounding *types.Grounding
	)

	if first && t.Role == "user" && systemText != "" {
		blocks = append(blocks, Block{Kind: BlockNote, Text: expandTemplate(
			e.loc.SystemInstructionTemplate, map[string]string{
				"header": e.loc.SystemInstructionHeader,
				"text":   quoteLines(systemText),
			})})
	}

	for _, c := range t.Chunks {
		if t.Role == "model" && c.IsThought {
			if text := strings.TrimSpace(deref(c.Text)); text != "" {
				thoughts = append(thoughts, Block{Kind: BlockThought, Text: expandTemplate(
					e.loc.ThoughtBlockTemplate, map[string]string{"thought_text": quoteLines(text)})})
			}
			continue
		}

		// Last grounding payload in the turn wins.
		if c.Grounding != nil {
			grounding = c.Grounding
		}

		if c.Text != nil {
			if text := strings.TrimSpace(*c.Text); text != "" {
				blocks = append(blocks, Block{Kind: BlockText, Text: text})
			}
		}
		if c.DriveImage != nil && c.DriveImage.ID != "" {
			blocks = append(blocks, Block{Kind: BlockLink, Text: driveLink(c.DriveImage.ID)})
		}
		if c.YoutubeVideo != nil && c.YoutubeVideo.ID != "" {
			blocks = append(blocks, Block{Kind: BlockLink, Text: youtubeLink(c.YoutubeVideo.ID)})
		}
		if c.InlineData != nil {
			blocks = append(blocks, Block{Kind: BlockImage, Text: e.saveAsset(c.InlineData)})
		}

		blocks = e.extractParts(c.Parts, blocks)
	}

	if t.Role == "model" {
		if len(thoughts) > 0 {
			blocks = append(thoughts, blocks...)
		}
		if e.cfg.EnableGroundingMetadata && !grounding.IsEmpty() {
			blocks = append(blocks, Block{Kind: BlockGrounding, Text: formatGrounding(grounding, e.loc.Grounding)})
		}
	}
	return blocks
}

// extractParts walks a chunk's nested parts list. The combined text of a
// part is skipped when it is already a substring of an existing block; some
// export versions duplicate a chunk's content both top-level and inside
// parts. The check is a plain containment test, not a semantic dedup, and
// can false-positive on short strings.
func (e *Extractor) extractParts(parts []types.Part, blocks []Block) []Block {
	for _, p := range parts {
		var piece Block
		switch {
		case p.Text != nil:
			piece = Block{Kind: BlockText, Text: strings.TrimSpace(*p.Text)}
		case p.InlineData != nil:
			piece = Block{Kind: BlockImage, Text: e.saveAsset(p.InlineData)}
		case p.DriveImage != nil && p.DriveImage.ID != "":
			piece = Block{Kind: BlockLink, Text: driveLink(p.DriveImage.ID)}
		default:
			continue
		}
		if piece.Text == "" || containsText(blocks, piece.Text) {
			continue
		}
		blocks = append(blocks, piece)
	}
	return blocks
}

func containsText(blocks []Block, text string) bool {
	for _, b := range blocks {
		if strings.Contains(b.Text, text) {
			return true
		}
	}
	return false
}

func driveLink(id string) string {
	return "[Image from Google Drive (ID: " + id + ")](https://drive.google.com/file/d/" + id + ")"
}

func youtubeLink(id string) string {
	return "[YouTube Video (ID: " + id + ")](https://www.youtube.com/watch?v=" + id + ")"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
