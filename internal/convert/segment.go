// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "github.com/avolkov/logmark/pkg/types"

// Turn is a maximal run of consecutive chunks sharing one speaker role.
// Turns are constructed transiently during conversion and consumed
// immediately by rendering.
type Turn struct {
	Role   string
	Chunks []types.Chunk
}

// Segment walks the chunk sequence and groups contiguous entries by role.
// Chunks without a role are dropped and do not alter the turn boundaries
// around them; a role change starts a new turn.
func Segment(chunks []types.Chunk) []Turn {
	var turns []Turn
	for _, c := range chunks {
		if c.Role == "" {
			continue
		}
		if n := len(turns); n > 0 && turns[n-1].Role == c.Role {
			turns[n-1].Chunks = append(turns[n-1].Chunks, c)
			continue
		}
		turns = append(turns, Turn{Role: c.Role, Chunks: []types.Chunk{c}})
	}
	return turns
}
