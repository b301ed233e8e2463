// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logfile reads AI Studio chat-log exports and discovers candidate
// input files on disk.
package logfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/avolkov/logmark/pkg/types"
)

// Load reads and decodes one chat-log export. Invalid JSON fails with a
// descriptive reason; validation of conversation content happens later in
// the conversion pipeline.
func Load(path string) (*types.LogDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading log file: %w", err)
	}
	var doc types.LogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON format: %w", err)
	}
	return &doc, nil
}

// ignoredExtensions lists suffixes that are never chat logs; skipping them
// avoids parsing obviously wrong files during directory scans.
var ignoredExtensions = map[string]bool{
	".exe":  true,
	".md":   true,
	".spec": true,
	".txt":  true,
	".yaml": true,
	".yml":  true,
	".zip":  true,
}

// Discover resolves a path argument to a sorted list of candidate log
// files. The argument may be a single file, a directory (walked recursively
// when recursive is set), or a doublestar glob pattern. Candidates must
// parse as JSON; everything else is silently dropped.
func Discover(path string, recursive bool) ([]string, error) {
	if isGlob(path) {
		matches, err := doublestar.FilepathGlob(path)
		if err != nil {
			return nil, fmt.Errorf("expanding pattern %q: %w", path, err)
		}
		return filterValid(matches), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolving %q: %w", path, err)
	}

	if !info.IsDir() {
		return filterValid([]string{path}), nil
	}

	var candidates []string
	if recursive {
		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			candidates = append(candidates, p)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", path, err)
		}
	} else {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		for _, e := range entries {
			if !e.IsDir() {
				candidates = append(candidates, filepath.Join(path, e.Name()))
			}
		}
	}
	return filterValid(candidates), nil
}

// IsLog reports whether path holds parseable JSON and is not an ignored
// file type. Watch mode uses it to filter change events.
func IsLog(path string) bool {
	if ignoredExtensions[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Valid(data)
}

func filterValid(paths []string) []string {
	var valid []string
	for _, p := range paths {
		if IsLog(p) {
			valid = append(valid, p)
		}
	}
	sort.Strings(valid)
	return valid
}

func isGlob(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
