// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid document", func(t *testing.T) {
		path := write(t, dir, "ok.json",
			`{"chunkedPrompt":{"chunks":[{"role":"user","text":"Hi"}]}}`)
		doc, err := Load(path)
		require.NoError(t, err)
		require.Len(t, doc.Conversation(), 1)
		assert.Equal(t, "user", doc.Conversation()[0].Role)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := write(t, dir, "broken.json", `{"chunks": [`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON format")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading log file")
	})
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.json", `{"history":[]}`)
	write(t, dir, "b.json", `{"history":[]}`)
	write(t, dir, "notes.md", `# not a log`)
	write(t, dir, "junk.json", `this is not json`)

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	write(t, sub, "c.json", `{"history":[]}`)

	t.Run("directory non-recursive", func(t *testing.T) {
		got, err := Discover(dir, false)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.json"),
			filepath.Join(dir, "b.json"),
		}, got)
	})

	t.Run("directory recursive", func(t *testing.T) {
		got, err := Discover(dir, true)
		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.Contains(t, got, filepath.Join(sub, "c.json"))
	})

	t.Run("single file", func(t *testing.T) {
		got, err := Discover(filepath.Join(dir, "a.json"), false)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.json")}, got)
	})

	t.Run("glob pattern", func(t *testing.T) {
		got, err := Discover(filepath.Join(dir, "**", "*.json"), false)
		require.NoError(t, err)
		assert.Contains(t, got, filepath.Join(sub, "c.json"))
	})

	t.Run("nonexistent path", func(t *testing.T) {
		got, err := Discover(filepath.Join(dir, "nope"), false)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestIsLog(t *testing.T) {
	dir := t.TempDir()
	valid := write(t, dir, "log", `{"history":[]}`)
	ignored := write(t, dir, "data.yaml", `{"history":[]}`)
	invalid := write(t, dir, "plain", `hello`)

	assert.True(t, IsLog(valid))
	assert.False(t, IsLog(ignored), "ignored extensions are never logs")
	assert.False(t, IsLog(invalid))
	assert.False(t, IsLog(filepath.Join(dir, "missing")))
}
