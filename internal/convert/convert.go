// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the log-to-document transformation engine:
// turn segmentation, content extraction, Markdown rendering, and the
// batch driver that ties them together per file.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/avolkov/logmark/internal/locale"
	"github.com/avolkov/logmark/internal/logfile"
	"github.com/avolkov/logmark/pkg/types"
)

// ErrNoContent marks a log with neither a system instruction nor any
// conversation chunks. An empty document is never written.
var ErrNoContent = errors.New("log contains no system instruction and no conversation chunks")

// mtimeStampFormat renders the source file's modification time for the
// frontmatter cdate/mdate variables.
const mtimeStampFormat = "2006-01-02 15:04:05"

// ConvertFile converts one chat-log export at jsonPath into a Markdown
// document at mdPath. The document is assembled entirely in memory and
// written in one step, so a failure leaves no partial document; asset
// files are written incrementally as they are discovered.
func ConvertFile(jsonPath, mdPath string, cfg types.ConvertConfig, loc locale.Table) error {
	doc, err := logfile.Load(jsonPath)
	if err != nil {
		return err
	}

	chunks := doc.Conversation()
	systemText := doc.SystemText()
	if systemText == "" && len(chunks) == 0 {
		return ErrNoContent
	}

	title := CleanTitle(strings.TrimSuffix(filepath.Base(mdPath), filepath.Ext(mdPath)))

	var head []string
	if cfg.EnableFrontmatter {
		if info, err := os.Stat(jsonPath); err == nil {
			tmpl := cfg.FrontmatterTemplate
			if tmpl == "" {
				tmpl = loc.FrontmatterTemplate
			}
			stamp := info.ModTime().Format(mtimeStampFormat)
			head = append(head, renderFrontmatter(tmpl, title, stamp))
		}
	}
	head = append(head, "# "+title)
	if cfg.EnableMetadataTable && doc.RunSettings != nil {
		head = append(head, renderMetadataTable(doc.RunSettings, loc.MetadataTable)+"\n\n***")
	}

	ex := newExtractor(cfg, loc, mdPath)
	var turns []string
	for i, t := range Segment(chunks) {
		blocks := ex.ExtractTurn(t, i == 0, systemText)
		if rendered := renderTurn(loc.RoleHeader(t.Role), blocks); rendered != "" {
			turns = append(turns, rendered)
		}
	}

	if err := os.MkdirAll(filepath.Dir(mdPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(mdPath, []byte(assemble(head, turns)), 0o644); err != nil {
		return fmt.Errorf("could not write output file: %w", err)
	}
	return nil
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts each input into outDir, printing per-file status
// to w and returning a summary. Existing outputs are skipped unless
// overwrite is set; per-file errors are recorded and the batch continues.
func ConvertBatch(inputs []string, outDir string, overwrite bool, cfg types.ConvertConfig, loc locale.Table, w io.Writer) BatchResult {
	var result BatchResult
	for _, in := range inputs {
		res := ConvertOne(in, outDir, overwrite, cfg, loc)
		base := filepath.Base(in)
		switch res.Status {
		case types.ConversionDone:
			result.Converted++
			fmt.Fprintf(w, "converted: %s\n", base)
		case types.ConversionSkipped:
			result.Skipped++
			fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
		case types.ConversionFailed:
			result.Failed++
			fmt.Fprintf(w, "failed:  %s (%s)\n", base, res.Reason)
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

// ConvertOne applies the output-path and overwrite policy to a single
// input and runs the conversion pipeline on it.
func ConvertOne(jsonPath, outDir string, overwrite bool, cfg types.ConvertConfig, loc locale.Table) types.ConversionResult {
	outPath := OutputPath(jsonPath, outDir, cfg)

	if !overwrite {
		if _, err := os.Stat(outPath); err == nil {
			return types.ConversionResult{Status: types.ConversionSkipped}
		}
	}

	if err := ConvertFile(jsonPath, outPath, cfg, loc); err != nil {
		return types.ConversionResult{Status: types.ConversionFailed, Reason: err.Error()}
	}
	return types.ConversionResult{Status: types.ConversionDone}
}

// OutputPath computes the output document path from the filename template.
// {date} is the source mtime in the configured layout, {basename} the
// input filename without its .json extension, and {drive_indicator} the
// configured marker when the log references Google Drive files.
func OutputPath(jsonPath, outDir string, cfg types.ConvertConfig) string {
	date := "XXXX-XX-XX"
	if info, err := os.Stat(jsonPath); err == nil {
		date = info.ModTime().Format(cfg.DateFormat)
	}

	base := filepath.Base(jsonPath)
	if strings.HasSuffix(strings.ToLower(base), ".json") {
		base = base[:len(base)-len(".json")]
	}

	indicator := ""
	if cfg.EnableDriveIndicator {
		if doc, err := logfile.Load(jsonPath); err == nil && doc.HasDriveReference() {
			indicator = cfg.DriveIndicator
		}
	}

	name := expandTemplate(cfg.FilenameTemplate, map[string]string{
		"date":            date,
		"basename":        base,
		"drive_indicator": indicator,
	})
	return filepath.Join(outDir, name)
}
