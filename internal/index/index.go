// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index maintains a local SQLite full-text index over converted
// documents, so a knowledge base of chat logs stays searchable without
// opening every file.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/avolkov/logmark/pkg/types"
)

const dbFile = "logmark.db"

// Store manages the conversion-index SQLite database.
type Store struct {
	db         *sql.DB
	outputDir  string
	maxResults int
}

// NewStore opens or creates the index database at indexDir/logmark.db and
// creates the schema if it does not exist. outputDir is the directory
// holding converted Markdown documents.
func NewStore(cfg types.IndexConfig, outputDir string) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, outputDir: outputDir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			basename TEXT NOT NULL UNIQUE,
			title TEXT,
			path TEXT NOT NULL,
			body TEXT NOT NULL,
			file_mod_time TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='documents_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE documents_fts USING fts5(title, body, content=documents, content_rowid=rowid)`,
			`CREATE TRIGGER documents_ai AFTER INSERT ON documents BEGIN
				INSERT INTO documents_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
			END`,
			`CREATE TRIGGER documents_ad AFTER DELETE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
			END`,
			`CREATE TRIGGER documents_au AFTER UPDATE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
				INSERT INTO documents_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from one indexing run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of documents processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest scans the output directory for Markdown documents and populates
// the index. Documents whose modification time is unchanged since the
// last run are skipped.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	entries, err := os.ReadDir(s.outputDir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading output directory %s: %w", s.outputDir, err)
	}

	var summary IngestSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		basename := strings.TrimSuffix(entry.Name(), ".md")
		docPath := filepath.Join(s.outputDir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", basename, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM documents WHERE basename = ?`, basename,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", basename)
			summary.Skipped++
			continue
		}
		isUpdate := err == nil

		data, err := os.ReadFile(docPath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", basename, err)
			summary.Failed++
			continue
		}

		title, body := splitFrontmatter(string(data))
		if title == "" {
			title = basename
		}

		if err := s.upsert(ctx, basename, title, docPath, body, modTime); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", basename, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s\n", basename)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s\n", basename)
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)
	return summary, nil
}

func (s *Store) upsert(ctx context.Context, basename, title, path, body, modTime string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (basename, title, path, body, file_mod_time)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(basename) DO UPDATE SET
			title=excluded.title, path=excluded.path,
			body=excluded.body, file_mod_time=excluded.file_mod_time`,
		basename, title, path, body, modTime,
	)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}
	return nil
}

// frontmatterTitle is the subset of the document frontmatter the index
// cares about.
type frontmatterTitle struct {
	Title string `yaml:"title"`
}

// splitFrontmatter separates a document's YAML frontmatter from its body
// and returns the frontmatter title (or "" when absent or unparseable)
// and the body text. Documents without frontmatter fall back to their
// first level-1 heading.
func splitFrontmatter(doc string) (title, body string) {
	body = doc
	if strings.HasPrefix(doc, "---\n") {
		if end := strings.Index(doc[4:], "\n---"); end >= 0 {
			var fm frontmatterTitle
			if err := yaml.Unmarshal([]byte(doc[4:4+end]), &fm); err == nil {
				title = fm.Title
			}
			body = strings.TrimLeft(doc[4+end+len("\n---"):], "-\n")
		}
	}
	if title == "" {
		for _, line := range strings.Split(body, "\n") {
			if strings.HasPrefix(line, "# ") {
				title = strings.TrimPrefix(line, "# ")
				break
			}
		}
	}
	return title, body
}
