// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records settled successful summaries in a local
// SQLite database. The submit path only appends; it never reads the
// store, so every submission still reaches the agent.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/Lyzr-Apps/elegant-fresh-forge/pkg/types"
)

const defaultMaxResults = 20

// Entry is one recorded summary.
type Entry struct {
	ArxivID   string              `json:"arxiv_id" yaml:"arxiv_id"`
	Metadata  types.PaperMetadata `json:"metadata" yaml:"metadata"`
	Summary   string              `json:"summary" yaml:"summary"`
	CreatedAt time.Time           `json:"created_at" yaml:"created_at"`
}

// Store manages the summary history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at cfg.Path, creating
// parent directories and the schema as needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = filepath.Join("history", "summaries.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS summaries (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			arxiv_id TEXT NOT NULL,
			title TEXT,
			authors TEXT,
			abstract TEXT,
			url TEXT,
			published_date TEXT,
			summary TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_arxiv_id ON summaries(arxiv_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one settled successful summary.
func (s *Store) Record(ctx context.Context, arxivID string, md types.PaperMetadata, summary string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO summaries (arxiv_id, title, authors, abstract, url, published_date, summary, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		arxivID, md.Title, strings.Join(md.Authors, "; "), md.Abstract, md.URL, md.PublishedDate,
		summary, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting summary: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first. limit 0 uses the
// configured default; negative means no limit (SQLite treats LIMIT -1
// as unbounded).
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit == 0 {
		limit = s.maxResults
	}
	if limit < 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT arxiv_id, title, authors, abstract, url, published_date, summary, created_at
		 FROM summaries ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying summaries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Get returns the most recent entry for one identifier.
func (s *Store) Get(ctx context.Context, arxivID string) (Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT arxiv_id, title, authors, abstract, url, published_date, summary, created_at
		 FROM summaries WHERE arxiv_id = ? ORDER BY rowid DESC LIMIT 1`, arxivID)
	if err != nil {
		return Entry{}, fmt.Errorf("querying summary: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, fmt.Errorf("no summary recorded for %s", arxivID)
	}
	return entries[0], nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var authors, createdAt string
		if err := rows.Scan(&e.ArxivID, &e.Metadata.Title, &authors, &e.Metadata.Abstract,
			&e.Metadata.URL, &e.Metadata.PublishedDate, &e.Summary, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning summary row: %w", err)
		}
		if authors != "" {
			e.Metadata.Authors = strings.Split(authors, "; ")
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ExportYAML writes all entries (newest first) as YAML to w.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	entries, err := s.List(ctx, -1)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(struct {
		Summaries []Entry `yaml:"summaries"`
	}{Summaries: entries})
}

// ExportJSON writes all entries (newest first) as indented JSON to w.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	entries, err := s.List(ctx, -1)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
