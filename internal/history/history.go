// Package history persists a record of past lock runs in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages the run-history database.
type Store struct {
	db *sql.DB
}

// Run is one completed (or aborted) lock pass.
type Run struct {
	ID        int64
	StartedAt time.Time
	Duration  time.Duration
	Libraries []string
	Fields    []string
	Total     int
	Locked    int
	Skipped   int
	DryRun    bool
}

// Open creates or opens the run-history database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection keeps in-memory databases consistent and is
	// plenty for a sequential CLI.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000", // Wait up to 10 seconds on lock
		"PRAGMA synchronous = NORMAL", // Balance between safety and performance
		"PRAGMA journal_mode = WAL",   // Write-Ahead Logging
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			libraries TEXT NOT NULL,
			fields TEXT NOT NULL,
			total INTEGER NOT NULL,
			locked INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			dry_run BOOLEAN NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_started_at ON runs(started_at);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record inserts a completed run.
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	query := `
		INSERT INTO runs (started_at, duration_ms, libraries, fields, total, locked, skipped, dry_run)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		run.StartedAt.Unix(),
		run.Duration.Milliseconds(),
		strings.Join(run.Libraries, ", "),
		strings.Join(run.Fields, ", "),
		run.Total,
		run.Locked,
		run.Skipped,
		run.DryRun,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get insert id: %w", err)
	}

	return id, nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, started_at, duration_ms, libraries, fields, total, locked, skipped, dry_run
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			startedAt  int64
			durationMS int64
			libraries  string
			fields     string
		)
		if err := rows.Scan(&run.ID, &startedAt, &durationMS, &libraries, &fields,
			&run.Total, &run.Locked, &run.Skipped, &run.DryRun); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.StartedAt = time.Unix(startedAt, 0)
		run.Duration = time.Duration(durationMS) * time.Millisecond
		run.Libraries = splitList(libraries)
		run.Fields = splitList(fields)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ", ")
	return parts
}
