// Package sqlite provides a SQLite-backed record store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/preston-bernstein/football-asset-generator/internal/store"
	"github.com/preston-bernstein/football-asset-generator/internal/store/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists record documents in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite record store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Read returns the document stored at path.
func (s *Store) Read(ctx context.Context, path string) ([]byte, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	var body []byte
	err := s.sqlDB.QueryRowContext(ctx, `SELECT body FROM assets WHERE path = ?`, path).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("read asset %s: %w", path, err)
	}
	return body, nil
}

// Write upserts the document at path.
func (s *Store) Write(ctx context.Context, path string, data []byte) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("record path required")
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO assets (path, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		path, data, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("write asset %s: %w", path, err)
	}
	return nil
}

// List returns the sorted paths of documents below scope.
func (s *Store) List(ctx context.Context, scope string) ([]string, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	scope = strings.Trim(scope, "/")

	var (
		rows *sql.Rows
		err  error
	)
	if scope == "" {
		rows, err = s.sqlDB.QueryContext(ctx, `SELECT path FROM assets ORDER BY path`)
	} else {
		// Scope matching is case-sensitive.
		prefix := scope + "/"
		rows, err = s.sqlDB.QueryContext(ctx,
			`SELECT path FROM assets WHERE substr(path, 1, ?) = ? ORDER BY path`,
			utf8.RuneCountInString(prefix), prefix,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	paths := []string{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan asset path: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// FolderExists reports whether path was created as a folder.
func (s *Store) FolderExists(ctx context.Context, path string) (bool, error) {
	if err := s.check(ctx); err != nil {
		return false, err
	}
	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(1) FROM folders WHERE path = ?`, path).Scan(&count); err != nil {
		return false, fmt.Errorf("check folder %s: %w", path, err)
	}
	return count > 0, nil
}

// CreateFolder records parent/name as a folder.
func (s *Store) CreateFolder(ctx context.Context, parent, name string) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT OR IGNORE INTO folders (path, created_at) VALUES (?, ?)`,
		store.JoinFolder(parent, name), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("create folder %s: %w", store.JoinFolder(parent, name), err)
	}
	return nil
}

func (s *Store) check(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return ctx.Err()
}

var _ store.Backend = (*Store)(nil)
