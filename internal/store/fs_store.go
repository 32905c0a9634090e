package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// RecordExt is appended to every record path on disk.
const RecordExt = ".asset"

// FSStore keeps each record as a file below a project root.
type FSStore struct {
	root string
}

// NewFSStore constructs an FS-backed store rooted at root.
func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

// Root exposes the store root path (primarily for testing).
func (s *FSStore) Root() string {
	if s == nil {
		return ""
	}
	return s.root
}

// RecordPath maps a record path to its file on disk.
func (s *FSStore) RecordPath(path string) string {
	return s.folderPath(path) + RecordExt
}

func (s *FSStore) folderPath(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(path))
}

// Read loads the record file for path.
func (s *FSStore) Read(ctx context.Context, path string) ([]byte, error) {
	if err := s.check(ctx, path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.RecordPath(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Write persists data for path. Unchanged content is left untouched; new
// content is written to a temp file and renamed into place.
func (s *FSStore) Write(ctx context.Context, path string, data []byte) error {
	if err := s.check(ctx, path); err != nil {
		return err
	}
	target := s.RecordPath(path)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// List walks scope for record files.
func (s *FSStore) List(ctx context.Context, scope string) ([]string, error) {
	if s == nil {
		return nil, errors.New("record store not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	scope = strings.Trim(scope, "/")
	dir := s.folderPath(scope)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "**/*"+RecordExt)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", scope, err)
	}
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		rel := strings.TrimSuffix(m, RecordExt)
		if scope != "" {
			rel = scope + "/" + rel
		}
		paths = append(paths, rel)
	}
	sort.Strings(paths)
	return paths, nil
}

// FolderExists reports whether path is an existing directory.
func (s *FSStore) FolderExists(ctx context.Context, path string) (bool, error) {
	if err := s.check(ctx, path); err != nil {
		return false, err
	}
	info, err := os.Stat(s.folderPath(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// CreateFolder creates the single directory parent/name.
func (s *FSStore) CreateFolder(ctx context.Context, parent, name string) error {
	folder := JoinFolder(parent, name)
	if err := s.check(ctx, folder); err != nil {
		return err
	}
	if err := os.Mkdir(s.folderPath(folder), 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return err
	}
	return nil
}

// Close is a no-op.
func (s *FSStore) Close() error { return nil }

func (s *FSStore) check(ctx context.Context, path string) error {
	if s == nil {
		return errors.New("record store not configured")
	}
	if path == "" {
		return errors.New("record path required")
	}
	return ctx.Err()
}
