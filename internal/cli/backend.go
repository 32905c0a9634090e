package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/preston-bernstein/football-asset-generator/internal/config"
	"github.com/preston-bernstein/football-asset-generator/internal/store"
	"github.com/preston-bernstein/football-asset-generator/internal/store/sqlite"
)

// openBackend builds the record store selected by cfg. The memory backend
// lives only as long as the process.
func openBackend(cfg config.StorageConfig) (store.Backend, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", config.BackendFS:
		return store.NewFSStore(cfg.ProjectRoot), nil
	case config.BackendSQLite:
		path := projectPath(cfg.ProjectRoot, cfg.SQLitePath)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
		return sqlite.Open(path)
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want %s, %s or %s)",
			cfg.Backend, config.BackendFS, config.BackendSQLite, config.BackendMemory)
	}
}

// projectPath resolves relative paths against the project root.
func projectPath(root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return path
	}
	return filepath.Join(root, path)
}
