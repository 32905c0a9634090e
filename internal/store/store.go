// Package store persists raw record documents keyed by their canonical
// path. Backends know nothing about record kinds; decoding lives in assetdb.
package store

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// Backend stores record documents and the folder tree that contains them.
// Paths use forward slashes and carry no extension.
type Backend interface {
	Read(ctx context.Context, path string) ([]byte, error)
	Write(ctx context.Context, path string, data []byte) error
	// List returns the sorted paths of every record below scope. An empty
	// scope lists everything.
	List(ctx context.Context, scope string) ([]string, error)
	FolderExists(ctx context.Context, path string) (bool, error)
	CreateFolder(ctx context.Context, parent, name string) error
	Close() error
}

// JoinFolder joins a parent folder and a child name. An empty parent yields
// the bare name.
func JoinFolder(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
