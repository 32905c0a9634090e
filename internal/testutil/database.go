package testutil

import (
	"github.com/preston-bernstein/football-asset-generator/internal/assetdb"
	"github.com/preston-bernstein/football-asset-generator/internal/config"
	"github.com/preston-bernstein/football-asset-generator/internal/reconcile"
	"github.com/preston-bernstein/football-asset-generator/internal/store"
)

// Folders is the folder layout used by tests.
var Folders = config.FolderConfig{
	Teams:   "Assets/_Project/Teams",
	Players: "Assets/_Project/Players",
	Prefabs: "Assets/_Project/Prefabs",
}

// NewReconciler opens a fresh asset database session over backend.
func NewReconciler(backend store.Backend) *reconcile.Reconciler {
	return reconcile.New(assetdb.Open(backend, nil), Folders, nil, nil)
}
