package http

import (
	"context"
	nethttp "net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/football-asset-generator/internal/app/players"
	"github.com/preston-bernstein/football-asset-generator/internal/app/teams"
	"github.com/preston-bernstein/football-asset-generator/internal/assetdb"
	"github.com/preston-bernstein/football-asset-generator/internal/http/handlers"
	"github.com/preston-bernstein/football-asset-generator/internal/roster"
	"github.com/preston-bernstein/football-asset-generator/internal/store"
	"github.com/preston-bernstein/football-asset-generator/internal/testutil"
)

type sessionImporter struct{ backend store.Backend }

func (s sessionImporter) Import(ctx context.Context, data []byte, format roster.Format) (roster.Result, error) {
	return roster.NewImporter(testutil.NewReconciler(s.backend), roster.Options{}, nil, nil).Import(ctx, data, format)
}

func newRouter(backend store.Backend, withImport bool) nethttp.Handler {
	open := func() *assetdb.Database { return assetdb.Open(backend, nil) }
	h := handlers.NewHandler(
		teams.NewService(func() teams.Store { return open() }, testutil.Folders.Teams),
		players.NewService(func() players.Store { return open() }, testutil.Folders.Players),
		nil,
	)
	var imports *handlers.ImportHandler
	if withImport {
		imports = handlers.NewImportHandler(sessionImporter{backend}, "", 0, nil)
	}
	return NewRouter(h, imports)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	backend := store.NewMemoryStore()
	router := newRouter(backend, true)

	rr := testutil.Serve(router, nethttp.MethodPost, "/import", strings.NewReader(testutil.SampleRosterJSON))
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	cases := map[string]int{
		"/health":      nethttp.StatusOK,
		"/teams":       nethttp.StatusOK,
		"/teams/RED":   nethttp.StatusOK,
		"/teams/NOPE":  nethttp.StatusNotFound,
		"/players":     nethttp.StatusOK,
		"/players/R2":  nethttp.StatusOK,
		"/players/X1":  nethttp.StatusNotFound,
		"/unknown":     nethttp.StatusNotFound,
		"/players/a/b": nethttp.StatusBadRequest,
	}
	for path, expected := range cases {
		rr := testutil.Serve(router, nethttp.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterWithoutImportHidesRoute(t *testing.T) {
	router := newRouter(store.NewMemoryStore(), false)

	rr := testutil.Serve(router, nethttp.MethodPost, "/import", strings.NewReader("{}"))
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)
}
