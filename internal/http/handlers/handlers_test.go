package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/preston-bernstein/football-asset-generator/internal/app/players"
	"github.com/preston-bernstein/football-asset-generator/internal/app/teams"
	"github.com/preston-bernstein/football-asset-generator/internal/assetdb"
	"github.com/preston-bernstein/football-asset-generator/internal/roster"
	"github.com/preston-bernstein/football-asset-generator/internal/store"
	"github.com/preston-bernstein/football-asset-generator/internal/testutil"
)

type teamView struct {
	TeamID       string `json:"teamId"`
	TeamName     string `json:"teamName"`
	PrimaryColor string `json:"primaryColor"`
}

type playerView struct {
	PlayerID     string   `json:"playerId"`
	JerseyNumber int      `json:"jerseyNumber"`
	Role         string   `json:"role"`
	Team         teamView `json:"team"`
}

func seededHandler(t *testing.T) *Handler {
	t.Helper()
	backend := store.NewMemoryStore()
	imp := roster.NewImporter(testutil.NewReconciler(backend), roster.Options{}, nil, nil)
	if _, err := imp.Import(context.Background(), []byte(testutil.SampleRosterJSON), roster.FormatJSON); err != nil {
		t.Fatalf("seed roster: %v", err)
	}
	return newHandler(backend)
}

func newHandler(backend store.Backend) *Handler {
	teamSvc := teams.NewService(func() teams.Store { return assetdb.Open(backend, nil) }, testutil.Folders.Teams)
	playerSvc := players.NewService(func() players.Store { return assetdb.Open(backend, nil) }, testutil.Folders.Players)
	return NewHandler(teamSvc, playerSvc, nil)
}

func TestHealth(t *testing.T) {
	h := newHandler(store.NewMemoryStore())

	rr := testutil.Serve(h, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newHandler(store.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestTeamsListsSortedByID(t *testing.T) {
	h := seededHandler(t)

	rr := testutil.Serve(h, http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp struct {
		Teams []teamView `json:"teams"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	want := []teamView{
		{TeamID: "BLU", TeamName: "Blue Sharks", PrimaryColor: "#FF0000FF"},
		{TeamID: "RED", TeamName: "Red Lions", PrimaryColor: "#CC0000FF"},
	}
	if diff := cmp.Diff(want, resp.Teams); diff != "" {
		t.Fatalf("unexpected teams (-want +got):\n%s", diff)
	}
}

func TestTeamByID(t *testing.T) {
	h := seededHandler(t)

	rr := testutil.Serve(h, http.MethodGet, "/teams/RED", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var team teamView
	testutil.DecodeJSON(t, rr, &team)
	if team.TeamName != "Red Lions" {
		t.Fatalf("unexpected team %+v", team)
	}

	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/teams/NOPE", nil), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/teams/", nil), http.StatusBadRequest)
}

func TestPlayersOrderedAndFiltered(t *testing.T) {
	h := seededHandler(t)

	rr := testutil.Serve(h, http.MethodGet, "/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp struct {
		Players []playerView `json:"players"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	var ids []string
	for _, p := range resp.Players {
		ids = append(ids, p.PlayerID)
	}
	if diff := cmp.Diff([]string{"B1", "R1", "R2"}, ids); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	if resp.Players[0].JerseyNumber != 99 || resp.Players[0].Team.TeamID != "BLU" {
		t.Fatalf("unexpected first player %+v", resp.Players[0])
	}

	rr = testutil.Serve(h, http.MethodGet, "/players?teamId=RED", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	resp.Players = nil
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Players) != 2 {
		t.Fatalf("expected two RED players, got %+v", resp.Players)
	}
}

func TestPlayerByID(t *testing.T) {
	h := seededHandler(t)

	rr := testutil.Serve(h, http.MethodGet, "/players/R1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var p playerView
	testutil.DecodeJSON(t, rr, &p)
	if p.Role != "GK" || p.Team.TeamName != "Red Lions" {
		t.Fatalf("unexpected player %+v", p)
	}

	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/players/X1", nil), http.StatusNotFound)
}

func TestReadRoutesRejectWrongMethodAndUnknownPaths(t *testing.T) {
	h := newHandler(store.NewMemoryStore())

	for _, path := range []string{"/health", "/teams", "/teams/A", "/players", "/players/A"} {
		testutil.AssertStatus(t, testutil.Serve(h, http.MethodPost, path, nil), http.StatusMethodNotAllowed)
	}
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/nope", nil), http.StatusNotFound)
}

func TestEmptyStoreListsNothing(t *testing.T) {
	h := newHandler(store.NewMemoryStore())

	rr := testutil.Serve(h, http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp struct {
		Teams []teamView `json:"teams"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Teams) != 0 {
		t.Fatalf("expected no teams, got %+v", resp.Teams)
	}
}
