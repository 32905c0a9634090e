package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/football-asset-generator/internal/config"
	"github.com/preston-bernstein/football-asset-generator/internal/store"
	"github.com/preston-bernstein/football-asset-generator/internal/testutil"
)

type closeCountingStore struct {
	*store.MemoryStore
	mu     sync.Mutex
	closes int
}

func (c *closeCountingStore) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closes++
	return nil
}

func (c *closeCountingStore) closeCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closes
}

func testConfig() config.Config {
	return config.Config{
		Folders: testutil.Folders,
		Server:  config.ServerConfig{Port: "0"},
		Import:  config.ImportConfig{EnsurePrefab: true},
		Generator: config.GeneratorConfig{
			PrefabName:      "SnowmanPlayer.prefab",
			InterceptRadius: 1.25,
		},
	}
}

func TestServerServesImportAndReads(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	backend := store.NewMemoryStore()
	rec, _ := testutil.NewRecorderWithShutdown()
	srv := newServerWithMetrics(testConfig(), logger, backend, rec)
	h := srv.Handler()

	rr := testutil.Serve(h, http.MethodPost, "/import", strings.NewReader(testutil.SampleRosterJSON))
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected middleware to tag the response")
	}
	// 2 teams, 3 players and the shared prefab.
	if backend.Len() != 6 {
		t.Fatalf("expected 6 records, got %d", backend.Len())
	}

	rr = testutil.Serve(h, http.MethodGet, "/players/R1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var player struct {
		PlayerID string `json:"playerId"`
		Role     string `json:"role"`
	}
	testutil.DecodeJSON(t, rr, &player)
	if player.PlayerID != "R1" || player.Role != "GK" {
		t.Fatalf("unexpected player %+v", player)
	}
	if rec.Snapshot("import").Runs != 1 {
		t.Fatal("expected import batch recorded")
	}
}

func TestServerImportRequiresConfiguredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Server.ImportToken = "secret"
	rec, _ := testutil.NewRecorderWithShutdown()
	h := newServerWithMetrics(cfg, nil, store.NewMemoryStore(), rec).Handler()

	rr := testutil.Serve(h, http.MethodPost, "/import", strings.NewReader(testutil.SampleRosterJSON))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestGracefulShutdownStopsServerAndClosesBackend(t *testing.T) {
	backend := &closeCountingStore{MemoryStore: store.NewMemoryStore()}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, backend, httpSrv)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls() != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls())
	}
	if backend.closeCalls() != 1 {
		t.Fatalf("expected backend closed once, got %d", backend.closeCalls())
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.StubHTTPServer{Unblock: make(chan struct{})}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, nil, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls() != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls())
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, nil, &testutil.StubHTTPServer{ListenErr: errors.New("listen failure")})

	stopCalled := make(chan struct{})
	srv.startServer(func() { close(stopCalled) })

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend := &closeCountingStore{MemoryStore: store.NewMemoryStore()}
	httpSrv := &testutil.StubHTTPServer{ListenErr: http.ErrServerClosed}
	srv := newServerWithDeps(config.Config{}, nil, backend, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.ShutdownCalls() != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls())
	}
	if backend.closeCalls() != 1 {
		t.Fatalf("expected backend closed once, got %d", backend.closeCalls())
	}
}
