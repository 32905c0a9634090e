package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/football-asset-generator/internal/config"
	"github.com/preston-bernstein/football-asset-generator/internal/metrics"
	"github.com/preston-bernstein/football-asset-generator/internal/store"
	"github.com/preston-bernstein/football-asset-generator/internal/testutil"
)

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: true}

	srv := newServerWithMetrics(cfg, nil, store.NewMemoryStore(), nil)
	if srv.metrics == nil {
		t.Fatal("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatal("expected no metrics listener after setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsListener(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: false}

	srv := newServerWithMetrics(cfg, nil, store.NewMemoryStore(), nil)
	if srv.metrics == nil {
		t.Fatal("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatal("expected no metrics listener when disabled")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: true}

	srv := newServerWithMetrics(cfg, nil, store.NewMemoryStore(), rec)
	if srv.metrics != rec {
		t.Fatal("expected injected recorder to be used")
	}
	if srv.metricsStop != nil || srv.metricsServer != nil {
		t.Fatal("expected injected recorder to skip setup")
	}
}

func TestMetricsListenerServesPrometheusPath(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "0"}

	srv := newServerWithMetrics(cfg, nil, store.NewMemoryStore(), nil)
	if srv.metricsServer == nil {
		t.Fatal("expected metrics listener")
	}
	defer func() { _ = srv.metricsStop(context.Background()) }()

	testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)

	rr := testutil.Serve(srv.metricsServer.Handler(), http.MethodGet, "/metrics", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), "http_requests") {
		t.Fatalf("expected http request metric exported, got %s", rr.Body.String())
	}
	testutil.AssertStatus(t, testutil.Serve(srv.metricsServer.Handler(), http.MethodGet, "/other", nil), http.StatusNotFound)
}
