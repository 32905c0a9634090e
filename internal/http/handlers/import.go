package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/preston-bernstein/football-asset-generator/internal/http/requestutil"
	"github.com/preston-bernstein/football-asset-generator/internal/logging"
	"github.com/preston-bernstein/football-asset-generator/internal/reconcile"
	"github.com/preston-bernstein/football-asset-generator/internal/roster"
)

const defaultMaxImportBytes = 1 << 20

// Importer applies a roster document to the record store.
type Importer interface {
	Import(ctx context.Context, data []byte, format roster.Format) (roster.Result, error)
}

// ImportHandler exposes POST /import. Imports run one at a time.
type ImportHandler struct {
	importer Importer
	token    string
	maxBytes int64
	logger   *slog.Logger

	mu sync.Mutex
}

// NewImportHandler constructs an ImportHandler. An empty token leaves the
// route open; maxBytes <= 0 selects a 1 MiB limit.
func NewImportHandler(importer Importer, token string, maxBytes int64, logger *slog.Logger) *ImportHandler {
	if maxBytes <= 0 {
		maxBytes = defaultMaxImportBytes
	}
	return &ImportHandler{importer: importer, token: token, maxBytes: maxBytes, logger: logger}
}

// Import reads a JSON or YAML roster from the body (YAML when the
// Content-Type says so) and reconciles it.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "import unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.importer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "importer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "roster too large", logger)
			return
		}
		writeError(w, r, http.StatusBadRequest, "failed to read body", logger)
		return
	}

	format := roster.FormatFromContentType(r.Header.Get("Content-Type"))

	h.mu.Lock()
	res, err := h.importer.Import(r.Context(), data, format)
	h.mu.Unlock()

	if err != nil {
		h.writeImportError(w, r, res, err, logger)
		return
	}
	logging.Info(logger, "roster imported",
		slog.String("format", string(format)),
		slog.Int("teams", res.TeamsWritten),
		slog.Int("players", res.PlayersWritten),
		slog.Int("warnings", len(res.Warnings)),
	)
	writeJSON(w, http.StatusOK, res, logger)
}

func (h *ImportHandler) writeImportError(w http.ResponseWriter, r *http.Request, res roster.Result, err error, logger *slog.Logger) {
	if _, ok := roster.AsParseError(err); ok || errors.Is(err, roster.ErrMissingCollections) {
		logging.Warn(logger, "import rejected", slog.Any("err", err))
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}
	logging.Error(logger, "import failed", err)
	if _, ok := reconcile.AsBatchError(err); ok {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":          err.Error(),
			"teamsWritten":   res.TeamsWritten,
			"playersWritten": res.PlayersWritten,
		}, logger)
		return
	}
	writeError(w, r, http.StatusInternalServerError, "import failed", logger)
}

func (h *ImportHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return true
	}
	got, ok := requestutil.BearerToken(r)
	return ok && subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
