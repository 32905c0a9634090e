package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/preston-bernstein/football-asset-generator/internal/app/players"
	"github.com/preston-bernstein/football-asset-generator/internal/app/teams"
	"github.com/preston-bernstein/football-asset-generator/internal/logging"
)

// Handler serves the read-only record routes.
type Handler struct {
	teams   *teams.Service
	players *players.Service
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(teamSvc *teams.Service, playerSvc *players.Service, logger *slog.Logger) *Handler {
	return &Handler{teams: teamSvc, players: playerSvc, logger: logger}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/teams":
		h.Teams(w, r)
	case strings.HasPrefix(r.URL.Path, "/teams/"):
		h.TeamByID(w, r)
	case r.URL.Path == "/players":
		h.Players(w, r)
	case strings.HasPrefix(r.URL.Path, "/players/"):
		h.PlayerByID(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Teams lists every stored team.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	all, err := h.teams.Teams(r.Context())
	if err != nil {
		logging.Error(logger, "list teams failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "failed to list teams", logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"teams": all}, logger)
}

// TeamByID returns one team by its external id.
func (h *Handler) TeamByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, ok := pathID(r.URL.Path, "/teams/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	team, found, err := h.teams.TeamByID(r.Context(), id)
	if err != nil {
		logging.Error(logger, "load team failed", err, slog.String(logging.FieldTeamID, id))
		writeError(w, r, nethttp.StatusInternalServerError, "failed to load team", logger)
		return
	}
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "team not found", logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, logger)
}

// Players lists stored players, optionally filtered by ?teamId=.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	teamID := strings.TrimSpace(r.URL.Query().Get("teamId"))
	all, err := h.players.Players(r.Context(), teamID)
	if err != nil {
		logging.Error(logger, "list players failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "failed to list players", logger)
		return
	}
	logging.Debug(logger, "served players", slog.Int(logging.FieldCount, len(all)), slog.String(logging.FieldTeamID, teamID))
	writeJSON(w, nethttp.StatusOK, map[string]any{"players": all}, logger)
}

// PlayerByID returns one player by its external id.
func (h *Handler) PlayerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, ok := pathID(r.URL.Path, "/players/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	player, found, err := h.players.PlayerByID(r.Context(), id)
	if err != nil {
		logging.Error(logger, "load player failed", err, slog.String(logging.FieldPlayerID, id))
		writeError(w, r, nethttp.StatusInternalServerError, "failed to load player", logger)
		return
	}
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "player not found", logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, logger)
}

// pathID extracts the single escaped segment after prefix.
func pathID(path, prefix string) (string, bool) {
	raw := strings.TrimPrefix(path, prefix)
	id, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(id) == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}
