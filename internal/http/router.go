package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/football-asset-generator/internal/http/handlers"
)

// NewRouter registers the record routes and, when imports is non-nil,
// POST /import.
func NewRouter(h *handlers.Handler, imports *handlers.ImportHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/teams", h.Teams)
	mux.HandleFunc("/teams/", h.TeamByID)
	mux.HandleFunc("/players", h.Players)
	mux.HandleFunc("/players/", h.PlayerByID)
	if imports != nil {
		mux.HandleFunc("/import", imports.Import)
	}
	return mux
}
