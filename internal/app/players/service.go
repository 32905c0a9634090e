package players

import (
	"context"
	"sort"

	"github.com/preston-bernstein/football-asset-generator/internal/domain/players"
)

// Store finds player records below a folder.
type Store interface {
	FindPlayers(ctx context.Context, scope string) ([]*players.Player, error)
}

// Opener starts a fresh read session so each call sees the latest records.
type Opener func() Store

// Service lists reconciled players under the players base folder.
type Service struct {
	open  Opener
	scope string
}

// NewService constructs a Service reading below scope.
func NewService(open Opener, scope string) *Service {
	return &Service{open: open, scope: scope}
}

// Players returns stored players ordered by team name then jersey. A
// non-empty teamID keeps only that team's players.
func (s *Service) Players(ctx context.Context, teamID string) ([]*players.Player, error) {
	found, err := s.open().FindPlayers(ctx, s.scope)
	if err != nil {
		return nil, err
	}
	out := make([]*players.Player, 0, len(found))
	for _, p := range found {
		if teamID != "" && (p.Team == nil || p.Team.TeamID != teamID) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if a, b := out[i].TeamName(), out[j].TeamName(); a != b {
			return a < b
		}
		return out[i].JerseyNumber < out[j].JerseyNumber
	})
	return out, nil
}

// PlayerByID returns the player with the given external id.
func (s *Service) PlayerByID(ctx context.Context, id string) (*players.Player, bool, error) {
	all, err := s.Players(ctx, "")
	if err != nil {
		return nil, false, err
	}
	for _, p := range all {
		if p.PlayerID == id {
			return p, true, nil
		}
	}
	return nil, false, nil
}
