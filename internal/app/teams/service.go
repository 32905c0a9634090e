package teams

import (
	"context"
	"sort"

	"github.com/preston-bernstein/football-asset-generator/internal/domain/teams"
)

// Store finds team records below a folder.
type Store interface {
	FindTeams(ctx context.Context, scope string) ([]*teams.Team, error)
}

// Opener starts a fresh read session so each call sees the latest records.
type Opener func() Store

// Service lists reconciled teams under the teams base folder.
type Service struct {
	open  Opener
	scope string
}

// NewService constructs a Service reading below scope.
func NewService(open Opener, scope string) *Service {
	return &Service{open: open, scope: scope}
}

// Teams returns every stored team ordered by team id.
func (s *Service) Teams(ctx context.Context) ([]teams.Team, error) {
	found, err := s.open().FindTeams(ctx, s.scope)
	if err != nil {
		return nil, err
	}
	out := make([]teams.Team, 0, len(found))
	for _, t := range found {
		out = append(out, *t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, nil
}

// TeamByID returns the team with the given external id.
func (s *Service) TeamByID(ctx context.Context, id string) (teams.Team, bool, error) {
	all, err := s.Teams(ctx)
	if err != nil {
		return teams.Team{}, false, err
	}
	for _, t := range all {
		if t.TeamID == id {
			return t, true, nil
		}
	}
	return teams.Team{}, false, nil
}
