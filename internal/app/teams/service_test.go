package teams

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/football-asset-generator/internal/domain/teams"
)

type stubTeamStore struct {
	items []*teams.Team
	err   error
	scope string
}

func (s *stubTeamStore) FindTeams(_ context.Context, scope string) ([]*teams.Team, error) {
	s.scope = scope
	return s.items, s.err
}

func TestTeamsService(t *testing.T) {
	store := &stubTeamStore{items: []*teams.Team{{TeamID: "t2"}, {TeamID: "t1"}}}
	svc := NewService(func() Store { return store }, "Assets/Teams")

	got, err := svc.Teams(context.Background())
	if err != nil {
		t.Fatalf("teams: %v", err)
	}
	if len(got) != 2 || got[0].TeamID != "t1" {
		t.Fatalf("expected teams sorted by id, got %+v", got)
	}
	if store.scope != "Assets/Teams" {
		t.Fatalf("expected scope passed through, got %q", store.scope)
	}
	if _, ok, _ := svc.TeamByID(context.Background(), "t2"); !ok {
		t.Fatalf("expected team by id")
	}
	if _, ok, _ := svc.TeamByID(context.Background(), "nope"); ok {
		t.Fatalf("expected missing team")
	}
}

func TestTeamsServiceError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(func() Store { return &stubTeamStore{err: boom} }, "")
	if _, err := svc.Teams(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if _, _, err := svc.TeamByID(context.Background(), "x"); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}
