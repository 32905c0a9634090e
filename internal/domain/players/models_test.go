package players

import (
	"reflect"
	"testing"

	"github.com/preston-bernstein/football-asset-generator/internal/domain/teams"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"GUID", "guid"},
		{"PlayerID", "playerId"},
		{"PlayerName", "playerName"},
		{"JerseyNumber", "jerseyNumber"},
		{"Role", "role"},
		{"InterceptRadiusMeters", "interceptRadiusMeters"},
		{"Team", "team,omitempty"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"":           RoleForward,
		"xyz":        RoleForward,
		"gk":         RoleGoalkeeper,
		"GK":         RoleGoalkeeper,
		" Gk ":       RoleGoalkeeper,
		"def":        RoleDefender,
		"Midfielder": RoleMidfielder,
		"FWD":        RoleForward,
	}
	for raw, want := range cases {
		if got := ParseRole(raw); got != want {
			t.Fatalf("ParseRole(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestClampJersey(t *testing.T) {
	cases := map[int]int{150: 99, -5: 0, 0: 0, 99: 99, 10: 10}
	for in, want := range cases {
		if got := ClampJersey(in); got != want {
			t.Fatalf("ClampJersey(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestTeamNameFollowsTeamReference(t *testing.T) {
	team := &teams.Team{TeamID: "HOME", TeamName: "Red"}
	p := New()
	p.Team = team
	team.TeamName = "Crimson"
	if p.TeamName() != "Crimson" {
		t.Fatalf("expected player to see team rename, got %q", p.TeamName())
	}
	if New().TeamName() != "" {
		t.Fatal("expected empty team name without team")
	}
}
