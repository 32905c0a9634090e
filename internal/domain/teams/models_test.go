package teams

import (
	"reflect"
	"testing"

	"github.com/preston-bernstein/football-asset-generator/internal/domain/color"
)

func TestTeamJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	teamType := reflect.TypeOf(Team{})
	fields := []fieldCheck{
		{"GUID", "guid"},
		{"TeamID", "teamId"},
		{"TeamName", "teamName"},
		{"ShortCode", "shortCode"},
		{"PrimaryColor", "primaryColor"},
		{"SecondaryColor", "secondaryColor"},
		{"Logo", "logo,omitempty"},
	}
	for _, fc := range fields {
		f, ok := teamType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestNewAppliesDefaultColors(t *testing.T) {
	team := New()
	if team.PrimaryColor != color.Red || team.SecondaryColor != color.White {
		t.Fatalf("unexpected default colors %+v", team)
	}
}

func TestDisplayNameNilSafe(t *testing.T) {
	var team *Team
	if team.DisplayName() != "" {
		t.Fatal("expected empty name for nil team")
	}
}
