package teams

import "github.com/preston-bernstein/football-asset-generator/internal/domain/color"

// Team is the persisted team definition. GUID is assigned by the asset
// database when the record is first created and never changes afterwards.
type Team struct {
	GUID           string      `json:"guid" yaml:"-"`
	TeamID         string      `json:"teamId" yaml:"teamId"`
	TeamName       string      `json:"teamName" yaml:"teamName"`
	ShortCode      string      `json:"shortCode" yaml:"shortCode"`
	PrimaryColor   color.Color `json:"primaryColor" yaml:"primaryColor"`
	SecondaryColor color.Color `json:"secondaryColor" yaml:"secondaryColor"`
	Logo           string      `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// New returns a team with the default body/head colours.
func New() *Team {
	return &Team{
		PrimaryColor:   color.Red,
		SecondaryColor: color.White,
	}
}

// DisplayName returns the team name, or "" for a nil team.
func (t *Team) DisplayName() string {
	if t == nil {
		return ""
	}
	return t.TeamName
}
