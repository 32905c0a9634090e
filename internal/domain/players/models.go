package players

import (
	"strings"

	"github.com/preston-bernstein/football-asset-generator/internal/domain/prefabs"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/teams"
)

// Role is the tactical role of a player.
type Role string

const (
	RoleGoalkeeper Role = "GK"
	RoleDefender   Role = "DEF"
	RoleMidfielder Role = "MID"
	RoleForward    Role = "FWD"
)

const (
	MinJersey = 0
	MaxJersey = 99

	DefaultInterceptRadius = 1.25
)

// Player is the persisted player definition. Team and VisualPrefab point at
// live records owned by the asset database, never at copies.
type Player struct {
	GUID                  string          `json:"guid"`
	PlayerID              string          `json:"playerId"`
	PlayerName            string          `json:"playerName"`
	JerseyNumber          int             `json:"jerseyNumber"`
	Role                  Role            `json:"role"`
	InterceptRadiusMeters float64         `json:"interceptRadiusMeters"`
	Team                  *teams.Team     `json:"team,omitempty"`
	VisualPrefab          *prefabs.Prefab `json:"-"`
}

// New returns a player with the default intercept radius.
func New() *Player {
	return &Player{Role: RoleForward, InterceptRadiusMeters: DefaultInterceptRadius}
}

// TeamName returns the owning team's display name, or "" when unset.
func (p *Player) TeamName() string {
	if p == nil {
		return ""
	}
	return p.Team.DisplayName()
}

// ParseRole matches raw against the role codes and names, ignoring case and
// surrounding whitespace. Blank or unknown input yields RoleForward.
func ParseRole(raw string) Role {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "GK", "GOALKEEPER":
		return RoleGoalkeeper
	case "DEF", "DEFENDER":
		return RoleDefender
	case "MID", "MIDFIELDER":
		return RoleMidfielder
	default:
		return RoleForward
	}
}

// ClampJersey limits n to [MinJersey, MaxJersey].
func ClampJersey(n int) int {
	return min(max(n, MinJersey), MaxJersey)
}
