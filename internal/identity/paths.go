package identity

import "strings"

// AssetsRoot is the top-level folder every record lives under.
const AssetsRoot = "Assets"

const (
	teamFilePrefix   = "TeamDef_"
	playerFilePrefix = "PlayerDef_"
)

// NormalizePath converts backslashes to slashes and drops trailing slashes.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(strings.TrimSpace(p), `\`, "/")
	return strings.TrimRight(p, "/")
}

// IsAssetsPath reports whether p is the assets root or lives below it.
func IsAssetsPath(p string) bool {
	if strings.TrimSpace(p) == "" {
		return false
	}
	p = strings.ReplaceAll(p, `\`, "/")
	return p == AssetsRoot || strings.HasPrefix(p, AssetsRoot+"/")
}

// TeamFolder picks the folder token for a team: its display name, or its id
// when the name is blank.
func TeamFolder(teamID, teamName string) string {
	if strings.TrimSpace(teamName) != "" {
		return SanitizeFolder(teamName)
	}
	return SanitizeFolder(teamID)
}

// TeamPath derives <base>/<team folder>/TeamDef_<teamID>.
func TeamPath(base, teamID, teamName string) string {
	return join(base, TeamFolder(teamID, teamName), teamFilePrefix+SanitizeFile(teamID))
}

// PlayerPath derives <base>/<team folder>/PlayerDef_<playerID>. The folder
// comes from the owning team, not the player.
func PlayerPath(base, teamID, teamName, playerID string) string {
	return join(base, TeamFolder(teamID, teamName), playerFilePrefix+SanitizeFile(playerID))
}

// PrefabPath derives <base>/<name>.
func PrefabPath(base, name string) string {
	return join(base, SanitizeFile(name))
}

// Dir returns the folder portion of a record path.
func Dir(p string) string {
	p = NormalizePath(p)
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[:i]
	}
	return ""
}

// IsPlayerPath reports whether the last segment of p names a player record.
func IsPlayerPath(p string) bool {
	return strings.HasPrefix(base(p), playerFilePrefix)
}

// IsTeamPath reports whether the last segment of p names a team record.
func IsTeamPath(p string) bool {
	return strings.HasPrefix(base(p), teamFilePrefix)
}

func base(p string) string {
	p = NormalizePath(p)
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

func join(base string, parts ...string) string {
	out := NormalizePath(base)
	for _, part := range parts {
		if out == "" {
			out = part
			continue
		}
		out += "/" + part
	}
	return out
}
