package assetdb

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/football-asset-generator/internal/domain/players"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/scenegraph"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/teams"
)

// Record kinds stored in the document envelope.
const (
	KindTeam   = "TeamDefinition"
	KindPlayer = "PlayerDefinition"
	KindPrefab = "Prefab"
)

// envelope is the on-disk shape of every record.
type envelope struct {
	GUID string    `yaml:"guid"`
	Kind string    `yaml:"kind"`
	Body yaml.Node `yaml:"body"`
}

// ref persists a pointer to another record by GUID, with its path as a
// lookup hint.
type ref struct {
	GUID string `yaml:"guid"`
	Path string `yaml:"path,omitempty"`
}

type playerDoc struct {
	PlayerID              string       `yaml:"playerId"`
	PlayerName            string       `yaml:"playerName"`
	JerseyNumber          int          `yaml:"jerseyNumber"`
	Role                  players.Role `yaml:"role"`
	InterceptRadiusMeters float64      `yaml:"interceptRadiusMeters"`
	Team                  *ref         `yaml:"team,omitempty"`
	VisualPrefab          *ref         `yaml:"visualPrefab,omitempty"`
}

type prefabDoc struct {
	Name string           `yaml:"name"`
	Root *scenegraph.Node `yaml:"root"`
}

func encodeEnvelope(guid, kind string, body any) ([]byte, error) {
	env := envelope{GUID: guid, Kind: kind}
	if err := env.Body.Encode(body); err != nil {
		return nil, fmt.Errorf("encode %s body: %w", kind, err)
	}
	out, err := yaml.Marshal(&env)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", kind, err)
	}
	return out, nil
}

func decodeEnvelope(data []byte) (envelope, error) {
	var env envelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return envelope{}, fmt.Errorf("decode record: %w", err)
	}
	if env.Kind == "" {
		return envelope{}, fmt.Errorf("decode record: missing kind")
	}
	return env, nil
}

func decodeTeam(env envelope) (*teams.Team, error) {
	t := teams.New()
	if err := env.Body.Decode(t); err != nil {
		return nil, fmt.Errorf("decode team: %w", err)
	}
	t.GUID = env.GUID
	return t, nil
}
