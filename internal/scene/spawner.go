// Package scene places player instances into a scene tree.
package scene

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jinzhu/copier"

	"github.com/preston-bernstein/football-asset-generator/internal/domain/players"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/scenegraph"
	"github.com/preston-bernstein/football-asset-generator/internal/logging"
	"github.com/preston-bernstein/football-asset-generator/internal/metrics"
	"github.com/preston-bernstein/football-asset-generator/internal/telemetry"
)

const operation = "spawn"

// Material properties set on each renderer. The first is read by lit
// shaders, the second by legacy ones.
const (
	PropBaseColor = "_BaseColor"
	PropColor     = "_Color"
)

var (
	// ErrNoPlayers is returned when there is nothing to spawn.
	ErrNoPlayers = errors.New("no player definitions found to spawn")
	// ErrMissingPrefab is returned when the first player has no prefab.
	ErrMissingPrefab = errors.New("visual prefab is not set on the first player; generate or import first")
)

// Options control grid placement.
type Options struct {
	Origin  scenegraph.Vec3
	Spacing float64
}

// DefaultOptions returns the stock origin and spacing.
func DefaultOptions() Options {
	return Options{Origin: scenegraph.Vec3{X: -12, Y: 0, Z: -6}, Spacing: 2.2}
}

// Spawner instantiates players under a root node.
type Spawner struct {
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// NewSpawner builds a Spawner. metrics and logger may be nil.
func NewSpawner(rec *metrics.Recorder, logger *slog.Logger) *Spawner {
	return &Spawner{metrics: rec, logger: logger}
}

// Spawn clears root and adds one instance per player, sorted by team name
// then jersey. Each team starts a new row. Every instance copies the first
// player's prefab. It returns the number of instances placed.
func (s *Spawner) Spawn(ctx context.Context, root *scenegraph.Node, defs []*players.Player, opts Options) (n int, err error) {
	start := time.Now()
	_, span := telemetry.Tracer("scene").Start(ctx, operation)
	defer func() {
		telemetry.End(span, err)
		s.metrics.RecordBatch(operation, time.Since(start), err)
	}()

	if root == nil {
		return 0, errors.New("spawn: nil root node")
	}
	removed := root.ClearChildren()

	defs = slices.DeleteFunc(slices.Clone(defs), func(p *players.Player) bool { return p == nil })
	if len(defs) == 0 {
		return 0, ErrNoPlayers
	}
	slices.SortStableFunc(defs, func(a, b *players.Player) int {
		if c := cmp.Compare(a.TeamName(), b.TeamName()); c != 0 {
			return c
		}
		return cmp.Compare(a.JerseyNumber, b.JerseyNumber)
	})

	prefab := defs[0].VisualPrefab
	if prefab == nil || prefab.Root == nil {
		return 0, ErrMissingPrefab
	}

	col, row := 0, 0
	lastTeam := defs[0].TeamName()
	for i, def := range defs {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if team := def.TeamName(); i > 0 && team != lastTeam {
			row++
			col = 0
			lastTeam = team
		}

		instance, err := instantiate(prefab.Root)
		if err != nil {
			return i, err
		}
		instance.Name = fmt.Sprintf("P_%s_%s", def.PlayerID, def.PlayerName)
		instance.Position = opts.Origin.Add(scenegraph.Vec3{
			X: float64(col) * opts.Spacing,
			Z: float64(row) * opts.Spacing,
		})
		ApplyDefinition(instance, def)
		root.AddChild(instance)
		col++
	}

	logging.Info(s.logger, "spawned players",
		slog.Int(logging.FieldCount, len(defs)),
		slog.Int("removed", removed),
		slog.String("root", root.Name),
	)
	return len(defs), nil
}

// instantiate deep copies a prefab tree so instances never share renderer
// overrides or children with the prefab.
func instantiate(src *scenegraph.Node) (*scenegraph.Node, error) {
	dst := &scenegraph.Node{}
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("instantiate %s: %w", src.Name, err)
	}
	return dst, nil
}

// ApplyDefinition binds def to the instance's PlayerVisual and colours the
// body and head renderers with the team's primary and secondary colours.
// Without a team only the binding is recorded.
func ApplyDefinition(instance *scenegraph.Node, def *players.Player) {
	visual := instance.Visual
	if visual == nil {
		return
	}
	visual.Definition = ""
	if def == nil {
		return
	}
	visual.Definition = def.GUID
	if def.Team == nil {
		return
	}
	if body := instance.Child(visual.Body); body != nil && body.Renderer != nil {
		body.Renderer.SetOverride(PropBaseColor, def.Team.PrimaryColor)
		body.Renderer.SetOverride(PropColor, def.Team.PrimaryColor)
	}
	if head := instance.Child(visual.Head); head != nil && head.Renderer != nil {
		head.Renderer.SetOverride(PropBaseColor, def.Team.SecondaryColor)
		head.Renderer.SetOverride(PropColor, def.Team.SecondaryColor)
	}
}
