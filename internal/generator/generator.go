// Package generator creates the home and away teams, their players and the
// shared prefab from the manual generate settings.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/football-asset-generator/internal/config"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/players"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/prefabs"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/teams"
	"github.com/preston-bernstein/football-asset-generator/internal/logging"
	"github.com/preston-bernstein/football-asset-generator/internal/metrics"
	"github.com/preston-bernstein/football-asset-generator/internal/reconcile"
	"github.com/preston-bernstein/football-asset-generator/internal/telemetry"
)

const operation = "generate"

// Result summarises a generate run.
type Result struct {
	TeamsWritten   int  `json:"teamsWritten"`
	PlayersWritten int  `json:"playersWritten"`
	PrefabCreated  bool `json:"prefabCreated"`
}

// Generator runs manual generation through a reconciler.
type Generator struct {
	reconciler *reconcile.Reconciler
	metrics    *metrics.Recorder
	logger     *slog.Logger
}

// New builds a Generator. metrics and logger may be nil.
func New(r *reconcile.Reconciler, rec *metrics.Recorder, logger *slog.Logger) *Generator {
	return &Generator{reconciler: r, metrics: rec, logger: logger}
}

// Generate validates cfg, then reconciles both teams, the optional prefab and
// every player. Re-running with the same settings updates records in place.
func (g *Generator) Generate(ctx context.Context, cfg config.GeneratorConfig) (res Result, err error) {
	start := time.Now()
	ctx, span := telemetry.Tracer("generator").Start(ctx, operation)
	defer func() {
		telemetry.End(span, err)
		g.metrics.RecordBatch(operation, time.Since(start), err)
	}()

	idList, err := resolveIDs(g.reconciler.Folders(), cfg)
	if err != nil {
		return Result{}, err
	}
	if err := g.reconciler.EnsureBaseFolders(ctx); err != nil {
		return Result{}, err
	}

	counts := reconcile.Counts{}
	fail := func(err error) (Result, error) {
		res.TeamsWritten, res.PlayersWritten = counts.Teams, counts.Players
		return res, g.reconciler.Abort(ctx, operation, counts, err)
	}

	sides := []config.TeamConfig{cfg.Home(), cfg.Away()}
	teamRecs := make([]*teams.Team, 0, len(sides))
	for _, side := range sides {
		team, _, err := g.reconciler.ReconcileTeam(ctx, reconcile.TeamInput{
			TeamID:    side.ID,
			TeamName:  side.Name,
			ShortCode: side.ShortCode,
		})
		if err != nil {
			return fail(err)
		}
		teamRecs = append(teamRecs, team)
		counts.Teams++
	}

	var prefab *prefabs.Prefab
	if cfg.GeneratePrefab {
		pf, outcome, err := g.reconciler.EnsurePrefab(ctx, cfg.PrefabName)
		if err != nil {
			return fail(err)
		}
		prefab = pf
		res.PrefabCreated = outcome == reconcile.OutcomeCreated
	}

	next := 0
	for i, side := range sides {
		for n := 0; n < side.Count; n++ {
			role := players.RoleForward
			if n == 0 {
				role = players.RoleGoalkeeper
			}
			_, _, err := g.reconciler.ReconcilePlayer(ctx, reconcile.PlayerInput{
				PlayerID:        idList[next],
				PlayerName:      fmt.Sprintf("%s%d", side.NamePrefix, n+1),
				JerseyNumber:    side.JerseyFrom + n,
				Role:            role,
				InterceptRadius: max(0, cfg.InterceptRadius),
				Team:            teamRecs[i],
				Prefab:          prefab,
			})
			if err != nil {
				return fail(err)
			}
			next++
			counts.Players++
		}
	}

	if _, err := g.reconciler.Save(ctx); err != nil {
		return fail(err)
	}
	res.TeamsWritten, res.PlayersWritten = counts.Teams, counts.Players
	logging.Info(g.logger, "generated records",
		slog.Int("teams", res.TeamsWritten),
		slog.Int("players", res.PlayersWritten),
		slog.Bool("prefab_created", res.PrefabCreated),
	)
	return res, nil
}
