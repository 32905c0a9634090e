// Package roster imports teams and players from a JSON or YAML roster into
// the asset database.
package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/football-asset-generator/internal/domain/color"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/players"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/prefabs"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/teams"
	"github.com/preston-bernstein/football-asset-generator/internal/logging"
	"github.com/preston-bernstein/football-asset-generator/internal/metrics"
	"github.com/preston-bernstein/football-asset-generator/internal/reconcile"
	"github.com/preston-bernstein/football-asset-generator/internal/telemetry"
)

const operation = "import"

// Skip reasons reported to metrics.
const (
	skipBlankTeamID   = "blank_team_id"
	skipBlankPlayerID = "blank_player_id"
	skipUnknownTeam   = "unknown_team"
	skipBadColor      = "bad_color"
)

// Options tune an import run.
type Options struct {
	// EnsurePrefab creates or loads the shared prefab and assigns it to
	// every imported player.
	EnsurePrefab bool
	PrefabName   string
	// DefaultRadius replaces intercept radii that are not strictly positive.
	DefaultRadius float64
}

// Result summarises an import.
type Result struct {
	TeamsWritten   int      `json:"teamsWritten"`
	PlayersWritten int      `json:"playersWritten"`
	Warnings       []string `json:"warnings"`
}

// Importer runs roster imports through a reconciler.
type Importer struct {
	reconciler *reconcile.Reconciler
	opts       Options
	metrics    *metrics.Recorder
	logger     *slog.Logger
}

// NewImporter builds an Importer. metrics and logger may be nil.
func NewImporter(r *reconcile.Reconciler, opts Options, rec *metrics.Recorder, logger *slog.Logger) *Importer {
	if opts.DefaultRadius <= 0 {
		opts.DefaultRadius = players.DefaultInterceptRadius
	}
	return &Importer{reconciler: r, opts: opts, metrics: rec, logger: logger}
}

// Import parses data and reconciles its teams, then its players. Nothing is
// written when the document fails to parse.
func (i *Importer) Import(ctx context.Context, data []byte, format Format) (res Result, err error) {
	start := time.Now()
	ctx, span := telemetry.Tracer("roster").Start(ctx, "import")
	defer func() {
		telemetry.End(span, err)
		i.metrics.RecordBatch(operation, time.Since(start), err)
	}()

	doc, err := Parse(data, format)
	if err != nil {
		return Result{Warnings: []string{}}, err
	}
	return i.apply(ctx, doc)
}

func (i *Importer) apply(ctx context.Context, doc Document) (Result, error) {
	res := Result{Warnings: []string{}}
	counts := reconcile.Counts{}
	fail := func(err error) (Result, error) {
		res.TeamsWritten, res.PlayersWritten = counts.Teams, counts.Players
		return res, i.reconciler.Abort(ctx, operation, counts, err)
	}

	if err := i.reconciler.EnsureBaseFolders(ctx); err != nil {
		return res, err
	}

	var prefab *prefabs.Prefab
	if i.opts.EnsurePrefab {
		pf, outcome, err := i.reconciler.EnsurePrefab(ctx, i.opts.PrefabName)
		if err != nil {
			return fail(err)
		}
		prefab = pf
		if outcome == reconcile.OutcomeCreated {
			counts.Prefabs++
		}
	}

	teamMap := make(map[string]*teams.Team, len(doc.Teams))
	for idx, entry := range doc.Teams {
		if strings.TrimSpace(entry.TeamID) == "" {
			res.Warnings = append(res.Warnings, i.warn(skipBlankTeamID, fmt.Sprintf("team #%d has a blank teamId. Skipped.", idx)))
			continue
		}
		in := reconcile.TeamInput{
			TeamID:    entry.TeamID,
			TeamName:  entry.TeamName,
			ShortCode: entry.ShortCode,
			Logo:      entry.Logo,
		}
		in.PrimaryColor = i.parseColor(&res, entry.TeamID, "primaryColor", entry.PrimaryColor)
		in.SecondaryColor = i.parseColor(&res, entry.TeamID, "secondaryColor", entry.SecondaryColor)

		team, _, err := i.reconciler.ReconcileTeam(ctx, in)
		if err != nil {
			return fail(err)
		}
		teamMap[entry.TeamID] = team
		counts.Teams++
	}

	for idx, entry := range doc.Players {
		if strings.TrimSpace(entry.PlayerID) == "" || strings.TrimSpace(entry.TeamID) == "" {
			res.Warnings = append(res.Warnings, i.warn(skipBlankPlayerID,
				fmt.Sprintf("player #%d is missing playerId or teamId. Skipped.", idx)))
			continue
		}
		team, ok := teamMap[entry.TeamID]
		if !ok || team == nil {
			res.Warnings = append(res.Warnings, i.warn(skipUnknownTeam,
				fmt.Sprintf("player %s references unknown teamId '%s'. Skipped.", entry.PlayerID, entry.TeamID)))
			continue
		}

		radius := entry.InterceptRadiusMeters
		if radius <= 0 {
			radius = i.opts.DefaultRadius
		}
		_, _, err := i.reconciler.ReconcilePlayer(ctx, reconcile.PlayerInput{
			PlayerID:        entry.PlayerID,
			PlayerName:      entry.PlayerName,
			JerseyNumber:    entry.JerseyNumber,
			Role:            players.ParseRole(entry.Role),
			InterceptRadius: radius,
			Team:            team,
			Prefab:          prefab,
		})
		if err != nil {
			return fail(err)
		}
		counts.Players++
	}

	if _, err := i.reconciler.Save(ctx); err != nil {
		return fail(err)
	}
	res.TeamsWritten = counts.Teams
	res.PlayersWritten = counts.Players
	logging.Info(i.logger, "roster imported",
		slog.Int("teams", res.TeamsWritten),
		slog.Int("players", res.PlayersWritten),
		slog.Int("warnings", len(res.Warnings)),
	)
	return res, nil
}

func (i *Importer) parseColor(res *Result, teamID, field, raw string) *color.Color {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	c, err := color.ParseHex(raw)
	if err != nil {
		res.Warnings = append(res.Warnings, i.warn(skipBadColor,
			fmt.Sprintf("team %s has an invalid %s %q. Ignored.", teamID, field, raw)))
		return nil
	}
	return &c
}

func (i *Importer) warn(reason, msg string) string {
	i.metrics.RecordSkipped(reason)
	logging.Warn(i.logger, msg, slog.String(logging.FieldOperation, operation))
	return msg
}
