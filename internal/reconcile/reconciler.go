// Package reconcile creates or updates team, player and prefab records at
// their derived paths. Running the same input twice leaves one record per key.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/football-asset-generator/internal/assetdb"
	"github.com/preston-bernstein/football-asset-generator/internal/config"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/color"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/players"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/prefabs"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/teams"
	"github.com/preston-bernstein/football-asset-generator/internal/identity"
	"github.com/preston-bernstein/football-asset-generator/internal/logging"
	"github.com/preston-bernstein/football-asset-generator/internal/metrics"
)

// Outcome says whether a reconcile created a record or updated one in place.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
)

// Metric kinds.
const (
	kindTeam   = "team"
	kindPlayer = "player"
	kindPrefab = "prefab"
)

// TeamInput carries the fields a caller sets on a team. Nil colours leave
// the stored value (or the default on create) untouched.
type TeamInput struct {
	TeamID         string
	TeamName       string
	ShortCode      string
	PrimaryColor   *color.Color
	SecondaryColor *color.Color
	Logo           string
}

// PlayerInput carries the fields a caller sets on a player.
type PlayerInput struct {
	PlayerID        string
	PlayerName      string
	JerseyNumber    int
	Role            players.Role
	InterceptRadius float64
	Team            *teams.Team
	Prefab          *prefabs.Prefab
}

// Reconciler writes records through an asset database session.
type Reconciler struct {
	db      *assetdb.Database
	folders config.FolderConfig
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// New builds a Reconciler. metrics and logger may be nil.
func New(db *assetdb.Database, folders config.FolderConfig, rec *metrics.Recorder, logger *slog.Logger) *Reconciler {
	return &Reconciler{db: db, folders: folders, metrics: rec, logger: logger}
}

// DB returns the session the reconciler writes through.
func (r *Reconciler) DB() *assetdb.Database {
	return r.db
}

// Folders returns the configured base folders.
func (r *Reconciler) Folders() config.FolderConfig {
	return r.folders
}

// EnsureBaseFolders creates the teams, players and prefabs base folders.
func (r *Reconciler) EnsureBaseFolders(ctx context.Context) error {
	for _, folder := range []string{r.folders.Teams, r.folders.Players, r.folders.Prefabs} {
		if err := r.db.EnsureFolder(ctx, folder); err != nil {
			return err
		}
	}
	return nil
}

// ReconcileTeam creates or updates the team keyed by TeamPath(teamId, teamName).
func (r *Reconciler) ReconcileTeam(ctx context.Context, in TeamInput) (*teams.Team, Outcome, error) {
	if strings.TrimSpace(in.TeamID) == "" {
		return nil, "", fmt.Errorf("reconcile team: empty teamId")
	}
	folder := identity.TeamFolder(in.TeamID, in.TeamName)
	if err := r.db.EnsureFolder(ctx, joinPath(r.folders.Teams, folder)); err != nil {
		return nil, "", err
	}

	path := identity.TeamPath(r.folders.Teams, in.TeamID, in.TeamName)
	team, err := r.db.LoadTeam(ctx, path)
	if err != nil {
		return nil, "", err
	}

	outcome := OutcomeUpdated
	if team == nil {
		team = teams.New()
		outcome = OutcomeCreated
	}
	team.TeamID = in.TeamID
	team.TeamName = in.TeamName
	team.ShortCode = in.ShortCode
	if in.PrimaryColor != nil {
		team.PrimaryColor = *in.PrimaryColor
	}
	if in.SecondaryColor != nil {
		team.SecondaryColor = *in.SecondaryColor
	}
	if in.Logo != "" {
		team.Logo = in.Logo
	}

	if err := r.persist(ctx, path, team, outcome); err != nil {
		return nil, "", fmt.Errorf("reconcile team %s: %w", in.TeamID, err)
	}
	r.report(kindTeam, outcome, path, slog.String(logging.FieldTeamID, in.TeamID))
	return team, outcome, nil
}

// ReconcilePlayer creates or updates the player keyed by PlayerPath under the
// owning team's folder.
func (r *Reconciler) ReconcilePlayer(ctx context.Context, in PlayerInput) (*players.Player, Outcome, error) {
	if strings.TrimSpace(in.PlayerID) == "" {
		return nil, "", fmt.Errorf("reconcile player: empty playerId")
	}
	if in.Team == nil {
		return nil, "", fmt.Errorf("reconcile player %s: nil team", in.PlayerID)
	}
	folder := identity.TeamFolder(in.Team.TeamID, in.Team.TeamName)
	if err := r.db.EnsureFolder(ctx, joinPath(r.folders.Players, folder)); err != nil {
		return nil, "", err
	}

	path := identity.PlayerPath(r.folders.Players, in.Team.TeamID, in.Team.TeamName, in.PlayerID)
	player, err := r.db.LoadPlayer(ctx, path)
	if err != nil {
		return nil, "", err
	}

	outcome := OutcomeUpdated
	if player == nil {
		player = players.New()
		outcome = OutcomeCreated
	}
	player.PlayerID = in.PlayerID
	player.PlayerName = in.PlayerName
	if strings.TrimSpace(player.PlayerName) == "" {
		player.PlayerName = in.PlayerID
	}
	player.JerseyNumber = players.ClampJersey(in.JerseyNumber)
	player.Role = in.Role
	if player.Role == "" {
		player.Role = players.RoleForward
	}
	player.InterceptRadiusMeters = max(0, in.InterceptRadius)
	player.Team = in.Team
	if in.Prefab != nil {
		player.VisualPrefab = in.Prefab
	}

	if err := r.persist(ctx, path, player, outcome); err != nil {
		return nil, "", fmt.Errorf("reconcile player %s: %w", in.PlayerID, err)
	}
	r.report(kindPlayer, outcome, path,
		slog.String(logging.FieldPlayerID, in.PlayerID),
		slog.String(logging.FieldTeamID, in.Team.TeamID),
	)
	return player, outcome, nil
}

// EnsurePrefab returns the prefab at PrefabPath(name), building and creating
// the snowman when none exists. An existing prefab is never rebuilt.
func (r *Reconciler) EnsurePrefab(ctx context.Context, name string) (*prefabs.Prefab, Outcome, error) {
	if err := r.db.EnsureFolder(ctx, r.folders.Prefabs); err != nil {
		return nil, "", err
	}
	path := identity.PrefabPath(r.folders.Prefabs, name)
	existing, err := r.db.LoadPrefab(ctx, path)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return existing, OutcomeUpdated, nil
	}

	prefab := prefabs.NewSnowman()
	if err := r.db.CreatePrefab(ctx, path, prefab); err != nil {
		return nil, "", fmt.Errorf("create prefab %s: %w", name, err)
	}
	r.report(kindPrefab, OutcomeCreated, path)
	return prefab, OutcomeCreated, nil
}

// Save flushes every dirty record.
func (r *Reconciler) Save(ctx context.Context) (int, error) {
	return r.db.SaveAssets(ctx)
}

// Abort flushes records touched before cause and wraps it in a BatchError.
func (r *Reconciler) Abort(ctx context.Context, operation string, counts Counts, cause error) error {
	if _, err := r.db.SaveAssets(ctx); err != nil {
		logging.Error(r.logger, "flush after failed batch", err, slog.String(logging.FieldOperation, operation))
	}
	return &BatchError{Operation: operation, Counts: counts, Err: cause}
}

func (r *Reconciler) persist(ctx context.Context, path string, rec any, outcome Outcome) error {
	switch v := rec.(type) {
	case *teams.Team:
		if outcome == OutcomeCreated {
			return r.db.CreateTeam(ctx, path, v)
		}
	case *players.Player:
		if outcome == OutcomeCreated {
			return r.db.CreatePlayer(ctx, path, v)
		}
	}
	return r.db.SetDirty(rec)
}

func (r *Reconciler) report(kind string, outcome Outcome, path string, attrs ...any) {
	r.metrics.RecordReconcile(kind, string(outcome))
	args := append([]any{
		slog.String(logging.FieldKind, kind),
		slog.String(logging.FieldOutcome, string(outcome)),
		slog.String(logging.FieldPath, path),
	}, attrs...)
	logging.Debug(r.logger, "reconciled record", args...)
}

func joinPath(base, folder string) string {
	return identity.NormalizePath(base) + "/" + folder
}
