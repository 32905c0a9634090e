// Package assetdb tracks team, player and prefab records on top of a raw
// store backend. Records are identified by a GUID assigned on creation and
// addressed by their canonical path; loading the same path twice within a
// session yields the same handle.
package assetdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/preston-bernstein/football-asset-generator/internal/domain/players"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/prefabs"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/teams"
	"github.com/preston-bernstein/football-asset-generator/internal/identity"
	"github.com/preston-bernstein/football-asset-generator/internal/logging"
	"github.com/preston-bernstein/football-asset-generator/internal/store"
)

// Database is a session over a store backend. It is not safe for concurrent
// use; callers serialise access.
type Database struct {
	backend store.Backend
	logger  *slog.Logger

	handles map[string]any
	paths   map[any]string
	byGUID  map[string]any
	dirty   map[string]struct{}
}

// Open starts a session over backend.
func Open(backend store.Backend, logger *slog.Logger) *Database {
	return &Database{
		backend: backend,
		logger:  logger,
		handles: make(map[string]any),
		paths:   make(map[any]string),
		byGUID:  make(map[string]any),
		dirty:   make(map[string]struct{}),
	}
}

// Backend exposes the underlying store.
func (d *Database) Backend() store.Backend {
	return d.backend
}

// Close releases the backend.
func (d *Database) Close() error {
	if d == nil || d.backend == nil {
		return nil
	}
	return d.backend.Close()
}

// LoadTeam returns the team at path, or nil when none exists.
func (d *Database) LoadTeam(ctx context.Context, path string) (*teams.Team, error) {
	rec, err := d.load(ctx, path)
	if err != nil || rec == nil {
		return nil, err
	}
	t, ok := rec.(*teams.Team)
	if !ok {
		return nil, &KindMismatchError{Path: path, Want: KindTeam, Got: kindOf(rec)}
	}
	return t, nil
}

// LoadPlayer returns the player at path, or nil when none exists. Team and
// prefab references are resolved to live handles.
func (d *Database) LoadPlayer(ctx context.Context, path string) (*players.Player, error) {
	rec, err := d.load(ctx, path)
	if err != nil || rec == nil {
		return nil, err
	}
	p, ok := rec.(*players.Player)
	if !ok {
		return nil, &KindMismatchError{Path: path, Want: KindPlayer, Got: kindOf(rec)}
	}
	return p, nil
}

// LoadPrefab returns the prefab at path, or nil when none exists.
func (d *Database) LoadPrefab(ctx context.Context, path string) (*prefabs.Prefab, error) {
	rec, err := d.load(ctx, path)
	if err != nil || rec == nil {
		return nil, err
	}
	pf, ok := rec.(*prefabs.Prefab)
	if !ok {
		return nil, &KindMismatchError{Path: path, Want: KindPrefab, Got: kindOf(rec)}
	}
	return pf, nil
}

// CreateTeam writes t at path with a fresh GUID and starts tracking it.
func (d *Database) CreateTeam(ctx context.Context, path string, t *teams.Team) error {
	if t == nil {
		return errors.New("create team: nil record")
	}
	t.GUID = uuid.NewString()
	return d.create(ctx, path, t, t.GUID)
}

// CreatePlayer writes p at path with a fresh GUID and starts tracking it.
func (d *Database) CreatePlayer(ctx context.Context, path string, p *players.Player) error {
	if p == nil {
		return errors.New("create player: nil record")
	}
	p.GUID = uuid.NewString()
	return d.create(ctx, path, p, p.GUID)
}

// CreatePrefab writes pf at path with a fresh GUID and starts tracking it.
func (d *Database) CreatePrefab(ctx context.Context, path string, pf *prefabs.Prefab) error {
	if pf == nil {
		return errors.New("create prefab: nil record")
	}
	pf.GUID = uuid.NewString()
	return d.create(ctx, path, pf, pf.GUID)
}

// SetDirty marks a tracked record for the next SaveAssets.
func (d *Database) SetDirty(rec any) error {
	path, ok := d.paths[rec]
	if !ok {
		return ErrUntracked
	}
	d.dirty[path] = struct{}{}
	return nil
}

// IsDirty reports whether the record at path has unsaved changes.
func (d *Database) IsDirty(path string) bool {
	_, ok := d.dirty[identity.NormalizePath(path)]
	return ok
}

// PathOf returns the path a tracked record lives at.
func (d *Database) PathOf(rec any) (string, bool) {
	path, ok := d.paths[rec]
	return path, ok
}

// SaveAssets writes every dirty record in path order and returns how many
// were written. Records that fail stay dirty.
func (d *Database) SaveAssets(ctx context.Context) (int, error) {
	pending := make([]string, 0, len(d.dirty))
	for path := range d.dirty {
		pending = append(pending, path)
	}
	sort.Strings(pending)

	written := 0
	for _, path := range pending {
		if err := d.write(ctx, path, d.handles[path]); err != nil {
			return written, fmt.Errorf("save %s: %w", path, err)
		}
		delete(d.dirty, path)
		written++
	}
	if written > 0 {
		logging.Debug(d.logger, "saved assets", slog.Int(logging.FieldCount, written))
	}
	return written, nil
}

// EnsureFolder creates every missing folder along path, one segment at a
// time starting from Assets.
func (d *Database) EnsureFolder(ctx context.Context, path string) error {
	path = identity.NormalizePath(path)
	if !identity.IsAssetsPath(path) {
		return fmt.Errorf("ensure folder %q: %w", path, ErrOutsideAssets)
	}

	parent := ""
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		next := store.JoinFolder(parent, segment)
		exists, err := d.backend.FolderExists(ctx, next)
		if err != nil {
			return fmt.Errorf("check folder %s: %w", next, err)
		}
		if !exists {
			if err := d.backend.CreateFolder(ctx, parent, segment); err != nil {
				return fmt.Errorf("create folder %s: %w", next, err)
			}
			logging.Debug(d.logger, "created folder", slog.String(logging.FieldPath, next))
		}
		parent = next
	}
	return nil
}

// FindPlayers returns every player record stored under scope, in path order.
func (d *Database) FindPlayers(ctx context.Context, scope string) ([]*players.Player, error) {
	paths, err := d.backend.List(ctx, identity.NormalizePath(scope))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", scope, err)
	}
	out := make([]*players.Player, 0, len(paths))
	for _, path := range paths {
		rec, err := d.load(ctx, path)
		if err != nil {
			return nil, err
		}
		if p, ok := rec.(*players.Player); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// FindTeams returns every team record stored under scope, in path order.
func (d *Database) FindTeams(ctx context.Context, scope string) ([]*teams.Team, error) {
	paths, err := d.backend.List(ctx, identity.NormalizePath(scope))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", scope, err)
	}
	out := make([]*teams.Team, 0, len(paths))
	for _, path := range paths {
		rec, err := d.load(ctx, path)
		if err != nil {
			return nil, err
		}
		if t, ok := rec.(*teams.Team); ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (d *Database) create(ctx context.Context, path string, rec any, guid string) error {
	path = identity.NormalizePath(path)
	if path == "" {
		return errors.New("create record: empty path")
	}
	if err := d.write(ctx, path, rec); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	d.track(path, guid, rec)
	delete(d.dirty, path)
	return nil
}

func (d *Database) track(path, guid string, rec any) {
	if old, ok := d.handles[path]; ok && old != rec {
		delete(d.paths, old)
	}
	d.handles[path] = rec
	d.paths[rec] = path
	if guid != "" {
		d.byGUID[guid] = rec
	}
}

// untrack forgets a handle that failed to load completely.
func (d *Database) untrack(path, guid string, rec any) {
	if d.handles[path] == rec {
		delete(d.handles, path)
	}
	delete(d.paths, rec)
	if guid != "" && d.byGUID[guid] == rec {
		delete(d.byGUID, guid)
	}
}

func (d *Database) load(ctx context.Context, path string) (any, error) {
	path = identity.NormalizePath(path)
	if rec, ok := d.handles[path]; ok {
		return rec, nil
	}

	data, err := d.backend.Read(ctx, path)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	env, err := decodeEnvelope(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var rec any
	switch env.Kind {
	case KindTeam:
		t, err := decodeTeam(env)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		rec = t
	case KindPrefab:
		var doc prefabDoc
		if err := env.Body.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode prefab: %w", path, err)
		}
		rec = &prefabs.Prefab{GUID: env.GUID, Name: doc.Name, Root: doc.Root}
	case KindPlayer:
		var doc playerDoc
		if err := env.Body.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode player: %w", path, err)
		}
		p := &players.Player{
			GUID:                  env.GUID,
			PlayerID:              doc.PlayerID,
			PlayerName:            doc.PlayerName,
			JerseyNumber:          doc.JerseyNumber,
			Role:                  doc.Role,
			InterceptRadiusMeters: doc.InterceptRadiusMeters,
		}
		// Track before resolving so a reference scan never reloads this path.
		d.track(path, env.GUID, p)
		if p.Team, err = d.resolveTeam(ctx, doc.Team); err != nil {
			d.untrack(path, env.GUID, p)
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if p.VisualPrefab, err = d.resolvePrefab(ctx, doc.VisualPrefab); err != nil {
			d.untrack(path, env.GUID, p)
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%s: unknown record kind %q", path, env.Kind)
	}
	d.track(path, env.GUID, rec)
	return rec, nil
}

func (d *Database) resolveTeam(ctx context.Context, r *ref) (*teams.Team, error) {
	rec, err := d.resolve(ctx, r)
	if err != nil || rec == nil {
		return nil, err
	}
	t, _ := rec.(*teams.Team)
	return t, nil
}

func (d *Database) resolvePrefab(ctx context.Context, r *ref) (*prefabs.Prefab, error) {
	rec, err := d.resolve(ctx, r)
	if err != nil || rec == nil {
		return nil, err
	}
	pf, _ := rec.(*prefabs.Prefab)
	return pf, nil
}

// resolve finds the record a reference points at: by GUID index, then the
// path hint, then a scan of every stored record. Dangling references resolve
// to nil.
func (d *Database) resolve(ctx context.Context, r *ref) (any, error) {
	if r == nil || r.GUID == "" {
		return nil, nil
	}
	if rec, ok := d.byGUID[r.GUID]; ok {
		return rec, nil
	}
	if r.Path != "" {
		rec, err := d.load(ctx, r.Path)
		if err != nil {
			return nil, err
		}
		if rec != nil && guidOf(rec) == r.GUID {
			return rec, nil
		}
	}

	paths, err := d.backend.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("scan for %s: %w", r.GUID, err)
	}
	for _, path := range paths {
		if _, seen := d.handles[path]; seen {
			continue
		}
		if _, err := d.load(ctx, path); err != nil {
			return nil, err
		}
		if rec, ok := d.byGUID[r.GUID]; ok {
			return rec, nil
		}
	}
	logging.Warn(d.logger, "dangling record reference",
		slog.String(logging.FieldGUID, r.GUID),
		slog.String(logging.FieldPath, r.Path),
	)
	return nil, nil
}

func (d *Database) write(ctx context.Context, path string, rec any) error {
	var (
		data []byte
		err  error
	)
	switch v := rec.(type) {
	case *teams.Team:
		data, err = encodeEnvelope(v.GUID, KindTeam, v)
	case *players.Player:
		data, err = encodeEnvelope(v.GUID, KindPlayer, playerDoc{
			PlayerID:              v.PlayerID,
			PlayerName:            v.PlayerName,
			JerseyNumber:          v.JerseyNumber,
			Role:                  v.Role,
			InterceptRadiusMeters: v.InterceptRadiusMeters,
			Team:                  d.refTo(v.Team),
			VisualPrefab:          d.refTo(v.VisualPrefab),
		})
	case *prefabs.Prefab:
		data, err = encodeEnvelope(v.GUID, KindPrefab, prefabDoc{Name: v.Name, Root: v.Root})
	default:
		return fmt.Errorf("unsupported record type %T", rec)
	}
	if err != nil {
		return err
	}
	return d.backend.Write(ctx, path, data)
}

func (d *Database) refTo(rec any) *ref {
	switch v := rec.(type) {
	case *teams.Team:
		if v == nil {
			return nil
		}
	case *prefabs.Prefab:
		if v == nil {
			return nil
		}
	}
	guid := guidOf(rec)
	if guid == "" {
		return nil
	}
	return &ref{GUID: guid, Path: d.paths[rec]}
}

func guidOf(rec any) string {
	switch v := rec.(type) {
	case *teams.Team:
		return v.GUID
	case *players.Player:
		return v.GUID
	case *prefabs.Prefab:
		return v.GUID
	}
	return ""
}

func kindOf(rec any) string {
	switch rec.(type) {
	case *teams.Team:
		return KindTeam
	case *players.Player:
		return KindPlayer
	case *prefabs.Prefab:
		return KindPrefab
	}
	return fmt.Sprintf("%T", rec)
}
