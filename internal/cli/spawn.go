package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/football-asset-generator/internal/assetdb"
	"github.com/preston-bernstein/football-asset-generator/internal/domain/scenegraph"
	"github.com/preston-bernstein/football-asset-generator/internal/scene"
	"github.com/preston-bernstein/football-asset-generator/internal/store"
)

func (a *app) spawnCmd() *cobra.Command {
	var scenePath, rootName string
	cmd := &cobra.Command{
		Use:   "spawn",
		Short: "Place every stored player into the scene document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, true, func(ctx context.Context) error {
				if scenePath != "" {
					a.cfg.Spawn.ScenePath = scenePath
				}
				if rootName != "" {
					a.cfg.Spawn.RootName = rootName
				}
				backend, err := openBackend(a.cfg.Storage)
				if err != nil {
					return err
				}
				defer backend.Close()
				return a.spawnPlayers(ctx, cmd.OutOrStdout(), backend)
			})
		},
	}
	cmd.Flags().StringVar(&scenePath, "scene", "", "Scene document to write (overrides SCENE_PATH)")
	cmd.Flags().StringVar(&rootName, "root", "", "Runtime root node name (overrides RUNTIME_ROOT_NAME)")
	return cmd
}

// spawnPlayers loads the scene, respawns every stored player under the
// runtime root and writes the scene back.
func (a *app) spawnPlayers(ctx context.Context, out io.Writer, backend store.Backend) error {
	defs, err := assetdb.Open(backend, a.logger).FindPlayers(ctx, a.cfg.Folders.Players)
	if err != nil {
		return err
	}

	path := projectPath(a.cfg.Storage.ProjectRoot, a.cfg.Spawn.ScenePath)
	doc, err := scene.Load(path)
	if err != nil {
		return err
	}
	root := doc.Root(a.cfg.Spawn.RootName)

	x, y, z := a.cfg.Spawn.OriginXYZ()
	opts := scene.Options{Origin: scenegraph.Vec3{X: x, Y: y, Z: z}, Spacing: a.cfg.Spawn.Spacing}
	n, err := scene.NewSpawner(a.metrics, a.logger).Spawn(ctx, root, defs, opts)
	if err != nil {
		return err
	}
	if err := scene.Save(path, doc); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Spawned %d players under %s in %s\n", n, root.Name, path)
	return nil
}
