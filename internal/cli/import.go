package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/football-asset-generator/internal/assetdb"
	"github.com/preston-bernstein/football-asset-generator/internal/reconcile"
	"github.com/preston-bernstein/football-asset-generator/internal/roster"
)

func (a *app) importCmd() *cobra.Command {
	var spawn bool
	cmd := &cobra.Command{
		Use:   "import <roster>",
		Short: "Create or update teams and players from a JSON or YAML roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, true, func(ctx context.Context) error {
				path := args[0]
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read roster: %w", err)
				}

				backend, err := openBackend(a.cfg.Storage)
				if err != nil {
					return err
				}
				defer backend.Close()

				r := reconcile.New(assetdb.Open(backend, a.logger), a.cfg.Folders, a.metrics, a.logger)
				imp := roster.NewImporter(r, roster.Options{
					EnsurePrefab:  a.cfg.Import.EnsurePrefab,
					PrefabName:    a.cfg.Generator.PrefabName,
					DefaultRadius: a.cfg.Generator.InterceptRadius,
				}, a.metrics, a.logger)

				out := cmd.OutOrStdout()
				res, err := imp.Import(ctx, data, roster.FormatFromPath(path))
				for _, w := range res.Warnings {
					_, _ = fmt.Fprintf(out, "warning: %s\n", w)
				}
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "Imported %d teams and %d players from %s\n", res.TeamsWritten, res.PlayersWritten, path)

				if spawn || a.cfg.Spawn.Enabled {
					return a.spawnPlayers(ctx, out, backend)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&spawn, "spawn", false, "Spawn players into the scene afterwards (also AUTO_SPAWN)")
	return cmd
}
