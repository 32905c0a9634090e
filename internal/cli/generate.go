package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/football-asset-generator/internal/assetdb"
	"github.com/preston-bernstein/football-asset-generator/internal/generator"
	"github.com/preston-bernstein/football-asset-generator/internal/reconcile"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		yes       bool
		spawn     bool
		idsFile   string
		homeCount int
		awayCount int
		noPrefab  bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create or update the home and away teams and their players",
		Long: "Reconciles two team records, one player record per squad slot and the shared\n" +
			"placeholder prefab. Settings come from the environment; flags override them.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, true, func(ctx context.Context) error {
				gcfg := a.cfg.Generator
				if cmd.Flags().Changed("home-count") {
					gcfg.HomeCount = homeCount
				}
				if cmd.Flags().Changed("away-count") {
					gcfg.AwayCount = awayCount
				}
				if idsFile != "" {
					gcfg.AutoIDs = false
					gcfg.CustomIDFile = projectPath(a.cfg.Storage.ProjectRoot, idsFile)
				}
				if noPrefab {
					gcfg.GeneratePrefab = false
				}

				if err := generator.Validate(a.cfg.Folders, gcfg); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !yes {
					prompt := fmt.Sprintf("Create/update:\n- 2 team records\n- %d player records\n", gcfg.HomeCount+gcfg.AwayCount)
					if gcfg.GeneratePrefab {
						prompt += fmt.Sprintf("- %s prefab\n", gcfg.PrefabName)
					}
					ok, err := confirm(cmd.InOrStdin(), out, prompt+"\nContinue? [y/N]: ")
					if err != nil {
						return err
					}
					if !ok {
						_, _ = fmt.Fprintln(out, "Cancelled.")
						return nil
					}
				}

				backend, err := openBackend(a.cfg.Storage)
				if err != nil {
					return err
				}
				defer backend.Close()

				r := reconcile.New(assetdb.Open(backend, a.logger), a.cfg.Folders, a.metrics, a.logger)
				res, err := generator.New(r, a.metrics, a.logger).Generate(ctx, gcfg)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "Generated %d teams and %d players", res.TeamsWritten, res.PlayersWritten)
				if res.PrefabCreated {
					_, _ = fmt.Fprintf(out, " (created %s)", gcfg.PrefabName)
				}
				_, _ = fmt.Fprintln(out)

				if spawn || a.cfg.Spawn.Enabled {
					return a.spawnPlayers(ctx, out, backend)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&spawn, "spawn", false, "Spawn players into the scene afterwards (also AUTO_SPAWN)")
	cmd.Flags().StringVar(&idsFile, "ids-file", "", "Take player ids from this file, one per line, instead of generating them")
	cmd.Flags().IntVar(&homeCount, "home-count", 0, "Home squad size (overrides HOME_COUNT)")
	cmd.Flags().IntVar(&awayCount, "away-count", 0, "Away squad size (overrides AWAY_COUNT)")
	cmd.Flags().BoolVar(&noPrefab, "no-prefab", false, "Do not create or assign the placeholder prefab")
	return cmd
}

// confirm prints prompt and reports whether the reply starts with y.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	_, _ = fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
