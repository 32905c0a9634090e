package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/football-asset-generator/internal/app/players"
	"github.com/preston-bernstein/football-asset-generator/internal/app/teams"
	"github.com/preston-bernstein/football-asset-generator/internal/assetdb"
	domainplayers "github.com/preston-bernstein/football-asset-generator/internal/domain/players"
	domainteams "github.com/preston-bernstein/football-asset-generator/internal/domain/teams"
	"github.com/preston-bernstein/football-asset-generator/internal/store"
)

func (a *app) listCmd() *cobra.Command {
	var (
		teamID string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:       "list teams|players",
		Short:     "List stored team or player records",
		ValidArgs: []string{"teams", "players"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, false, func(ctx context.Context) error {
				backend, err := openBackend(a.cfg.Storage)
				if err != nil {
					return err
				}
				defer backend.Close()

				out := cmd.OutOrStdout()
				if args[0] == "teams" {
					all, err := teams.NewService(teamStore(backend, a), a.cfg.Folders.Teams).Teams(ctx)
					if err != nil {
						return err
					}
					if asJSON {
						return writeJSON(out, all)
					}
					return writeTeams(out, all)
				}
				all, err := players.NewService(playerStore(backend, a), a.cfg.Folders.Players).Players(ctx, teamID)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(out, all)
				}
				return writePlayers(out, all)
			})
		},
	}
	cmd.Flags().StringVar(&teamID, "team", "", "Only list players of this team id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func teamStore(backend store.Backend, a *app) teams.Opener {
	return func() teams.Store { return assetdb.Open(backend, a.logger) }
}

func playerStore(backend store.Backend, a *app) players.Opener {
	return func() players.Store { return assetdb.Open(backend, a.logger) }
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTeams(out io.Writer, all []domainteams.Team) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TEAM ID\tNAME\tSHORT\tPRIMARY\tSECONDARY")
	for _, t := range all {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.TeamID, t.TeamName, t.ShortCode, t.PrimaryColor, t.SecondaryColor)
	}
	return tw.Flush()
}

func writePlayers(out io.Writer, all []*domainplayers.Player) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TEAM\tJERSEY\tPLAYER ID\tNAME\tROLE\tRADIUS")
	for _, p := range all {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			p.TeamName(), p.JerseyNumber, p.PlayerID, p.PlayerName, p.Role,
			strconv.FormatFloat(p.InterceptRadiusMeters, 'f', -1, 64))
	}
	return tw.Flush()
}
