package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pug-tracker/internal/service"
)

var standingsSeason int

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Team standings and competition champion",
	Args:  cobra.NoArgs,
	RunE:  runStandings,
}

func init() {
	standingsCmd.Flags().IntVar(&standingsSeason, "season", 0, "season id (0 = all matches)")
}

func runStandings(cmd *cobra.Command, args []string) error {
	return runApp(func(svc *service.StandingsService) error {
		ctx := context.Background()

		var seasonID *int
		if standingsSeason > 0 {
			seasonID = &standingsSeason
		}

		table, err := svc.Standings(ctx, seasonID)
		if err != nil {
			return err
		}
		if len(table) == 0 {
			fmt.Fprintln(os.Stdout, "No decided matches yet.")
			return nil
		}
		renderStandings(os.Stdout, table)

		champ, err := svc.Champion(ctx, seasonID)
		if err != nil {
			return err
		}
		if champ != nil {
			fmt.Fprintf(os.Stdout, "\nChampion: %s (%d-%d over %d matches)\n",
				champ.TeamName, champ.MatchWins, champ.MatchLosses, champ.TotalMatches)
		}
		return nil
	})
}
