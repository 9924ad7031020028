package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pug-tracker/internal/service"
)

var (
	leadersWeekly bool
	leadersSeason int
)

var leadersCmd = &cobra.Command{
	Use:   "leaders",
	Short: "Player leaderboard, weekly best or season roster",
	Args:  cobra.NoArgs,
	RunE:  runLeaders,
}

func init() {
	leadersCmd.Flags().BoolVar(&leadersWeekly, "weekly", false, "show the last week's best-rated player")
	leadersCmd.Flags().IntVar(&leadersSeason, "season", 0, "pool a season's matches into a roster")
}

func runLeaders(cmd *cobra.Command, args []string) error {
	return runApp(func(svc *service.LeaderboardService) error {
		ctx := context.Background()

		switch {
		case leadersWeekly:
			leader, err := svc.WeeklyLeader(ctx)
			if err != nil {
				return err
			}
			if leader == nil {
				fmt.Fprintln(os.Stdout, "Nobody qualifies this week (minimum 2 maps).")
				return nil
			}
			fmt.Fprintf(os.Stdout, "Player of the week: %s (%.2f rating over %d maps)\n",
				leader.Name, leader.AverageRating, leader.TotalMaps)
			return nil

		case leadersSeason > 0:
			roster, err := svc.SeasonRoster(ctx, leadersSeason)
			if err != nil {
				return err
			}
			renderPlayers(os.Stdout, roster)
			return nil

		default:
			board, err := svc.SeasonLeaderboard(ctx)
			if err != nil {
				return err
			}
			renderPlayers(os.Stdout, board)
			return nil
		}
	})
}
