package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pug-tracker/internal/domain"
	"pug-tracker/internal/service"
)

var playerCmd = &cobra.Command{
	Use:   "player <steamid>",
	Short: "One player's season stat line",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func runPlayer(cmd *cobra.Command, args []string) error {
	return runApp(func(svc *service.LeaderboardService) error {
		player, err := svc.PlayerStats(context.Background(), args[0])
		if err != nil {
			return err
		}
		if player == nil {
			fmt.Fprintf(os.Stdout, "No stats for %s.\n", args[0])
			return nil
		}
		renderPlayers(os.Stdout, []domain.PlayerStat{*player})
		return nil
	})
}
