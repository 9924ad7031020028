package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"pug-tracker/internal/service"
)

var matchCmd = &cobra.Command{
	Use:   "match <id>",
	Short: "Match detail with per-team roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	matchID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid match id %q", args[0])
	}

	return runApp(func(svc *service.MatchService) error {
		detail, err := svc.GetMatchDetail(context.Background(), matchID)
		if err != nil {
			return err
		}
		if detail == nil {
			fmt.Fprintf(os.Stdout, "Match %d not found.\n", matchID)
			return nil
		}

		m := detail.Match
		result := "in progress"
		switch {
		case m.Cancelled:
			result = "cancelled"
		case m.Winner != nil && *m.Winner == 1:
			result = m.Team1Name + " won"
		case m.Winner != nil && *m.Winner == 2:
			result = m.Team2Name + " won"
		case m.EndTime != nil:
			result = "undetermined"
		}
		fmt.Fprintf(os.Stdout, "%s vs %s (bo%d)  |  %s\n\n", m.Team1Name, m.Team2Name, m.MaxMaps, result)

		if len(detail.Maps) > 0 {
			renderMaps(os.Stdout, detail.Maps)
			fmt.Fprintln(os.Stdout)
		}

		fmt.Fprintf(os.Stdout, "%s:\n", teamLabel(m.Team1Name, 1))
		renderPlayers(os.Stdout, detail.Roster.Team1)
		fmt.Fprintf(os.Stdout, "\n%s:\n", teamLabel(m.Team2Name, 2))
		renderPlayers(os.Stdout, detail.Roster.Team2)
		return nil
	})
}

func teamLabel(name string, side int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("Team %d", side)
}
