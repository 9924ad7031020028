package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pug-tracker/internal/service"
)

var h2hCmd = &cobra.Command{
	Use:   "h2h <steamid1> <steamid2>",
	Short: "Head-to-head record between two players",
	Args:  cobra.ExactArgs(2),
	RunE:  runH2H,
}

func runH2H(cmd *cobra.Command, args []string) error {
	return runApp(func(svc *service.HeadToHeadService) error {
		record, err := svc.Compare(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}
		if record.TotalMatches == 0 {
			fmt.Fprintln(os.Stdout, "These players have never faced each other.")
			return nil
		}
		fmt.Fprintf(os.Stdout, "%s vs %s: %d-%d over %d matches\n",
			record.Player1ID, record.Player2ID,
			record.Player1Wins, record.Player2Wins, record.TotalMatches)
		return nil
	})
}
