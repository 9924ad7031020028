package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pug-tracker/internal/service"
)

var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "Registered game servers",
	Args:  cobra.NoArgs,
	RunE:  runServers,
}

func runServers(cmd *cobra.Command, args []string) error {
	return runApp(func(svc *service.MatchService) error {
		servers, err := svc.ListServers(context.Background())
		if err != nil {
			return err
		}
		if len(servers) == 0 {
			fmt.Fprintln(os.Stdout, "No servers registered.")
			return nil
		}
		renderServers(os.Stdout, servers)
		return nil
	})
}
