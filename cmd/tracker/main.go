package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	fxmodules "pug-tracker/internal/fx"
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "PUG league dashboard core",
	Long:  "Query a G5API-style match-tracking backend for standings, leaderboards and head-to-head records.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(leadersCmd)
	rootCmd.AddCommand(h2hCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(serversCmd)
}

// runApp wires the dependency graph and runs one invocation to completion.
// The invoked function's error surfaces as the command error.
func runApp(invoke any) error {
	app := fx.New(
		fxmodules.Module,
		fx.NopLogger,
		fx.Invoke(invoke),
	)
	return app.Err()
}
