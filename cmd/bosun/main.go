package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/bosun/internal/cli"
	"github.com/example/bosun/internal/version"
	"github.com/example/bosun/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "bosun",
		Short:   "bosun - mission ledger and workflow runner",
		Version: version.String(),
		Long: `bosun is a CLI tool for managing a backlog of missions in a local
SQLite ledger. It picks the next mission by a two-tier priority rule,
drives it through its lifecycle, and records every transition.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.MissionCmd())
	rootCmd.AddCommand(cli.RunCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.LogCmd())
	rootCmd.AddCommand(cli.AttachCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		// os.Exit skips deferred calls, so release the ledger here.
		wire.Shutdown()
		os.Exit(1)
	}
	wire.Shutdown()
}
