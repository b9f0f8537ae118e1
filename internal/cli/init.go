package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/bosun/internal/db"
	"github.com/example/bosun/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var seed bool
	var dbPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the bosun mission ledger",
		Long: `Create the mission ledger database and initialize its schema.

Safe to run repeatedly: existing missions are never touched, and schema
initialization only adds what is missing.

Examples:
  bosun init                 # create ~/.bosun/bosun.db
  bosun init --seed          # also insert a demo backlog
  bosun init --db /tmp/b.db  # one-off path (set BOSUN_DB_PATH to reuse it)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := dbPath
			if path == "" {
				path = wire.Config().DBPath
			}

			fmt.Printf("Initializing mission ledger at %s\n", path)

			store, err := db.Open(path, db.Options{CreateMissing: true})
			if err != nil {
				return fmt.Errorf("failed to open ledger: %w", err)
			}
			defer store.Close()

			if err := store.EnsureSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}
			fmt.Println("✓ Ledger initialized")

			if seed {
				if err := db.SeedFixtures(store.DB()); err != nil {
					return fmt.Errorf("failed to seed demo backlog: %w", err)
				}
				fmt.Println("✓ Demo backlog seeded")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  bosun mission add \"My first mission\"")
			fmt.Println("  bosun run")
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Insert a demo backlog after initializing")
	cmd.Flags().StringVar(&dbPath, "db", "", "Ledger path (defaults to the configured path)")

	return cmd
}
