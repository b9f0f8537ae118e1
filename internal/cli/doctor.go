package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/example/bosun/internal/config"
	"github.com/example/bosun/internal/db"
	"github.com/example/bosun/internal/version"
	"github.com/example/bosun/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the bosun environment",
		Long: `Comprehensive environment health check for bosun.

Validates:
- Data directory (~/.bosun/)
- Ledger file and reachability
- Schema version against the latest migration
- tmux availability for workspace sessions
- Binary installation and PATH

Examples:
  bosun doctor              # Run full health check
  bosun doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()

			results := []CheckResult{}
			results = append(results, checkDataDir(cfg))
			results = append(results, checkLedger(cfg))

			healthResult, schemaResult := checkLedgerHealth(cfg)
			results = append(results, healthResult)
			results = append(results, schemaResult)

			results = append(results, checkTmux())
			results = append(results, checkBinary())

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				// Print compact table
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				// Print details for non-passing checks
				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'bosun init' to set up the ledger.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkDataDir validates the data directory exists
func checkDataDir(cfg *config.Config) CheckResult {
	info, err := os.Stat(cfg.DataDir)
	if os.IsNotExist(err) {
		return CheckResult{
			Name:    "Data Dir",
			Status:  "✗",
			Details: fmt.Sprintf("  %s not found\n  Run: bosun init", cfg.DataDir),
		}
	}
	if err != nil {
		return CheckResult{Name: "Data Dir", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}
	if !info.IsDir() {
		return CheckResult{
			Name:    "Data Dir",
			Status:  "✗",
			Details: fmt.Sprintf("  %s is not a directory", cfg.DataDir),
		}
	}
	return CheckResult{Name: "Data Dir", Status: "✓"}
}

// checkLedger validates the ledger file exists
func checkLedger(cfg *config.Config) CheckResult {
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Ledger File",
			Status:  "✗",
			Details: fmt.Sprintf("  %s not found\n  Run: bosun init", cfg.DBPath),
		}
	}
	return CheckResult{Name: "Ledger File", Status: "✓"}
}

// checkLedgerHealth probes the ledger and compares its schema version
// against the latest migration. Opens the store directly so the check
// can degrade instead of exiting when the ledger is unusable.
func checkLedgerHealth(cfg *config.Config) (health, schema CheckResult) {
	store, err := db.Open(cfg.DBPath, db.Options{})
	if err != nil {
		health = CheckResult{Name: "Health Probe", Status: "✗", Details: fmt.Sprintf("  Cannot open ledger: %v", err)}
		schema = CheckResult{Name: "Schema", Status: "⚠", Details: "  Skipped (ledger unavailable)"}
		return health, schema
	}
	defer store.Close()

	probe, err := store.HealthCheck(context.Background())
	switch {
	case err != nil:
		health = CheckResult{Name: "Health Probe", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	case !probe.OK:
		health = CheckResult{Name: "Health Probe", Status: "✗", Details: "  " + probe.Message}
	default:
		health = CheckResult{Name: "Health Probe", Status: "✓"}
	}

	current, err := store.SchemaVersion()
	switch {
	case err != nil:
		schema = CheckResult{Name: "Schema", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	case current < db.LatestSchemaVersion():
		schema = CheckResult{
			Name:    "Schema",
			Status:  "✗",
			Details: fmt.Sprintf("  Version %d, latest is %d\n  Run: bosun init", current, db.LatestSchemaVersion()),
		}
	case current > db.LatestSchemaVersion():
		schema = CheckResult{
			Name:    "Schema",
			Status:  "⚠",
			Details: fmt.Sprintf("  Version %d is newer than this binary knows (%d)\n  Upgrade bosun", current, db.LatestSchemaVersion()),
		}
	default:
		schema = CheckResult{Name: "Schema", Status: "✓"}
	}

	return health, schema
}

// checkTmux validates tmux availability for workspace sessions
func checkTmux() CheckResult {
	if _, err := exec.LookPath("tmux"); err != nil {
		return CheckResult{
			Name:    "TMux",
			Status:  "⚠",
			Details: "  'tmux' not found in PATH\n  'bosun attach' will be unavailable",
		}
	}
	return CheckResult{Name: "TMux", Status: "✓"}
}

// checkBinary validates bosun binary installation
func checkBinary() CheckResult {
	bosunPath, err := exec.LookPath("bosun")
	if err != nil {
		return CheckResult{
			Name:    "Binary",
			Status:  "⚠",
			Details: "  'bosun' not found in PATH\n  Run: make install",
		}
	}
	return CheckResult{Name: "Binary", Status: "✓", Details: fmt.Sprintf("  %s (%s)", bosunPath, version.String())}
}
