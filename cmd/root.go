package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cardwise/internal/billing"
	"cardwise/internal/config"
	"cardwise/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagDate    string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "cardwise",
	Short: "Credit card billing cycle tracker",
	Long:  "Track credit card usage and find which card gives the longest interest-free period for a purchase.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Wallet data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Purchase date as YYYY-MM-DD (default: today)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// loadConfig reads the config file, falling back to defaults on error so
// commands always run.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  config error, using defaults: %v\n", err)
		}
		return config.DefaultConfig()
	}
	return cfg
}

// openStore opens the wallet database, honoring --data-dir over the config.
func openStore(cfg config.Config) (*store.Store, error) {
	dir := flagDataDir
	if dir == "" {
		dir = config.DataDir(cfg)
	}
	return store.Open(filepath.Join(dir, "wallet.db"))
}

// anchorDate returns the purchase date used for cycle projections.
func anchorDate() (time.Time, error) {
	if flagDate == "" {
		return time.Now(), nil
	}
	d, err := time.Parse("2006-01-02", flagDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, want YYYY-MM-DD", flagDate)
	}
	return d, nil
}

func overflowPolicy(cfg config.Config) billing.DayOverflow {
	return billing.ParseOverflow(cfg.Billing.DayOverflow)
}
