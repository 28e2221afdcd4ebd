package cmd

import (
	"fmt"

	"cardwise/internal/cli"
	"cardwise/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	source := "defaults"
	if config.Exists() {
		source = config.ConfigPath()
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Source", source},
			{"Currency", cfg.General.Currency},
			{"Theme", cfg.Appearance.Theme},
			{"Day Overflow", cfg.Billing.DayOverflow},
			{"Data Dir", config.DataDir(cfg)},
		},
	}))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config already exists at %s", config.ConfigPath())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Wrote %s\n", config.ConfigPath())
	}
	return nil
}
