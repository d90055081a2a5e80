// Package cmd implements the reviewr CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sadopc/reviewr/internal/cli"
	"github.com/sadopc/reviewr/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := flagConfig
	if path == "" {
		path = config.ConfigPath()
	}
	fmt.Printf("  Config file: %s\n", path)
	if _, err := os.Stat(path); err == nil {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	local, foreign := cfg.Currency.Local, cfg.Currency.Foreign

	fmt.Println("  [Goals]")
	fmt.Printf("    Emergency:      %s\n", cli.FormatAmount(local, cfg.Goals.Emergency))
	fmt.Printf("    Car:            %s\n", cli.FormatAmount(local, cfg.Goals.Car))
	fmt.Printf("    Travel:         %s\n", cli.FormatAmount(foreign, cfg.Goals.Travel))
	fmt.Printf("    Lifestyle lock: %s\n", cli.FormatAmount(local, cfg.Goals.LifestyleLock))
	fmt.Println()

	fmt.Println("  [Rules]")
	fmt.Printf("    Emergency minimum: %s\n", cli.FormatAmount(local, cfg.Rules.EmergencyMin))
	fmt.Printf("    Travel minimum:    %s\n", cli.FormatAmount(foreign, cfg.Rules.TravelMin))
	fmt.Printf("    Target actions:    %d\n", cfg.Rules.TargetActions)
	fmt.Println()

	fmt.Println("  [Currency]")
	fmt.Printf("    Local:   %s\n", local)
	fmt.Printf("    Foreign: %s (1 %s = %g %s)\n", foreign, foreign, cfg.Currency.ForeignRate, local)
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Database: %s\n", cfg.Storage.DBPath)
	fmt.Println()

	fmt.Println("  [Mirror]")
	if !cfg.Mirror.Enabled {
		fmt.Println("    Disabled")
		return nil
	}
	fmt.Printf("    URL:      %s\n", cfg.Mirror.URL)
	if cfg.Mirror.APIKey != "" {
		fmt.Printf("    API key:  %s\n", maskAPIKey(cfg.Mirror.APIKey))
	} else {
		fmt.Println("    API key:  not configured")
	}
	fmt.Printf("    Table:    %s (row %s)\n", cfg.Mirror.Table, cfg.Mirror.RowID)
	fmt.Printf("    Schedule: %s\n", cfg.Mirror.PushCron)
	return nil
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
