package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repodash/internal/config"
	"repodash/internal/logger"
)

var (
	cfg        *config.Config
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "repodash",
	Short: "Browse an account's original GitHub repositories from the terminal",
	Long: `repodash lists the public, non-fork repositories of a GitHub account,
filtered by text and split into pages, plus the weather and a random dog.

Configuration is read from the environment and an optional .env file
(GITHUB_TOKEN, GITHUB_API_URL, DASHBOARD_PAGE_SIZE, SIDEBAR_LATITUDE, ...).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		level, _ := cmd.Flags().GetString("log-level")
		logger.SetupWriter(os.Stderr, level, cfg.Log.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of styled output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
