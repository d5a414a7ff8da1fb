package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repodash/internal/application/service"
	"repodash/internal/cli"
	"repodash/internal/database"
	"repodash/internal/infrastructure/persistence"
)

func init() {
	historyCmd.Flags().IntP("limit", "n", service.DefaultHistoryLimit, "number of records to show")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent repository fetches recorded by the server",
	Long: `Show the most recent fetches, newest first. Reads the server's
Postgres fetch history, so DB_DSN must point at the same database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.HistoryPersistent() {
			return fmt.Errorf("fetch history is only kept in server memory; set DB_DSN to read it")
		}
		limit, _ := cmd.Flags().GetInt("limit")

		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		historyService := service.NewHistoryService(persistence.NewFetchHistoryRepository(db))
		resp, err := historyService.ListRecent(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}
		cli.RenderHistory(os.Stdout, resp)
		return nil
	},
}
