package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"repodash/internal/application/service"
	"repodash/internal/cli"
	"repodash/internal/database"
	"repodash/internal/domain/events"
	"repodash/internal/github"
	infraGitHub "repodash/internal/infrastructure/github"
	"repodash/internal/infrastructure/persistence"
)

func init() {
	reposCmd.Flags().StringP("search", "s", "", "only show repositories whose name or description contains this text")
	reposCmd.Flags().IntP("page", "p", 1, "page to show")
	rootCmd.AddCommand(reposCmd)
}

var reposCmd = &cobra.Command{
	Use:   "repos [account]",
	Short: "List an account's original repositories",
	Long: `List the public repositories of a GitHub account, forks excluded,
sorted by last update.

Examples:
  # The default account (GITHUB_DEFAULT_ACCOUNT, "google")
  repodash repos

  # Second page of golang repositories mentioning "api"
  repodash repos golang --search api --page 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		page, _ := cmd.Flags().GetInt("page")

		account := cfg.GitHub.DefaultAccount
		if len(args) == 1 {
			account = args[0]
		}

		// Record CLI fetches alongside the server's when history is persistent
		var publisher events.Publisher
		if cfg.HistoryPersistent() {
			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.Migrate(cmd.Context()); err != nil {
				return err
			}

			dispatcher := events.NewDispatcher()
			service.NewHistoryService(persistence.NewFetchHistoryRepository(db)).Register(dispatcher)
			publisher = dispatcher
		}

		repositoryService, err := newRepositoryService(publisher)
		if err != nil {
			return err
		}

		resp, err := repositoryService.ListRepositories(cmd.Context(), account, search, page)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}
		cli.RenderRepositories(os.Stdout, resp)
		return nil
	},
}

// newRepositoryService wires the GitHub client into a RepositoryService. publisher may be nil.
func newRepositoryService(publisher events.Publisher) (*service.RepositoryService, error) {
	client, err := github.NewClient(github.Options{
		BaseURL:   cfg.GitHub.BaseURL,
		UserAgent: cfg.GitHub.UserAgent,
		Token:     cfg.GitHub.Token,
		Timeout:   cfg.GitHub.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return service.NewRepositoryService(infraGitHub.NewGitHubService(client), publisher, cfg.Dashboard.PageSize), nil
}
