package github

import (
	"context"
	"errors"
	"net/http"

	"repodash/internal/domain/repo"
	"repodash/internal/github"

	"github.com/rs/zerolog/log"
)

// RepositoryLister is the subset of the GitHub client used by the service
type RepositoryLister interface {
	ListUserRepositories(ctx context.Context, account string) ([]github.Repository, error)
}

// GitHubServiceImpl implements the domain repo.RepositorySource interface
type GitHubServiceImpl struct {
	client RepositoryLister
}

// NewGitHubService creates a new GitHub service implementation
func NewGitHubService(client RepositoryLister) repo.RepositorySource {
	return &GitHubServiceImpl{client: client}
}

// FetchAccountRepositories fetches the account's repositories and converts them to domain entities.
// Entries the domain rejects are skipped, not fatal.
func (g *GitHubServiceImpl) FetchAccountRepositories(ctx context.Context, account repo.AccountName) ([]*repo.Repository, error) {
	githubRepos, err := g.client.ListUserRepositories(ctx, account.String())
	if err != nil {
		return nil, toDomainError(account, err)
	}

	domainRepos := make([]*repo.Repository, 0, len(githubRepos))
	for _, ghRepo := range githubRepos {
		r, err := repo.NewRepository(
			ghRepo.ID,
			ghRepo.Name,
			ghRepo.Description,
			ghRepo.Fork,
			ghRepo.StargazersCount,
			ghRepo.ForksCount,
			ghRepo.Language,
			ghRepo.UpdatedAt,
			ghRepo.HTMLURL,
		)
		if err != nil {
			log.Warn().
				Err(err).
				Str("account", account.String()).
				Int64("github_id", ghRepo.ID).
				Msg("skipping invalid repository")
			continue
		}
		domainRepos = append(domainRepos, r)
	}

	return domainRepos, nil
}

// toDomainError maps client failures onto the fetch error taxonomy
func toDomainError(account repo.AccountName, err error) error {
	var statusErr *github.StatusError
	switch {
	case errors.As(err, &statusErr):
		switch statusErr.StatusCode {
		case http.StatusNotFound:
			return repo.ErrAccountNotFound(account.String())
		case http.StatusForbidden:
			return repo.ErrRateLimited(statusErr)
		default:
			return repo.ErrUpstreamStatus(statusErr.StatusCode, statusErr.StatusText)
		}
	case errors.Is(err, github.ErrMalformedBody):
		return repo.ErrMalformedResponse(err)
	default:
		return repo.ErrUpstreamUnavailable(err)
	}
}
