package repo

import (
	"context"
)

// RepositorySource is a domain service interface for the remote repository-hosting API.
// Implementation will be in infrastructure layer
type RepositorySource interface {
	// FetchAccountRepositories issues a single request for up to 100 repositories of
	// the account, most recently updated first. Forks are included. Failures are
	// returned as *DomainError.
	FetchAccountRepositories(ctx context.Context, account AccountName) ([]*Repository, error)
}
