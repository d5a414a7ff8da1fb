package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"repodash/internal/application/dto"
	"repodash/internal/domain/events"
	"repodash/internal/domain/repo"
)

// RepositoryService handles repository listing use cases
type RepositoryService struct {
	source    repo.RepositorySource
	publisher events.Publisher
	pageSize  int
}

// NewRepositoryService creates a new repository service. publisher may be nil.
func NewRepositoryService(source repo.RepositorySource, publisher events.Publisher, pageSize int) *RepositoryService {
	if pageSize <= 0 {
		pageSize = repo.DefaultPageSize
	}
	return &RepositoryService{
		source:    source,
		publisher: publisher,
		pageSize:  pageSize,
	}
}

// PageSize returns the fixed page size used for listings
func (s *RepositoryService) PageSize() int {
	return s.pageSize
}

// Fetch retrieves every repository of account from the remote source.
// Failures come back as *repo.DomainError. A fetch abandoned through ctx is not reported as an outcome.
func (s *RepositoryService) Fetch(ctx context.Context, account repo.AccountName) ([]*repo.Repository, error) {
	repos, err := s.source.FetchAccountRepositories(ctx, account)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("fetch for %s abandoned: %w", account, ctx.Err())
		}

		de := repo.AsDomainError(err)
		log.Warn().
			Str("account", account.String()).
			Str("code", de.Code).
			Err(err).
			Msg("repository fetch failed")
		s.publish(ctx, repo.NewFetchFailedEvent(account.String(), de))
		return nil, de
	}

	originals := len(repo.OriginalsOnly(repos))
	log.Info().
		Str("account", account.String()).
		Int("fetched", len(repos)).
		Int("originals", originals).
		Msg("repositories fetched")
	s.publish(ctx, repo.NewRepositoriesFetchedEvent(account.String(), len(repos), originals))

	return repos, nil
}

// ListRepositories fetches an account and returns one page of its original repositories matching search
func (s *RepositoryService) ListRepositories(ctx context.Context, rawAccount, search string, page int) (*dto.RepositoryListResponse, error) {
	account, err := repo.NewAccountName(rawAccount)
	if err != nil {
		return nil, err
	}

	repos, err := s.Fetch(ctx, account)
	if err != nil {
		return nil, err
	}

	canonical := repo.OriginalsOnly(repos)
	filtered := repo.MatchText(canonical, search)
	p := repo.Paginate(filtered, s.pageSize, page)

	resp := &dto.RepositoryListResponse{
		Account:       account.String(),
		Search:        search,
		TotalOriginal: len(canonical),
		Repositories:  toRepositoryResponses(p.Items),
		Pagination: dto.PaginationResponse{
			Page:       p.Index,
			PageSize:   p.Size,
			Total:      p.Total,
			TotalPages: p.Count,
		},
	}

	switch {
	case len(canonical) == 0:
		resp.Notice = fmt.Sprintf("account %s has no public original repositories", account)
	case len(filtered) == 0:
		resp.Notice = fmt.Sprintf("No matches for %q", search)
	}

	return resp, nil
}

func (s *RepositoryService) publish(ctx context.Context, event events.DomainEvent) {
	if s.publisher == nil {
		return
	}
	// Outcome recording must not depend on the caller staying connected.
	if err := s.publisher.Dispatch(context.WithoutCancel(ctx), event); err != nil {
		log.Error().Err(err).Str("event_type", event.EventType()).Msg("failed to publish event")
	}
}
