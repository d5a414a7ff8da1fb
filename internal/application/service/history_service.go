package service

import (
	"context"
	"fmt"

	"repodash/internal/application/dto"
	"repodash/internal/domain/events"
	"repodash/internal/domain/repo"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)

// HistoryService records fetch outcomes and lists them
type HistoryService struct {
	history repo.FetchHistoryRepo
}

// NewHistoryService creates a new history service
func NewHistoryService(history repo.FetchHistoryRepo) *HistoryService {
	return &HistoryService{
		history: history,
	}
}

// Register subscribes the service to fetch outcome events
func (s *HistoryService) Register(d *events.Dispatcher) {
	d.Register(s.HandleFetchEvent, repo.EventTypeRepositoriesFetched, repo.EventTypeFetchFailed)
}

// HandleFetchEvent turns a fetch outcome event into a history record
func (s *HistoryService) HandleFetchEvent(ctx context.Context, event events.DomainEvent) error {
	var (
		record *repo.FetchRecord
		err    error
	)

	switch e := event.(type) {
	case *repo.RepositoriesFetchedEvent:
		record, err = repo.NewSuccessRecord(e.Account, e.FetchedCount, e.OriginalCount, e.OccurredAt())
	case *repo.FetchFailedEvent:
		record, err = repo.NewFailureRecord(e.Account, e.Code, e.Message, e.OccurredAt())
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid fetch record: %w", err)
	}

	if err := s.history.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to save fetch record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first. limit is clamped to [1, MaxHistoryLimit].
func (s *HistoryService) ListRecent(ctx context.Context, limit int) (*dto.FetchHistoryResponse, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	records, err := s.history.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list fetch history: %w", err)
	}

	resp := &dto.FetchHistoryResponse{
		Records: make([]*dto.FetchRecordResponse, 0, len(records)),
	}
	for _, r := range records {
		resp.Records = append(resp.Records, toFetchRecordResponse(r))
	}
	return resp, nil
}
