package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Fetch outcomes recorded in history
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// FetchRecord is one entry in the fetch history of the dashboard
type FetchRecord struct {
	ID            uuid.UUID
	Account       string
	Outcome       string
	ErrorCode     string
	Message       string
	FetchedCount  int
	OriginalCount int
	FetchedAt     time.Time
}

// NewSuccessRecord records a completed fetch
func NewSuccessRecord(account string, fetched, originals int, at time.Time) (*FetchRecord, error) {
	if account == "" {
		return nil, fmt.Errorf("account is required")
	}
	return &FetchRecord{
		ID:            uuid.New(),
		Account:       account,
		Outcome:       OutcomeSuccess,
		FetchedCount:  fetched,
		OriginalCount: originals,
		FetchedAt:     at.UTC(),
	}, nil
}

// NewFailureRecord records a failed fetch
func NewFailureRecord(account, code, message string, at time.Time) (*FetchRecord, error) {
	if account == "" {
		return nil, fmt.Errorf("account is required")
	}
	return &FetchRecord{
		ID:        uuid.New(),
		Account:   account,
		Outcome:   OutcomeFailure,
		ErrorCode: code,
		Message:   message,
		FetchedAt: at.UTC(),
	}, nil
}

// FetchHistoryRepo defines the interface for fetch history persistence
type FetchHistoryRepo interface {
	// Save appends a record
	Save(ctx context.Context, record *FetchRecord) error

	// ListRecent returns up to limit records, newest first
	ListRecent(ctx context.Context, limit int) ([]*FetchRecord, error)
}
