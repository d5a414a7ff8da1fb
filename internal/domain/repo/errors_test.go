package repo_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"repodash/internal/domain/repo"
)

func TestAsDomainError(t *testing.T) {
	if repo.AsDomainError(nil) != nil {
		t.Error("AsDomainError(nil) should be nil")
	}

	notFound := repo.ErrAccountNotFound("google")
	wrapped := fmt.Errorf("fetch: %w", notFound)
	if got := repo.AsDomainError(wrapped); got != notFound {
		t.Errorf("AsDomainError(wrapped) = %v, want the wrapped domain error", got)
	}

	plain := errors.New("dial tcp: connection refused")
	got := repo.AsDomainError(plain)
	if got.Code != repo.CodeUpstream {
		t.Errorf("plain error code = %s, want %s", got.Code, repo.CodeUpstream)
	}
	if !errors.Is(got, plain) {
		t.Error("upstream error should unwrap to the cause")
	}
}

func TestDomainErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      *repo.DomainError
		code     string
		contains string
	}{
		{"not found names account", repo.ErrAccountNotFound("google"), repo.CodeAccountNotFound, "google"},
		{"rate limited", repo.ErrRateLimited(nil), repo.CodeRateLimited, "rate limit"},
		{"status carries code and text", repo.ErrUpstreamStatus(500, "Internal Server Error"), repo.CodeUpstream, "500 Internal Server Error"},
		{"malformed body", repo.ErrMalformedResponse(errors.New("bad json")), repo.CodeUpstream, "failed to load"},
		{"empty input", repo.ErrInvalidAccount(), repo.CodeInvalidAccount, "account name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %s, want %s", tt.err.Code, tt.code)
			}
			if !strings.Contains(tt.err.Message, tt.contains) {
				t.Errorf("Message = %q, want it to contain %q", tt.err.Message, tt.contains)
			}
			if !repo.HasCode(tt.err, tt.code) {
				t.Errorf("HasCode(%s) = false", tt.code)
			}
		})
	}
}

func TestFetchRecords(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("CST", 8*3600))

	ok, err := repo.NewSuccessRecord("google", 30, 12, at)
	if err != nil {
		t.Fatalf("NewSuccessRecord() error: %v", err)
	}
	if ok.Outcome != repo.OutcomeSuccess || ok.FetchedCount != 30 || ok.OriginalCount != 12 {
		t.Errorf("success record = %+v", ok)
	}
	if ok.FetchedAt.Location() != time.UTC {
		t.Error("FetchedAt should be stored in UTC")
	}

	failed, err := repo.NewFailureRecord("nobody", repo.CodeAccountNotFound, "not found", at)
	if err != nil {
		t.Fatalf("NewFailureRecord() error: %v", err)
	}
	if failed.Outcome != repo.OutcomeFailure || failed.ErrorCode != repo.CodeAccountNotFound {
		t.Errorf("failure record = %+v", failed)
	}
	if ok.ID == failed.ID {
		t.Error("records should get distinct IDs")
	}

	if _, err := repo.NewSuccessRecord("", 0, 0, at); err == nil {
		t.Error("NewSuccessRecord with empty account should fail")
	}
	if _, err := repo.NewFailureRecord("", "X", "y", at); err == nil {
		t.Error("NewFailureRecord with empty account should fail")
	}
}
