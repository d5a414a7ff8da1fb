package repo_test

import (
	"fmt"
	"testing"
	"time"

	"repodash/internal/domain/repo"
)

func strPtr(s string) *string {
	return &s
}

// newRepo builds a valid repository for tests
func newRepo(t *testing.T, id int64, name string, description *string, fork bool) *repo.Repository {
	t.Helper()
	r, err := repo.NewRepository(id, name, description, fork, 1, 0, nil,
		time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		fmt.Sprintf("https://github.com/acme/%s", name))
	if err != nil {
		t.Fatalf("NewRepository(%q) error: %v", name, err)
	}
	return r
}

func TestNewRepository(t *testing.T) {
	updated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      int64
		repo    string
		stars   int32
		forks   int32
		url     string
		wantErr bool
	}{
		{"valid", 1, "api-client", 10, 2, "https://github.com/acme/api-client", false},
		{"zero counters", 2, "web-ui", 0, 0, "https://github.com/acme/web-ui", false},
		{"invalid id", 0, "api-client", 0, 0, "https://github.com/acme/api-client", true},
		{"empty name", 3, " ", 0, 0, "https://github.com/acme/x", true},
		{"invalid url", 4, "x", 0, 0, "ftp://github.com/acme/x", true},
		{"negative stars", 5, "x", -1, 0, "https://github.com/acme/x", true},
		{"negative forks", 6, "x", 0, -3, "https://github.com/acme/x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := repo.NewRepository(tt.id, tt.repo, nil, false, tt.stars, tt.forks, strPtr("Go"), updated, tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRepository() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !repo.HasCode(err, repo.CodeInvalidRepository) {
					t.Errorf("error code = %v, want %s", err, repo.CodeInvalidRepository)
				}
				return
			}
			if r.GitHubID().Int64() != tt.id {
				t.Errorf("GitHubID() = %d, want %d", r.GitHubID().Int64(), tt.id)
			}
			if r.StargazersCount() != tt.stars || r.ForksCount() != tt.forks {
				t.Errorf("counters = %d/%d, want %d/%d", r.StargazersCount(), r.ForksCount(), tt.stars, tt.forks)
			}
			if !r.UpdatedAt().Equal(updated) {
				t.Errorf("UpdatedAt() = %v, want %v", r.UpdatedAt(), updated)
			}
		})
	}
}

func TestNewRepository_CopiesOptionalFields(t *testing.T) {
	description := "original"
	language := "Go"

	r, err := repo.NewRepository(1, "api-client", &description, false, 0, 0, &language, time.Now(), "https://github.com/acme/api-client")
	if err != nil {
		t.Fatalf("NewRepository() error: %v", err)
	}

	description = "mutated"
	language = "Rust"

	if got := *r.Description(); got != "original" {
		t.Errorf("Description() = %q, want %q", got, "original")
	}
	if got := *r.Language(); got != "Go" {
		t.Errorf("Language() = %q, want %q", got, "Go")
	}
}

func TestNewRepository_NilOptionalFields(t *testing.T) {
	r, err := repo.NewRepository(1, "api-client", nil, true, 0, 0, nil, time.Now(), "https://github.com/acme/api-client")
	if err != nil {
		t.Fatalf("NewRepository() error: %v", err)
	}
	if r.Description() != nil {
		t.Error("Description() should be nil")
	}
	if r.Language() != nil {
		t.Error("Language() should be nil")
	}
	if !r.IsFork() {
		t.Error("IsFork() should be true")
	}
}

func TestLanguageColor(t *testing.T) {
	tests := []struct {
		name     string
		language *string
		want     string
	}{
		{"javascript", strPtr("JavaScript"), "#f1e05a"},
		{"python", strPtr("Python"), "#3572A5"},
		{"c++", strPtr("C++"), "#f34b7d"},
		{"unknown", strPtr("Go"), repo.DefaultLanguageColor},
		{"nil", nil, repo.DefaultLanguageColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repo.LanguageColor(tt.language); got != tt.want {
				t.Errorf("LanguageColor() = %s, want %s", got, tt.want)
			}
		})
	}
}
