package github_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repodash/internal/github"
)

const reposBody = `[
  {"id": 1, "name": "api-client", "description": "Client for the API", "fork": false,
   "html_url": "https://github.com/google/api-client", "language": "Go",
   "stargazers_count": 42, "forks_count": 7, "updated_at": "2024-05-01T12:00:00Z"},
  {"id": 2, "name": "web-ui", "description": null, "fork": true,
   "html_url": "https://github.com/google/web-ui", "language": null,
   "stargazers_count": 0, "forks_count": 0, "updated_at": "2024-04-01T08:30:00Z"}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *github.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := github.NewClient(github.Options{
		BaseURL:   srv.URL,
		UserAgent: "repodash-test",
		Timeout:   5 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestListUserRepositories_Success(t *testing.T) {
	var gotPath, gotSort, gotPerPage, gotAgent string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSort = r.URL.Query().Get("sort")
		gotPerPage = r.URL.Query().Get("per_page")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reposBody))
	})

	repos, err := client.ListUserRepositories(context.Background(), "google")
	require.NoError(t, err)

	assert.Equal(t, "/users/google/repos", gotPath)
	assert.Equal(t, "updated", gotSort)
	assert.Equal(t, "100", gotPerPage)
	assert.Equal(t, "repodash-test", gotAgent)

	require.Len(t, repos, 2)
	assert.Equal(t, int64(1), repos[0].ID)
	assert.Equal(t, "api-client", repos[0].Name)
	require.NotNil(t, repos[0].Description)
	assert.Equal(t, "Client for the API", *repos[0].Description)
	require.NotNil(t, repos[0].Language)
	assert.Equal(t, "Go", *repos[0].Language)
	assert.Equal(t, int32(42), repos[0].StargazersCount)
	assert.Equal(t, int32(7), repos[0].ForksCount)
	assert.False(t, repos[0].Fork)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), repos[0].UpdatedAt.UTC())

	assert.True(t, repos[1].Fork)
	assert.Nil(t, repos[1].Description)
	assert.Nil(t, repos[1].Language)
}

func TestListUserRepositories_BaseURLWithPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client, err := github.NewClient(github.Options{BaseURL: srv.URL + "/api/v3"})
	require.NoError(t, err)

	repos, err := client.ListUserRepositories(context.Background(), "google")
	require.NoError(t, err)
	assert.Empty(t, repos)
	assert.Equal(t, "/api/v3/users/google/repos", gotPath)
}

func TestListUserRepositories_StatusErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantText string
	}{
		{"not found", http.StatusNotFound, `{"message":"Not Found"}`, "Not Found"},
		{"forbidden", http.StatusForbidden, `{"message":"API rate limit exceeded"}`, "Forbidden"},
		{"server error", http.StatusInternalServerError, `{"message":"boom"}`, "Internal Server Error"},
		{"bad gateway no body", http.StatusBadGateway, ``, "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.ListUserRepositories(context.Background(), "google")
			require.Error(t, err)

			var statusErr *github.StatusError
			require.True(t, errors.As(err, &statusErr), "want StatusError, got %T: %v", err, err)
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.wantText, statusErr.StatusText)
		})
	}
}

func TestListUserRepositories_RateLimitHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-RateLimit-Limit", "60")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", "4102444800")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"API rate limit exceeded for 127.0.0.1."}`))
	})

	_, err := client.ListUserRepositories(context.Background(), "google")

	var statusErr *github.StatusError
	require.True(t, errors.As(err, &statusErr), "want StatusError, got %T: %v", err, err)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
}

func TestListUserRepositories_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"truncated object", `{"not": "an array"`},
		{"empty body", ""},
		{"null", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			})

			repos, err := client.ListUserRepositories(context.Background(), "google")
			require.Error(t, err)
			assert.ErrorIs(t, err, github.ErrMalformedBody)
			assert.Nil(t, repos)
		})
	}
}

func TestListUserRepositories_EmptyArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	})

	repos, err := client.ListUserRepositories(context.Background(), "google")
	require.NoError(t, err)
	assert.Empty(t, repos)
}

func TestListUserRepositories_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, err := github.NewClient(github.Options{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.ListUserRepositories(context.Background(), "google")
	require.Error(t, err)

	var statusErr *github.StatusError
	assert.False(t, errors.As(err, &statusErr))
	assert.NotErrorIs(t, err, github.ErrMalformedBody)
}

func TestListUserRepositories_TokenSent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client, err := github.NewClient(github.Options{BaseURL: srv.URL, Token: "secret-token"})
	require.NoError(t, err)

	_, err = client.ListUserRepositories(context.Background(), "google")
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := github.NewClient(github.Options{BaseURL: "://bad"})
	assert.Error(t, err)
}
