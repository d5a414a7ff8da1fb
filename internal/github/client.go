package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gh "github.com/google/go-github/v82/github"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the public GitHub REST API root
const DefaultBaseURL = "https://api.github.com/"

// MaxPerPage is the largest page the API returns for repository listings
const MaxPerPage = 100

// ErrMalformedBody is returned when a 2xx response cannot be decoded
var ErrMalformedBody = errors.New("malformed response body")

// StatusError is returned for any non-2xx response
type StatusError struct {
	StatusCode int
	StatusText string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("github API returned status %d %s: %s", e.StatusCode, e.StatusText, e.Message)
	}
	return fmt.Sprintf("github API returned status %d %s", e.StatusCode, e.StatusText)
}

// Options configures a Client
type Options struct {
	BaseURL   string
	UserAgent string
	Token     string
	Timeout   time.Duration
}

// Client handles GitHub API interactions
type Client struct {
	gh *gh.Client
}

// Repository represents a GitHub repository from the API
type Repository struct {
	ID              int64
	Name            string
	Description     *string
	HTMLURL         string
	Fork            bool
	StargazersCount int32
	ForksCount      int32
	Language        *string
	UpdatedAt       time.Time
}

// NewClient creates a new GitHub API client. An empty token yields an
// unauthenticated client; a token only raises the rate limit.
func NewClient(opts Options) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	var httpClient *http.Client
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = opts.Timeout
	} else {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	client := gh.NewClient(httpClient)

	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub base URL %q: %w", base, err)
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}
	client.BaseURL = baseURL

	if opts.UserAgent != "" {
		client.UserAgent = opts.UserAgent
	}

	return &Client{gh: client}, nil
}

// ListUserRepositories fetches up to 100 public repositories of an account, most recently updated first.
// It issues exactly one request: GET users/{account}/repos?sort=updated&per_page=100.
func (c *Client) ListUserRepositories(ctx context.Context, account string) ([]Repository, error) {
	opts := &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: MaxPerPage},
	}

	repos, resp, err := c.gh.Repositories.ListByUser(ctx, account, opts)
	if err != nil {
		return nil, classify(resp, err)
	}
	// an empty or null body decodes without error into a nil slice; "[]" does not
	if repos == nil {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedBody)
	}

	result := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if r == nil {
			continue
		}
		result = append(result, Repository{
			ID:              r.GetID(),
			Name:            r.GetName(),
			Description:     r.Description,
			HTMLURL:         r.GetHTMLURL(),
			Fork:            r.GetFork(),
			StargazersCount: int32(r.GetStargazersCount()),
			ForksCount:      int32(r.GetForksCount()),
			Language:        r.Language,
			UpdatedAt:       r.GetUpdatedAt().Time,
		})
	}

	return result, nil
}

// classify turns a go-github error into a StatusError, ErrMalformedBody or a transport error
func classify(resp *gh.Response, err error) error {
	if resp != nil && resp.Response != nil {
		code := resp.StatusCode
		if code < 200 || code > 299 {
			statusErr := &StatusError{
				StatusCode: code,
				StatusText: statusText(resp.Response),
			}
			var errResp *gh.ErrorResponse
			var rateErr *gh.RateLimitError
			switch {
			case errors.As(err, &rateErr):
				statusErr.Message = rateErr.Message
			case errors.As(err, &errResp):
				statusErr.Message = errResp.Message
			}
			return statusErr
		}
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return fmt.Errorf("failed to fetch repositories: %w", err)
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
