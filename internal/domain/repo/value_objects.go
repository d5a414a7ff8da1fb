package repo

import (
	"fmt"
	"strings"
)

// AccountName is a value object representing a repository-hosting account (user or organisation)
type AccountName struct {
	value string
}

// NewAccountName creates a new AccountName, trimming surrounding whitespace.
// Empty or whitespace-only input is rejected with ErrInvalidAccount. Names that
// cannot exist on GitHub get ErrUnresolvableAccount.
func NewAccountName(name string) (AccountName, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return AccountName{}, ErrInvalidAccount()
	}

	if len(name) > 39 {
		return AccountName{}, ErrUnresolvableAccount(name, fmt.Errorf("account name too long (max 39 characters)"))
	}

	if strings.ContainsAny(name, "/?#% ") {
		return AccountName{}, ErrUnresolvableAccount(name, fmt.Errorf("account name contains reserved characters"))
	}

	return AccountName{value: name}, nil
}

func (a AccountName) String() string {
	return a.value
}

// GitHubID is a value object representing a GitHub repository ID
type GitHubID struct {
	value int64
}

// NewGitHubID creates a new GitHubID with validation
func NewGitHubID(id int64) (GitHubID, error) {
	if id <= 0 {
		return GitHubID{}, fmt.Errorf("GitHub ID must be positive")
	}
	return GitHubID{value: id}, nil
}

func (g GitHubID) Int64() int64 {
	return g.value
}

// Name is a value object representing a repository name
type Name struct {
	value string
}

// NewName creates a new Name with validation
func NewName(name string) (Name, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return Name{}, fmt.Errorf("repository name cannot be empty")
	}

	if len(name) > 100 {
		return Name{}, fmt.Errorf("repository name too long (max 100 characters)")
	}

	return Name{value: name}, nil
}

func (n Name) String() string {
	return n.value
}

// URL is a value object representing a repository web URL
type URL struct {
	value string
}

// NewURL creates a new URL with validation
func NewURL(url string) (URL, error) {
	url = strings.TrimSpace(url)

	if url == "" {
		return URL{}, fmt.Errorf("repository URL cannot be empty")
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return URL{}, fmt.Errorf("repository URL must be a valid HTTP(S) URL")
	}

	return URL{value: url}, nil
}

func (u URL) String() string {
	return u.value
}
