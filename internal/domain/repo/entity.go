package repo

import (
	"fmt"
	"time"
)

// Repository is an immutable summary of one repository owned by an account.
// The set for an account is replaced wholesale on every successful fetch.
type Repository struct {
	githubID        GitHubID
	name            Name
	description     *string
	isFork          bool
	stargazersCount int32
	forksCount      int32
	language        *string
	updatedAt       time.Time
	htmlURL         URL
}

// NewRepository creates a new Repository entity
func NewRepository(
	githubID int64,
	name string,
	description *string,
	isFork bool,
	stars, forks int32,
	language *string,
	updatedAt time.Time,
	htmlURL string,
) (*Repository, error) {
	githubIDVO, err := NewGitHubID(githubID)
	if err != nil {
		return nil, ErrInvalidRepositoryData("GitHub ID", err)
	}

	repoName, err := NewName(name)
	if err != nil {
		return nil, ErrInvalidRepositoryData("repository name", err)
	}

	repoURL, err := NewURL(htmlURL)
	if err != nil {
		return nil, ErrInvalidRepositoryData("repository URL", err)
	}

	if stars < 0 || forks < 0 {
		return nil, ErrInvalidRepositoryData("counters", fmt.Errorf("stars=%d forks=%d must not be negative", stars, forks))
	}

	return &Repository{
		githubID:        githubIDVO,
		name:            repoName,
		description:     copyString(description),
		isFork:          isFork,
		stargazersCount: stars,
		forksCount:      forks,
		language:        copyString(language),
		updatedAt:       updatedAt,
		htmlURL:         repoURL,
	}, nil
}

// Getters

func (r *Repository) GitHubID() GitHubID {
	return r.githubID
}

func (r *Repository) Name() Name {
	return r.name
}

// Description returns nil when the repository has no description
func (r *Repository) Description() *string {
	return copyString(r.description)
}

func (r *Repository) IsFork() bool {
	return r.isFork
}

func (r *Repository) StargazersCount() int32 {
	return r.stargazersCount
}

func (r *Repository) ForksCount() int32 {
	return r.forksCount
}

func (r *Repository) Language() *string {
	return copyString(r.language)
}

func (r *Repository) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Repository) HTMLURL() URL {
	return r.htmlURL
}

// String returns string representation (for debugging)
func (r *Repository) String() string {
	return fmt.Sprintf("Repository{id: %d, name: %s, fork: %t}",
		r.githubID.Int64(), r.name.String(), r.isFork)
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
