package dto

// RepositoryResponse represents repository data in API responses
type RepositoryResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Fork          bool    `json:"fork"`
	Stars         int32   `json:"stars"`
	Forks         int32   `json:"forks"`
	Language      *string `json:"language"`
	LanguageColor string  `json:"language_color"`
	HTMLURL       string  `json:"html_url"`
	UpdatedAt     string  `json:"updated_at"`
}

// PaginationResponse describes the page a list response was cut from
type PaginationResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// RepositoryListResponse represents a paginated list of an account's original repositories
type RepositoryListResponse struct {
	Account       string                `json:"account"`
	Search        string                `json:"search"`
	TotalOriginal int                   `json:"total_original"`
	Notice        string                `json:"notice,omitempty"`
	Repositories  []*RepositoryResponse `json:"repositories"`
	Pagination    PaginationResponse    `json:"pagination"`
}
