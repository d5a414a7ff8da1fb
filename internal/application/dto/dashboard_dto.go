package dto

// DashboardViewResponse is the derived view of a dashboard session
type DashboardViewResponse struct {
	SessionID     string                `json:"session_id"`
	Account       string                `json:"account"`
	Search        string                `json:"search"`
	Page          int                   `json:"page"`
	PageCount     int                   `json:"page_count"`
	PageSize      int                   `json:"page_size"`
	Loading       bool                  `json:"loading"`
	Error         string                `json:"error,omitempty"`
	ErrorCode     string                `json:"error_code,omitempty"`
	Notice        string                `json:"notice,omitempty"`
	TotalOriginal int                   `json:"total_original"`
	TotalFiltered int                   `json:"total_filtered"`
	HasPrev       bool                  `json:"has_prev"`
	HasNext       bool                  `json:"has_next"`
	Repositories  []*RepositoryResponse `json:"repositories"`
}

// CreateSessionResponse is returned when a dashboard session is opened
type CreateSessionResponse struct {
	SessionID string                 `json:"session_id"`
	Token     string                 `json:"token"`
	View      *DashboardViewResponse `json:"view"`
}

// SubmitAccountRequest is the body of an account submission
type SubmitAccountRequest struct {
	Account string `json:"account"`
}

// SetSearchRequest is the body of a filter text change
type SetSearchRequest struct {
	Search string `json:"search"`
}
