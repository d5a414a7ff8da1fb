package dashboard

import "repodash/internal/domain/repo"

// View is the derived, read-only state of a session
type View struct {
	SessionID     string
	Account       string
	Search        string
	Page          repo.Page
	TotalFetched  int
	TotalOriginal int
	Loading       bool
	Err           *repo.DomainError
	Notice        string
	Token         uint64
}

// ErrorMessage returns the user-facing error text, or "" when there is none
func (v View) ErrorMessage() string {
	if v.Err == nil {
		return ""
	}
	return v.Err.Message
}

// ErrorCode returns the domain error code, or "" when there is none
func (v View) ErrorCode() string {
	if v.Err == nil {
		return ""
	}
	return v.Err.Code
}
