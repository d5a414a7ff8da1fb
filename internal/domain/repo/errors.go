package repo

import (
	"errors"
	"fmt"
)

// Error codes surfaced by the repository fetch boundary
const (
	CodeInvalidAccount    = "INVALID_ACCOUNT"
	CodeAccountNotFound   = "ACCOUNT_NOT_FOUND"
	CodeRateLimited       = "RATE_LIMITED"
	CodeUpstream          = "UPSTREAM_ERROR"
	CodeInvalidRepository = "INVALID_REPOSITORY_DATA"
)

// DomainError carries a stable code plus a message safe to show to the user
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Predefined domain errors

func ErrInvalidAccount() *DomainError {
	return &DomainError{
		Code:    CodeInvalidAccount,
		Message: "please enter a GitHub account name",
	}
}

func ErrAccountNotFound(account string) *DomainError {
	return &DomainError{
		Code:    CodeAccountNotFound,
		Message: fmt.Sprintf("GitHub account %q not found", account),
	}
}

// ErrUnresolvableAccount reports a name no GitHub account can have. The API would
// answer 404 for it, so it surfaces as ErrAccountNotFound without a request.
func ErrUnresolvableAccount(account string, err error) *DomainError {
	de := ErrAccountNotFound(account)
	de.Err = err
	return de
}

func ErrRateLimited(err error) *DomainError {
	return &DomainError{
		Code:    CodeRateLimited,
		Message: "API rate limit exceeded, please try again later",
		Err:     err,
	}
}

func ErrUpstreamStatus(statusCode int, statusText string) *DomainError {
	return &DomainError{
		Code:    CodeUpstream,
		Message: fmt.Sprintf("failed to load: %d %s", statusCode, statusText),
	}
}

func ErrMalformedResponse(err error) *DomainError {
	return &DomainError{
		Code:    CodeUpstream,
		Message: "failed to load: unexpected response from GitHub",
		Err:     err,
	}
}

func ErrUpstreamUnavailable(err error) *DomainError {
	return &DomainError{
		Code:    CodeUpstream,
		Message: "connection error, unable to fetch data",
		Err:     err,
	}
}

func ErrInvalidRepositoryData(field string, err error) *DomainError {
	return &DomainError{
		Code:    CodeInvalidRepository,
		Message: fmt.Sprintf("invalid %s", field),
		Err:     err,
	}
}

// AsDomainError classifies any error at the fetch boundary. Errors that are not
// already domain errors are treated as upstream failures.
func AsDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return ErrUpstreamUnavailable(err)
}

// HasCode reports whether err is a DomainError with the given code
func HasCode(err error, code string) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}
