package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"repodash/internal/domain/repo"
)

// Session holds the raw query state of one dashboard plus the result of its
// latest successful fetch. Everything shown to the user is derived in View.
//
// Fetches are sequenced: BeginFetch hands out a token and only CompleteFetch
// with the newest token is applied, so a slow earlier response can never
// overwrite a newer one.
type Session struct {
	mu sync.Mutex

	id       SessionID
	pageSize int

	account repo.AccountName
	search  string
	page    int

	fetched   []*repo.Repository
	hasResult bool
	lastErr   *repo.DomainError

	loading bool
	seq     uint64
	cancel  context.CancelFunc

	createdAt time.Time
	touchedAt time.Time
}

// NewSession creates an empty session with a fixed page size
func NewSession(pageSize int, now time.Time) *Session {
	if pageSize <= 0 {
		pageSize = repo.DefaultPageSize
	}
	return &Session{
		id:        NewSessionID(),
		pageSize:  pageSize,
		page:      1,
		createdAt: now,
		touchedAt: now,
	}
}

func (s *Session) ID() SessionID {
	return s.id
}

func (s *Session) PageSize() int {
	return s.pageSize
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// TouchedAt returns the time of the last state change
func (s *Session) TouchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}

// Loading reports whether the newest fetch is still outstanding
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// BeginFetch starts a fetch for account. The page resets to 1 and the previous
// result and error are cleared immediately, before any data arrives. Any
// fetch still in flight is cancelled through its context.
func (s *Session) BeginFetch(parent context.Context, account repo.AccountName, now time.Time) (uint64, context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)

	s.seq++
	s.cancel = cancel
	s.account = account
	s.page = 1
	s.fetched = nil
	s.hasResult = false
	s.lastErr = nil
	s.loading = true
	s.touchedAt = now

	return s.seq, ctx
}

// CompleteFetch applies the outcome of the fetch identified by token. It returns
// false, leaving state untouched, when a newer fetch has been started since.
// A nil err with nil repos is a successful fetch of an empty account.
func (s *Session) CompleteFetch(token uint64, repos []*repo.Repository, err error, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.seq {
		return false
	}

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.loading = false
	s.touchedAt = now
	s.page = 1

	if err != nil {
		s.fetched = nil
		s.hasResult = false
		s.lastErr = repo.AsDomainError(err)
		return true
	}

	s.fetched = repos
	s.hasResult = true
	s.lastErr = nil
	return true
}

// AbortFetch completes the fetch identified by token without a result
func (s *Session) AbortFetch(token uint64, now time.Time) bool {
	return s.CompleteFetch(token, nil, errFetchAborted, now)
}

// FailFetch records a fetch that failed before it was sent, for an account name
// that cannot exist. Like BeginFetch it supersedes any fetch in flight and
// clears the list; the session is left without an account.
func (s *Session) FailFetch(err *repo.DomainError, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
	s.account = repo.AccountName{}
	s.page = 1
	s.fetched = nil
	s.hasResult = false
	s.lastErr = err
	s.loading = false
	s.touchedAt = now
}

// RejectInput records an input error without touching the current list
func (s *Session) RejectInput(err *repo.DomainError, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = err
	s.touchedAt = now
}

// SetSearch changes the filter text. The page resets to 1 only when the text actually changes.
func (s *Session) SetSearch(search string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchedAt = now
	if search == s.search {
		return false
	}
	s.search = search
	s.page = 1
	return true
}

// NextPage moves forward one page if there is one
func (s *Session) NextPage(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchedAt = now
	count := repo.PageCount(len(s.filteredLocked()), s.pageSize)
	current := repo.ClampPage(s.page, count)
	s.page = repo.NextPage(current, count)
	return s.page != current
}

// PrevPage moves back one page if not already on the first
func (s *Session) PrevPage(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchedAt = now
	count := repo.PageCount(len(s.filteredLocked()), s.pageSize)
	current := repo.ClampPage(s.page, count)
	s.page = repo.PrevPage(current)
	return s.page != current
}

// Close cancels any in-flight fetch
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.loading = false
}

// View derives the current view from raw state
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	canonical := repo.OriginalsOnly(s.fetched)
	filtered := repo.MatchText(canonical, s.search)
	page := repo.Paginate(filtered, s.pageSize, s.page)

	v := View{
		SessionID:     s.id.String(),
		Account:       s.account.String(),
		Search:        s.search,
		Page:          page,
		TotalFetched:  len(s.fetched),
		TotalOriginal: len(canonical),
		Loading:       s.loading,
		Err:           s.lastErr,
		Token:         s.seq,
	}

	switch {
	case s.hasResult && len(canonical) == 0:
		v.Notice = fmt.Sprintf("account %s has no public original repositories", s.account)
	case len(canonical) > 0 && len(filtered) == 0:
		v.Notice = fmt.Sprintf("No matches for %q", s.search)
	}

	return v
}

func (s *Session) filteredLocked() []*repo.Repository {
	return repo.MatchText(repo.OriginalsOnly(s.fetched), s.search)
}
