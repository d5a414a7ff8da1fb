package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"repodash/internal/application/dto"
	"repodash/internal/domain/dashboard"
	"repodash/internal/domain/events"
	"repodash/internal/domain/repo"
)

// DefaultSweepInterval is used by RunJanitor when no usable interval is given
const DefaultSweepInterval = time.Minute

var errFetchIncomplete = errors.New("fetch returned without a result")

// DashboardOptions configures a DashboardService
type DashboardOptions struct {
	// DefaultAccount is fetched when a session is created. Empty disables the pre-fetch.
	DefaultAccount string
	// SessionTTL is how long an untouched session survives
	SessionTTL time.Duration
	// Now overrides the clock in tests
	Now func() time.Time
}

// DashboardService handles the stateful dashboard use cases: account submission,
// filtering and paging on a session whose view is always derived.
type DashboardService struct {
	sessions  dashboard.SessionRepo
	repos     *RepositoryService
	publisher events.Publisher
	opts      DashboardOptions
}

// NewDashboardService creates a new dashboard service. publisher may be nil.
func NewDashboardService(sessions dashboard.SessionRepo, repos *RepositoryService, publisher events.Publisher, opts DashboardOptions) *DashboardService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * time.Minute
	}
	return &DashboardService{
		sessions:  sessions,
		repos:     repos,
		publisher: publisher,
		opts:      opts,
	}
}

// CreateSession opens a new session and loads the default account into it
func (s *DashboardService) CreateSession(ctx context.Context) (*dto.DashboardViewResponse, error) {
	session := dashboard.NewSession(s.repos.PageSize(), s.opts.Now())
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	log.Info().Str("session_id", session.ID().String()).Msg("dashboard session created")
	s.viewChanged(ctx, session, dashboard.ReasonSessionCreated)

	if s.opts.DefaultAccount != "" {
		account, err := repo.NewAccountName(s.opts.DefaultAccount)
		if err != nil {
			log.Warn().Err(err).Str("account", s.opts.DefaultAccount).Msg("default account is invalid, skipping pre-fetch")
		} else {
			s.runFetch(ctx, session, account)
		}
	}

	return ToViewResponse(session.View()), nil
}

// GetView returns the current derived view of a session
func (s *DashboardService) GetView(ctx context.Context, sessionID string) (*dto.DashboardViewResponse, error) {
	session, err := s.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return ToViewResponse(session.View()), nil
}

// SubmitAccount fetches a new account into the session. Input errors and fetch
// failures are reported on the view, never as a returned error.
func (s *DashboardService) SubmitAccount(ctx context.Context, sessionID, rawAccount string) (*dto.DashboardViewResponse, error) {
	session, err := s.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	account, err := repo.NewAccountName(rawAccount)
	if err != nil {
		de := repo.AsDomainError(err)
		if de.Code == repo.CodeInvalidAccount {
			session.RejectInput(de, s.opts.Now())
			s.viewChanged(ctx, session, dashboard.ReasonInputRejected)
		} else {
			session.FailFetch(de, s.opts.Now())
			s.viewChanged(ctx, session, dashboard.ReasonFetchCompleted)
		}
		return ToViewResponse(session.View()), nil
	}

	s.runFetch(ctx, session, account)
	return ToViewResponse(session.View()), nil
}

// SetSearch changes the filter text of a session
func (s *DashboardService) SetSearch(ctx context.Context, sessionID, search string) (*dto.DashboardViewResponse, error) {
	session, err := s.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.SetSearch(search, s.opts.Now()) {
		s.viewChanged(ctx, session, dashboard.ReasonSearchChanged)
	}
	return ToViewResponse(session.View()), nil
}

// NextPage moves a session forward one page when possible
func (s *DashboardService) NextPage(ctx context.Context, sessionID string) (*dto.DashboardViewResponse, error) {
	session, err := s.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.NextPage(s.opts.Now()) {
		s.viewChanged(ctx, session, dashboard.ReasonPageChanged)
	}
	return ToViewResponse(session.View()), nil
}

// PrevPage moves a session back one page when possible
func (s *DashboardService) PrevPage(ctx context.Context, sessionID string) (*dto.DashboardViewResponse, error) {
	session, err := s.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.PrevPage(s.opts.Now()) {
		s.viewChanged(ctx, session, dashboard.ReasonPageChanged)
	}
	return ToViewResponse(session.View()), nil
}

// CloseSession removes a session and cancels its in-flight fetch
func (s *DashboardService) CloseSession(ctx context.Context, sessionID string) error {
	session, err := s.find(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.sessions.Delete(ctx, session.ID()); err != nil {
		return err
	}
	session.Close()

	log.Info().Str("session_id", sessionID).Msg("dashboard session closed")
	s.publish(ctx, dashboard.NewSessionClosedEvent(sessionID, s.opts.Now()))
	return nil
}

// SweepIdle removes sessions that have been untouched for longer than the TTL
func (s *DashboardService) SweepIdle(ctx context.Context) (int, error) {
	cutoff := s.opts.Now().Add(-s.opts.SessionTTL)
	removed, err := s.sessions.DeleteIdle(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep idle sessions: %w", err)
	}

	for _, session := range removed {
		session.Close()
		s.publish(ctx, dashboard.NewSessionClosedEvent(session.ID().String(), s.opts.Now()))
	}
	if len(removed) > 0 {
		log.Info().Int("count", len(removed)).Msg("expired idle dashboard sessions")
	}
	return len(removed), nil
}

// RunJanitor sweeps idle sessions every interval until ctx is done.
// A non-positive interval falls back to DefaultSweepInterval.
func (s *DashboardService) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepIdle(ctx); err != nil {
				log.Error().Err(err).Msg("session janitor failed")
			}
		}
	}
}

// runFetch performs one sequenced fetch. The deferred completion always clears
// the loading flag of the fetch it started, and is ignored once a newer fetch exists.
func (s *DashboardService) runFetch(ctx context.Context, session *dashboard.Session, account repo.AccountName) {
	token, fetchCtx := session.BeginFetch(context.WithoutCancel(ctx), account, s.opts.Now())
	s.viewChanged(ctx, session, dashboard.ReasonFetchStarted)

	var (
		repos    []*repo.Repository
		fetchErr = errFetchIncomplete
	)
	defer func() {
		if session.CompleteFetch(token, repos, fetchErr, s.opts.Now()) {
			s.viewChanged(ctx, session, dashboard.ReasonFetchCompleted)
			return
		}
		log.Debug().
			Str("session_id", session.ID().String()).
			Str("account", account.String()).
			Uint64("token", token).
			Msg("discarded superseded fetch result")
	}()

	repos, fetchErr = s.repos.Fetch(fetchCtx, account)
}

func (s *DashboardService) find(ctx context.Context, sessionID string) (*dashboard.Session, error) {
	id, err := dashboard.ParseSessionID(sessionID)
	if err != nil {
		return nil, dashboard.ErrSessionNotFound(sessionID)
	}
	return s.sessions.FindByID(ctx, id)
}

func (s *DashboardService) viewChanged(ctx context.Context, session *dashboard.Session, reason string) {
	s.publish(ctx, dashboard.NewViewChangedEvent(session.ID().String(), reason, s.opts.Now()))
}

func (s *DashboardService) publish(ctx context.Context, event events.DomainEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Dispatch(context.WithoutCancel(ctx), event); err != nil {
		log.Error().Err(err).Str("event_type", event.EventType()).Msg("failed to publish event")
	}
}
