package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"repodash/internal/domain/dashboard"
	"repodash/internal/domain/events"
	"repodash/internal/domain/repo"
	"repodash/internal/domain/sidebar"
)

// Mock implementations

type mockSource struct {
	mu      sync.Mutex
	repos   map[string][]*repo.Repository
	errs    map[string]error
	block   map[string]chan struct{}
	entered chan string
	calls   []string
}

func newMockSource() *mockSource {
	return &mockSource{
		repos: make(map[string][]*repo.Repository),
		errs:  make(map[string]error),
		block: make(map[string]chan struct{}),
	}
}

func (m *mockSource) FetchAccountRepositories(ctx context.Context, account repo.AccountName) ([]*repo.Repository, error) {
	m.mu.Lock()
	m.calls = append(m.calls, account.String())
	release := m.block[account.String()]
	repos, err := m.repos[account.String()], m.errs[account.String()]
	m.mu.Unlock()

	if release != nil {
		if m.entered != nil {
			m.entered <- account.String()
		}
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return repos, err
}

func (m *mockSource) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (p *recordingPublisher) Dispatch(ctx context.Context, event events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) ofType(eventType string) []events.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.DomainEvent
	for _, e := range p.events {
		if e.EventType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

func (p *recordingPublisher) reasons() []string {
	var out []string
	for _, e := range p.ofType(dashboard.EventTypeViewChanged) {
		out = append(out, e.(*dashboard.ViewChangedEvent).Reason)
	}
	return out
}

func (p *recordingPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

type mockSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*dashboard.Session
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]*dashboard.Session)}
}

func (m *mockSessionRepo) Save(ctx context.Context, s *dashboard.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID().String()] = s
	return nil
}

func (m *mockSessionRepo) FindByID(ctx context.Context, id dashboard.SessionID) (*dashboard.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id.String()]
	if !ok {
		return nil, dashboard.ErrSessionNotFound(id.String())
	}
	return s, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, id dashboard.SessionID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id.String()]; !ok {
		return dashboard.ErrSessionNotFound(id.String())
	}
	delete(m.sessions, id.String())
	return nil
}

func (m *mockSessionRepo) DeleteIdle(ctx context.Context, cutoff time.Time) ([]*dashboard.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed []*dashboard.Session
	for key, s := range m.sessions {
		if s.Loading() || !s.TouchedAt().Before(cutoff) {
			continue
		}
		delete(m.sessions, key)
		removed = append(removed, s)
	}
	return removed, nil
}

func (m *mockSessionRepo) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions), nil
}

type mockWeather struct {
	weather *sidebar.Weather
	err     error
	mu      sync.Mutex
	got     sidebar.Coordinates
}

func (m *mockWeather) CurrentWeather(ctx context.Context, at sidebar.Coordinates) (*sidebar.Weather, error) {
	m.mu.Lock()
	m.got = at
	m.mu.Unlock()
	return m.weather, m.err
}

type mockImages struct {
	url string
	err error
}

func (m *mockImages) RandomImageURL(ctx context.Context) (string, error) {
	return m.url, m.err
}

type mockHistory struct {
	mu        sync.Mutex
	saved     []*repo.FetchRecord
	lastLimit int
	err       error
}

func (m *mockHistory) Save(ctx context.Context, r *repo.FetchRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, r)
	return nil
}

func (m *mockHistory) ListRecent(ctx context.Context, limit int) ([]*repo.FetchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*repo.FetchRecord, 0, len(m.saved))
	for i := len(m.saved) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.saved[i])
	}
	return out, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Helpers

func mustAccount(t *testing.T, name string) repo.AccountName {
	t.Helper()
	a, err := repo.NewAccountName(name)
	if err != nil {
		t.Fatalf("NewAccountName(%q) error: %v", name, err)
	}
	return a
}

// makeRepos builds originals named prefix-01.. followed by forks named prefix-fork-01..
func makeRepos(t *testing.T, prefix string, originals, forks int) []*repo.Repository {
	t.Helper()
	var out []*repo.Repository
	id := int64(1)
	add := func(name string, fork bool) {
		r, err := repo.NewRepository(id, name, nil, fork, 1, 0, nil, time.Now(), "https://github.com/"+prefix+"/"+name)
		if err != nil {
			t.Fatalf("NewRepository(%s) error: %v", name, err)
		}
		out = append(out, r)
		id++
	}
	for i := 1; i <= originals; i++ {
		add(fmt.Sprintf("%s-%02d", prefix, i), false)
	}
	for i := 1; i <= forks; i++ {
		add(fmt.Sprintf("%s-fork-%02d", prefix, i), true)
	}
	return out
}
