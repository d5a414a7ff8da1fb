package persistence_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"repodash/internal/domain/dashboard"
	"repodash/internal/domain/repo"
	"repodash/internal/infrastructure/persistence"
)

func record(t *testing.T, account string, at time.Time) *repo.FetchRecord {
	t.Helper()
	r, err := repo.NewSuccessRecord(account, 1, 1, at)
	if err != nil {
		t.Fatalf("NewSuccessRecord() error: %v", err)
	}
	return r
}

func accounts(records []*repo.FetchRecord) string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Account)
	}
	return fmt.Sprint(out)
}

func TestMemoryFetchHistory_NewestFirst(t *testing.T) {
	ctx := context.Background()
	h := persistence.NewMemoryFetchHistoryRepository(10)
	base := time.Now()

	for i, name := range []string{"a", "b", "c"} {
		if err := h.Save(ctx, record(t, name, base.Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
	}

	got, err := h.ListRecent(ctx, 0)
	if err != nil {
		t.Fatalf("ListRecent() error: %v", err)
	}
	if accounts(got) != "[c b a]" {
		t.Errorf("ListRecent(0) = %s, want [c b a]", accounts(got))
	}

	got, _ = h.ListRecent(ctx, 2)
	if accounts(got) != "[c b]" {
		t.Errorf("ListRecent(2) = %s, want [c b]", accounts(got))
	}
}

func TestMemoryFetchHistory_Empty(t *testing.T) {
	h := persistence.NewMemoryFetchHistoryRepository(3)
	got, err := h.ListRecent(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListRecent() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestMemoryFetchHistory_OverwritesOldest(t *testing.T) {
	ctx := context.Background()
	h := persistence.NewMemoryFetchHistoryRepository(3)

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		_ = h.Save(ctx, record(t, name, time.Now()))
	}

	got, _ := h.ListRecent(ctx, 10)
	if accounts(got) != "[e d c]" {
		t.Errorf("ListRecent = %s, want [e d c]", accounts(got))
	}
}

func TestMemoryFetchHistory_CopiesRecords(t *testing.T) {
	ctx := context.Background()
	h := persistence.NewMemoryFetchHistoryRepository(3)

	r := record(t, "a", time.Now())
	_ = h.Save(ctx, r)
	r.Account = "mutated"

	got, _ := h.ListRecent(ctx, 1)
	if got[0].Account != "a" {
		t.Errorf("stored record changed through caller pointer: %s", got[0].Account)
	}
	got[0].Account = "mutated-again"

	again, _ := h.ListRecent(ctx, 1)
	if again[0].Account != "a" {
		t.Errorf("stored record changed through returned pointer: %s", again[0].Account)
	}
}

func TestMemorySessionRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemorySessionRepository()
	s := dashboard.NewSession(10, time.Now())

	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	found, err := store.FindByID(ctx, s.ID())
	if err != nil || found != s {
		t.Fatalf("FindByID() = %v, %v", found, err)
	}

	if n, _ := store.Count(ctx); n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}

	if err := store.Delete(ctx, s.ID()); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := store.FindByID(ctx, s.ID()); !dashboard.IsNotFound(err) {
		t.Errorf("FindByID after delete error = %v, want not found", err)
	}
	if err := store.Delete(ctx, s.ID()); !dashboard.IsNotFound(err) {
		t.Errorf("second Delete error = %v, want not found", err)
	}
}

func TestMemorySessionRepo_DeleteIdle(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemorySessionRepository()
	now := time.Now()

	idle := dashboard.NewSession(10, now.Add(-time.Hour))
	fresh := dashboard.NewSession(10, now)
	busy := dashboard.NewSession(10, now.Add(-time.Hour))

	account, err := repo.NewAccountName("google")
	if err != nil {
		t.Fatal(err)
	}
	busy.BeginFetch(ctx, account, now.Add(-time.Hour))

	for _, s := range []*dashboard.Session{idle, fresh, busy} {
		_ = store.Save(ctx, s)
	}

	removed, err := store.DeleteIdle(ctx, now.Add(-30*time.Minute))
	if err != nil {
		t.Fatalf("DeleteIdle() error: %v", err)
	}
	if len(removed) != 1 || removed[0] != idle {
		t.Fatalf("DeleteIdle removed %d sessions, want only the idle one", len(removed))
	}

	if n, _ := store.Count(ctx); n != 2 {
		t.Errorf("Count() = %d, want 2 (fresh and loading sessions kept)", n)
	}
	if _, err := store.FindByID(ctx, busy.ID()); err != nil {
		t.Errorf("loading session should survive the sweep: %v", err)
	}
}
