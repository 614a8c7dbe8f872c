package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
)

type memoryRepository struct {
	mu      sync.Mutex
	clock   int64
	entries map[string]*journal.Entry
	failing bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{clock: 1000, entries: make(map[string]*journal.Entry)}
}

func cloneEntry(e *journal.Entry) *journal.Entry {
	cp := *e
	cp.Tags = append([]string(nil), e.Tags...)
	return &cp
}

func (m *memoryRepository) Entries(_ context.Context, userID string) ([]*journal.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return nil, errors.New("repository unavailable")
	}
	out := make([]*journal.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, cloneEntry(e))
		}
	}
	journal.SortNewestFirst(out)
	return out, nil
}

func (m *memoryRepository) Save(_ context.Context, e *journal.Entry) (*journal.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return nil, errors.New("repository unavailable")
	}
	m.clock++
	cp := cloneEntry(e)
	cp.UpdatedAt = m.clock
	m.entries[cp.ID] = cp
	return cloneEntry(cp), nil
}

func (m *memoryRepository) Delete(_ context.Context, entryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errors.New("repository unavailable")
	}
	delete(m.entries, entryID)
	return nil
}

type fakeIdentity struct {
	user *journal.User
}

func (f *fakeIdentity) CurrentUser(_ context.Context) (*journal.User, error) {
	return f.user, nil
}

func (f *fakeIdentity) Login(_ context.Context, email, _ string) (*journal.User, error) {
	f.user = &journal.User{ID: "user-1", Email: email, Name: "Ann"}
	return f.user, nil
}

func (f *fakeIdentity) Signup(_ context.Context, email, _, name string) (*journal.User, error) {
	f.user = &journal.User{ID: "user-1", Email: email, Name: name}
	return f.user, nil
}

func (f *fakeIdentity) Logout(_ context.Context) error {
	f.user = nil
	return nil
}

func newTestService() (*Service, *memoryRepository) {
	repo := newMemoryRepository()
	return &Service{Identity: &fakeIdentity{}, Repository: repo}, repo
}

func TestSaveEntryAssignsIDAndDate(t *testing.T) {
	svc, _ := newTestService()

	saved, err := svc.SaveEntry(context.Background(), &journal.Entry{
		UserID:  "user-1",
		Content: "Had a great day",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if saved.Date == 0 {
		t.Fatalf("expected a default date")
	}
	if saved.UpdatedAt == 0 {
		t.Fatalf("expected updatedAt set at save time")
	}
}

func TestSaveEntryIdempotentExceptUpdatedAt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.SaveEntry(ctx, &journal.Entry{
		ID: "e1", UserID: "user-1", Title: "T", Content: "body", Date: 42,
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := svc.SaveEntry(ctx, &journal.Entry{
		ID: "e1", UserID: "user-1", Title: "T", Content: "body", Date: 42,
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if second.UpdatedAt <= first.UpdatedAt {
		t.Fatalf("updatedAt must strictly increase: %d then %d", first.UpdatedAt, second.UpdatedAt)
	}
	if first.ID != second.ID || first.Title != second.Title ||
		first.Content != second.Content || first.Date != second.Date {
		t.Fatalf("saves differ beyond updatedAt: %+v vs %+v", first, second)
	}
	if first.ID != "e1" || first.Date != 42 {
		t.Fatalf("id and date must pass through unchanged: %+v", first)
	}
}

func TestDeleteThenListExcludesEntry(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	saved, err := svc.SaveEntry(ctx, &journal.Entry{UserID: "user-1", Content: "going away"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := svc.DeleteEntry(ctx, saved.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	entries, err := svc.Entries(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, e := range entries {
		if e.ID == saved.ID {
			t.Fatalf("deleted entry still listed")
		}
	}
}

func TestEntriesScopedByOwner(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.SaveEntry(ctx, &journal.Entry{UserID: "user-1", Content: "mine"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := svc.SaveEntry(ctx, &journal.Entry{UserID: "user-2", Content: "theirs"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := svc.Entries(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	for _, e := range entries {
		if e.UserID != "user-1" {
			t.Fatalf("entry owned by %s leaked into user-1's list", e.UserID)
		}
	}
}

func TestTagsRoundTripDeduplicated(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	saved, err := svc.SaveEntry(ctx, &journal.Entry{
		UserID:  "user-1",
		Content: "tagged entry",
		Tags:    []string{"a", "b", "a"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := svc.Entries(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	counts := make(map[string]int)
	for _, tag := range entries[0].Tags {
		counts[tag]++
	}
	if counts["a"] != 1 || counts["b"] != 1 || len(entries[0].Tags) != 2 {
		t.Fatalf("expected tags a and b exactly once, got %v", entries[0].Tags)
	}
	_ = saved
}

func TestSaveEntryRejectsEmptyContent(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.SaveEntry(context.Background(), &journal.Entry{UserID: "user-1", Content: "   "}); err == nil {
		t.Fatalf("expected error for empty content")
	}
}

func TestSaveEntryRequiresOwner(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.SaveEntry(context.Background(), &journal.Entry{Content: "orphan"}); err == nil {
		t.Fatalf("expected error for entry without an owner")
	}
}
