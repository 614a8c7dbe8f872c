package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
)

const entriesTable = "journal_entries"

// EntryClient is the entry repository over the hosted table API. Queries are
// always scoped by user id; the provider's row-level access policy is the
// authority on ownership.
type EntryClient struct {
	base    string
	anonKey string
	client  *http.Client
	cache   *SessionCache
}

func NewEntryClient(cfg *Config, cache *SessionCache) *EntryClient {
	return &EntryClient{
		base:    strings.TrimRight(cfg.BackendURL, "/"),
		anonKey: cfg.AnonKey,
		client:  &http.Client{},
		cache:   cache,
	}
}

// entryRow mirrors the journal_entries table shape. It never leaks past
// this package.
type entryRow struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Date      Millis   `json:"date"`
	UpdatedAt Millis   `json:"updated_at"`
	Mood      string   `json:"mood,omitempty"`
	Tags      []string `json:"tags"`
}

func (r *entryRow) toEntry(now time.Time) *journal.Entry {
	mood, err := journal.ParseMood(r.Mood)
	if err != nil {
		log.Printf("backend: entry %s: %v", r.ID, err)
	}
	date := int64(r.Date)
	if date == 0 {
		date = now.UnixMilli()
	}
	updated := int64(r.UpdatedAt)
	if updated == 0 {
		updated = now.UnixMilli()
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &journal.Entry{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		Date:      date,
		UpdatedAt: updated,
		Mood:      mood,
		Tags:      journal.NormalizeTags(tags),
	}
}

func rowFrom(e *journal.Entry, updatedAt int64) entryRow {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return entryRow{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		Content:   e.Content,
		Date:      Millis(e.Date),
		UpdatedAt: Millis(updatedAt),
		Mood:      e.Mood.String(),
		Tags:      tags,
	}
}

type tableFailure struct {
	Message string `json:"message"`
	Msg     string `json:"msg"`
	Details string `json:"details"`
}

func repositoryErrorFrom(op string, status int, body []byte) *RepositoryError {
	f := tableFailure{}
	_ = json.Unmarshal(body, &f)
	for _, s := range []string{f.Message, f.Msg, f.Details} {
		if s != "" {
			return &RepositoryError{Op: op, Message: s}
		}
	}
	return &RepositoryError{Op: op, Message: http.StatusText(status)}
}

func (c *EntryClient) do(ctx context.Context, method, path string, body interface{}, prefer string) (int, []byte, error) {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		buf = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, buf)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if token := c.cache.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, data, nil
}

// Entries lists the user's entries, newest date first.
func (c *EntryClient) Entries(ctx context.Context, userID string) ([]*journal.Entry, error) {
	path := "/rest/v1/" + entriesTable +
		"?select=*&user_id=eq." + url.QueryEscape(userID) +
		"&order=date.desc"
	status, body, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		log.Printf("backend: error fetching entries: %v", err)
		return nil, &RepositoryError{Op: "list entries", Message: err.Error()}
	}
	if status != http.StatusOK {
		log.Printf("backend: fetching entries returned status %d", status)
		return nil, repositoryErrorFrom("list entries", status, body)
	}

	var rows []entryRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &RepositoryError{Op: "list entries", Message: err.Error()}
	}

	now := time.Now()
	entries := make([]*journal.Entry, 0, len(rows))
	for i := range rows {
		if rows[i].UserID != userID {
			// the access policy should make this impossible
			log.Printf("backend: dropping entry %s owned by another user", rows[i].ID)
			continue
		}
		entries = append(entries, rows[i].toEntry(now))
	}
	journal.SortNewestFirst(entries)
	return entries, nil
}

// Save upserts the entry keyed by id, rewriting every column and refreshing
// updated_at to now. The returned entry carries the new timestamp.
func (c *EntryClient) Save(ctx context.Context, e *journal.Entry) (*journal.Entry, error) {
	updatedAt := time.Now().UnixMilli()
	row := rowFrom(e, updatedAt)

	path := "/rest/v1/" + entriesTable + "?on_conflict=id"
	status, body, err := c.do(ctx, http.MethodPost, path, row, "resolution=merge-duplicates")
	if err != nil {
		log.Printf("backend: error saving entry: %v", err)
		return nil, &RepositoryError{Op: "save entry", Message: err.Error()}
	}
	if status != http.StatusOK && status != http.StatusCreated && status != http.StatusNoContent {
		log.Printf("backend: saving entry returned status %d", status)
		return nil, repositoryErrorFrom("save entry", status, body)
	}

	saved := *e
	saved.UpdatedAt = updatedAt
	return &saved, nil
}

// Delete removes the entry by primary key. Ownership enforcement is the
// provider's access policy, not this client.
func (c *EntryClient) Delete(ctx context.Context, entryID string) error {
	path := "/rest/v1/" + entriesTable + "?id=eq." + url.QueryEscape(entryID)
	status, body, err := c.do(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		log.Printf("backend: error deleting entry: %v", err)
		return &RepositoryError{Op: "delete entry", Message: err.Error()}
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		log.Printf("backend: deleting entry returned status %d", status)
		return repositoryErrorFrom("delete entry", status, body)
	}
	return nil
}
