package journal

import (
	"sort"
	"strings"
	"time"
)

// User is the read-only projection of the auth collaborator's session user.
// It lives for the duration of a signed-in session and is discarded on
// sign-out.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

// Entry is a single journal record. ID and UserID are immutable once the
// entry has been saved; Date is set at creation and only rewritten when the
// caller does so explicitly; UpdatedAt is refreshed by the repository on
// every save.
type Entry struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Date      int64    `json:"date"` // milliseconds since epoch
	UpdatedAt int64    `json:"updatedAt"`
	Mood      Mood     `json:"mood,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

const untitled = "Untitled Entry"

// DisplayTitle returns the title, or the untitled placeholder when blank.
func (e *Entry) DisplayTitle() string {
	if t := strings.TrimSpace(e.Title); t != "" {
		return t
	}
	return untitled
}

// Day returns the entry's date in the local time zone.
func (e *Entry) Day() time.Time {
	return time.UnixMilli(e.Date).Local()
}

// SameDay reports whether the entry's date falls on the given local
// year/month/day, ignoring the time-of-day component.
func (e *Entry) SameDay(then time.Time) bool {
	d := e.Day()
	return d.Day() == then.Day() && d.Month() == then.Month() && d.Year() == then.Year()
}

// Preview returns the first line of content, truncated for list rows.
func (e *Entry) Preview(max int) string {
	c := e.Content
	if i := strings.IndexByte(c, '\n'); i >= 0 {
		c = c[:i]
	}
	r := []rune(c)
	if max > 0 && len(r) > max {
		return string(r[:max-1]) + "…"
	}
	return c
}

func (e *Entry) matches(q string) bool {
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Content), q)
}

// Filter returns the entries whose title or content contains the query,
// case-insensitively. An empty query returns the input unchanged.
func Filter(entries []*Entry, query string) []*Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if e != nil && e.matches(q) {
			out = append(out, e)
		}
	}
	return out
}

// SortNewestFirst orders entries by descending date, breaking ties by ID so
// the order is stable across reloads.
func SortNewestFirst(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date == entries[j].Date {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].Date > entries[j].Date
	})
}

// NormalizeTags trims, drops empties, and de-duplicates while keeping the
// first occurrence's position.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// MergeTags unions extra tags into the existing set, de-duplicated.
func MergeTags(tags, extra []string) []string {
	return NormalizeTags(append(append([]string{}, tags...), extra...))
}
