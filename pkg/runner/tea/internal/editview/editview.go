// Package editview tracks the editor form state that is independent of the
// text widgets: which entry is open, field focus, mood cursor, delete
// confirmation, and the attached reflection.
package editview

import (
	"strings"
	"time"

	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
)

// Field identifies the focusable parts of the editor form.
type Field int

const (
	FieldTitle Field = iota
	FieldContent
	FieldTags
	FieldMood

	fieldCount
)

// State is the editor session for one entry.
type State struct {
	entryID string
	userID  string
	date    int64

	Focus            Field
	ConfirmingDelete bool
	Analysis         *journal.Analysis

	moodIdx int
}

var moods = journal.AllMoods()

// Begin opens the editor on an existing entry, or on a fresh entry for the
// given user and date when e is nil. New entries default to a neutral mood.
func Begin(e *journal.Entry, userID string, date time.Time) *State {
	s := &State{Focus: FieldTitle}
	if e == nil {
		s.userID = userID
		s.date = date.UnixMilli()
		return s
	}
	s.entryID = e.ID
	s.userID = e.UserID
	s.date = e.Date
	s.setMood(e.Mood)
	return s
}

// IsNew reports whether this session creates an entry.
func (s *State) IsNew() bool { return s.entryID == "" }

func (s *State) EntryID() string { return s.entryID }
func (s *State) Date() int64     { return s.date }

// Mood returns the mood under the cursor.
func (s *State) Mood() journal.Mood { return moods[s.moodIdx] }

func (s *State) setMood(m journal.Mood) {
	for i, candidate := range moods {
		if candidate == m {
			s.moodIdx = i
			return
		}
	}
	s.moodIdx = 0
}

// CycleMood moves the mood cursor, wrapping at either end.
func (s *State) CycleMood(delta int) {
	s.moodIdx = (s.moodIdx + delta + len(moods)) % len(moods)
}

// NextField advances focus, wrapping after the mood row. Moving focus always
// cancels a pending delete confirmation.
func (s *State) NextField() {
	s.Focus = (s.Focus + 1) % fieldCount
	s.ConfirmingDelete = false
}

func (s *State) PrevField() {
	s.Focus = (s.Focus - 1 + fieldCount) % fieldCount
	s.ConfirmingDelete = false
}

// BuildEntry assembles the entry to persist from the widget values. Tags are
// comma-separated free text; normalization drops blanks and duplicates.
func (s *State) BuildEntry(title, content, tags string) *journal.Entry {
	return &journal.Entry{
		ID:      s.entryID,
		UserID:  s.userID,
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
		Date:    s.date,
		Mood:    s.Mood(),
		Tags:    SplitTags(tags),
	}
}

// SplitTags parses the comma-separated tags field.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	return journal.NormalizeTags(parts)
}

// ApplyAnalysis attaches a reflection and prefills the form from it: the
// sentiment suggests a mood and the keywords merge into the tags field. The
// returned string is the new tags field value.
func (s *State) ApplyAnalysis(a *journal.Analysis, currentTags string) string {
	s.Analysis = a
	if a == nil {
		return currentTags
	}
	s.setMood(journal.SuggestMood(a.Sentiment))
	merged := journal.MergeTags(SplitTags(currentTags), a.Keywords)
	return strings.Join(merged, ", ")
}
