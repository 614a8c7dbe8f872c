package editview

import (
	"testing"
	"time"

	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
)

func TestBeginNewEntryDefaultsNeutral(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	s := Begin(nil, "user-1", day)

	if !s.IsNew() {
		t.Fatalf("expected a new-entry session")
	}
	if s.Mood() != journal.MoodNeutral {
		t.Fatalf("new entries should start neutral, got %q", s.Mood())
	}
	if s.Date() != day.UnixMilli() {
		t.Fatalf("expected date %d, got %d", day.UnixMilli(), s.Date())
	}
}

func TestBeginExistingEntryKeepsMoodAndDate(t *testing.T) {
	s := Begin(&journal.Entry{
		ID: "e1", UserID: "user-1", Date: 42, Mood: journal.MoodSad,
	}, "", time.Time{})

	if s.IsNew() {
		t.Fatalf("expected an edit session")
	}
	if s.Mood() != journal.MoodSad {
		t.Fatalf("expected existing mood preserved, got %q", s.Mood())
	}
	built := s.BuildEntry("T", "body", "")
	if built.ID != "e1" || built.UserID != "user-1" || built.Date != 42 {
		t.Fatalf("identity fields must pass through: %+v", built)
	}
}

func TestCycleMoodWraps(t *testing.T) {
	s := Begin(nil, "user-1", time.Now())

	for range journal.AllMoods() {
		s.CycleMood(1)
	}
	if s.Mood() != journal.MoodNeutral {
		t.Fatalf("full cycle should return to neutral, got %q", s.Mood())
	}
	s.CycleMood(-1)
	if s.Mood() != journal.MoodAnxious {
		t.Fatalf("expected wrap to the last mood, got %q", s.Mood())
	}
}

func TestNextFieldCancelsDeleteConfirmation(t *testing.T) {
	s := Begin(nil, "user-1", time.Now())
	s.ConfirmingDelete = true
	s.NextField()
	if s.ConfirmingDelete {
		t.Fatalf("focus change must cancel pending delete")
	}
	if s.Focus != FieldContent {
		t.Fatalf("expected focus on content, got %v", s.Focus)
	}
}

func TestBuildEntryNormalizesTags(t *testing.T) {
	s := Begin(nil, "user-1", time.Now())
	e := s.BuildEntry("  My Day  ", "it was fine", " a, b ,a,  ")

	if e.Title != "My Day" {
		t.Fatalf("expected trimmed title, got %q", e.Title)
	}
	if len(e.Tags) != 2 || e.Tags[0] != "a" || e.Tags[1] != "b" {
		t.Fatalf("expected deduped tags [a b], got %v", e.Tags)
	}
}

func TestApplyAnalysisPrefillsMoodAndTags(t *testing.T) {
	s := Begin(nil, "user-1", time.Now())
	tags := s.ApplyAnalysis(&journal.Analysis{
		Summary:   "A hard but hopeful day.",
		Sentiment: "Anxious but excited",
		Advice:    "Breathe.",
		Keywords:  []string{"work", "deadlines", "hope"},
	}, "work, family")

	if s.Mood() != journal.MoodAnxious {
		t.Fatalf("expected anxious suggestion, got %q", s.Mood())
	}
	if tags != "work, family, deadlines, hope" {
		t.Fatalf("unexpected merged tags %q", tags)
	}
	if s.Analysis == nil {
		t.Fatalf("expected analysis retained for the overlay")
	}
}
