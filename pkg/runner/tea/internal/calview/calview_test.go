package calview

import (
	"strings"
	"testing"
	"time"

	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
)

func TestMoveDayRollsAcrossMonths(t *testing.T) {
	s := NewState(time.Date(2024, time.March, 1, 10, 0, 0, 0, time.Local))

	s.MoveDay(-1)
	if s.Month().Month() != time.February || s.Selected() != 29 {
		t.Fatalf("expected Feb 29, got %s %d", s.Month().Month(), s.Selected())
	}

	s.MoveDay(1)
	if s.Month().Month() != time.March || s.Selected() != 1 {
		t.Fatalf("expected Mar 1, got %s %d", s.Month().Month(), s.Selected())
	}
}

func TestMoveMonthClampsCursor(t *testing.T) {
	s := NewState(time.Date(2024, time.March, 31, 9, 0, 0, 0, time.Local))

	s.MoveMonth(1) // April has 30 days
	if s.Selected() != 30 {
		t.Fatalf("expected cursor clamped to 30, got %d", s.Selected())
	}
}

func TestSelectedDateIsMidnight(t *testing.T) {
	s := NewState(time.Date(2024, time.March, 15, 23, 45, 0, 0, time.Local))

	d := s.SelectedDate()
	if d.Hour() != 0 || d.Day() != 15 {
		t.Fatalf("expected midnight on the 15th, got %v", d)
	}
}

func TestDaysCarryNewestMood(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)
	s := NewState(now)

	buckets := map[int][]*journal.Entry{
		15: {
			{ID: "newest", Mood: journal.MoodHappy},
			{ID: "older", Mood: journal.MoodSad},
		},
	}
	days := s.Days(buckets, now)

	var found bool
	for _, d := range days {
		if d.Day == 15 {
			found = true
			if d.Mood != journal.MoodHappy {
				t.Fatalf("expected newest entry's mood, got %q", d.Mood)
			}
			if d.Count != 2 {
				t.Fatalf("expected count 2, got %d", d.Count)
			}
		}
	}
	if !found {
		t.Fatalf("day with entries missing from render set")
	}
}

func TestRenderShowsMonthHeaderAndAllDays(t *testing.T) {
	month := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	out := Render(month, []Day{{Day: 15, Count: 1, Mood: journal.MoodHappy}}, DefaultOptions())

	if !strings.Contains(out, "March 2024") {
		t.Fatalf("expected month header, got %q", out)
	}
	if !strings.Contains(out, "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("expected weekday header, got %q", out)
	}
	if !strings.Contains(out, "31") {
		t.Fatalf("expected trailing day of March, got %q", out)
	}
}
