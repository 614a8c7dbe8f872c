package journal

import (
	"testing"
	"time"
)

func TestDisplayTitle(t *testing.T) {
	e := &Entry{Content: "Had a great day"}
	if got := e.DisplayTitle(); got != "Untitled Entry" {
		t.Fatalf("expected untitled placeholder, got %q", got)
	}
	e.Title = "  Morning pages  "
	if got := e.DisplayTitle(); got != "Morning pages" {
		t.Fatalf("unexpected display title: %q", got)
	}
}

func TestFilterMatchesTitleAndContent(t *testing.T) {
	entries := []*Entry{
		{ID: "a", Title: "Beach Day", Content: "sand everywhere"},
		{ID: "b", Title: "work", Content: "Long STANDUP again"},
		{ID: "c", Title: "", Content: "quiet evening"},
	}

	got := Filter(entries, "standup")
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected case-insensitive content match on b, got %v", got)
	}

	got = Filter(entries, "BEACH")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected title match on a, got %v", got)
	}

	if got = Filter(entries, "  "); len(got) != 3 {
		t.Fatalf("blank query should return everything, got %d", len(got))
	}
	if got = Filter(entries, "nomatch"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestSortNewestFirst(t *testing.T) {
	entries := []*Entry{
		{ID: "old", Date: 1000},
		{ID: "new", Date: 3000},
		{ID: "mid", Date: 2000},
	}
	SortNewestFirst(entries)
	want := []string{"new", "mid", "old"}
	for i, id := range want {
		if entries[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, entries[i].ID)
		}
	}
}

func TestNormalizeTagsDedup(t *testing.T) {
	got := NormalizeTags([]string{"a", "b", "a", " ", "b", "c"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestMergeTagsUnions(t *testing.T) {
	got := MergeTags([]string{"calm", "walk"}, []string{"walk", "nature", "calm"})
	if len(got) != 3 {
		t.Fatalf("expected union of 3 tags, got %v", got)
	}
	counts := make(map[string]int)
	for _, tag := range got {
		counts[tag]++
	}
	for _, tag := range []string{"calm", "walk", "nature"} {
		if counts[tag] != 1 {
			t.Fatalf("expected %q exactly once, got %v", tag, got)
		}
	}
}

func TestSameDayIgnoresHour(t *testing.T) {
	morning := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)
	e := &Entry{Date: morning.UnixMilli()}
	if !e.SameDay(time.Date(2024, time.March, 15, 23, 59, 0, 0, time.Local)) {
		t.Fatalf("expected same-day match regardless of hour")
	}
	if e.SameDay(time.Date(2024, time.March, 16, 10, 0, 0, 0, time.Local)) {
		t.Fatalf("did not expect match on the next day")
	}
}

func TestPreviewFirstLine(t *testing.T) {
	e := &Entry{Content: "first line\nsecond line"}
	if got := e.Preview(80); got != "first line" {
		t.Fatalf("expected first line only, got %q", got)
	}
	e = &Entry{Content: "abcdefghij"}
	if got := e.Preview(5); got != "abcd…" {
		t.Fatalf("expected truncation, got %q", got)
	}
}
