// Package calview provides the month grid for the calendar view.
package calview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
)

// Day describes a single day rendered in the grid.
type Day struct {
	Day        int
	Mood       journal.Mood
	Count      int
	IsToday    bool
	IsSelected bool
}

// Options controls grid styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	MoodStyles    map[journal.Mood]lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns the built-in styling for the grid.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Reverse(true),
		MoodStyles: map[journal.Mood]lipgloss.Style{
			journal.MoodHappy:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
			journal.MoodExcited: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
			journal.MoodNeutral: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
			journal.MoodSad:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
			journal.MoodAnxious: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		},
		ShowHeader: true,
	}
}

// State tracks the visible month and the cursor day.
type State struct {
	month    time.Time // first of the month, local
	selected int       // 1-based day of month
}

// NewState positions the cursor on the given local day.
func NewState(now time.Time) *State {
	local := now.Local()
	return &State{
		month:    time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, time.Local),
		selected: local.Day(),
	}
}

func (s *State) Month() time.Time { return s.month }
func (s *State) Selected() int    { return s.selected }

// SelectedDate returns midnight local time on the cursor day.
func (s *State) SelectedDate() time.Time {
	return time.Date(s.month.Year(), s.month.Month(), s.selected, 0, 0, 0, 0, time.Local)
}

// MoveDay moves the cursor, rolling into the previous or next month when the
// cursor walks off either end.
func (s *State) MoveDay(delta int) {
	target := s.selected + delta
	for target < 1 {
		s.MoveMonth(-1)
		target += journal.DaysIn(s.month.Year(), s.month.Month())
	}
	for target > journal.DaysIn(s.month.Year(), s.month.Month()) {
		target -= journal.DaysIn(s.month.Year(), s.month.Month())
		s.MoveMonth(1)
	}
	s.selected = target
}

// MoveMonth shifts the visible month, clamping the cursor to month length.
func (s *State) MoveMonth(delta int) {
	s.month = s.month.AddDate(0, delta, 0)
	if max := journal.DaysIn(s.month.Year(), s.month.Month()); s.selected > max {
		s.selected = max
	}
}

// Days converts a month's entry buckets into renderable days. The mood shown
// for a day is the newest entry's mood, matching the list order.
func (s *State) Days(buckets map[int][]*journal.Entry, now time.Time) []Day {
	local := now.Local()
	today := 0
	if local.Year() == s.month.Year() && local.Month() == s.month.Month() {
		today = local.Day()
	}

	days := make([]Day, 0, len(buckets))
	for d := 1; d <= journal.DaysIn(s.month.Year(), s.month.Month()); d++ {
		entries := buckets[d]
		day := Day{
			Day:        d,
			Count:      len(entries),
			IsToday:    d == today,
			IsSelected: d == s.selected,
		}
		if len(entries) > 0 {
			day.Mood = entries[0].Mood
		}
		if len(entries) > 0 || day.IsToday || day.IsSelected {
			days = append(days, day)
		}
	}
	return days
}

// Render produces the multi-line grid for the state's month.
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := journal.DaysIn(month.Year(), month.Month())

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowHeader {
		title := fmt.Sprintf("%s %d", month.Month().String(), month.Year())
		lines = append(lines,
			opts.HeaderStyle.Render(title),
			opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"),
		)
	}

	startOffset := int(first.Weekday())
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIdx := row*7 + col
			day := cellIdx - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.EmptyStyle
	if info.Count > 0 {
		if moodStyle, ok := opts.MoodStyles[info.Mood]; ok {
			style = moodStyle
		} else {
			style = opts.MoodStyles[journal.MoodNeutral]
		}
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
