package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month grid for the given time, marking days that have
// entries. Bucketing uses local calendar days; the hour never matters.
func (pp *PrettyPrint) Calendar(on time.Time, entries ...*journal.Entry) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	pp.PrintMonth(then, entries...)
}

func (pp *PrettyPrint) PrintMonth(then time.Time, entries ...*journal.Entry) {
	buckets := journal.MonthBuckets(entries, then.Year(), then.Month())

	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)
	m := fmt.Sprintf("%s %d", then.Month().String(), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	days := journal.DaysIn(then.Year(), then.Month())

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	empty := color.New(color.Faint, color.FgWhite)

	for i := 1; i <= days; i++ {
		if dayEntries := buckets[i]; len(dayEntries) > 0 {
			_, _ = moodColor(dayEntries[0].Mood).Printf("%2d ", i)
		} else {
			_, _ = empty.Printf("%2d ", i)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// moodColor maps the day's newest entry to a color so the month reads as a
// mood map at a glance.
func moodColor(m journal.Mood) *color.Color {
	switch m {
	case journal.MoodHappy:
		return color.New(color.Bold, color.FgHiYellow)
	case journal.MoodExcited:
		return color.New(color.Bold, color.FgHiMagenta)
	case journal.MoodSad:
		return color.New(color.Bold, color.FgHiBlue)
	case journal.MoodAnxious:
		return color.New(color.Bold, color.FgHiRed)
	default:
		return color.New(color.Bold, color.FgHiWhite)
	}
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func PrevMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()-1, 1, 1, 0, 0, 0, then.Location())
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.Local).Weekday()
}
