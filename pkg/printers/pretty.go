// Package printers renders journal entries, users, and reflections for the
// CLI commands. The full-screen UI has its own lipgloss styling; this package
// only covers the plain command output.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// User prints the signed-in identity, or a faint hint when logged out.
func (pp *PrettyPrint) User(u *journal.User) {
	if u == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("not signed in, run `mindscribe login`")
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), u.Name)
	tbl.AddRow(bold.Sprint("Email"), u.Email)
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), u.ID)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Entries prints the journal newest first, one row per entry.
func (pp *PrettyPrint) Entries(entries ...*journal.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48

	for _, e := range entries {
		day := time.UnixMilli(e.Date).Local().Format("2006-01-02")
		row := []interface{}{
			faint.Sprint(day),
			e.Mood.Emoji(),
			e.DisplayTitle(),
			faint.Sprint(strings.Join(e.Tags, ", ")),
		}
		if pp.ShowID {
			row = append([]interface{}{faint.Sprint(e.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Entry prints a single entry in full.
func (pp *PrettyPrint) Entry(e *journal.Entry) {
	if e == nil {
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	day := time.UnixMilli(e.Date).Local().Format("Monday, January 2 2006")
	_, _ = bold.Printf("%s %s\n", e.Mood.Emoji(), e.DisplayTitle())
	_, _ = faint.Println(day)
	if len(e.Tags) > 0 {
		_, _ = faint.Printf("tags: %s\n", strings.Join(e.Tags, ", "))
	}
	fmt.Println("")
	fmt.Println(e.Content)
	fmt.Println("")
}

// Analysis prints a model reflection.
func (pp *PrettyPrint) Analysis(a *journal.Analysis) {
	if a == nil {
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 72
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("Summary"), a.Summary)
	tbl.AddRow(bold.Sprint("Sentiment"), a.Sentiment)
	tbl.AddRow(bold.Sprint("Advice"), a.Advice)
	tbl.AddRow(bold.Sprint("Keywords"), strings.Join(a.Keywords, ", "))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
