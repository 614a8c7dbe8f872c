// Package get lists journal entries on the command line.
package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Arjun1106030909119/MindScribe/pkg/app"
	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
	"github.com/Arjun1106030909119/MindScribe/pkg/printers"
)

type Get struct {
	ShowID   bool
	Query    string
	Calendar bool
	Month    string // YYYY-MM, defaults to the current month
	Service  *app.Service
}

const layoutMonth = "2006-01"

func (g *Get) Do(ctx context.Context) error {
	if g.Service == nil {
		return errors.New("can not get entries, no service")
	}

	user, err := g.Service.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("not signed in, run `mindscribe login`")
	}

	entries, err := g.Service.Entries(ctx, user.ID)
	if err != nil {
		return err
	}
	entries = journal.Filter(entries, g.Query)

	pp := printers.PrettyPrint{ShowID: g.ShowID}
	fmt.Println("")

	if g.Calendar {
		on := time.Now()
		if g.Month != "" {
			if on, err = time.ParseInLocation(layoutMonth, g.Month, time.Local); err != nil {
				return fmt.Errorf("bad month %q, want YYYY-MM: %w", g.Month, err)
			}
		}
		pp.Calendar(on, entries...)
		return nil
	}

	pp.TitleWithCount("Journal", len(entries))
	pp.Entries(entries...)
	return nil
}
