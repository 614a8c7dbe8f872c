// Package reflect asks the model for a reflection on an entry or on free text.
package reflect

import (
	"context"
	"errors"
	"fmt"

	"github.com/Arjun1106030909119/MindScribe/pkg/app"
	"github.com/Arjun1106030909119/MindScribe/pkg/printers"
)

type Reflect struct {
	Text    string
	EntryID string
	Service *app.Service
}

func (r *Reflect) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not reflect, no service")
	}

	text := r.Text
	if r.EntryID != "" {
		user, err := r.Service.CurrentUser(ctx)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.New("not signed in, run `mindscribe login`")
		}
		entries, err := r.Service.Entries(ctx, user.ID)
		if err != nil {
			return err
		}
		found := false
		for _, e := range entries {
			if e.ID == r.EntryID {
				text = e.Content
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no entry with id %s", r.EntryID)
		}
	}

	analysis, err := r.Service.Analyze(ctx, text)
	if err != nil {
		return err
	}

	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.Title("Reflection")
	pp.Analysis(analysis)
	return nil
}
