// Package ui launches the full-screen journal.
package ui

import (
	"context"
	"errors"

	"github.com/Arjun1106030909119/MindScribe/pkg/app"
	teaui "github.com/Arjun1106030909119/MindScribe/pkg/runner/tea"
)

type UI struct {
	Service *app.Service
}

func (u *UI) Do(_ context.Context) error {
	if u.Service == nil {
		return errors.New("can not open the journal, no service")
	}
	return teaui.Run(u.Service)
}
