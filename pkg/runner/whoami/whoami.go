// Package whoami prints the signed-in user.
package whoami

import (
	"context"
	"errors"
	"fmt"

	"github.com/Arjun1106030909119/MindScribe/pkg/app"
	"github.com/Arjun1106030909119/MindScribe/pkg/printers"
)

type Whoami struct {
	ShowID  bool
	Service *app.Service
}

func (w *Whoami) Do(ctx context.Context) error {
	if w.Service == nil {
		return errors.New("can not check session, no service")
	}
	user, err := w.Service.CurrentUser(ctx)
	if err != nil {
		return err
	}

	fmt.Println("")
	pp := printers.PrettyPrint{ShowID: w.ShowID}
	pp.User(user)
	return nil
}
