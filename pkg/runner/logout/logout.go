// Package logout ends the current session.
package logout

import (
	"context"
	"errors"
	"fmt"

	"github.com/Arjun1106030909119/MindScribe/pkg/app"
)

type Logout struct {
	Service *app.Service
}

func (l *Logout) Do(ctx context.Context) error {
	if l.Service == nil {
		return errors.New("can not sign out, no service")
	}
	if err := l.Service.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("signed out")
	return nil
}
