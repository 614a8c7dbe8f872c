// Package login signs a user in from the command line.
package login

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Arjun1106030909119/MindScribe/pkg/app"
	"github.com/Arjun1106030909119/MindScribe/pkg/printers"
)

type Login struct {
	Email    string
	Password string
	Signup   bool
	Name     string
	Service  *app.Service
}

func (l *Login) Do(ctx context.Context) error {
	if l.Service == nil {
		return errors.New("can not sign in, no service")
	}
	if l.Email == "" {
		return errors.New("email required")
	}
	if l.Password == "" {
		fmt.Print("Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		l.Password = strings.TrimSpace(line)
	}

	pp := printers.PrettyPrint{}
	if l.Signup {
		user, serr := l.Service.Signup(ctx, l.Email, l.Password, l.Name)
		if serr != nil {
			return serr
		}
		if user == nil {
			return nil
		}
		fmt.Println("")
		pp.Title("Signed up")
		pp.User(user)
		return nil
	}

	user, err := l.Service.Login(ctx, l.Email, l.Password)
	if err != nil {
		return err
	}
	fmt.Println("")
	pp.Title("Signed in")
	pp.User(user)
	return nil
}
