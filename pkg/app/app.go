// Package app provides the high-level operations shared by the TUI and the
// CLI commands. It wraps the collaborator clients behind small interfaces so
// callers and tests never touch wire shapes.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
)

// Identity is the session/identity gateway contract.
type Identity interface {
	CurrentUser(ctx context.Context) (*journal.User, error)
	Login(ctx context.Context, email, password string) (*journal.User, error)
	Signup(ctx context.Context, email, password, name string) (*journal.User, error)
	Logout(ctx context.Context) error
}

// Repository is the entry persistence contract.
type Repository interface {
	Entries(ctx context.Context, userID string) ([]*journal.Entry, error)
	Save(ctx context.Context, e *journal.Entry) (*journal.Entry, error)
	Delete(ctx context.Context, entryID string) error
}

// Analyzer is the reflection contract.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*journal.Analysis, error)
}

// Service ties the three collaborators together.
type Service struct {
	Identity   Identity
	Repository Repository
	Analyzer   Analyzer
}

// CurrentUser returns the signed-in user, or nil when logged out.
func (s *Service) CurrentUser(ctx context.Context) (*journal.User, error) {
	if s.Identity == nil {
		return nil, errors.New("app: no identity gateway configured")
	}
	return s.Identity.CurrentUser(ctx)
}

func (s *Service) Login(ctx context.Context, email, password string) (*journal.User, error) {
	if s.Identity == nil {
		return nil, errors.New("app: no identity gateway configured")
	}
	return s.Identity.Login(ctx, email, password)
}

func (s *Service) Signup(ctx context.Context, email, password, name string) (*journal.User, error) {
	if s.Identity == nil {
		return nil, errors.New("app: no identity gateway configured")
	}
	return s.Identity.Signup(ctx, email, password, name)
}

func (s *Service) Logout(ctx context.Context) error {
	if s.Identity == nil {
		return errors.New("app: no identity gateway configured")
	}
	return s.Identity.Logout(ctx)
}

// Entries lists the user's entries, newest first.
func (s *Service) Entries(ctx context.Context, userID string) ([]*journal.Entry, error) {
	if s.Repository == nil {
		return nil, errors.New("app: no repository configured")
	}
	if userID == "" {
		return nil, errors.New("app: user id required")
	}
	return s.Repository.Entries(ctx, userID)
}

// SaveEntry normalizes and persists an entry. New entries get a client-side
// uuid and the current time as their date; existing ids and dates pass
// through untouched so edits never move an entry on the calendar.
func (s *Service) SaveEntry(ctx context.Context, e *journal.Entry) (*journal.Entry, error) {
	if s.Repository == nil {
		return nil, errors.New("app: no repository configured")
	}
	if e == nil {
		return nil, errors.New("app: nil entry")
	}
	if e.UserID == "" {
		return nil, errors.New("app: entry has no owner")
	}

	saved := *e
	saved.Title = strings.TrimSpace(saved.Title)
	saved.Content = strings.TrimSpace(saved.Content)
	if saved.Content == "" {
		return nil, errors.New("app: entry content required")
	}
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	if saved.Date == 0 {
		saved.Date = time.Now().UnixMilli()
	}
	saved.Tags = journal.NormalizeTags(saved.Tags)

	return s.Repository.Save(ctx, &saved)
}

func (s *Service) DeleteEntry(ctx context.Context, entryID string) error {
	if s.Repository == nil {
		return errors.New("app: no repository configured")
	}
	if entryID == "" {
		return errors.New("app: entry id required")
	}
	return s.Repository.Delete(ctx, entryID)
}

// Analyze asks the model to reflect on the text. Length validation happens
// in the analyzer so CLI and TUI reject short input identically.
func (s *Service) Analyze(ctx context.Context, text string) (*journal.Analysis, error) {
	if s.Analyzer == nil {
		return nil, errors.New("app: no analyzer configured")
	}
	return s.Analyzer.Analyze(ctx, text)
}
