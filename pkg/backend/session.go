package backend

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
)

// Session is the locally cached copy of a provider session, so a new process
// can resume where the last one signed in.
type Session struct {
	AccessToken string       `json:"access_token"`
	User        journal.User `json:"user"`
}

const sessionKey = "session"

// SessionCache stores the session on disk. Entries themselves are never
// cached; only the session survives between runs.
type SessionCache struct {
	d *diskv.Diskv
}

func NewSessionCache(basePath string) *SessionCache {
	return &SessionCache{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 64 * 1024,
	})}
}

// Load returns the cached session, or nil when none exists.
func (c *SessionCache) Load() (*Session, error) {
	data, err := c.d.Read(sessionKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	s := &Session{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	if s.AccessToken == "" {
		return nil, nil
	}
	return s, nil
}

func (c *SessionCache) Save(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.d.Write(sessionKey, data)
}

// Clear removes the cached session. Clearing an empty cache is not an error.
func (c *SessionCache) Clear() error {
	if err := c.d.Erase(sessionKey); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Token returns the cached access token, or "" when signed out.
func (c *SessionCache) Token() string {
	s, err := c.Load()
	if err != nil || s == nil {
		return ""
	}
	return s.AccessToken
}
