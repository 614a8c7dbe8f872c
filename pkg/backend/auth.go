package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Arjun1106030909119/MindScribe/pkg/journal"
)

// AuthClient is the session/identity gateway over the hosted auth provider.
type AuthClient struct {
	base    string
	anonKey string
	client  *http.Client
	cache   *SessionCache
}

func NewAuthClient(cfg *Config, cache *SessionCache) *AuthClient {
	return &AuthClient{
		base:    strings.TrimRight(cfg.BackendURL, "/"),
		anonKey: cfg.AnonKey,
		client:  &http.Client{},
		cache:   cache,
	}
}

// provider wire shapes

type authUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	CreatedAt    string `json:"created_at"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
}

type authSession struct {
	AccessToken string    `json:"access_token"`
	User        *authUser `json:"user"`
}

type authFailure struct {
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (f *authFailure) text(status int) string {
	for _, s := range []string{f.ErrorDescription, f.Msg, f.Message, f.ErrorCode} {
		if s != "" {
			return s
		}
	}
	return http.StatusText(status)
}

func (u *authUser) toUser() *journal.User {
	name := u.UserMetadata.FullName
	if name == "" {
		name = "User"
	}
	created := time.Now().UnixMilli()
	if t, err := time.Parse(time.RFC3339, u.CreatedAt); err == nil {
		created = t.UnixMilli()
	}
	return &journal.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      name,
		CreatedAt: created,
	}
}

func (a *AuthClient) do(ctx context.Context, method, path, token string, body interface{}) (int, []byte, error) {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		buf = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, a.base+path, buf)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", a.anonKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, data, nil
}

func authErrorFrom(status int, body []byte) *AuthError {
	f := authFailure{}
	_ = json.Unmarshal(body, &f)
	return &AuthError{Message: f.text(status)}
}

// CurrentUser looks up an existing session. It returns (nil, nil) when no
// session exists, and fails open to logged-out when the provider reports a
// transient error.
func (a *AuthClient) CurrentUser(ctx context.Context) (*journal.User, error) {
	sess, err := a.cache.Load()
	if err != nil {
		log.Printf("backend: error reading session cache: %v", err)
		return nil, nil
	}
	if sess == nil {
		return nil, nil
	}

	status, body, err := a.do(ctx, http.MethodGet, "/auth/v1/user", sess.AccessToken, nil)
	if err != nil {
		log.Printf("backend: error checking session: %v", err)
		return nil, nil
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		_ = a.cache.Clear()
		return nil, nil
	}
	if status != http.StatusOK {
		log.Printf("backend: session check returned status %d", status)
		return nil, nil
	}

	u := authUser{}
	if err := json.Unmarshal(body, &u); err != nil || u.ID == "" {
		log.Printf("backend: unexpected session user payload: %v", err)
		return nil, nil
	}
	return u.toUser(), nil
}

// Login signs in with the password grant and caches the returned session.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*journal.User, error) {
	payload := map[string]string{"email": email, "password": password}
	status, body, err := a.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", payload)
	if err != nil {
		return nil, &AuthError{Message: err.Error()}
	}
	if status != http.StatusOK {
		return nil, authErrorFrom(status, body)
	}

	s := authSession{}
	if err := json.Unmarshal(body, &s); err != nil || s.User == nil || s.User.ID == "" {
		return nil, &AuthError{Message: "Login failed"}
	}

	user := s.User.toUser()
	if err := a.cache.Save(&Session{AccessToken: s.AccessToken, User: *user}); err != nil {
		log.Printf("backend: error caching session: %v", err)
	}
	return user, nil
}

// Signup registers a new account with the display name in user metadata.
// When the provider withholds the user pending email confirmation, the error
// says so instead of pretending the session exists.
func (a *AuthClient) Signup(ctx context.Context, email, password, name string) (*journal.User, error) {
	payload := map[string]interface{}{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": name},
	}
	status, body, err := a.do(ctx, http.MethodPost, "/auth/v1/signup", "", payload)
	if err != nil {
		return nil, &AuthError{Message: err.Error()}
	}
	if status != http.StatusOK {
		return nil, authErrorFrom(status, body)
	}

	// The signup endpoint returns a session when confirmations are off and a
	// bare user object when they are on.
	s := authSession{}
	if err := json.Unmarshal(body, &s); err == nil && s.User == nil {
		u := authUser{}
		if err := json.Unmarshal(body, &u); err == nil && u.ID != "" {
			s.User = &u
		}
	}
	if s.User == nil || s.User.ID == "" {
		return nil, &AuthError{Message: "Please check your email to confirm your account."}
	}

	user := s.User.toUser()
	if name != "" {
		user.Name = name
	}
	user.CreatedAt = time.Now().UnixMilli()
	if s.AccessToken != "" {
		if err := a.cache.Save(&Session{AccessToken: s.AccessToken, User: *user}); err != nil {
			log.Printf("backend: error caching session: %v", err)
		}
	}
	return user, nil
}

// Logout is best-effort against the provider; the local session is cleared
// no matter what.
func (a *AuthClient) Logout(ctx context.Context) error {
	if token := a.cache.Token(); token != "" {
		if _, _, err := a.do(ctx, http.MethodPost, "/auth/v1/logout", token, nil); err != nil {
			log.Printf("backend: error signing out upstream: %v", err)
		}
	}
	return a.cache.Clear()
}
