package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClients(t *testing.T, handler http.Handler) (*AuthClient, *EntryClient, *SessionCache) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := &Config{BackendURL: srv.URL, AnonKey: "anon-key"}
	cache := NewSessionCache(t.TempDir())
	return NewAuthClient(cfg, cache), NewEntryClient(cfg, cache), cache
}

func TestLoginCachesSession(t *testing.T) {
	auth, _, cache := testClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" || r.URL.Query().Get("grant_type") != "password" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL)
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Fatalf("expected anon key header, got %q", got)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@x.com" || body["password"] != "secret123" {
			t.Fatalf("unexpected credentials: %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok-1",
			"user": map[string]interface{}{
				"id":            "user-1",
				"email":         "a@x.com",
				"created_at":    "2024-03-15T10:00:00Z",
				"user_metadata": map[string]string{"full_name": "Ann"},
			},
		})
	}))

	user, err := auth.Login(context.Background(), "a@x.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != "user-1" || user.Email != "a@x.com" || user.Name != "Ann" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if got := cache.Token(); got != "tok-1" {
		t.Fatalf("expected session cached, got token %q", got)
	}
}

func TestLoginRejectedSurfacesProviderMessage(t *testing.T) {
	auth, _, cache := testClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":             "invalid_grant",
			"error_description": "Invalid login credentials",
		})
	}))

	_, err := auth.Login(context.Background(), "a@x.com", "wrong")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Message != "Invalid login credentials" {
		t.Fatalf("expected verbatim provider message, got %q", authErr.Message)
	}
	if cache.Token() != "" {
		t.Fatalf("rejected login must not cache a session")
	}
}

func TestSignupRequiresConfirmation(t *testing.T) {
	auth, _, _ := testClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// confirmation pending: provider returns no user object
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "", "confirmation_sent_at": "2024-03-15T10:00:00Z",
		})
	}))

	_, err := auth.Signup(context.Background(), "a@x.com", "secret123", "Ann")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Message != "Please check your email to confirm your account." {
		t.Fatalf("unexpected message: %q", authErr.Message)
	}
}

func TestSignupReturnsNamedUser(t *testing.T) {
	auth, _, cache := testClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		meta, _ := body["data"].(map[string]interface{})
		if meta["full_name"] != "Ann" {
			t.Fatalf("expected full_name metadata, got %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok-2",
			"user": map[string]interface{}{
				"id":    "user-2",
				"email": "a@x.com",
			},
		})
	}))

	user, err := auth.Signup(context.Background(), "a@x.com", "secret123", "Ann")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if user.Name != "Ann" || user.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if cache.Token() != "tok-2" {
		t.Fatalf("expected session cached after signup")
	}
}

func TestCurrentUserFailsOpen(t *testing.T) {
	auth, _, cache := testClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	// no session cached at all
	user, err := auth.CurrentUser(context.Background())
	if err != nil || user != nil {
		t.Fatalf("expected (nil, nil) without a session, got %v, %v", user, err)
	}

	// cached session but provider erroring: still logged out, not an error
	_ = cache.Save(&Session{AccessToken: "stale"})
	user, err = auth.CurrentUser(context.Background())
	if err != nil || user != nil {
		t.Fatalf("expected fail-open to logged out, got %v, %v", user, err)
	}
}

func TestCurrentUserClearsRejectedSession(t *testing.T) {
	auth, _, cache := testClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	_ = cache.Save(&Session{AccessToken: "expired"})

	if user, err := auth.CurrentUser(context.Background()); err != nil || user != nil {
		t.Fatalf("expected logged out, got %v, %v", user, err)
	}
	if cache.Token() != "" {
		t.Fatalf("expected rejected session to be cleared")
	}
}

func TestLogoutAlwaysClearsLocalSession(t *testing.T) {
	auth, _, cache := testClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	_ = cache.Save(&Session{AccessToken: "tok"})

	if err := auth.Logout(context.Background()); err != nil {
		t.Fatalf("logout should be best-effort, got %v", err)
	}
	if cache.Token() != "" {
		t.Fatalf("expected local session cleared even when the provider fails")
	}
}
