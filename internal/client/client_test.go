// ABOUTME: Tests for the Alumni Connect API client
// ABOUTME: Uses httptest to mock backend responses

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alumniconnect/internal/models"
)

func TestHealth_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("expected path /health, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HealthResponse{Status: "healthy", Service: "alumni-connect"})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("expected status healthy, got %s", resp.Status)
	}
}

func TestHealth_ConnectionError(t *testing.T) {
	c := New("http://localhost:1")
	_, err := c.Health(context.Background())
	if err == nil {
		t.Fatal("expected connection error, got nil")
	}
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Errorf("expected *NetworkError, got %T", err)
	}
}

func TestHealth_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		json.NewEncoder(w).Encode(HealthResponse{Status: "healthy"})
	}))
	defer server.Close()

	c := New(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Health(ctx)
	if err == nil {
		t.Error("expected error for timed out context, got nil")
	}
}

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("expected path /api/auth/login, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
		var req LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "admin@alumni.com" {
			t.Errorf("unexpected email %s", req.Email)
		}
		json.NewEncoder(w).Encode(LoginResponse{
			Success: true,
			Token:   "tok-123",
			User:    &models.Account{ID: "1", Email: req.Email, Role: models.RoleSuperAdmin},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Login(context.Background(), "admin@alumni.com", "admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || resp.Token != "tok-123" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestLogin_InvalidCredentials_NotAnError(t *testing.T) {
	// A well-formed {success:false} body is an application result, not a
	// transport failure, regardless of HTTP status.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(LoginResponse{Success: false, Error: "Invalid credentials"})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Login(context.Background(), "admin@alumni.com", "wrong")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if resp.Error != "Invalid credentials" {
		t.Errorf("expected server message to survive, got %q", resp.Error)
	}
}

func TestLogin_WhileAuthenticated_NoCredentialNoInvalidation(t *testing.T) {
	// Re-login with a live session must not carry the old bearer token, so
	// a 401 on bad credentials cannot read as session expiry.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("login must not carry a credential, got %q", got)
		}
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(LoginResponse{Success: false, Error: "Invalid credentials"})
	}))
	defer server.Close()

	hookCalled := false
	c := New(server.URL)
	c.SetTokenSource(func() string { return "tok-live" })
	c.SetUnauthorizedHook(func() { hookCalled = true })

	resp, err := c.Login(context.Background(), "admin@alumni.com", "wrong")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if hookCalled {
		t.Error("failed login must not invalidate the existing session")
	}
}

func TestDo_AttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("expected bearer token, got %q", got)
		}
		json.NewEncoder(w).Encode(MeResponse{Success: true})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetTokenSource(func() string { return "tok-123" })
	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDo_UnauthorizedWithToken_InvalidatesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(MeResponse{Success: false, Error: "Token expired"})
	}))
	defer server.Close()

	hookCalled := false
	c := New(server.URL)
	c.SetTokenSource(func() string { return "stale-token" })
	c.SetUnauthorizedHook(func() { hookCalled = true })

	_, err := c.Me(context.Background())
	var sessionErr *SessionExpiredError
	if !errors.As(err, &sessionErr) {
		t.Fatalf("expected *SessionExpiredError, got %v", err)
	}
	if !hookCalled {
		t.Error("expected unauthorized hook to be invoked")
	}
}

func TestDo_UnauthorizedWithoutToken_NoInvalidation(t *testing.T) {
	// A credential-less 401 cannot mean session expiry.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(MeResponse{Success: false, Error: "Missing token"})
	}))
	defer server.Close()

	hookCalled := false
	c := New(server.URL)
	c.SetUnauthorizedHook(func() { hookCalled = true })

	resp, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if hookCalled {
		t.Error("hook must not fire without a credential attached")
	}
}

func TestDo_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Health(context.Background())
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError for malformed body, got %v", err)
	}
	if netErr.Status != http.StatusOK {
		t.Errorf("expected status 200 recorded, got %d", netErr.Status)
	}
}

func TestFeed_ScopedPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/alumni/global/feed" {
			t.Errorf("expected path /api/alumni/global/feed, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(FeedResponse{
			Success: true,
			Feed:    []models.FeedPost{{ID: "1", Title: "hello"}},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Feed(context.Background(), "global")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Feed) != 1 || resp.Feed[0].Title != "hello" {
		t.Errorf("unexpected feed: %+v", resp.Feed)
	}
}

func TestDeleteUser_Path(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/api/super-admin/users/42" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(StatusResponse{Success: true})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.DeleteUser(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Error("expected success")
	}
}
