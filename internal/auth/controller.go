// ABOUTME: Auth controller owning the client-side session state machine
// ABOUTME: Orchestrates login, logout, restore, and forced invalidation

package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"alumniconnect/internal/client"
	"alumniconnect/internal/models"
	"alumniconnect/internal/session"
)

// Status is the session lifecycle state.
type Status int

const (
	// Unauthenticated means no usable credential is held.
	Unauthenticated Status = iota
	// Restoring is the transient boot state while the persisted session is
	// being checked; it gates initial render.
	Restoring
	// Authenticated means token and user are both set and not expired.
	Authenticated
	// Expired means the credential was rejected or timed out and the
	// session is about to be cleared.
	Expired
)

// String returns the status name for logs.
func (s Status) String() string {
	switch s {
	case Restoring:
		return "restoring"
	case Authenticated:
		return "authenticated"
	case Expired:
		return "expired"
	default:
		return "unauthenticated"
	}
}

// LoginResult is what a login attempt yields to the caller.
type LoginResult struct {
	Success    bool
	RedirectTo string
	Error      string
}

// Controller owns the session. Views read only the projection (User,
// IsAuthenticated, IsLoading); all mutation goes through Login, Logout,
// Restore, and the forced-invalidation hook wired into the API client.
type Controller struct {
	api   *client.Client
	store *session.Store

	mu        sync.Mutex
	status    Status
	token     string
	user      *models.Account
	expiresAt time.Time
	restoring bool
}

// NewController wires a controller to the API client and session store.
// The controller registers itself as the client's token source and
// unauthorized hook, so any 401/403 on an authenticated call forces logout.
func NewController(api *client.Client, store *session.Store) *Controller {
	c := &Controller{api: api, store: store}
	api.SetTokenSource(c.Token)
	api.SetUnauthorizedHook(c.ForceLogout)
	return c
}

// Token returns the current bearer credential, or "" when unauthenticated.
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// User returns a copy of the authenticated account, or nil.
func (c *Controller) User() *models.Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Status returns the current session state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// IsAuthenticated reports whether a non-expired credential is held.
func (c *Controller) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticatedLocked()
}

// IsLoading reports whether the boot-time restore is still pending.
// The route guard must not mount a view while this is true.
func (c *Controller) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status == Restoring
}

func (c *Controller) authenticatedLocked() bool {
	if c.status != Authenticated || c.token == "" || c.user == nil {
		return false
	}
	if !c.expiresAt.IsZero() && time.Now().After(c.expiresAt) {
		return false
	}
	return true
}

// Login submits credentials and, on success, atomically populates the
// session and persists it. On failure the prior session is left untouched.
func (c *Controller) Login(ctx context.Context, email, password string) LoginResult {
	if email == "" {
		return LoginResult{Error: (&client.ValidationError{Field: "email"}).Error()}
	}
	if password == "" {
		return LoginResult{Error: (&client.ValidationError{Field: "password"}).Error()}
	}

	resp, err := c.api.Login(ctx, email, password)
	if err != nil {
		return LoginResult{Error: err.Error()}
	}
	if !resp.Success || resp.Token == "" || resp.User == nil {
		msg := resp.Error
		if msg == "" {
			msg = "Invalid credentials"
		}
		return LoginResult{Error: msg}
	}
	if !resp.User.Role.Valid() {
		return LoginResult{Error: "login response carried an unknown role"}
	}

	c.mu.Lock()
	c.status = Authenticated
	c.token = resp.Token
	c.user = resp.User
	c.expiresAt = tokenExpiry(resp.Token)
	c.mu.Unlock()

	c.store.Save(session.Snapshot{Token: resp.Token, User: resp.User})
	slog.Info("logged in", "user", resp.User.Email, "role", resp.User.Role)

	// The redirect is derived purely from the role, never trusted from the wire.
	return LoginResult{Success: true, RedirectTo: resp.User.Role.DashboardPath()}
}

// Logout clears the session and its persisted snapshot. The server-side
// invalidation call is fire-and-forget; its failure never blocks local
// clearing. Idempotent.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	hadToken := c.token != ""
	c.mu.Unlock()

	if hadToken {
		if err := c.api.Logout(ctx); err != nil {
			slog.Debug("server-side logout failed", "error", err)
		}
	}
	c.ForceLogout()
}

// ForceLogout clears local session state only. Safe to call from the API
// client's unauthorized hook and at any point in any state.
func (c *Controller) ForceLogout() {
	c.mu.Lock()
	c.status = Unauthenticated
	c.token = ""
	c.user = nil
	c.expiresAt = time.Time{}
	c.mu.Unlock()
	c.store.Clear()
}

// Restore loads the persisted snapshot at boot and optimistically marks the
// session authenticated without a blocking round trip. Locally expired
// tokens are rejected and the snapshot discarded. Guarded against running
// concurrently with itself.
func (c *Controller) Restore(ctx context.Context) {
	c.mu.Lock()
	if c.restoring {
		c.mu.Unlock()
		return
	}
	c.restoring = true
	c.status = Restoring
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.restoring = false
		if c.status == Restoring {
			c.status = Unauthenticated
		}
		c.mu.Unlock()
	}()

	snap := c.store.Load()
	if snap == nil {
		return
	}

	exp := tokenExpiry(snap.Token)
	if !exp.IsZero() && time.Now().After(exp) {
		slog.Info("persisted session expired, clearing", "user", snap.User.Email)
		c.store.Clear()
		return
	}

	c.mu.Lock()
	c.status = Authenticated
	c.token = snap.Token
	c.user = snap.User
	c.expiresAt = exp
	c.mu.Unlock()
}

// Revalidate re-checks the restored credential against the backend. A
// definitive rejection (401/403 or success=false) transitions to
// Unauthenticated and clears the snapshot; an unreachable backend keeps the
// optimistic session so the app stays usable in degraded mode.
func (c *Controller) Revalidate(ctx context.Context) bool {
	if !c.IsAuthenticated() {
		return false
	}

	resp, err := c.api.Me(ctx)
	if err != nil {
		var netErr *client.NetworkError
		if errors.As(err, &netErr) {
			slog.Debug("revalidation skipped, backend unreachable", "error", err)
			return true
		}
		// SessionExpiredError: the client hook has already forced logout.
		return false
	}
	if !resp.Success {
		c.ForceLogout()
		return false
	}
	if resp.User != nil {
		c.mu.Lock()
		c.user = resp.User
		token := c.token
		c.mu.Unlock()
		c.store.Save(session.Snapshot{Token: token, User: resp.User})
	}
	return true
}

// tokenExpiry extracts the exp claim from a JWT credential without
// verifying the signature; the backend remains the authority. Opaque
// tokens yield a zero time and never expire locally.
func tokenExpiry(token string) time.Time {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	var claims jwt.RegisteredClaims
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
