// ABOUTME: HTTP client for the Alumni Connect platform API
// ABOUTME: Single choke point attaching credentials and normalizing success/error shapes

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"alumniconnect/internal/models"
)

// Client is the API client for the Alumni Connect backend.
// Every outbound request flows through do: it attaches the bearer credential
// from the token source, and on a 401/403 while a credential was attached it
// invalidates the session via the unauthorized hook before surfacing the
// failure as a SessionExpiredError.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokenSource    func() string
	onUnauthorized func()
}

// New creates a new API client with the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetTimeout overrides the default request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// SetTokenSource registers the callback providing the current bearer token.
// An empty token means the request goes out unauthenticated.
func (c *Client) SetTokenSource(fn func() string) {
	c.tokenSource = fn
}

// SetUnauthorizedHook registers the callback invoked when an authenticated
// call comes back 401/403, before the error is returned to the caller.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// do issues one request and decodes the response envelope into out.
// Return contract: transport failure, non-2xx without an interpretable JSON
// body, or a malformed 2xx body yield a *NetworkError. A 401/403 on a call
// that carried a credential yields a *SessionExpiredError. Everything else,
// including {success:false} bodies on any status, decodes into out and
// returns nil; callers branch on the envelope's success field.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	return c.send(ctx, method, path, payload, out, true)
}

// doAnon issues a request that never carries the bearer credential. Login
// uses it: a rejected login must read as an application result and leave
// any existing session alone, not trip the unauthorized hook.
func (c *Client) doAnon(ctx context.Context, method, path string, payload, out any) error {
	return c.send(ctx, method, path, payload, out, false)
}

func (c *Client) send(ctx context.Context, method, path string, payload, out any, withAuth bool) error {
	url := c.baseURL + path

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	hasToken := false
	if withAuth && c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			hasToken = true
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: c.requestErr(ctx, err)}
	}
	defer resp.Body.Close()

	slog.Debug("api call", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if hasToken && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &SessionExpiredError{Status: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return &NetworkError{URL: url, Status: resp.StatusCode, Err: err}
	}
	return nil
}

// requestErr converts context errors to user-friendly messages.
func (c *Client) requestErr(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return err
}

// StatusResponse is the generic success/error envelope.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse represents the /health endpoint response.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// LoginRequest carries credentials for authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the result of a login attempt.
type LoginResponse struct {
	Success    bool            `json:"success"`
	Token      string          `json:"token"`
	User       *models.Account `json:"user"`
	RedirectTo string          `json:"redirect_to,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// MeResponse reports whether the presented credential is still valid.
type MeResponse struct {
	Success bool            `json:"success"`
	User    *models.Account `json:"user,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// SettingsResponse wraps the alumni settings payload.
type SettingsResponse struct {
	Success  bool                  `json:"success"`
	Settings models.AlumniSettings `json:"settings"`
	Error    string                `json:"error,omitempty"`
}

// FeedResponse wraps the activity feed collection.
type FeedResponse struct {
	Success bool              `json:"success"`
	Feed    []models.FeedPost `json:"feed"`
	Error   string            `json:"error,omitempty"`
}

// ConnectionsResponse wraps the connections collection.
type ConnectionsResponse struct {
	Success     bool                `json:"success"`
	Connections []models.Connection `json:"connections"`
	Error       string              `json:"error,omitempty"`
}

// EventsResponse wraps the events collection.
type EventsResponse struct {
	Success bool           `json:"success"`
	Events  []models.Event `json:"events"`
	Error   string         `json:"error,omitempty"`
}

// JobsResponse wraps the jobs collection.
type JobsResponse struct {
	Success bool         `json:"success"`
	Jobs    []models.Job `json:"jobs"`
	Error   string       `json:"error,omitempty"`
}

// StatsResponse wraps the super-admin dashboard statistics.
type StatsResponse struct {
	Success bool                  `json:"success"`
	Stats   models.DashboardStats `json:"stats"`
	Error   string                `json:"error,omitempty"`
}

// UsersResponse wraps the user management listing.
type UsersResponse struct {
	Success bool             `json:"success"`
	Users   []models.Account `json:"users"`
	Error   string           `json:"error,omitempty"`
}

// CreateUserRequest carries a new user for the super-admin create endpoint.
type CreateUserRequest struct {
	Email     string      `json:"email"`
	Username  string      `json:"username"`
	Password  string      `json:"password"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Role      models.Role `json:"role"`
}

// CreateUserResponse is the result of a create-user call.
type CreateUserResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	User    *models.Account `json:"user,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// InstitutionsResponse wraps the institution listing.
type InstitutionsResponse struct {
	Success      bool                 `json:"success"`
	Institutions []models.Institution `json:"institutions"`
	Error        string               `json:"error,omitempty"`
}

// CreateInstitutionRequest carries a new institution.
type CreateInstitutionRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreateInstitutionResponse is the result of a create-institution call.
type CreateInstitutionResponse struct {
	Success     bool                `json:"success"`
	Institution *models.Institution `json:"institution,omitempty"`
	Error       string              `json:"error,omitempty"`
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login calls POST /api/auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.doAnon(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout calls POST /api/auth/logout. Fire-and-forget: callers ignore the
// result, local logout never blocks on it.
func (c *Client) Logout(ctx context.Context) error {
	var resp StatusResponse
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, &resp)
}

// Me calls GET /api/auth/me to re-validate the current credential.
func (c *Client) Me(ctx context.Context) (*MeResponse, error) {
	var resp MeResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSettings calls GET /api/alumni/settings.
func (c *Client) GetSettings(ctx context.Context) (*SettingsResponse, error) {
	var resp SettingsResponse
	if err := c.do(ctx, http.MethodGet, "/api/alumni/settings", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateSettings calls PUT /api/alumni/settings.
func (c *Client) UpdateSettings(ctx context.Context, settings models.AlumniSettings) (*SettingsResponse, error) {
	var resp SettingsResponse
	if err := c.do(ctx, http.MethodPut, "/api/alumni/settings", settings, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Feed calls GET /api/alumni/{scope}/feed where scope is institute or global.
func (c *Client) Feed(ctx context.Context, scope string) (*FeedResponse, error) {
	var resp FeedResponse
	if err := c.do(ctx, http.MethodGet, "/api/alumni/"+scope+"/feed", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Connections calls GET /api/alumni/{scope}/connections.
func (c *Client) Connections(ctx context.Context, scope string) (*ConnectionsResponse, error) {
	var resp ConnectionsResponse
	if err := c.do(ctx, http.MethodGet, "/api/alumni/"+scope+"/connections", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Events calls GET /api/alumni/{scope}/events.
func (c *Client) Events(ctx context.Context, scope string) (*EventsResponse, error) {
	var resp EventsResponse
	if err := c.do(ctx, http.MethodGet, "/api/alumni/"+scope+"/events", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Jobs calls GET /api/alumni/{scope}/jobs.
func (c *Client) Jobs(ctx context.Context, scope string) (*JobsResponse, error) {
	var resp JobsResponse
	if err := c.do(ctx, http.MethodGet, "/api/alumni/"+scope+"/jobs", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DashboardStats calls GET /api/super-admin/dashboard-stats.
func (c *Client) DashboardStats(ctx context.Context) (*StatsResponse, error) {
	var resp StatsResponse
	if err := c.do(ctx, http.MethodGet, "/api/super-admin/dashboard-stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListUsers calls GET /api/super-admin/users.
func (c *Client) ListUsers(ctx context.Context) (*UsersResponse, error) {
	var resp UsersResponse
	if err := c.do(ctx, http.MethodGet, "/api/super-admin/users", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateUser calls POST /api/super-admin/create-user.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error) {
	var resp CreateUserResponse
	if err := c.do(ctx, http.MethodPost, "/api/super-admin/create-user", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteUser calls DELETE /api/super-admin/users/{id}.
func (c *Client) DeleteUser(ctx context.Context, id string) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.do(ctx, http.MethodDelete, "/api/super-admin/users/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListInstitutions calls GET /api/super-admin/institutions.
func (c *Client) ListInstitutions(ctx context.Context) (*InstitutionsResponse, error) {
	var resp InstitutionsResponse
	if err := c.do(ctx, http.MethodGet, "/api/super-admin/institutions", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateInstitution calls POST /api/super-admin/create-institution.
func (c *Client) CreateInstitution(ctx context.Context, req CreateInstitutionRequest) (*CreateInstitutionResponse, error) {
	var resp CreateInstitutionResponse
	if err := c.do(ctx, http.MethodPost, "/api/super-admin/create-institution", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
