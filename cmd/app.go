// ABOUTME: Shared wiring for commands that need the full client stack
// ABOUTME: Builds config, API client, session store, auth controller, and cache

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"alumniconnect/internal/admin"
	"alumniconnect/internal/alumni"
	"alumniconnect/internal/auth"
	"alumniconnect/internal/client"
	"alumniconnect/internal/config"
	"alumniconnect/internal/fallback"
	"alumniconnect/internal/models"
	"alumniconnect/internal/session"
)

// app bundles the wired client stack for one command invocation.
type app struct {
	cfg   *config.Config
	api   *client.Client
	store *session.Store
	auth  *auth.Controller
	cache *fallback.Cache
}

// newApp loads configuration, wires the stack, and restores any persisted
// session. The restore is local-only; commands that need a verified session
// call Revalidate themselves.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if url := GetAPIURL(); url != defaultAPIURL || cfg.APIBaseURL == "" {
		cfg.APIBaseURL = url
	}

	api := client.New(cfg.APIBaseURL)
	api.SetTimeout(cfg.HTTPTimeout)

	store := session.NewStore(cfg.StateDir)
	ctrl := auth.NewController(api, store)
	ctrl.Restore(ctx)

	return &app{
		cfg:   cfg,
		api:   api,
		store: store,
		auth:  ctrl,
		cache: fallback.New(filepath.Join(cfg.StateDir, "cache")),
	}, nil
}

func (a *app) alumniService() *alumni.Service {
	return alumni.NewService(a.api, a.cache)
}

func (a *app) adminService() *admin.Service {
	return admin.NewService(a.api, a.cache)
}

// requireRole ensures a logged-in user with the given role. The backend is
// the real authority; this check only produces a friendlier error than a 403.
func (a *app) requireRole(role models.Role) error {
	user := a.auth.User()
	if user == nil {
		return fmt.Errorf("not logged in, run 'alumni-connect login' first")
	}
	if user.Role != role {
		return fmt.Errorf("this command requires the %s role (you are %s)", role, user.Role)
	}
	return nil
}
