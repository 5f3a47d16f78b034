// ABOUTME: Alumni dashboard data service with institute/global scopes
// ABOUTME: Issues parallel reads through the fallback cache so one failure never blocks the rest

package alumni

import (
	"context"

	"golang.org/x/sync/errgroup"

	"alumniconnect/internal/client"
	"alumniconnect/internal/fallback"
	"alumniconnect/internal/models"
)

// Mode selects which network the dashboard shows.
type Mode string

const (
	// ModeInstitute scopes the dashboard to the user's own institution.
	ModeInstitute Mode = "institute"
	// ModeGlobal shows the cross-institution network; requires the
	// profile-publication setting to be enabled.
	ModeGlobal Mode = "global"
)

// Dashboard is one fully-settled load of all four panels, each with its
// own provenance.
type Dashboard struct {
	Mode Mode

	Feed       []models.FeedPost
	FeedOrigin fallback.Provenance

	Connections       []models.Connection
	ConnectionsOrigin fallback.Provenance

	Events       []models.Event
	EventsOrigin fallback.Provenance

	Jobs       []models.Job
	JobsOrigin fallback.Provenance
}

// Service loads alumni dashboard data, degrading each panel independently
// to its cached or seeded collection when the backend fails.
type Service struct {
	api *client.Client

	feed        map[Mode]*fallback.Collection[models.FeedPost]
	connections map[Mode]*fallback.Collection[models.Connection]
	events      map[Mode]*fallback.Collection[models.Event]
	jobs        map[Mode]*fallback.Collection[models.Job]
	settings    *fallback.Object[models.AlumniSettings]
}

// NewService wires the alumni collections onto the shared cache.
func NewService(api *client.Client, cache *fallback.Cache) *Service {
	return &Service{
		api: api,
		feed: map[Mode]*fallback.Collection[models.FeedPost]{
			ModeInstitute: fallback.NewCollection(cache, "feed_institute", seedInstituteFeed()),
			ModeGlobal:    fallback.NewCollection(cache, "feed_global", seedGlobalFeed()),
		},
		connections: map[Mode]*fallback.Collection[models.Connection]{
			ModeInstitute: fallback.NewCollection(cache, "connections_institute", seedInstituteConnections()),
			ModeGlobal:    fallback.NewCollection(cache, "connections_global", seedGlobalConnections()),
		},
		events: map[Mode]*fallback.Collection[models.Event]{
			ModeInstitute: fallback.NewCollection(cache, "events_institute", seedInstituteEvents()),
			ModeGlobal:    fallback.NewCollection(cache, "events_global", seedGlobalEvents()),
		},
		jobs: map[Mode]*fallback.Collection[models.Job]{
			ModeInstitute: fallback.NewCollection(cache, "jobs_institute", seedInstituteJobs()),
			ModeGlobal:    fallback.NewCollection(cache, "jobs_global", seedGlobalJobs()),
		},
		settings: fallback.NewObject(cache, "settings", models.AlumniSettings{}),
	}
}

// LoadDashboard fetches all four panels in parallel and combines them only
// after every read has settled. Each closure handles its own fallback and
// returns nil, so one failing panel never cancels or blocks the others.
func (s *Service) LoadDashboard(ctx context.Context, mode Mode) *Dashboard {
	d := &Dashboard{Mode: mode}
	scope := string(mode)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.Feed, d.FeedOrigin = s.feed[mode].Read(gctx, func(ctx context.Context) ([]models.FeedPost, error) {
			resp, err := s.api.Feed(ctx, scope)
			if err != nil {
				return nil, err
			}
			if !resp.Success {
				return nil, &client.ApplicationError{Message: resp.Error}
			}
			return resp.Feed, nil
		})
		return nil
	})
	g.Go(func() error {
		d.Connections, d.ConnectionsOrigin = s.connections[mode].Read(gctx, func(ctx context.Context) ([]models.Connection, error) {
			resp, err := s.api.Connections(ctx, scope)
			if err != nil {
				return nil, err
			}
			if !resp.Success {
				return nil, &client.ApplicationError{Message: resp.Error}
			}
			return resp.Connections, nil
		})
		return nil
	})
	g.Go(func() error {
		d.Events, d.EventsOrigin = s.events[mode].Read(gctx, func(ctx context.Context) ([]models.Event, error) {
			resp, err := s.api.Events(ctx, scope)
			if err != nil {
				return nil, err
			}
			if !resp.Success {
				return nil, &client.ApplicationError{Message: resp.Error}
			}
			return resp.Events, nil
		})
		return nil
	})
	g.Go(func() error {
		d.Jobs, d.JobsOrigin = s.jobs[mode].Read(gctx, func(ctx context.Context) ([]models.Job, error) {
			resp, err := s.api.Jobs(ctx, scope)
			if err != nil {
				return nil, err
			}
			if !resp.Success {
				return nil, &client.ApplicationError{Message: resp.Error}
			}
			return resp.Jobs, nil
		})
		return nil
	})
	_ = g.Wait()

	return d
}

// Settings reads the profile-publication preference, falling back to the
// locally persisted value when the backend is unreachable.
func (s *Service) Settings(ctx context.Context) (models.AlumniSettings, fallback.Provenance) {
	return s.settings.Read(ctx, func(ctx context.Context) (models.AlumniSettings, error) {
		resp, err := s.api.GetSettings(ctx)
		if err != nil {
			return models.AlumniSettings{}, err
		}
		if !resp.Success {
			return models.AlumniSettings{}, &client.ApplicationError{Message: resp.Error}
		}
		return resp.Settings, nil
	})
}

// SetProfilePublication toggles global visibility. When the backend is
// unreachable the toggle is applied to local state only, matching the
// original behavior of this setting; it is not surfaced as an error.
func (s *Service) SetProfilePublication(ctx context.Context, enabled bool) (models.AlumniSettings, fallback.Provenance) {
	val := models.AlumniSettings{ProfilePublicationEnabled: enabled}
	applied, prov, _ := s.settings.Write(ctx, val, func(ctx context.Context) error {
		resp, err := s.api.UpdateSettings(ctx, val)
		if err != nil {
			return err
		}
		if !resp.Success {
			return &client.ApplicationError{Message: resp.Error}
		}
		return nil
	})
	return applied, prov
}
