// ABOUTME: Tests for the alumni dashboard service
// ABOUTME: Covers parallel panel loads, degraded fallbacks, and settings writes

package alumni

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"alumniconnect/internal/client"
	"alumniconnect/internal/fallback"
	"alumniconnect/internal/models"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewService(client.New(server.URL), fallback.New(t.TempDir()))
}

func liveHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/alumni/institute/feed":
			json.NewEncoder(w).Encode(client.FeedResponse{Success: true, Feed: []models.FeedPost{{ID: "1", Title: "live post"}}})
		case "/api/alumni/institute/connections":
			json.NewEncoder(w).Encode(client.ConnectionsResponse{Success: true, Connections: []models.Connection{{ID: "1", Name: "Priya"}}})
		case "/api/alumni/institute/events":
			json.NewEncoder(w).Encode(client.EventsResponse{Success: true, Events: []models.Event{{ID: "1", Title: "Meetup"}}})
		case "/api/alumni/institute/jobs":
			json.NewEncoder(w).Encode(client.JobsResponse{Success: true, Jobs: []models.Job{{ID: "1", Title: "SDE"}}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestLoadDashboard_AllPanelsLive(t *testing.T) {
	svc := newTestService(t, liveHandler(t))

	d := svc.LoadDashboard(context.Background(), ModeInstitute)
	if d.Mode != ModeInstitute {
		t.Errorf("mode = %s", d.Mode)
	}
	for name, origin := range map[string]fallback.Provenance{
		"feed":        d.FeedOrigin,
		"connections": d.ConnectionsOrigin,
		"events":      d.EventsOrigin,
		"jobs":        d.JobsOrigin,
	} {
		if origin != fallback.FromServer {
			t.Errorf("%s origin = %s, want server", name, origin)
		}
	}
	if len(d.Feed) != 1 || d.Feed[0].Title != "live post" {
		t.Errorf("unexpected feed: %+v", d.Feed)
	}
}

func TestLoadDashboard_BackendDown_SeedsEveryPanel(t *testing.T) {
	svc := NewService(client.New("http://localhost:1"), fallback.New(t.TempDir()))

	d := svc.LoadDashboard(context.Background(), ModeInstitute)

	// One failing panel must not cancel the others; each lands on its seed.
	if d.FeedOrigin != fallback.Default || len(d.Feed) == 0 {
		t.Errorf("feed: origin %s, %d items", d.FeedOrigin, len(d.Feed))
	}
	if d.ConnectionsOrigin != fallback.Default || len(d.Connections) == 0 {
		t.Errorf("connections: origin %s, %d items", d.ConnectionsOrigin, len(d.Connections))
	}
	if d.EventsOrigin != fallback.Default || len(d.Events) == 0 {
		t.Errorf("events: origin %s, %d items", d.EventsOrigin, len(d.Events))
	}
	if d.JobsOrigin != fallback.Default || len(d.Jobs) == 0 {
		t.Errorf("jobs: origin %s, %d items", d.JobsOrigin, len(d.Jobs))
	}
}

func TestLoadDashboard_GlobalSeedsDifferFromInstitute(t *testing.T) {
	svc := NewService(client.New("http://localhost:1"), fallback.New(t.TempDir()))

	inst := svc.LoadDashboard(context.Background(), ModeInstitute)
	global := svc.LoadDashboard(context.Background(), ModeGlobal)

	if len(inst.Connections) == 0 || len(global.Connections) == 0 {
		t.Fatal("expected seeded connections in both modes")
	}
	// Institute contacts carry batch/department, global ones university/field.
	if inst.Connections[0].Batch == "" {
		t.Error("institute connection missing batch")
	}
	if global.Connections[0].University == "" {
		t.Error("global connection missing university")
	}
}

func TestSettings_DefaultPrivate(t *testing.T) {
	svc := NewService(client.New("http://localhost:1"), fallback.New(t.TempDir()))

	settings, origin := svc.Settings(context.Background())
	if origin != fallback.Default {
		t.Errorf("origin = %s, want default", origin)
	}
	if settings.ProfilePublicationEnabled {
		t.Error("publication must default to disabled")
	}
}

func TestSetProfilePublication_BackendDownAppliesLocally(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(client.New("http://localhost:1"), fallback.New(dir))

	settings, origin := svc.SetProfilePublication(context.Background(), true)
	if !settings.ProfilePublicationEnabled {
		t.Error("toggle must apply locally when the backend is down")
	}
	if origin != fallback.FromCache {
		t.Errorf("origin = %s, want cache", origin)
	}

	// The preference survives a restart.
	svc2 := NewService(client.New("http://localhost:1"), fallback.New(dir))
	settings, _ = svc2.Settings(context.Background())
	if !settings.ProfilePublicationEnabled {
		t.Error("preference not persisted")
	}
}

func TestSetProfilePublication_ServerAck(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/alumni/settings" || r.Method != http.MethodPut {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var body models.AlumniSettings
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(client.SettingsResponse{Success: true, Settings: body})
	}))

	settings, origin := svc.SetProfilePublication(context.Background(), true)
	if origin != fallback.FromServer {
		t.Errorf("origin = %s, want server", origin)
	}
	if !settings.ProfilePublicationEnabled {
		t.Error("expected enabled settings")
	}
}
