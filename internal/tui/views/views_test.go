// ABOUTME: Tests for the role dashboard views
// ABOUTME: Covers the bubbletea contract, tab cycling, and row selection

package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"alumniconnect/internal/fallback"
	"alumniconnect/internal/models"
)

// Every view is mounted as a child model of the root app.
var (
	_ tea.Model = (*SuperAdmin)(nil)
	_ tea.Model = (*Alumni)(nil)
	_ tea.Model = (*Home)(nil)
)

func tabKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyTab}
}

func TestSuperAdmin_TabCycles(t *testing.T) {
	v := NewSuperAdmin(80, 24)
	if v.Tab() != TabOverview {
		t.Fatalf("expected overview tab first, got %v", v.Tab())
	}

	order := []SuperAdminTab{TabUsers, TabInstitutions, TabOverview}
	for _, want := range order {
		model, _ := v.Update(tabKey())
		v = model.(*SuperAdmin)
		if v.Tab() != want {
			t.Errorf("expected tab %v, got %v", want, v.Tab())
		}
	}
}

func TestSuperAdmin_SelectedUserID(t *testing.T) {
	v := NewSuperAdmin(80, 24)
	if id := v.SelectedUserID(); id != "" {
		t.Errorf("expected no selection on empty table, got %q", id)
	}

	v.SetUsers([]models.Account{
		{ID: "u-1", Email: "one@alumni.com", Role: models.RoleAlumni},
		{ID: "u-2", Email: "two@alumni.com", Role: models.RoleStudent},
	}, fallback.FromServer)
	if id := v.SelectedUserID(); id != "u-1" {
		t.Errorf("expected first row selected, got %q", id)
	}
}

func TestAlumni_TabCyclesAndClearsNotice(t *testing.T) {
	v := NewAlumni(80, 24)
	v.SetNotice("something happened")

	model, _ := v.Update(tabKey())
	v = model.(*Alumni)
	if v.tab != TabConnections {
		t.Errorf("expected connections tab, got %v", v.tab)
	}
	if v.notice != "" {
		t.Error("expected notice cleared on tab switch")
	}
}

func TestAlumni_PublicationFlagTracksSettings(t *testing.T) {
	v := NewAlumni(80, 24)
	if v.ProfilePublicationEnabled() {
		t.Error("expected publication disabled before settings load")
	}
	v.SetSettings(models.AlumniSettings{ProfilePublicationEnabled: true}, fallback.FromServer)
	if !v.ProfilePublicationEnabled() {
		t.Error("expected publication enabled after settings load")
	}
}
