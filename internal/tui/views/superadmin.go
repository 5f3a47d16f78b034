// ABOUTME: Super admin dashboard view with overview, users, and institutions tabs
// ABOUTME: Renders platform statistics and management tables

package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"alumniconnect/internal/fallback"
	"alumniconnect/internal/models"
	"alumniconnect/internal/tui/styles"
)

// SuperAdminTab selects which management pane is shown.
type SuperAdminTab int

const (
	TabOverview SuperAdminTab = iota
	TabUsers
	TabInstitutions
)

var superAdminTabNames = []string{"Overview", "Users", "Institutions"}

// SuperAdmin is the super admin dashboard.
type SuperAdmin struct {
	tab    SuperAdminTab
	width  int
	height int
	notice string

	stats       models.DashboardStats
	statsOrigin fallback.Provenance

	users       []models.Account
	usersOrigin fallback.Provenance
	userTable   table.Model

	institutions []models.Institution
	instOrigin   fallback.Provenance
	instTable    table.Model
}

// NewSuperAdmin creates the dashboard with empty tables; data arrives via
// the Set methods once loaded.
func NewSuperAdmin(width, height int) *SuperAdmin {
	v := &SuperAdmin{width: width, height: height}
	v.userTable = newTable([]table.Column{
		{Title: "ID", Width: 10},
		{Title: "Name", Width: 22},
		{Title: "Email", Width: 28},
		{Title: "Role", Width: 12},
		{Title: "Status", Width: 10},
	}, tableHeight(height))
	v.instTable = newTable([]table.Column{
		{Title: "ID", Width: 10},
		{Title: "Name", Width: 26},
		{Title: "Type", Width: 12},
		{Title: "Location", Width: 20},
		{Title: "Status", Width: 10},
	}, tableHeight(height))
	return v
}

func newTable(cols []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(styles.RoleSuperAdmin)
	s.Selected = s.Selected.Foreground(styles.Text).Background(styles.Surface).Bold(true)
	t.SetStyles(s)
	return t
}

func tableHeight(height int) int {
	h := height - 8
	if h < 4 {
		h = 4
	}
	return h
}

// SetStats replaces the overview statistics.
func (v *SuperAdmin) SetStats(stats models.DashboardStats, origin fallback.Provenance) {
	v.stats = stats
	v.statsOrigin = origin
}

// SetUsers replaces the user listing.
func (v *SuperAdmin) SetUsers(users []models.Account, origin fallback.Provenance) {
	v.users = users
	v.usersOrigin = origin
	rows := make([]table.Row, len(users))
	for i, u := range users {
		rows[i] = table.Row{u.ID, u.FullName(), u.Email, string(u.Role), string(u.Status)}
	}
	v.userTable.SetRows(rows)
}

// SetInstitutions replaces the institution listing.
func (v *SuperAdmin) SetInstitutions(institutions []models.Institution, origin fallback.Provenance) {
	v.institutions = institutions
	v.instOrigin = origin
	rows := make([]table.Row, len(institutions))
	for i, inst := range institutions {
		rows[i] = table.Row{inst.ID, inst.Name, inst.Type, inst.Location, inst.Status}
	}
	v.instTable.SetRows(rows)
}

// SetNotice shows a transient status line, e.g. after a degraded write.
func (v *SuperAdmin) SetNotice(msg string) {
	v.notice = msg
}

// SetSize resizes the view.
func (v *SuperAdmin) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.userTable.SetHeight(tableHeight(height))
	v.instTable.SetHeight(tableHeight(height))
}

// Tab returns the active tab.
func (v *SuperAdmin) Tab() SuperAdminTab {
	return v.tab
}

// SelectedUserID returns the highlighted user's ID, or "".
func (v *SuperAdmin) SelectedUserID() string {
	row := v.userTable.SelectedRow()
	if row == nil {
		return ""
	}
	return row[0]
}

// Init implements tea.Model
func (v *SuperAdmin) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (v *SuperAdmin) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "tab" {
		v.tab = (v.tab + 1) % SuperAdminTab(len(superAdminTabNames))
		v.notice = ""
		return v, nil
	}

	var cmd tea.Cmd
	switch v.tab {
	case TabUsers:
		v.userTable, cmd = v.userTable.Update(msg)
	case TabInstitutions:
		v.instTable, cmd = v.instTable.Update(msg)
	}
	return v, cmd
}

// View implements tea.Model
func (v *SuperAdmin) View() string {
	var sb strings.Builder

	sb.WriteString(renderTabs(superAdminTabNames, int(v.tab)))
	sb.WriteString("\n\n")

	switch v.tab {
	case TabOverview:
		sb.WriteString(v.viewOverview())
	case TabUsers:
		sb.WriteString(v.userTable.View())
		sb.WriteString("\n")
		sb.WriteString(originLine(v.usersOrigin))
	case TabInstitutions:
		sb.WriteString(v.instTable.View())
		sb.WriteString("\n")
		sb.WriteString(originLine(v.instOrigin))
	}

	if v.notice != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusWarning.Render(v.notice))
	}

	return sb.String()
}

func (v *SuperAdmin) viewOverview() string {
	label := lipgloss.NewStyle().Foreground(styles.Muted)
	value := styles.ValueStyle

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Platform Overview"))
	sb.WriteString("\n")
	rows := []struct {
		name  string
		count int
	}{
		{"Total users", v.stats.Users.Total},
		{"Super admins", v.stats.Users.SuperAdmins},
		{"Admins", v.stats.Users.Admins},
		{"Alumni", v.stats.Users.Alumni},
		{"Students", v.stats.Users.Students},
		{"Active users", v.stats.Users.Active},
		{"Institutions", v.stats.Institutions.Total},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s %s\n",
			label.Width(16).Render(r.name),
			value.Render(fmt.Sprintf("%d", r.count))))
	}
	sb.WriteString(originLine(v.statsOrigin))
	return sb.String()
}

// renderTabs renders a tab bar with the active tab highlighted.
func renderTabs(names []string, active int) string {
	tabs := make([]string, len(names))
	for i, name := range names {
		if i == active {
			tabs[i] = styles.ActiveTab.Render(name)
		} else {
			tabs[i] = styles.InactiveTab.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// originLine renders the degraded-data marker, or "" for live data.
func originLine(origin fallback.Provenance) string {
	return styles.OriginBadge(string(origin))
}
