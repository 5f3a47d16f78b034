// ABOUTME: Simple landing panel for the admin and student dashboards
// ABOUTME: Shows the logged-in account and its institution scope

package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"alumniconnect/internal/models"
	"alumniconnect/internal/tui/styles"
)

// Home greets admin and student users on their dashboard route.
type Home struct {
	user   models.Account
	width  int
	height int
}

// NewHome creates the landing panel for the given account.
func NewHome(user models.Account, width, height int) *Home {
	return &Home{user: user, width: width, height: height}
}

// SetSize resizes the view.
func (v *Home) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Init implements tea.Model
func (v *Home) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (v *Home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

// View implements tea.Model
func (v *Home) View() string {
	accent := lipgloss.NewStyle().Foreground(styles.RoleColor(v.user.Role)).Bold(true)
	muted := lipgloss.NewStyle().Foreground(styles.Muted)

	var sb strings.Builder
	sb.WriteString(accent.Render("Welcome, " + v.user.FullName()))
	sb.WriteString("\n\n")
	sb.WriteString("Role:       " + styles.RoleBadge(v.user.Role))
	sb.WriteString("\n")
	sb.WriteString("Email:      " + v.user.Email)
	sb.WriteString("\n")
	if v.user.InstitutionID != "" {
		sb.WriteString("Institution: " + v.user.InstitutionID)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(muted.Render("Use the directory, events, and career commands to explore the platform."))
	return sb.String()
}
