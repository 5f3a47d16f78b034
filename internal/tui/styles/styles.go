// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines the role color palette, borders, and text styles

package styles

import (
	"github.com/charmbracelet/lipgloss"

	"alumniconnect/internal/models"
)

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light
	Surface   = lipgloss.Color("#374151") // Elevated surface background

	// Colors - Role palette, one accent per dashboard
	RoleSuperAdmin = lipgloss.Color("#DC2626") // Red
	RoleAdmin      = lipgloss.Color("#2563EB") // Blue
	RoleAlumni     = lipgloss.Color("#7C3AED") // Purple
	RoleStudent    = lipgloss.Color("#059669") // Green

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Key style for keyboard shortcuts
	KeyStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Value style for emphasized data
	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	// Tab styles
	ActiveTab = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			Background(Surface).
			Padding(0, 2)

	InactiveTab = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 2)
)

// RoleColor returns the accent color for a role's dashboard.
func RoleColor(r models.Role) lipgloss.Color {
	switch r {
	case models.RoleSuperAdmin:
		return RoleSuperAdmin
	case models.RoleAdmin:
		return RoleAdmin
	case models.RoleAlumni:
		return RoleAlumni
	case models.RoleStudent:
		return RoleStudent
	default:
		return Muted
	}
}

// RoleBadge renders the role name in its accent color.
func RoleBadge(r models.Role) string {
	return lipgloss.NewStyle().
		Foreground(RoleColor(r)).
		Bold(true).
		Render(r.Label())
}

// OriginBadge renders a data-source marker for degraded modes; live data
// renders nothing.
func OriginBadge(origin string) string {
	switch origin {
	case "cache":
		return StatusWarning.Render("[cached]")
	case "default":
		return StatusWarning.Render("[sample]")
	default:
		return ""
	}
}
