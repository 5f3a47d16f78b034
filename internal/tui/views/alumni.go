// ABOUTME: Alumni dashboard view with feed, connections, events, and jobs tabs
// ABOUTME: Switches between the institute and global networks

package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"alumniconnect/internal/alumni"
	"alumniconnect/internal/fallback"
	"alumniconnect/internal/models"
	"alumniconnect/internal/tui/styles"
)

// AlumniTab selects which panel of the alumni dashboard is shown.
type AlumniTab int

const (
	TabFeed AlumniTab = iota
	TabConnections
	TabEvents
	TabJobs
)

var alumniTabNames = []string{"Feed", "Connections", "Events", "Jobs"}

// Alumni is the alumni dashboard.
type Alumni struct {
	tab    AlumniTab
	width  int
	height int
	notice string

	dash           *alumni.Dashboard
	settings       models.AlumniSettings
	settingsOrigin fallback.Provenance
}

// NewAlumni creates the dashboard; content arrives via SetDashboard.
func NewAlumni(width, height int) *Alumni {
	return &Alumni{width: width, height: height}
}

// SetDashboard replaces the panel content.
func (v *Alumni) SetDashboard(d *alumni.Dashboard) {
	v.dash = d
}

// SetSettings replaces the alumni preferences.
func (v *Alumni) SetSettings(s models.AlumniSettings, origin fallback.Provenance) {
	v.settings = s
	v.settingsOrigin = origin
}

// SetNotice shows a transient status line.
func (v *Alumni) SetNotice(msg string) {
	v.notice = msg
}

// SetSize resizes the view.
func (v *Alumni) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Mode returns the currently shown network.
func (v *Alumni) Mode() alumni.Mode {
	if v.dash == nil {
		return alumni.ModeInstitute
	}
	return v.dash.Mode
}

// ProfilePublicationEnabled reports the current publication preference;
// it gates the global network.
func (v *Alumni) ProfilePublicationEnabled() bool {
	return v.settings.ProfilePublicationEnabled
}

// Init implements tea.Model
func (v *Alumni) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (v *Alumni) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "tab" {
		v.tab = (v.tab + 1) % AlumniTab(len(alumniTabNames))
		v.notice = ""
	}
	return v, nil
}

// View implements tea.Model
func (v *Alumni) View() string {
	var sb strings.Builder

	sb.WriteString(v.renderModeLine())
	sb.WriteString("\n")
	sb.WriteString(renderTabs(alumniTabNames, int(v.tab)))
	sb.WriteString("\n\n")

	if v.dash == nil {
		sb.WriteString(styles.Subtitle.Render("Loading..."))
		return sb.String()
	}

	switch v.tab {
	case TabFeed:
		sb.WriteString(v.viewFeed())
	case TabConnections:
		sb.WriteString(v.viewConnections())
	case TabEvents:
		sb.WriteString(v.viewEvents())
	case TabJobs:
		sb.WriteString(v.viewJobs())
	}

	if v.notice != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusWarning.Render(v.notice))
	}

	return sb.String()
}

func (v *Alumni) renderModeLine() string {
	accent := lipgloss.NewStyle().Foreground(styles.RoleAlumni).Bold(true)
	muted := lipgloss.NewStyle().Foreground(styles.Muted)

	mode := "Institute Network"
	if v.Mode() == alumni.ModeGlobal {
		mode = "Global Network"
	}

	pub := muted.Render("profile: private")
	if v.settings.ProfilePublicationEnabled {
		pub = styles.StatusOK.Render("profile: published")
	}

	return accent.Render(mode) + "  " + pub
}

func (v *Alumni) viewFeed() string {
	if len(v.dash.Feed) == 0 {
		return styles.Subtitle.Render("No activity yet")
	}
	author := lipgloss.NewStyle().Foreground(styles.RoleAlumni).Bold(true)
	muted := lipgloss.NewStyle().Foreground(styles.Muted)

	var sb strings.Builder
	for _, post := range v.dash.Feed {
		sb.WriteString(author.Render(post.Author))
		sb.WriteString(muted.Render("  " + post.Timestamp))
		sb.WriteString("\n")
		sb.WriteString(styles.ValueStyle.Render(post.Title))
		sb.WriteString("\n")
		sb.WriteString(post.Content)
		sb.WriteString("\n")
		sb.WriteString(muted.Render(fmt.Sprintf("♥ %d   💬 %d", post.Likes, post.Comments)))
		sb.WriteString("\n\n")
	}
	sb.WriteString(originLine(v.dash.FeedOrigin))
	return sb.String()
}

func (v *Alumni) viewConnections() string {
	if len(v.dash.Connections) == 0 {
		return styles.Subtitle.Render("No connections yet")
	}
	muted := lipgloss.NewStyle().Foreground(styles.Muted)

	var sb strings.Builder
	for _, conn := range v.dash.Connections {
		sb.WriteString(styles.ValueStyle.Render(conn.Name))
		sb.WriteString("  ")
		sb.WriteString(conn.Company)
		sb.WriteString("\n")
		if conn.Batch != "" || conn.Department != "" {
			sb.WriteString(muted.Render(fmt.Sprintf("  batch %s, %s", conn.Batch, conn.Department)))
		} else {
			sb.WriteString(muted.Render(fmt.Sprintf("  %s, %s", conn.University, conn.Field)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(originLine(v.dash.ConnectionsOrigin))
	return sb.String()
}

func (v *Alumni) viewEvents() string {
	if len(v.dash.Events) == 0 {
		return styles.Subtitle.Render("No upcoming events")
	}
	muted := lipgloss.NewStyle().Foreground(styles.Muted)

	var sb strings.Builder
	for _, ev := range v.dash.Events {
		sb.WriteString(styles.ValueStyle.Render(ev.Title))
		sb.WriteString(muted.Render("  " + ev.Date + "  " + ev.Type))
		sb.WriteString("\n")
		if ev.Location != "" {
			sb.WriteString(muted.Render("  " + ev.Location))
			sb.WriteString("\n")
		}
		if len(ev.Universities) > 0 {
			sb.WriteString(muted.Render("  " + strings.Join(ev.Universities, ", ")))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(originLine(v.dash.EventsOrigin))
	return sb.String()
}

func (v *Alumni) viewJobs() string {
	if len(v.dash.Jobs) == 0 {
		return styles.Subtitle.Render("No open positions")
	}
	muted := lipgloss.NewStyle().Foreground(styles.Muted)

	var sb strings.Builder
	for _, job := range v.dash.Jobs {
		sb.WriteString(styles.ValueStyle.Render(job.Title))
		sb.WriteString("  ")
		sb.WriteString(job.Company)
		sb.WriteString("\n")
		sb.WriteString(muted.Render("  " + job.Location + "  " + job.Type))
		if job.PostedBy != "" {
			sb.WriteString(muted.Render("  via " + job.PostedBy))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(originLine(v.dash.JobsOrigin))
	return sb.String()
}
