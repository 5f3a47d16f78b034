// ABOUTME: Root bubbletea model for the interactive dashboard
// ABOUTME: Gates rendering on session state and routes each role to its view

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"alumniconnect/internal/admin"
	"alumniconnect/internal/alumni"
	"alumniconnect/internal/auth"
	"alumniconnect/internal/fallback"
	"alumniconnect/internal/models"
	"alumniconnect/internal/tui/login"
	"alumniconnect/internal/tui/styles"
	"alumniconnect/internal/tui/views"
	"alumniconnect/internal/tui/wizard"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenRestoring Screen = iota
	ScreenLogin
	ScreenDashboard
	ScreenCreateUser
)

// Layout constants
const (
	minTerminalWidth = 80
	panelPadding     = 4
)

// revalidatedMsg is sent when the boot-time session check completes
type revalidatedMsg struct {
	ok bool
}

// loginResultMsg is sent when a login attempt completes
type loginResultMsg struct {
	result auth.LoginResult
}

// alumniDashMsg is sent when the alumni dashboard panels are loaded
type alumniDashMsg struct {
	dash *alumni.Dashboard
}

// alumniSettingsMsg is sent when alumni preferences are loaded or saved
type alumniSettingsMsg struct {
	settings models.AlumniSettings
	origin   fallback.Provenance
}

// adminStatsMsg is sent when platform statistics are loaded
type adminStatsMsg struct {
	stats  models.DashboardStats
	origin fallback.Provenance
}

// adminUsersMsg is sent when the user listing is loaded or mutated
type adminUsersMsg struct {
	users  []models.Account
	origin fallback.Provenance
	err    error
	action string
}

// adminInstitutionsMsg is sent when the institution listing is loaded
type adminInstitutionsMsg struct {
	institutions []models.Institution
	origin       fallback.Provenance
}

// App is the root model for the TUI
type App struct {
	auth   *auth.Controller
	alumni *alumni.Service
	admin  *admin.Service
	screen Screen
	route  string
	width  int
	height int
	err    error

	// Child models
	loginForm  *login.Login
	createUser *wizard.CreateUser
	superAdmin *views.SuperAdmin
	alumniView *views.Alumni
	home       *views.Home
}

// New creates a new TUI application
func New(authCtrl *auth.Controller, alumniSvc *alumni.Service, adminSvc *admin.Service) *App {
	return &App{
		auth:   authCtrl,
		alumni: alumniSvc,
		admin:  adminSvc,
		screen: ScreenRestoring,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.revalidateSession()
}

// revalidateSession checks the restored credential against the backend.
// Nothing is rendered past the restoring screen until it completes.
func (a *App) revalidateSession() tea.Cmd {
	return func() tea.Msg {
		if !a.auth.IsAuthenticated() {
			return revalidatedMsg{ok: false}
		}
		return revalidatedMsg{ok: a.auth.Revalidate(context.Background())}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.superAdmin != nil {
			a.superAdmin.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.alumniView != nil {
			a.alumniView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.home != nil {
			a.home.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.screen == ScreenLogin || a.screen == ScreenCreateUser {
			return a.forwardToForm(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.screen {
		case ScreenLogin, ScreenCreateUser:
			return a.forwardToForm(msg)
		case ScreenDashboard:
			return a.updateDashboard(msg)
		}
		return a, nil

	case revalidatedMsg:
		if !msg.ok {
			return a.showLogin("")
		}
		return a.navigate(a.auth.User().Role.DashboardPath())

	case login.SubmittedMsg:
		return a, a.attemptLogin(msg.Email, msg.Password)

	case login.CancelledMsg:
		return a, tea.Quit

	case loginResultMsg:
		if !msg.result.Success {
			return a, a.loginForm.SetError(msg.result.Error)
		}
		return a.navigate(msg.result.RedirectTo)

	case wizard.CompleteMsg:
		a.createUser = nil
		a.screen = ScreenDashboard
		return a, a.createUserCmd(msg.Input)

	case wizard.CancelledMsg:
		a.createUser = nil
		a.screen = ScreenDashboard
		return a, nil

	case alumniDashMsg:
		if model, cmd, expired := a.bounceIfExpired(); expired {
			return model, cmd
		}
		if a.alumniView != nil {
			a.alumniView.SetDashboard(msg.dash)
		}
		return a, nil

	case alumniSettingsMsg:
		if a.alumniView != nil {
			a.alumniView.SetSettings(msg.settings, msg.origin)
		}
		return a, nil

	case adminStatsMsg:
		if model, cmd, expired := a.bounceIfExpired(); expired {
			return model, cmd
		}
		if a.superAdmin != nil {
			a.superAdmin.SetStats(msg.stats, msg.origin)
		}
		return a, nil

	case adminUsersMsg:
		if model, cmd, expired := a.bounceIfExpired(); expired {
			return model, cmd
		}
		if a.superAdmin != nil {
			a.superAdmin.SetUsers(msg.users, msg.origin)
			if msg.err != nil {
				a.superAdmin.SetNotice(fmt.Sprintf("Backend rejected the %s, applied locally: %v", msg.action, msg.err))
			} else if msg.action != "" {
				a.superAdmin.SetNotice(msg.action + " applied")
			}
		}
		return a, nil

	case adminInstitutionsMsg:
		if model, cmd, expired := a.bounceIfExpired(); expired {
			return model, cmd
		}
		if a.superAdmin != nil {
			a.superAdmin.SetInstitutions(msg.institutions, msg.origin)
		}
		return a, nil

	default:
		// Forward unknown messages to forms when active (needed for huh internals)
		if a.screen == ScreenLogin || a.screen == ScreenCreateUser {
			return a.forwardToForm(msg)
		}
	}

	return a, nil
}

// bounceIfExpired sends the user back to login when a data load ran into a
// rejected credential. The API client has already cleared the session.
func (a *App) bounceIfExpired() (tea.Model, tea.Cmd, bool) {
	if a.screen == ScreenDashboard && !a.auth.IsAuthenticated() {
		model, cmd := a.showLogin("Session expired, please log in again")
		return model, cmd, true
	}
	return nil, nil, false
}

func (a *App) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLogin:
		if a.loginForm == nil {
			return a, nil
		}
		model, cmd := a.loginForm.Update(msg)
		a.loginForm = model.(*login.Login)
		return a, cmd
	case ScreenCreateUser:
		if a.createUser == nil {
			return a, nil
		}
		model, cmd := a.createUser.Update(msg)
		a.createUser = model.(*wizard.CreateUser)
		return a, cmd
	}
	return a, nil
}

func (a *App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "L":
		a.auth.Logout(context.Background())
		return a.showLogin("")
	}

	user := a.auth.User()
	if user == nil {
		return a.showLogin("Session expired, please log in again")
	}

	switch user.Role {
	case models.RoleSuperAdmin:
		return a.updateSuperAdmin(msg)
	case models.RoleAlumni:
		return a.updateAlumni(msg)
	}
	return a, nil
}

func (a *App) updateSuperAdmin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.superAdmin == nil {
		return a, nil
	}
	switch msg.String() {
	case "r":
		return a, tea.Batch(a.loadStats(), a.loadUsers(), a.loadInstitutions())
	case "n":
		a.createUser = wizard.NewCreateUser()
		a.screen = ScreenCreateUser
		return a, a.createUser.Init()
	case "d":
		if a.superAdmin.Tab() == views.TabUsers {
			if id := a.superAdmin.SelectedUserID(); id != "" {
				return a, a.deleteUserCmd(id)
			}
		}
		return a, nil
	}
	model, cmd := a.superAdmin.Update(msg)
	a.superAdmin = model.(*views.SuperAdmin)
	return a, cmd
}

func (a *App) updateAlumni(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.alumniView == nil {
		return a, nil
	}
	switch msg.String() {
	case "r":
		return a, a.loadAlumniDashboard(a.alumniView.Mode())
	case "m":
		if a.alumniView.Mode() == alumni.ModeGlobal {
			return a, a.loadAlumniDashboard(alumni.ModeInstitute)
		}
		if !a.alumniView.ProfilePublicationEnabled() {
			a.alumniView.SetNotice("Publish your profile to access the global network (press p)")
			return a, nil
		}
		return a, a.loadAlumniDashboard(alumni.ModeGlobal)
	case "p":
		return a, a.togglePublication(!a.alumniView.ProfilePublicationEnabled())
	}
	model, cmd := a.alumniView.Update(msg)
	a.alumniView = model.(*views.Alumni)
	return a, cmd
}

// navigate applies the route guard and mounts the view for the resolved
// route. Unauthorized routes land back on the user's own dashboard,
// unauthenticated ones on the login screen.
func (a *App) navigate(path string) (tea.Model, tea.Cmd) {
	resolved := a.auth.Resolve(path)
	if resolved == auth.LoginRoute {
		return a.showLogin("")
	}

	a.route = resolved
	a.screen = ScreenDashboard
	a.loginForm = nil
	a.err = nil

	user := a.auth.User()
	switch user.Role {
	case models.RoleSuperAdmin:
		a.superAdmin = views.NewSuperAdmin(a.contentWidth(), a.contentHeight())
		return a, tea.Batch(a.loadStats(), a.loadUsers(), a.loadInstitutions())
	case models.RoleAlumni:
		a.alumniView = views.NewAlumni(a.contentWidth(), a.contentHeight())
		return a, tea.Batch(a.loadAlumniDashboard(alumni.ModeInstitute), a.loadSettings())
	default:
		a.home = views.NewHome(*user, a.contentWidth(), a.contentHeight())
		return a, nil
	}
}

func (a *App) showLogin(errMsg string) (tea.Model, tea.Cmd) {
	a.screen = ScreenLogin
	a.route = auth.LoginRoute
	a.superAdmin = nil
	a.alumniView = nil
	a.home = nil
	a.loginForm = login.New()
	cmd := a.loginForm.Init()
	if errMsg != "" {
		cmd = tea.Batch(cmd, a.loginForm.SetError(errMsg))
	}
	return a, cmd
}

func (a *App) attemptLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		return loginResultMsg{result: a.auth.Login(context.Background(), email, password)}
	}
}

func (a *App) loadStats() tea.Cmd {
	return func() tea.Msg {
		stats, origin := a.admin.Stats(context.Background())
		return adminStatsMsg{stats: stats, origin: origin}
	}
}

func (a *App) loadUsers() tea.Cmd {
	return func() tea.Msg {
		users, origin := a.admin.Users(context.Background())
		return adminUsersMsg{users: users, origin: origin}
	}
}

func (a *App) loadInstitutions() tea.Cmd {
	return func() tea.Msg {
		institutions, origin := a.admin.Institutions(context.Background())
		return adminInstitutionsMsg{institutions: institutions, origin: origin}
	}
}

func (a *App) createUserCmd(input admin.CreateUserInput) tea.Cmd {
	return func() tea.Msg {
		users, origin, err := a.admin.CreateUser(context.Background(), input)
		return adminUsersMsg{users: users, origin: origin, err: err, action: "create"}
	}
}

func (a *App) deleteUserCmd(id string) tea.Cmd {
	return func() tea.Msg {
		users, origin, err := a.admin.DeleteUser(context.Background(), id)
		return adminUsersMsg{users: users, origin: origin, err: err, action: "delete"}
	}
}

func (a *App) loadAlumniDashboard(mode alumni.Mode) tea.Cmd {
	return func() tea.Msg {
		return alumniDashMsg{dash: a.alumni.LoadDashboard(context.Background(), mode)}
	}
}

func (a *App) loadSettings() tea.Cmd {
	return func() tea.Msg {
		settings, origin := a.alumni.Settings(context.Background())
		return alumniSettingsMsg{settings: settings, origin: origin}
	}
}

func (a *App) togglePublication(enabled bool) tea.Cmd {
	return func() tea.Msg {
		settings, origin := a.alumni.SetProfilePublication(context.Background(), enabled)
		return alumniSettingsMsg{settings: settings, origin: origin}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenRestoring:
		content = styles.Subtitle.Render("Checking session...")
	case ScreenLogin:
		if a.loginForm != nil {
			content = a.loginForm.View()
		}
	case ScreenCreateUser:
		if a.createUser != nil {
			content = a.createUser.View()
		}
	case ScreenDashboard:
		content = a.viewDashboard()
	default:
		content = ""
	}

	return a.wrapWithFrame(content)
}

// viewDashboard renders the active role's dashboard panel
func (a *App) viewDashboard() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: " + a.err.Error())
	}

	accent := styles.Primary
	if user := a.auth.User(); user != nil {
		accent = styles.RoleColor(user.Role)
	}
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(a.contentWidth())

	var inner string
	switch {
	case a.superAdmin != nil:
		inner = a.superAdmin.View()
	case a.alumniView != nil:
		inner = a.alumniView.View()
	case a.home != nil:
		inner = a.home.View()
	default:
		inner = "Loading..."
	}

	return panel.Render(inner)
}

// contentWidth calculates the width for the dashboard panel
func (a *App) contentWidth() int {
	if a.width < minTerminalWidth {
		return minTerminalWidth - panelPadding
	}
	return a.width - panelPadding
}

// contentHeight calculates the height available for dashboard content
func (a *App) contentHeight() int {
	// Header, frame borders, and footer take 8 lines
	return a.height - 8
}

// renderHeader creates the header bar with app branding and session context
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)

	leftText := " " + titleStyle.Render("Alumni Connect")

	rightText := ""
	if user := a.auth.User(); user != nil && a.screen == ScreenDashboard {
		rightText = styles.RoleBadge(user.Role) + lipgloss.NewStyle().Foreground(styles.Muted).Render("  "+user.Email) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"
	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var shortcuts []string
	switch a.screen {
	case ScreenLogin:
		shortcuts = []string{"Tab Next", "Enter Submit", "Esc Quit"}
	case ScreenCreateUser:
		shortcuts = []string{"Tab Next", "Enter Submit", "Esc Cancel"}
	case ScreenDashboard:
		shortcuts = a.dashboardShortcuts()
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	fillWidth := width - 4 - lipgloss.Width(leftPlainText)
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + "─╯"
	return borderStyle.Render(footer)
}

func (a *App) dashboardShortcuts() []string {
	user := a.auth.User()
	if user == nil {
		return []string{"q Quit"}
	}
	switch user.Role {
	case models.RoleSuperAdmin:
		return []string{"Tab Switch", "↑↓ Navigate", "n New user", "d Delete", "r Refresh", "L Logout", "q Quit"}
	case models.RoleAlumni:
		return []string{"Tab Switch", "m Network", "p Publish", "r Refresh", "L Logout", "q Quit"}
	default:
		return []string{"L Logout", "q Quit"}
	}
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder
	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())
	return sb.String()
}

// Run starts the TUI
func Run(authCtrl *auth.Controller, alumniSvc *alumni.Service, adminSvc *admin.Service) error {
	app := New(authCtrl, alumniSvc, adminSvc)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
