// ABOUTME: Login form as a bubbletea model
// ABOUTME: Collects credentials with huh and emits a submission message

package login

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"alumniconnect/internal/tui/styles"
)

// SubmittedMsg is sent when the user submits credentials.
type SubmittedMsg struct {
	Email    string
	Password string
}

// CancelledMsg is sent when the user backs out of the form.
type CancelledMsg struct{}

// Login is the credential entry form.
type Login struct {
	form     *huh.Form
	email    string
	password string
	errMsg   string
	width    int
}

// New creates a fresh login form.
func New() *Login {
	l := &Login{}
	l.form = l.createForm()
	return l
}

func (l *Login) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&l.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&l.password),
		).Title("Sign in").
			Description("Log in to Alumni Connect"),
	).WithTheme(huh.ThemeBase())
}

// SetError shows a failed-attempt message above the form and resets it for
// another try.
func (l *Login) SetError(msg string) tea.Cmd {
	l.errMsg = msg
	l.password = ""
	l.form = l.createForm()
	return l.form.Init()
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return l, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		email, password := l.email, l.password
		return l, func() tea.Msg {
			return SubmittedMsg{Email: email, Password: password}
		}
	}

	return l, cmd
}

// View implements tea.Model
func (l *Login) View() string {
	parts := []string{}
	if l.errMsg != "" {
		parts = append(parts, styles.StatusCritical.Render(l.errMsg))
	}
	parts = append(parts, l.form.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
