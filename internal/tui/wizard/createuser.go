// ABOUTME: Create-user wizard as a bubbletea model
// ABOUTME: Collects the new account fields with a huh form

package wizard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"alumniconnect/internal/admin"
	"alumniconnect/internal/models"
)

// CompleteMsg is sent when the wizard finishes successfully.
type CompleteMsg struct {
	Input admin.CreateUserInput
}

// CancelledMsg is sent when the wizard is cancelled.
type CancelledMsg struct{}

// CreateUser collects the fields for a new platform account.
type CreateUser struct {
	form *huh.Form

	email     string
	username  string
	password  string
	firstName string
	lastName  string
	role      models.Role
}

var roleOptions = []huh.Option[models.Role]{
	huh.NewOption("Student", models.RoleStudent),
	huh.NewOption("Alumni", models.RoleAlumni),
	huh.NewOption("Institution Admin", models.RoleAdmin),
	huh.NewOption("Super Admin", models.RoleSuperAdmin),
}

// NewCreateUser creates the wizard with student preselected.
func NewCreateUser() *CreateUser {
	w := &CreateUser{role: models.RoleStudent}
	w.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("user@example.com").
				Value(&w.email).
				Validate(required("email")),
			huh.NewInput().
				Title("Username").
				Value(&w.username).
				Validate(required("username")),
			huh.NewInput().
				Title("Initial password").
				EchoMode(huh.EchoModePassword).
				Value(&w.password).
				Validate(required("password")),
			huh.NewInput().
				Title("First name").
				Value(&w.firstName).
				Validate(required("first name")),
			huh.NewInput().
				Title("Last name").
				Value(&w.lastName).
				Validate(required("last name")),
			huh.NewSelect[models.Role]().
				Title("Role").
				Options(roleOptions...).
				Value(&w.role),
		).Title("Create user").
			Description("All fields are required"),
	).WithTheme(huh.ThemeBase())
	return w
}

// Init implements tea.Model
func (w *CreateUser) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *CreateUser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return w, func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		input := admin.CreateUserInput{
			Email:     w.email,
			Username:  w.username,
			Password:  w.password,
			FirstName: w.firstName,
			LastName:  w.lastName,
			Role:      w.role,
		}
		return w, func() tea.Msg {
			return CompleteMsg{Input: input}
		}
	}

	return w, cmd
}

// View implements tea.Model
func (w *CreateUser) View() string {
	return w.form.View()
}

func required(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return &requiredError{name: name}
		}
		return nil
	}
}

type requiredError struct{ name string }

func (e *requiredError) Error() string { return e.name + " is required" }
