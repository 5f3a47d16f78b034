// ABOUTME: Wire-format entities shared across the client, cache, and views
// ABOUTME: Field names follow the Alumni Connect backend JSON contract

package models

// AccountStatus mirrors the backend user status enum.
type AccountStatus string

const (
	StatusActive            AccountStatus = "active"
	StatusInactive          AccountStatus = "inactive"
	StatusSuspended         AccountStatus = "suspended"
	StatusPendingActivation AccountStatus = "pending_activation"
)

// Account is a platform user. Role is immutable once issued by the backend;
// a pending_activation account has no usable credential yet.
type Account struct {
	ID            string        `json:"id"`
	Email         string        `json:"email"`
	Username      string        `json:"username"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Role          Role          `json:"role"`
	Status        AccountStatus `json:"status"`
	InstitutionID string        `json:"institution_id,omitempty"`
	CreatedAt     string        `json:"created_at,omitempty"`
}

// FullName returns the display name for headers and tables.
func (a Account) FullName() string {
	if a.FirstName == "" && a.LastName == "" {
		return a.Username
	}
	return a.FirstName + " " + a.LastName
}

// Institution is a registered school or university.
type Institution struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Location     string `json:"location"`
	Website      string `json:"website,omitempty"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status"`
	AdminCount   int    `json:"admin_count"`
	StudentCount int    `json:"student_count"`
	AlumniCount  int    `json:"alumni_count"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// UserStats holds per-role user counts for the super-admin overview.
type UserStats struct {
	Total       int `json:"total"`
	SuperAdmins int `json:"super_admins"`
	Admins      int `json:"admins"`
	Alumni      int `json:"alumni"`
	Students    int `json:"students"`
	Active      int `json:"active"`
}

// InstitutionStats holds aggregate institution counts.
type InstitutionStats struct {
	Total int `json:"total"`
}

// DashboardStats is the super-admin dashboard-stats payload.
type DashboardStats struct {
	Users        UserStats        `json:"users"`
	Institutions InstitutionStats `json:"institutions"`
}

// FeedPost is one entry of the institute or global activity feed.
type FeedPost struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
}

// Connection is an alumni network contact. Batch and Department are set for
// institute connections, University and Field for global ones.
type Connection struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Batch      string `json:"batch,omitempty"`
	Department string `json:"department,omitempty"`
	University string `json:"university,omitempty"`
	Field      string `json:"field,omitempty"`
	Company    string `json:"company"`
}

// Event is an upcoming alumni event.
type Event struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Type         string   `json:"type"`
	Location     string   `json:"location,omitempty"`
	Attendees    int      `json:"attendees,omitempty"`
	Universities []string `json:"universities,omitempty"`
}

// Job is a posted career opportunity.
type Job struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Type     string `json:"type"`
	PostedBy string `json:"postedBy,omitempty"`
}

// AlumniSettings holds per-user alumni preferences.
type AlumniSettings struct {
	ProfilePublicationEnabled bool `json:"profilePublicationEnabled"`
}
