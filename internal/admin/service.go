// ABOUTME: Super-admin management service for platform users and institutions
// ABOUTME: Reads degrade to the fallback cache; writes are optimistic under failure and surfaced

package admin

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"alumniconnect/internal/client"
	"alumniconnect/internal/fallback"
	"alumniconnect/internal/models"
)

// Service backs the super-admin dashboard: statistics, user management,
// and institution management.
type Service struct {
	api          *client.Client
	users        *fallback.Collection[models.Account]
	institutions *fallback.Collection[models.Institution]
}

// NewService wires the admin collections onto the shared cache.
func NewService(api *client.Client, cache *fallback.Cache) *Service {
	return &Service{
		api:          api,
		users:        fallback.NewCollection(cache, "users", seedUsers()),
		institutions: fallback.NewCollection(cache, "institutions", seedInstitutions()),
	}
}

// Stats fetches the platform-wide dashboard statistics. Statistics are not
// part of the fallback cache: when the backend is unreachable they are
// recomputed from whatever user and institution collections are cached, so
// the overview stays populated in degraded mode.
func (s *Service) Stats(ctx context.Context) (models.DashboardStats, fallback.Provenance) {
	resp, err := s.api.DashboardStats(ctx)
	if err == nil && resp.Success {
		return resp.Stats, fallback.FromServer
	}

	users, uprov := s.users.ReadCached()
	institutions, _ := s.institutions.ReadCached()

	var stats models.DashboardStats
	stats.Users.Total = len(users)
	for _, u := range users {
		switch u.Role {
		case models.RoleSuperAdmin:
			stats.Users.SuperAdmins++
		case models.RoleAdmin:
			stats.Users.Admins++
		case models.RoleAlumni:
			stats.Users.Alumni++
		case models.RoleStudent:
			stats.Users.Students++
		}
		if u.Status == models.StatusActive {
			stats.Users.Active++
		}
	}
	stats.Institutions.Total = len(institutions)
	return stats, uprov
}

// Users lists all platform users, served from cache when the backend fails.
func (s *Service) Users(ctx context.Context) ([]models.Account, fallback.Provenance) {
	return s.users.Read(ctx, s.fetchUsers)
}

func (s *Service) fetchUsers(ctx context.Context) ([]models.Account, error) {
	resp, err := s.api.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &client.ApplicationError{Message: resp.Error}
	}
	return resp.Users, nil
}

// CreateUserInput carries the administrative create-user form.
type CreateUserInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	Role      models.Role
}

// validate enforces the backend's required fields before submission.
func (in CreateUserInput) validate() error {
	for _, f := range []struct{ name, value string }{
		{"email", in.Email},
		{"username", in.Username},
		{"password", in.Password},
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &client.ValidationError{Field: f.name}
		}
	}
	if !in.Role.Valid() {
		return &client.ValidationError{Field: "role"}
	}
	return nil
}

// CreateUser submits a new user. On backend failure the record is appended
// to the local collection (optimistic, overwritten on the next successful
// server read) and the error is returned for the caller to surface.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) ([]models.Account, fallback.Provenance, error) {
	if err := in.validate(); err != nil {
		return nil, "", err
	}

	req := client.CreateUserRequest{
		Email:     in.Email,
		Username:  in.Username,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      in.Role,
	}
	push := func(ctx context.Context) error {
		resp, err := s.api.CreateUser(ctx, req)
		if err != nil {
			return err
		}
		if !resp.Success {
			return &client.ApplicationError{Message: resp.Error}
		}
		return nil
	}
	local := models.Account{
		ID:        uuid.NewString(),
		Email:     in.Email,
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      in.Role,
		Status:    models.StatusActive,
	}
	return s.users.Write(ctx, push, s.fetchUsers, func(users []models.Account) []models.Account {
		return append(users, local)
	})
}

// DeleteUser removes a user. The account always leaves the local
// collection, even when the backend call fails; the push error is returned
// so the caller can tell the user the delete was local-only.
func (s *Service) DeleteUser(ctx context.Context, id string) ([]models.Account, fallback.Provenance, error) {
	if strings.TrimSpace(id) == "" {
		return nil, "", &client.ValidationError{Field: "id"}
	}
	push := func(ctx context.Context) error {
		resp, err := s.api.DeleteUser(ctx, id)
		if err != nil {
			return err
		}
		if !resp.Success {
			return &client.ApplicationError{Message: resp.Error}
		}
		return nil
	}
	return s.users.Write(ctx, push, s.fetchUsers, func(users []models.Account) []models.Account {
		kept := make([]models.Account, 0, len(users))
		for _, u := range users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		return kept
	})
}

// Institutions lists all institutions, served from cache when the backend
// fails.
func (s *Service) Institutions(ctx context.Context) ([]models.Institution, fallback.Provenance) {
	return s.institutions.Read(ctx, s.fetchInstitutions)
}

func (s *Service) fetchInstitutions(ctx context.Context) ([]models.Institution, error) {
	resp, err := s.api.ListInstitutions(ctx)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &client.ApplicationError{Message: resp.Error}
	}
	return resp.Institutions, nil
}

// CreateInstitutionInput carries the administrative create-institution form.
type CreateInstitutionInput struct {
	Name        string
	Type        string
	Location    string
	Website     string
	Description string
}

// CreateInstitution submits a new institution, optimistic under failure
// like CreateUser.
func (s *Service) CreateInstitution(ctx context.Context, in CreateInstitutionInput) ([]models.Institution, fallback.Provenance, error) {
	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"type", in.Type},
		{"location", in.Location},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, "", &client.ValidationError{Field: f.name}
		}
	}

	req := client.CreateInstitutionRequest{
		Name:        in.Name,
		Type:        in.Type,
		Location:    in.Location,
		Website:     in.Website,
		Description: in.Description,
	}
	push := func(ctx context.Context) error {
		resp, err := s.api.CreateInstitution(ctx, req)
		if err != nil {
			return err
		}
		if !resp.Success {
			return &client.ApplicationError{Message: resp.Error}
		}
		return nil
	}
	local := models.Institution{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Type:        in.Type,
		Location:    in.Location,
		Website:     in.Website,
		Description: in.Description,
		Status:      "active",
	}
	return s.institutions.Write(ctx, push, s.fetchInstitutions, func(list []models.Institution) []models.Institution {
		return append(list, local)
	})
}
