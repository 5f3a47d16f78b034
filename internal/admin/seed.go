// ABOUTME: Fixed default collections for the super-admin fallback cache
// ABOUTME: Sample users and institutions served when no data is available

package admin

import "alumniconnect/internal/models"

func seedUsers() []models.Account {
	return []models.Account{
		{
			ID:        "1",
			Email:     "anydesk778@gmail.com",
			Username:  "super_admin",
			FirstName: "Super",
			LastName:  "Admin",
			Role:      models.RoleSuperAdmin,
			Status:    models.StatusActive,
		},
	}
}

func seedInstitutions() []models.Institution {
	return []models.Institution{
		{
			ID:           "1",
			Name:         "Sample Institution 1",
			Type:         "University",
			Location:     "New Delhi",
			Status:       "active",
			AdminCount:   2,
			StudentCount: 150,
			AlumniCount:  500,
		},
		{
			ID:           "2",
			Name:         "Sample Institution 2",
			Type:         "College",
			Location:     "Mumbai",
			Status:       "active",
			AdminCount:   1,
			StudentCount: 80,
			AlumniCount:  200,
		},
	}
}
