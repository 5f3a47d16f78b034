// ABOUTME: User management commands for the alumni-connect CLI
// ABOUTME: Lists, creates, and deletes platform users for super admins

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"alumniconnect/internal/admin"
	"alumniconnect/internal/models"
)

var (
	createUserEmail     string
	createUserUsername  string
	createUserPassword  string
	createUserFirstName string
	createUserLastName  string
	createUserRole      string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage platform users (super admin)",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runUsersList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Long: `Create a new platform user.

If the backend is unreachable the user is recorded locally and submitted
state is reported; the local record is replaced on the next successful sync.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runUsersCreate(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runUsersDelete(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersDeleteCmd)

	usersCreateCmd.Flags().StringVar(&createUserEmail, "email", "", "Email (required)")
	usersCreateCmd.Flags().StringVar(&createUserUsername, "username", "", "Username (required)")
	usersCreateCmd.Flags().StringVar(&createUserPassword, "password", "", "Initial password (required)")
	usersCreateCmd.Flags().StringVar(&createUserFirstName, "first-name", "", "First name (required)")
	usersCreateCmd.Flags().StringVar(&createUserLastName, "last-name", "", "Last name (required)")
	usersCreateCmd.Flags().StringVar(&createUserRole, "role", "student", "Role: super_admin, admin, alumni, or student")
}

// runUsersList lists users and returns exit code
func runUsersList(ctx context.Context, w io.Writer) int {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if err := a.requireRole(models.RoleSuperAdmin); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	users, origin := a.adminService().Users(ctx)

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]any{
			"users":  users,
			"source": origin,
		}, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tSTATUS")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.FullName(), u.Email, u.Role, u.Status)
	}
	tw.Flush()
	printOrigin(w, origin)
	return 0
}

// runUsersCreate creates a user and returns exit code
func runUsersCreate(ctx context.Context, w io.Writer) int {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if err := a.requireRole(models.RoleSuperAdmin); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	role, err := models.ParseRole(createUserRole)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	_, origin, err := a.adminService().CreateUser(ctx, admin.CreateUserInput{
		Email:     createUserEmail,
		Username:  createUserUsername,
		Password:  createUserPassword,
		FirstName: createUserFirstName,
		LastName:  createUserLastName,
		Role:      role,
	})
	if err != nil && !origin.Live() && origin != "" {
		// Recorded locally; the backend submission failed.
		fmt.Fprintf(w, "Warning: backend rejected the create (%v); user recorded locally\n", err)
		return 1
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Created user %s\n", createUserEmail)
	return 0
}

// runUsersDelete deletes a user and returns exit code
func runUsersDelete(ctx context.Context, w io.Writer, id string) int {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if err := a.requireRole(models.RoleSuperAdmin); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	_, origin, err := a.adminService().DeleteUser(ctx, id)
	if err != nil && !origin.Live() && origin != "" {
		fmt.Fprintf(w, "Warning: backend rejected the delete (%v); user removed locally\n", err)
		return 1
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Deleted user %s\n", id)
	return 0
}
