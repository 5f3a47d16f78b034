// ABOUTME: Institution management commands for the alumni-connect CLI
// ABOUTME: Lists and creates institutions for super admins

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
	createInstName        string
	createInstType        string
	createInstLocation    string
	createInstWebsite     string
	createInstDescription string
)

var institutionsCmd = &cobra.Command{
	Use:   "institutions",
	Short: "Manage institutions (super admin)",
}

var institutionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all institutions",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runInstitutionsList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var institutionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an institution",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runInstitutionsCreate(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(institutionsCmd)
	institutionsCmd.AddCommand(institutionsListCmd)
	institutionsCmd.AddCommand(institutionsCreateCmd)

	institutionsCreateCmd.Flags().StringVar(&createInstName, "name", "", "Institution name (required)")
	institutionsCreateCmd.Flags().StringVar(&createInstType, "type", "university", "Type: university, college, or school")
	institutionsCreateCmd.Flags().StringVar(&createInstLocation, "location", "", "Location (required)")
	institutionsCreateCmd.Flags().StringVar(&createInstWebsite, "website", "", "Website URL")
	institutionsCreateCmd.Flags().StringVar(&createInstDescription, "description", "", "Description")
}

// runInstitutionsList lists institutions and returns exit code
func runInstitutionsList(ctx context.Context, w io.Writer) int {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if err := a.requireRole(models.RoleSuperAdmin); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	institutions, origin := a.adminService().Institutions(ctx)

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]any{
			"institutions": institutions,
			"source":       origin,
		}, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tLOCATION\tSTATUS")
	for _, inst := range institutions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", inst.ID, inst.Name, inst.Type, inst.Location, inst.Status)
	}
	tw.Flush()
	printOrigin(w, origin)
	return 0
}

// runInstitutionsCreate creates an institution and returns exit code
func runInstitutionsCreate(ctx context.Context, w io.Writer) int {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if err := a.requireRole(models.RoleSuperAdmin); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	_, origin, err := a.adminService().CreateInstitution(ctx, admin.CreateInstitutionInput{
		Name:        createInstName,
		Type:        createInstType,
		Location:    createInstLocation,
		Website:     createInstWebsite,
		Description: createInstDescription,
	})
	if err != nil && !origin.Live() && origin != "" {
		fmt.Fprintf(w, "Warning: backend rejected the create (%v); institution recorded locally\n", err)
		return 1
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Created institution %s\n", createInstName)
	return 0
}
