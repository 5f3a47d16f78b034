// ABOUTME: Stats command for the alumni-connect CLI
// ABOUTME: Shows platform-wide statistics for super admins

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"alumniconnect/internal/fallback"
	"alumniconnect/internal/models"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show platform statistics (super admin)",
	Long: `Display platform-wide user and institution statistics.

When the backend is unreachable the statistics are recomputed from the
local cache and flagged as such.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runStats(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// runStats shows statistics and returns exit code
func runStats(ctx context.Context, w io.Writer) int {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if err := a.requireRole(models.RoleSuperAdmin); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	stats, origin := a.adminService().Stats(ctx)

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]any{
			"stats":  stats,
			"source": origin,
		}, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, `Users:         %d
  Super Admins: %d
  Admins:       %d
  Alumni:       %d
  Students:     %d
  Active:       %d
Institutions:  %d
`,
		stats.Users.Total,
		stats.Users.SuperAdmins,
		stats.Users.Admins,
		stats.Users.Alumni,
		stats.Users.Students,
		stats.Users.Active,
		stats.Institutions.Total)
	printOrigin(w, origin)
	return 0
}

// printOrigin notes when output came from the fallback cache rather than
// the backend.
func printOrigin(w io.Writer, origin fallback.Provenance) {
	switch origin {
	case fallback.FromCache:
		fmt.Fprintln(w, "(backend unreachable, showing cached data)")
	case fallback.Default:
		fmt.Fprintln(w, "(backend unreachable, showing sample data)")
	}
}
