// ABOUTME: Whoami command for the alumni-connect CLI
// ABOUTME: Shows the current session and revalidates it against the backend

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
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Long: `Display the logged-in user, role, and dashboard route.

The persisted session is revalidated against the backend when reachable;
an unreachable backend keeps the local session and reports it as such.

Exit codes:
  0 - Logged in
  1 - Not logged in (or session rejected by the backend)
  2 - Error`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWhoami(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami shows session state and returns exit code
func runWhoami(ctx context.Context, w io.Writer) int {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if !a.auth.Revalidate(ctx) {
		if IsJSONOutput() {
			fmt.Fprintln(w, `{"logged_in": false}`)
		} else {
			fmt.Fprintln(w, "Not logged in")
		}
		return 1
	}

	user := a.auth.User()
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]any{
			"logged_in": true,
			"user":      user,
			"dashboard": user.Role.DashboardPath(),
		}, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "User:       %s\n", user.FullName())
	fmt.Fprintf(w, "Email:      %s\n", user.Email)
	fmt.Fprintf(w, "Role:       %s\n", user.Role.Label())
	fmt.Fprintf(w, "Dashboard:  %s\n", user.Role.DashboardPath())
	return 0
}
