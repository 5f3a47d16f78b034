// ABOUTME: Health command for the alumni-connect CLI
// ABOUTME: Checks backend reachability for scripts and pipelines

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

	"alumniconnect/internal/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend health",
	Long: `Check whether the Alumni Connect backend is reachable and healthy.

Exit codes:
  0 - Backend healthy
  2 - Backend unreachable or unhealthy`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	c := client.New(GetAPIURL())

	resp, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Backend:  %s\nService:  %s\nStatus:   %s\n", GetAPIURL(), resp.Service, resp.Status)
	}

	if resp.Status != "healthy" {
		return 2
	}
	return 0
}
