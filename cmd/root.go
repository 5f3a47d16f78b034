// ABOUTME: Root command for the alumni-connect CLI
// ABOUTME: Handles global flags, logging setup, and configuration

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"alumniconnect/internal/logger"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:5000"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "alumni-connect",
	Short: "CLI for the Alumni Connect platform",
	Long: `alumni-connect is a command-line client for the Alumni Connect platform.

It keeps a persistent login session, routes each role to its own dashboard,
and keeps working from locally cached data when the backend is unreachable.

Environment Variables:
  ALUMNI_API_URL       Backend API URL (default: http://localhost:5000)
  ALUMNI_HTTP_TIMEOUT  Request timeout (default: 30s)
  ALUMNI_STATE_DIR     Directory for session and cache state`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides ALUMNI_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("ALUMNI_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
