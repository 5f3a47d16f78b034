// ABOUTME: Login command for the alumni-connect CLI
// ABOUTME: Authenticates against the backend and persists the session

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the Alumni Connect platform",
	Long: `Authenticate with email and password and persist the session locally.

Missing credentials are prompted for interactively. On success the session
survives across invocations until logout or token expiry.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted if omitted)")
}

// runLogin executes the login flow and returns exit code
func runLogin(ctx context.Context, w io.Writer) int {
	if err := promptMissingCredentials(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	result := a.auth.Login(ctx, loginEmail, loginPassword)

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]any{
			"success":     result.Success,
			"redirect_to": result.RedirectTo,
			"error":       result.Error,
		}, "", "  ")
		fmt.Fprintln(w, string(data))
	}

	if !result.Success {
		if !IsJSONOutput() {
			fmt.Fprintf(w, "Login failed: %s\n", result.Error)
		}
		return 1
	}

	if !IsJSONOutput() {
		user := a.auth.User()
		fmt.Fprintf(w, "Logged in as %s (%s)\n", user.Email, user.Role.Label())
		fmt.Fprintf(w, "Dashboard: %s\n", result.RedirectTo)
	}
	return 0
}

// promptMissingCredentials interactively collects any credential not given
// as a flag.
func promptMissingCredentials() error {
	var fields []huh.Field
	if loginEmail == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&loginEmail))
	}
	if loginPassword == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&loginPassword))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
