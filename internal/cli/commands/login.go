package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hotelsuite/hotelsuite/internal/cli/userconfig"
	"github.com/hotelsuite/hotelsuite/internal/hotel"
	"github.com/hotelsuite/hotelsuite/internal/session"
)

// NewLoginCmd creates the login command
func NewLoginCmd(g *Globals) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as a hotel administrator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd.Context(), g, email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set HOTEL_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set HOTEL_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(ctx context.Context, g *Globals, email, password string, opts ...Option) error {
	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("HOTEL_EMAIL")
	}
	if password == "" {
		password = os.Getenv("HOTEL_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or HOTEL_EMAIL env var)")
	}

	e, err := newEnv(g, opts...)
	if err != nil {
		return err
	}

	if password == "" {
		if password, err = readPassword(e); err != nil {
			return err
		}
	}

	if e.apiURL != "" {
		fmt.Fprintf(e.out, "Logging in to %s...\n", e.apiURL)
	}

	result, err := e.api.Auth.Login(ctx, email, password)
	if errors.Is(err, hotel.ErrPendingApproval) {
		return fmt.Errorf("account %s is awaiting approval by an administrator", email)
	}
	if err != nil {
		return err
	}

	// Remember the API so later commands find the token
	if e.apiURL != "" && g.APIURL != "" {
		if err := userconfig.SetAPIURL(e.apiURL); err != nil {
			fmt.Fprintf(e.out, "Warning: failed to save API URL: %v\n", err)
		}
	}

	fmt.Fprintln(e.out, "✓ Login successful!")
	fmt.Fprintf(e.out, "  User: %s (%s)\n", result.User.DisplayName(), result.User.Email)
	if result.User.Role != "" {
		fmt.Fprintf(e.out, "  Role: %s\n", result.User.Role)
	}
	return nil
}

func readPassword(e *env) (string, error) {
	if e.interactive {
		fmt.Fprint(e.out, "Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(e.out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(bytePassword), nil
	}

	line, err := bufio.NewReader(e.in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("password is required in non-interactive mode (use --password flag or HOTEL_PASSWORD env var)")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// NewLogoutCmd creates the logout command
func NewLogoutCmd(g *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(g)
		},
	}
}

func runLogout(g *Globals, opts ...Option) error {
	e, err := newEnv(g, opts...)
	if err != nil {
		return err
	}
	if err := e.api.Auth.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Logged out")
	return nil
}

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd(g *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in administrator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(g)
		},
	}
}

func runWhoami(g *Globals, opts ...Option) error {
	e, err := newEnv(g, opts...)
	if err != nil {
		return err
	}

	token, ok := e.api.Auth.Token()
	if !ok {
		return fmt.Errorf("not authenticated. Please run 'hotelctl login' first")
	}

	if user, ok := e.api.Auth.CurrentUser(); ok {
		fmt.Fprintf(e.out, "User:    %s (%s)\n", user.DisplayName(), user.Email)
		if user.Role != "" {
			fmt.Fprintf(e.out, "Role:    %s\n", user.Role)
		}
	} else {
		fmt.Fprintln(e.out, "User:    unknown")
	}

	// Informational only; the API decides whether the token is still good
	if exp, ok := session.TokenExpiry(token); ok {
		state := "valid"
		if time.Now().After(exp) {
			state = "expired"
		}
		fmt.Fprintf(e.out, "Token:   %s until %s\n", state, exp.Local().Format(time.RFC1123))
	}
	return nil
}
