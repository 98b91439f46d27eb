package hotel

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/hotelsuite/hotelsuite/internal/apiclient"
	"github.com/hotelsuite/hotelsuite/internal/session"
)

const loginPath = "/admins/login"

// ErrPendingApproval is returned by Login when the credentials are valid but
// the admin account has not been approved yet.
var ErrPendingApproval = errors.New("account is awaiting approval")

// ErrMissingToken is returned when the login answer carries no token.
var ErrMissingToken = errors.New("login response did not include a token")

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult represents the login response
type LoginResult struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    session.User `json:"user"`
}

// Auth runs the sign-in and sign-out flows against the session store.
type Auth struct {
	client *apiclient.Client
	log    zerolog.Logger
}

// Login authenticates an admin and stores the issued token and user. Bad
// credentials come back as an *apiclient.APIError; they never end a session.
func (a *Auth) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	req := LoginRequest{Email: email, Password: password}
	if err := Validate(req); err != nil {
		return nil, err
	}

	resp, err := a.client.Do(ctx, loginPath, &apiclient.Request{
		Method:    http.MethodPost,
		Body:      req,
		Anonymous: true,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	var result LoginResult
	if err := resp.Decode(&result); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if result.Token == "" {
		return nil, ErrMissingToken
	}

	// An absent is_approved counts as not approved.
	if !result.User.IsApproved {
		a.log.Info().Str("email", email).Msg("Login for unapproved account")
		if err := a.client.Store().Clear(); err != nil {
			a.log.Warn().Err(err).Msg("Failed to clear previous session")
		}
		return &result, ErrPendingApproval
	}

	if err := a.client.Store().Set(result.Token, &result.User); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	a.log.Info().Str("user_id", result.User.ID).Msg("Signed in")
	return &result, nil
}

// Logout ends the session locally.
func (a *Auth) Logout() error {
	if err := a.client.Store().Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the cached user of the active session.
func (a *Auth) CurrentUser() (*session.User, bool) {
	if _, ok := a.client.Store().Token(); !ok {
		return nil, false
	}
	return a.client.Store().User()
}

// Token returns the bearer token of the active session.
func (a *Auth) Token() (string, bool) {
	return a.client.Store().Token()
}
