package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/verifiedwealth/vw/internal/models"
)

// ValidateRegistration performs the client-side form checks that run
// before a registration request reaches the network.
func ValidateRegistration(req models.RegisterRequest) error {
	if !strings.Contains(req.Email, "@") || strings.HasPrefix(req.Email, "@") || strings.HasSuffix(req.Email, "@") {
		return fmt.Errorf("invalid email address")
	}
	if len(req.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("first and last name are required")
	}
	if strings.TrimSpace(req.Country) == "" {
		return fmt.Errorf("country is required")
	}
	return nil
}

// Register creates a new user and stores the returned credential.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := ValidateRegistration(req); err != nil {
		return nil, err
	}

	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}

	if err := c.storeCredential(ctx, resp.Token); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Login authenticates and stores the returned credential.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}

	if err := c.storeCredential(ctx, resp.Token); err != nil {
		return nil, err
	}

	return &resp, nil
}

// CurrentUser retrieves the authenticated user.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the stored credential. Purely local; the backend holds
// no server-side session to invalidate.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.creds.Clear(ctx); err != nil {
		return err
	}
	if c.session != nil {
		c.session.Deactivate()
	}
	return nil
}

// IsAuthenticated reports whether a credential is stored.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	token, err := c.creds.Token(ctx)
	return err == nil && token != ""
}

// storeCredential persists the bearer token and activates the session.
func (c *Client) storeCredential(ctx context.Context, token string) error {
	if err := c.creds.Set(ctx, token); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	if c.session != nil {
		c.session.Activate()
	}
	return nil
}
