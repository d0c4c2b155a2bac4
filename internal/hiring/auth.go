package hiring

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	apiLoginPath    = "/auth/login"
	apiRegisterPath = "/auth/register"
	apiMePath       = "/auth/me"

	defaultAuthFailure = "Authentication failed"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Username string `json:"username" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Company  string `json:"company,omitempty"`
	UserType string `json:"user_type" validate:"required,oneof=candidate recruiter"`
}

var validate = validator.New()

// Validate checks the payload before it is sent.
func (r LoginRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks the payload before it is sent.
func (r RegisterRequest) Validate() error {
	return validate.Struct(r)
}

// User is the profile returned by the auth endpoints.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	UserType string `json:"user_type"`
	Company  string `json:"company"`
	IsActive bool   `json:"is_active"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid login request: %w", err)
	}
	return c.authenticate(ctx, apiLoginPath, req)
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registration request: %w", err)
	}
	return c.authenticate(ctx, apiRegisterPath, req)
}

// Me returns the profile behind the current bearer token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, apiMePath, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) authenticate(ctx context.Context, path string, payload any) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, path, payload, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Detail == "" {
			apiErr.Detail = defaultAuthFailure
		}
		return nil, err
	}

	if resp.AccessToken == "" {
		return nil, fmt.Errorf("auth response without access token")
	}
	if resp.User.Username == "" {
		return nil, fmt.Errorf("auth response without username")
	}

	return &resp, nil
}
