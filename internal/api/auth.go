package api

import (
	"context"
	"net/http"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/dto"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// Me resolves the current user from the stored credential. A failure here is
// treated as "not logged in"; callers clear the session on any error.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var resp dto.MeResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*dto.AuthResponse, error) {
	req := dto.LoginRequest{Username: username, Password: password}
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Signup(ctx context.Context, username, email, password string) (*dto.AuthResponse, error) {
	req := dto.SignupRequest{Username: username, Email: email, Password: password}
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
