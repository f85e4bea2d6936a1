package dto

import "github.com/adrsh79086/adarsh-contractor-frontend/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// AuthResponse is returned by both login and signup.
type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// MeResponse wraps the "who am I" probe result.
type MeResponse struct {
	User model.User `json:"user"`
}
