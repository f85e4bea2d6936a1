// Package session owns the local credential lifecycle: written on
// login/signup success, read on every request, cleared on logout or when the
// "who am I" probe fails. Nothing else on disk or in memory survives a
// failed probe.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// Credentials is the on-disk shape: the bearer token plus the user record
// cached at login time. The cache is display-only; the probe re-resolves the
// user at startup.
type Credentials struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Store is a file-backed credential store.
type Store struct {
	path string

	mu    sync.Mutex
	creds *Credentials
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the credentials file. A missing file is the logged-out state,
// not an error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.creds = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("session: read credentials: %w", err)
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		// Corrupt file is the same as logged out, drop it.
		s.creds = nil
		_ = os.Remove(s.path)
		return nil
	}
	s.creds = &creds
	return nil
}

// Save persists the credential after a successful login or signup.
func (s *Store) Save(token string, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := &Credentials{Token: token, User: user}
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("session: marshal credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: create credentials dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("session: write credentials: %w", err)
	}
	s.creds = creds
	return nil
}

// Clear removes the credential, both in memory and on disk.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: remove credentials: %w", err)
	}
	return nil
}

// Token implements api.TokenSource. An expired token is treated the same as
// no token at all; the resulting 401 path clears the store.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds == nil {
		return ""
	}
	if exp, ok := tokenExpiry(s.creds.Token); ok && exp.Before(time.Now()) {
		return ""
	}
	return s.creds.Token
}

// User returns the cached user record, if logged in.
func (s *Store) User() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds == nil {
		return model.User{}, false
	}
	return s.creds.User, true
}

// SetUser refreshes the cached user after a successful probe.
func (s *Store) SetUser(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds != nil {
		s.creds.User = user
	}
}

// ExpiresAt reports the token's expiry claim, when present.
func (s *Store) ExpiresAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds == nil {
		return time.Time{}, false
	}
	return tokenExpiry(s.creds.Token)
}

// tokenExpiry reads the exp claim without verifying the signature; the
// client has no secret; the server remains the authority and will 401 an
// expired or forged token regardless.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
