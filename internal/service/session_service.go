package service

import (
	"context"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/dto"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// AuthAPI is the slice of the collaborator API the session service needs.
type AuthAPI interface {
	Me(ctx context.Context) (*model.User, error)
	Login(ctx context.Context, username, password string) (*dto.AuthResponse, error)
	Signup(ctx context.Context, username, email, password string) (*dto.AuthResponse, error)
}

// CredentialStore is the local credential lifecycle consumed by the session
// service (implemented by session.Store).
type CredentialStore interface {
	Save(token string, user model.User) error
	Clear() error
	Token() string
	User() (model.User, bool)
	SetUser(user model.User)
}

type SessionService interface {
	// Resume probes "who am I" with the stored credential. Any failure
	// clears the credential and reports logged-out (nil user, nil error on
	// auth failures; only transport errors propagate).
	Resume(ctx context.Context) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
	Signup(ctx context.Context, username, email, password string) (*model.User, error)
	Logout() error
	Current() (model.User, bool)
}

type sessionService struct {
	api   AuthAPI
	store CredentialStore
}

func NewSessionService(api AuthAPI, store CredentialStore) SessionService {
	return &sessionService{api: api, store: store}
}

func (s *sessionService) Resume(ctx context.Context) (*model.User, error) {
	if s.store.Token() == "" {
		// Covers both "never logged in" and "token already expired": an
		// expired credential is dropped rather than sent to the server.
		_ = s.store.Clear()
		return nil, nil
	}
	user, err := s.api.Me(ctx)
	if err != nil {
		// Treated identically to "not authenticated", whatever the cause:
		// the credential is dropped and the user lands on the login surface.
		_ = s.store.Clear()
		return nil, nil
	}
	s.store.SetUser(*user)
	return user, nil
}

func (s *sessionService) Login(ctx context.Context, username, password string) (*model.User, error) {
	resp, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(resp.Token, resp.User); err != nil {
		return nil, err
	}
	user := resp.User
	return &user, nil
}

func (s *sessionService) Signup(ctx context.Context, username, email, password string) (*model.User, error) {
	resp, err := s.api.Signup(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(resp.Token, resp.User); err != nil {
		return nil, err
	}
	user := resp.User
	return &user, nil
}

func (s *sessionService) Logout() error {
	return s.store.Clear()
}

func (s *sessionService) Current() (model.User, bool) {
	return s.store.User()
}
