package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/dto"
	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubAuthAPI struct {
	meUser  *model.User
	meErr   error
	authErr error
}

func (s *stubAuthAPI) Me(context.Context) (*model.User, error) {
	return s.meUser, s.meErr
}

func (s *stubAuthAPI) Login(_ context.Context, username, _ string) (*dto.AuthResponse, error) {
	if s.authErr != nil {
		return nil, s.authErr
	}
	return &dto.AuthResponse{Token: "tok", User: model.User{ID: "u1", Username: username}}, nil
}

func (s *stubAuthAPI) Signup(_ context.Context, username, email, _ string) (*dto.AuthResponse, error) {
	if s.authErr != nil {
		return nil, s.authErr
	}
	return &dto.AuthResponse{Token: "tok", User: model.User{ID: "u2", Username: username, Email: email}}, nil
}

// memStore is an in-memory CredentialStore.
type memStore struct {
	token string
	user  *model.User
}

func (m *memStore) Save(token string, user model.User) error {
	m.token, m.user = token, &user
	return nil
}

func (m *memStore) Clear() error {
	m.token, m.user = "", nil
	return nil
}

func (m *memStore) Token() string { return m.token }

func (m *memStore) User() (model.User, bool) {
	if m.user == nil {
		return model.User{}, false
	}
	return *m.user, true
}

func (m *memStore) SetUser(user model.User) {
	if m.user != nil {
		m.user = &user
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestResumeWithoutCredential(t *testing.T) {
	svc := NewSessionService(&stubAuthAPI{}, &memStore{})

	user, err := svc.Resume(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestResumeProbeFailureClearsCredential(t *testing.T) {
	store := &memStore{token: "stale", user: &model.User{Username: "meena"}}
	svc := NewSessionService(&stubAuthAPI{meErr: errors.New("401")}, store)

	user, err := svc.Resume(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Empty(t, store.token)
	_, ok := store.User()
	assert.False(t, ok)
}

func TestResumeRefreshesCachedUser(t *testing.T) {
	store := &memStore{token: "tok", user: &model.User{Username: "old-name"}}
	svc := NewSessionService(&stubAuthAPI{meUser: &model.User{ID: "u1", Username: "meena", Role: "admin"}}, store)

	user, err := svc.Resume(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "meena", user.Username)

	cached, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, "meena", cached.Username)
}

func TestLoginSavesCredential(t *testing.T) {
	store := &memStore{}
	svc := NewSessionService(&stubAuthAPI{}, store)

	user, err := svc.Login(context.Background(), "meena", "secret")
	require.NoError(t, err)
	assert.Equal(t, "meena", user.Username)
	assert.Equal(t, "tok", store.token)
}

func TestLoginFailureLeavesStoreUntouched(t *testing.T) {
	store := &memStore{}
	svc := NewSessionService(&stubAuthAPI{authErr: errors.New("invalid credentials")}, store)

	_, err := svc.Login(context.Background(), "meena", "wrong")
	require.Error(t, err)
	assert.Empty(t, store.token)
}

func TestSignupSavesCredential(t *testing.T) {
	store := &memStore{}
	svc := NewSessionService(&stubAuthAPI{}, store)

	user, err := svc.Signup(context.Background(), "meena", "meena@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "meena@example.com", user.Email)
	assert.Equal(t, "tok", store.token)
}

func TestLogoutClearsCredential(t *testing.T) {
	store := &memStore{token: "tok", user: &model.User{}}
	svc := NewSessionService(&stubAuthAPI{}, store)

	require.NoError(t, svc.Logout())
	assert.Empty(t, store.token)
}
