package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pinkypromises/adminctl/internal/client/models"
	"github.com/pinkypromises/adminctl/internal/logging"
)

// fakeAuth implements gateway.Auth.
type fakeAuth struct {
	current    *models.Admin
	loginAdmin models.Admin
	loginErr   error
	logoutErr  error

	logoutCalls int
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (models.Admin, error) {
	return f.loginAdmin, f.loginErr
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuth) CurrentAdmin(ctx context.Context) (*models.Admin, error) {
	return f.current, nil
}

func TestSession_InitRestoresPrincipal(t *testing.T) {
	f := &fakeAuth{current: &models.Admin{ID: "a1", Email: "admin@example.com"}}
	s := New(f, logging.NewNop())

	s.Init(context.Background())

	require.True(t, s.Authenticated())
	require.Equal(t, "admin@example.com", s.Admin().Email)
}

func TestSession_InitWithoutSessionStaysUnauthenticated(t *testing.T) {
	s := New(&fakeAuth{current: nil}, logging.NewNop())

	s.Init(context.Background())

	require.False(t, s.Authenticated())
	require.Nil(t, s.Admin())
}

func TestSession_LoginStoresPrincipal(t *testing.T) {
	f := &fakeAuth{loginAdmin: models.Admin{ID: "a1", Name: "Admin"}}
	s := New(f, logging.NewNop())

	require.NoError(t, s.Login(context.Background(), "admin@example.com", "pw"))
	require.True(t, s.Authenticated())
	require.Equal(t, "Admin", s.Admin().Name)
}

func TestSession_FailedLoginLeavesNoPrincipal(t *testing.T) {
	f := &fakeAuth{loginErr: errors.New("Invalid credentials")}
	s := New(f, logging.NewNop())

	err := s.Login(context.Background(), "admin@example.com", "wrong")
	require.EqualError(t, err, "Invalid credentials")
	require.False(t, s.Authenticated())
}

func TestSession_LogoutClearsPrincipalEvenOnRemoteFailure(t *testing.T) {
	f := &fakeAuth{loginAdmin: models.Admin{ID: "a1"}, logoutErr: errors.New("boom")}
	s := New(f, logging.NewNop())
	require.NoError(t, s.Login(context.Background(), "e", "p"))

	s.Logout(context.Background())

	require.Equal(t, 1, f.logoutCalls)
	require.False(t, s.Authenticated())
}
