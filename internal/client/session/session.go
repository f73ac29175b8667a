// Package session holds the authenticated admin identity for the lifetime of
// the program. It is an explicit object injected into the views that need
// it; there is no package-level principal.
package session

import (
	"context"

	"github.com/pinkypromises/adminctl/internal/client/gateway"
	"github.com/pinkypromises/adminctl/internal/client/models"
	"github.com/pinkypromises/adminctl/internal/logging"
)

// Session is the session-context object.
//
// Lifecycle:
//   - Init probes the server once at startup; a failed probe simply leaves
//     the session unauthenticated.
//   - Login authenticates and stores the principal.
//   - Logout tells the server goodbye and clears the principal even when
//     the remote call fails.
//
// Session is used from the single UI event loop and needs no locking.
type Session struct {
	auth gateway.Auth
	log  logging.Logger

	admin *models.Admin
}

// New constructs an unauthenticated Session.
func New(auth gateway.Auth, log logging.Logger) *Session {
	return &Session{auth: auth, log: log}
}

// Init probes "who am I" once. The probe failing or returning no admin is
// the normal unauthenticated case, never an error.
func (s *Session) Init(ctx context.Context) {
	admin, err := s.auth.CurrentAdmin(ctx)
	if err != nil || admin == nil {
		s.admin = nil
		return
	}
	s.admin = admin
	s.log.Info(ctx, "session restored", "admin", admin.Email)
}

// Login authenticates and stores the principal on success.
func (s *Session) Login(ctx context.Context, email, password string) error {
	admin, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.admin = &admin
	s.log.Info(ctx, "login", "admin", admin.Email)
	return nil
}

// Logout clears the principal unconditionally; a failed remote logout is
// logged and swallowed.
func (s *Session) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Warn(ctx, "remote logout failed", "error", err.Error())
	}
	s.admin = nil
}

// Admin returns the current principal, or nil when unauthenticated.
func (s *Session) Admin() *models.Admin {
	return s.admin
}

// Authenticated reports whether a principal is present.
func (s *Session) Authenticated() bool {
	return s.admin != nil
}
