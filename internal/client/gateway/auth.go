package gateway

import (
	"context"
	"net/http"

	"github.com/pinkypromises/adminctl/internal/client/models"
)

// Auth is the authentication sub-gateway.
//
// Contract:
//   - Login authenticates and lets the server set the session cookie.
//   - Logout invalidates the remote session.
//   - CurrentAdmin probes "who am I"; an unauthenticated session yields
//     (nil, nil), never an error.
type Auth interface {
	Login(ctx context.Context, email, password string) (models.Admin, error)
	Logout(ctx context.Context) error
	CurrentAdmin(ctx context.Context) (*models.Admin, error)
}

type authGateway struct {
	c *Client
}

// NewAuth constructs the Auth gateway bound to the shared client.
func NewAuth(c *Client) Auth {
	return &authGateway{c: c}
}

func (g *authGateway) Login(ctx context.Context, email, password string) (models.Admin, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		AdminID string `json:"adminId"`
		Email   string `json:"email"`
		Name    string `json:"name"`
	}
	if err := g.c.do(ctx, http.MethodPost, "/admin/login", req, &resp); err != nil {
		return models.Admin{}, err
	}

	return models.Admin{
		ID:      resp.AdminID,
		AdminID: resp.AdminID,
		Name:    resp.Name,
		Email:   resp.Email,
	}, nil
}

func (g *authGateway) Logout(ctx context.Context) error {
	return g.c.do(ctx, http.MethodPost, "/admin/logout", nil, nil)
}

func (g *authGateway) CurrentAdmin(ctx context.Context) (*models.Admin, error) {
	var admin models.Admin
	if err := g.c.do(ctx, http.MethodGet, "/admin/me", nil, &admin); err != nil {
		// A failed probe means "not authenticated", not a fatal error.
		return nil, nil
	}
	return &admin, nil
}
