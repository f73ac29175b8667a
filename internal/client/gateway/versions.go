package gateway

import (
	"context"
	"net/http"

	"github.com/pinkypromises/adminctl/internal/client/models"
)

// Versions publishes and retires app release metadata. Versions are created
// and deleted, never updated.
type Versions interface {
	All(ctx context.Context) ([]models.AppVersion, error)
	Latest(ctx context.Context) (models.AppVersion, error)
	ByID(ctx context.Context, id string) (models.AppVersion, error)
	Create(ctx context.Context, req models.CreateAppVersion) (models.AppVersion, error)
	Delete(ctx context.Context, id string) error
}

type versionGateway struct {
	c *Client
}

// NewVersions constructs the Versions gateway bound to the shared client.
func NewVersions(c *Client) Versions {
	return &versionGateway{c: c}
}

func (g *versionGateway) All(ctx context.Context) ([]models.AppVersion, error) {
	var resp struct {
		Versions []models.AppVersion `json:"versions"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/admin/version/all", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Versions, nil
}

func (g *versionGateway) Latest(ctx context.Context) (models.AppVersion, error) {
	var resp struct {
		LatestVersion models.AppVersion `json:"latestVersion"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/admin/version/latest", nil, &resp); err != nil {
		return models.AppVersion{}, err
	}
	return resp.LatestVersion, nil
}

func (g *versionGateway) ByID(ctx context.Context, id string) (models.AppVersion, error) {
	var v models.AppVersion
	if err := g.c.do(ctx, http.MethodGet, "/admin/version/"+id, nil, &v); err != nil {
		return models.AppVersion{}, err
	}
	return v, nil
}

func (g *versionGateway) Create(ctx context.Context, req models.CreateAppVersion) (models.AppVersion, error) {
	var v models.AppVersion
	if err := g.c.do(ctx, http.MethodPost, "/admin/version/create", req, &v); err != nil {
		return models.AppVersion{}, err
	}
	return v, nil
}

func (g *versionGateway) Delete(ctx context.Context, id string) error {
	return g.c.do(ctx, http.MethodDelete, "/admin/version/"+id+"/delete", nil, nil)
}
