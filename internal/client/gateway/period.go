package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pinkypromises/adminctl/internal/client/models"
)

// Period curates content for the period-tracking feature: aids, lookouts,
// and per-user cycle settings. Aids and lookouts support full CRUD; users
// are registered, updated, and soft-deactivated.
type Period interface {
	Enums(ctx context.Context) (models.PeriodEnums, error)

	Aids(ctx context.Context) ([]models.PeriodAid, error)
	CreateAid(ctx context.Context, in models.PeriodAidInput) error
	UpdateAid(ctx context.Context, id int, in models.PeriodAidInput) error
	DeleteAid(ctx context.Context, id int) error

	Lookouts(ctx context.Context) ([]models.PeriodLookout, error)
	CreateLookout(ctx context.Context, in models.PeriodLookoutInput) error
	UpdateLookout(ctx context.Context, id int, in models.PeriodLookoutInput) error
	DeleteLookout(ctx context.Context, id int) error

	Users(ctx context.Context) ([]models.PeriodUser, error)
	RegisterUser(ctx context.Context, in models.RegisterPeriodUser) error
	UpdateUser(ctx context.Context, id int, in models.UpdatePeriodUser) error
	DeactivateUser(ctx context.Context, id int) error
}

type periodGateway struct {
	c *Client
}

// NewPeriod constructs the Period gateway bound to the shared client.
func NewPeriod(c *Client) Period {
	return &periodGateway{c: c}
}

func (g *periodGateway) Enums(ctx context.Context) (models.PeriodEnums, error) {
	var e models.PeriodEnums
	if err := g.c.do(ctx, http.MethodGet, "/admin/period/enums", nil, &e); err != nil {
		return models.PeriodEnums{}, err
	}
	return e, nil
}

func (g *periodGateway) Aids(ctx context.Context) ([]models.PeriodAid, error) {
	var aids []models.PeriodAid
	if err := g.c.do(ctx, http.MethodGet, "/admin/period/aids", nil, &aids); err != nil {
		return nil, err
	}
	return aids, nil
}

func (g *periodGateway) CreateAid(ctx context.Context, in models.PeriodAidInput) error {
	return g.c.do(ctx, http.MethodPost, "/admin/period/aid", in, nil)
}

func (g *periodGateway) UpdateAid(ctx context.Context, id int, in models.PeriodAidInput) error {
	return g.c.do(ctx, http.MethodPut, "/admin/period/aid/"+strconv.Itoa(id), in, nil)
}

func (g *periodGateway) DeleteAid(ctx context.Context, id int) error {
	return g.c.do(ctx, http.MethodDelete, "/admin/period/aid/"+strconv.Itoa(id), nil, nil)
}

func (g *periodGateway) Lookouts(ctx context.Context) ([]models.PeriodLookout, error) {
	var lookouts []models.PeriodLookout
	if err := g.c.do(ctx, http.MethodGet, "/admin/period/lookouts", nil, &lookouts); err != nil {
		return nil, err
	}
	return lookouts, nil
}

func (g *periodGateway) CreateLookout(ctx context.Context, in models.PeriodLookoutInput) error {
	return g.c.do(ctx, http.MethodPost, "/admin/period/lookout", in, nil)
}

func (g *periodGateway) UpdateLookout(ctx context.Context, id int, in models.PeriodLookoutInput) error {
	return g.c.do(ctx, http.MethodPut, "/admin/period/lookout/"+strconv.Itoa(id), in, nil)
}

func (g *periodGateway) DeleteLookout(ctx context.Context, id int) error {
	return g.c.do(ctx, http.MethodDelete, "/admin/period/lookout/"+strconv.Itoa(id), nil, nil)
}

func (g *periodGateway) Users(ctx context.Context) ([]models.PeriodUser, error) {
	var users []models.PeriodUser
	if err := g.c.do(ctx, http.MethodGet, "/admin/period/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *periodGateway) RegisterUser(ctx context.Context, in models.RegisterPeriodUser) error {
	return g.c.do(ctx, http.MethodPost, "/admin/period/user/register", in, nil)
}

func (g *periodGateway) UpdateUser(ctx context.Context, id int, in models.UpdatePeriodUser) error {
	return g.c.do(ctx, http.MethodPut, "/admin/period/user/"+strconv.Itoa(id), in, nil)
}

// DeactivateUser soft-deletes: the server flips isActive rather than
// removing the row.
func (g *periodGateway) DeactivateUser(ctx context.Context, id int) error {
	return g.c.do(ctx, http.MethodDelete, "/admin/period/user/"+strconv.Itoa(id), nil, nil)
}
