package gateway

import (
	"context"
	"net/http"

	"github.com/pinkypromises/adminctl/internal/client/models"
)

// Recipients manages the single gift recipient and their read-only cart.
type Recipients interface {
	Add(ctx context.Context, username string) (models.Recipient, error)
	Get(ctx context.Context) (models.Recipient, error)
	SetGiftsOn(ctx context.Context, on bool) (models.Recipient, error)
	GiftsReceived(ctx context.Context) (int, error)
	GiftsStatus(ctx context.Context) (bool, error)
	Cart(ctx context.Context) ([]models.CartItem, float64, error)
}

type recipientGateway struct {
	c *Client
}

// NewRecipients constructs the Recipients gateway bound to the shared client.
func NewRecipients(c *Client) Recipients {
	return &recipientGateway{c: c}
}

// Add registers the recipient. Gifts start enabled with a zero received
// count, matching the server's expectations for a fresh recipient.
func (g *recipientGateway) Add(ctx context.Context, username string) (models.Recipient, error) {
	req := struct {
		Username      string `json:"username"`
		IsGiftsOn     bool   `json:"isGiftsOn"`
		GiftsReceived int    `json:"giftsReceived"`
	}{Username: username, IsGiftsOn: true}

	var resp struct {
		Recipient models.Recipient `json:"recipient"`
	}
	if err := g.c.do(ctx, http.MethodPost, "/recipient/add-recipient", req, &resp); err != nil {
		return models.Recipient{}, err
	}
	return resp.Recipient, nil
}

func (g *recipientGateway) Get(ctx context.Context) (models.Recipient, error) {
	var resp struct {
		Recipient models.Recipient `json:"recipient"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/recipient/get-recipient", nil, &resp); err != nil {
		return models.Recipient{}, err
	}
	return resp.Recipient, nil
}

func (g *recipientGateway) SetGiftsOn(ctx context.Context, on bool) (models.Recipient, error) {
	req := struct {
		IsGiftsOn bool `json:"isGiftsOn"`
	}{IsGiftsOn: on}

	var resp struct {
		Recipient models.Recipient `json:"recipient"`
	}
	if err := g.c.do(ctx, http.MethodPatch, "/recipient/set-gifts", req, &resp); err != nil {
		return models.Recipient{}, err
	}
	return resp.Recipient, nil
}

func (g *recipientGateway) GiftsReceived(ctx context.Context) (int, error) {
	var resp struct {
		GiftsReceived int `json:"giftsReceived"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/recipient/gifts-received", nil, &resp); err != nil {
		return 0, err
	}
	return resp.GiftsReceived, nil
}

func (g *recipientGateway) GiftsStatus(ctx context.Context) (bool, error) {
	var resp struct {
		IsGiftsOn bool `json:"isGiftsOn"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/recipient/gifts-status", nil, &resp); err != nil {
		return false, err
	}
	return resp.IsGiftsOn, nil
}

// Cart returns the recipient's cart items and the server-computed total.
func (g *recipientGateway) Cart(ctx context.Context) ([]models.CartItem, float64, error) {
	var resp struct {
		CartDetails []models.CartItem `json:"cartDetails"`
		Total       float64           `json:"total"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/recipient/cart/details", nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.CartDetails, resp.Total, nil
}
