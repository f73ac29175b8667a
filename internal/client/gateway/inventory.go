package gateway

import (
	"context"
	"net/http"

	"github.com/pinkypromises/adminctl/internal/client/models"
)

// Inventory manages the gift stock.
type Inventory interface {
	Gifts(ctx context.Context) ([]models.Gift, error)
	AddGift(ctx context.Context, name, value, message string) (models.Gift, error)
}

// Gifts triggers gift delivery to the recipient.
type Gifts interface {
	SendGift(ctx context.Context) error
}

// Reminders broadcasts cycle reminders and reports the last broadcast time.
type Reminders interface {
	Send(ctx context.Context) error
	LastSent(ctx context.Context) (string, error)
}

type inventoryGateway struct {
	c *Client
}

// NewInventory constructs the Inventory gateway bound to the shared client.
func NewInventory(c *Client) Inventory {
	return &inventoryGateway{c: c}
}

func (g *inventoryGateway) Gifts(ctx context.Context) ([]models.Gift, error) {
	var resp struct {
		Gifts []models.Gift `json:"gifts"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/inventory/all-gifts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Gifts, nil
}

func (g *inventoryGateway) AddGift(ctx context.Context, name, value, message string) (models.Gift, error) {
	req := struct {
		Name    string `json:"name"`
		Value   string `json:"value"`
		Message string `json:"message,omitempty"`
	}{Name: name, Value: value, Message: message}

	var resp struct {
		Gift models.Gift `json:"gift"`
	}
	if err := g.c.do(ctx, http.MethodPost, "/inventory/add-gift", req, &resp); err != nil {
		return models.Gift{}, err
	}
	return resp.Gift, nil
}

type giftGateway struct {
	c *Client
}

// NewGifts constructs the Gifts gateway bound to the shared client.
func NewGifts(c *Client) Gifts {
	return &giftGateway{c: c}
}

func (g *giftGateway) SendGift(ctx context.Context) error {
	return g.c.do(ctx, http.MethodPost, "/gift/send-gift", nil, nil)
}

type reminderGateway struct {
	c *Client
}

// NewReminders constructs the Reminders gateway bound to the shared client.
func NewReminders(c *Client) Reminders {
	return &reminderGateway{c: c}
}

func (g *reminderGateway) Send(ctx context.Context) error {
	return g.c.do(ctx, http.MethodPost, "/reminder/send", nil, nil)
}

func (g *reminderGateway) LastSent(ctx context.Context) (string, error) {
	var resp struct {
		LastReminderSent string `json:"lastReminderSent"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/reminder/last-sent", nil, &resp); err != nil {
		return "", err
	}
	return resp.LastReminderSent, nil
}
