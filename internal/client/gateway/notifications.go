package gateway

import (
	"context"
	"net/http"

	"github.com/pinkypromises/adminctl/internal/client/models"
)

// Notifications broadcasts a push notification to every app user.
type Notifications interface {
	Broadcast(ctx context.Context, n models.Notification) (models.BroadcastResult, error)
}

type notificationGateway struct {
	c *Client
}

// NewNotifications constructs the Notifications gateway bound to the shared client.
func NewNotifications(c *Client) Notifications {
	return &notificationGateway{c: c}
}

// Broadcast validates the draft locally and sends it. Validation failures
// never reach the wire.
func (g *notificationGateway) Broadcast(ctx context.Context, n models.Notification) (models.BroadcastResult, error) {
	if err := n.Validate(); err != nil {
		return models.BroadcastResult{}, err
	}

	var resp models.BroadcastResult
	if err := g.c.do(ctx, http.MethodPost, "/notification/send", n, &resp); err != nil {
		return models.BroadcastResult{}, err
	}
	return resp, nil
}
