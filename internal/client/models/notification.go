package models

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Notification types accepted by the broadcast endpoint.
const (
	NotificationCustom   = "custom"
	NotificationReminder = "reminder"
	NotificationGift     = "gift"
	NotificationSystem   = "system"
)

// NotificationTypes lists the valid broadcast categories in display order.
var NotificationTypes = []string{
	NotificationCustom,
	NotificationReminder,
	NotificationGift,
	NotificationSystem,
}

// Field limits enforced before a broadcast is ever sent.
const (
	NotificationTitleMax = 100
	NotificationBodyMax  = 500
)

var (
	ErrNotificationTitleRequired = errors.New("notification title is required")
	ErrNotificationBodyRequired  = errors.New("notification body is required")
	ErrNotificationType          = errors.New("unknown notification type")
)

// Notification is a transient broadcast draft; it exists only while one
// message is being composed and sent.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Type  string `json:"type"`
}

// Validate enforces the client-side constraints: required title and body,
// title at most NotificationTitleMax characters, body at most
// NotificationBodyMax characters, and a known type. Limits count characters,
// not bytes.
func (n Notification) Validate() error {
	if n.Title == "" {
		return ErrNotificationTitleRequired
	}
	if n.Body == "" {
		return ErrNotificationBodyRequired
	}
	if c := utf8.RuneCountInString(n.Title); c > NotificationTitleMax {
		return fmt.Errorf("title is %d characters, maximum is %d", c, NotificationTitleMax)
	}
	if c := utf8.RuneCountInString(n.Body); c > NotificationBodyMax {
		return fmt.Errorf("body is %d characters, maximum is %d", c, NotificationBodyMax)
	}
	for _, t := range NotificationTypes {
		if n.Type == t {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotificationType, n.Type)
}

// BroadcastResult reports how many notifications the server queued.
type BroadcastResult struct {
	Count int `json:"count"`
}
