package tui

import (
	"time"

	"github.com/pinkypromises/adminctl/internal/client/models"
)

// Messages delivered back onto the event loop when remote calls resolve.
// List results carry the sequence number of the load that produced them so
// stale responses can be discarded.

type sessionProbedMsg struct{}

type loginResultMsg struct {
	err error
}

type loggedOutMsg struct{}

type tickMsg struct {
	gen int
	at  time.Time
}

// Gifts dashboard.

type recipientLoadedMsg struct {
	recipient *models.Recipient
}

type recipientAddedMsg struct {
	recipient models.Recipient
	err       error
}

type giftsToggledMsg struct {
	recipient models.Recipient
	err       error
}

type giftsLoadedMsg struct {
	seq   uint64
	gifts []models.Gift
	err   error
}

type giftAddedMsg struct {
	gift models.Gift
	err  error
}

type giftSentMsg struct {
	err error
}

type cartLoadedMsg struct {
	seq   uint64
	items []models.CartItem
	total float64
	err   error
}

type remindersSentMsg struct {
	err error
}

type reminderDateMsg struct {
	date string
	err  error
}

// App versions.

type versionsLoadedMsg struct {
	seq      uint64
	versions []models.AppVersion
	err      error
}

type versionCreatedMsg struct {
	version models.AppVersion
	err     error
}

type versionDeletedMsg struct {
	id      string
	version string
	err     error
}

// Notifications.

type broadcastDoneMsg struct {
	count int
	err   error
}

// Period admin.

type enumsLoadedMsg struct {
	enums models.PeriodEnums
	err   error
}

type aidsLoadedMsg struct {
	seq  uint64
	aids []models.PeriodAid
	err  error
}

type aidSavedMsg struct {
	created bool
	err     error
}

type aidDeletedMsg struct {
	id  int
	err error
}

type lookoutsLoadedMsg struct {
	seq      uint64
	lookouts []models.PeriodLookout
	err      error
}

type lookoutSavedMsg struct {
	created bool
	err     error
}

type lookoutDeletedMsg struct {
	id  int
	err error
}

type periodUsersLoadedMsg struct {
	seq   uint64
	users []models.PeriodUser
	err   error
}

type periodUserSavedMsg struct {
	created bool
	err     error
}

type periodUserDeactivatedMsg struct {
	id  int
	err error
}
