package models

// Default cycle parameters applied when registering a period user.
const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// PeriodEnums are the server-supplied value sets for constrained aid fields.
type PeriodEnums struct {
	Problems   []string `json:"problems"`
	Categories []string `json:"categories"`
}

// PeriodAid is a catalog entry suggesting remedies for a problem/category pair.
type PeriodAid struct {
	ID             int    `json:"id"`
	Problem        string `json:"problem"`
	Category       string `json:"category"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Priority       int    `json:"priority"`
	IsAdminCreated bool   `json:"isAdminCreated"`
}

// PeriodAidInput is the create/update payload for an aid. Empty optional
// fields are omitted so updates keep partial-update semantics.
type PeriodAidInput struct {
	Problem     string `json:"problem,omitempty"`
	Category    string `json:"category,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
}

// PeriodLookout is a dated advisory shown to one specific end user. Username
// is denormalized server-side for display.
type PeriodLookout struct {
	ID            int    `json:"id"`
	UserID        int    `json:"userId"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	ShowOnDate    string `json:"showOnDate"`
	ShowUntilDate string `json:"showUntilDate,omitempty"`
	Priority      int    `json:"priority"`
	Username      string `json:"username,omitempty"`
}

// PeriodLookoutInput is the create/update payload for a lookout.
type PeriodLookoutInput struct {
	UserID        *int   `json:"userId,omitempty"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	ShowOnDate    string `json:"showOnDate,omitempty"`
	ShowUntilDate string `json:"showUntilDate,omitempty"`
	Priority      *int   `json:"priority,omitempty"`
}

// PeriodUser is a tracked end user of the period feature. Deactivation is
// soft; there is no hard delete.
type PeriodUser struct {
	ID                  int    `json:"id"`
	UserID              int    `json:"userId"`
	Username            string `json:"username"`
	DefaultCycleLength  int    `json:"defaultCycleLength"`
	DefaultPeriodLength int    `json:"defaultPeriodLength"`
	IsActive            bool   `json:"isActive"`
}

// RegisterPeriodUser is the payload for enrolling a new period user.
type RegisterPeriodUser struct {
	Username               string `json:"username"`
	PreviousCycleStartDate string `json:"previousCycleStartDate"`
	PreviousCycleEndDate   string `json:"previousCycleEndDate"`
	DefaultCycleLength     int    `json:"defaultCycleLength,omitempty"`
	DefaultPeriodLength    int    `json:"defaultPeriodLength,omitempty"`
}

// UpdatePeriodUser is the partial-update payload for an existing period user.
type UpdatePeriodUser struct {
	Username            string `json:"username,omitempty"`
	DefaultCycleLength  *int   `json:"defaultCycleLength,omitempty"`
	DefaultPeriodLength *int   `json:"defaultPeriodLength,omitempty"`
	IsActive            *bool  `json:"isActive,omitempty"`
}
