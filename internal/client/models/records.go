// Package models defines the plain wire records exchanged with the
// PinkyPromises admin API. Records carry no behavior beyond validation of
// client-side input constraints; identifiers and timestamps are assigned by
// the server.
package models

// Admin is the authenticated principal held for the session.
type Admin struct {
	ID      string `json:"id"`
	AdminID string `json:"adminId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// Gift is a single inventory entry.
type Gift struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Value     string `json:"value"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Recipient is the single gift recipient managed per admin context.
type Recipient struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	IsGiftsOn     bool   `json:"isGiftsOn"`
	GiftsReceived int    `json:"giftsReceived"`
	SetGift       string `json:"setGift,omitempty"`
}

// CartItem is a read-only entry of the recipient's cart.
type CartItem struct {
	ID    string  `json:"id"`
	Item  string  `json:"item"`
	Value float64 `json:"value"`
}

// AppVersion describes one published application release.
type AppVersion struct {
	ID          string  `json:"id"`
	Version     string  `json:"version"`
	DownloadURL string  `json:"downloadUrl"`
	Notes       *string `json:"notes,omitempty"`
	Mandatory   bool    `json:"mandatory"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// CreateAppVersion is the payload for publishing a new release.
type CreateAppVersion struct {
	Version     string `json:"version"`
	DownloadURL string `json:"downloadUrl"`
	Notes       string `json:"notes,omitempty"`
	Mandatory   bool   `json:"mandatory"`
}
