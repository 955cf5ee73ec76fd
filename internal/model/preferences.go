package model

import "time"

// Preferences is an account's saved generator configuration: the defaults a
// client applies to its generation form. Only the configuration is stored;
// generated passwords never are.
type Preferences struct {
	UserID    int64
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
	UpdatedAt time.Time
}

// PreferencesRequest represents a save-preferences request.
type PreferencesRequest struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digits    bool `json:"digits"`
	Symbols   bool `json:"symbols"`
}

// PreferencesResponse carries the generator configuration a client should
// present. Saved is false when the account has never stored preferences and
// the service defaults are being returned instead.
type PreferencesResponse struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digits    bool `json:"digits"`
	Symbols   bool `json:"symbols"`
	Saved     bool `json:"saved"`
}
