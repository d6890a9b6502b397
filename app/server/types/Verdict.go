package types

import "time"

type Verdict struct {
	Valid          bool       `json:"valid"`
	Serial         string     `json:"serial"`
	Org            string     `json:"org,omitempty"`
	Status         string     `json:"status,omitempty"`
	IssuedAt       *time.Time `json:"issued_at,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	LastVerifiedAt *time.Time `json:"last_verified_at,omitempty"`
}

type ErrorMessage struct {
	Error string `json:"error"`
}
