package domain

import "time"

// Claims is the decoded payload of a verified bearer token. Tokens are
// self-contained: once verified, the claims are trusted until ExpiresAt
// without a round-trip to the store.
type Claims struct {
	Subject   string    `json:"sub"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}
