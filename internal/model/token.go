package model

import "time"

// BankerToken is an issued banker credential. Tokens live in storage next to
// the session snapshot so a logged-in banker survives a server restart.
type BankerToken struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
