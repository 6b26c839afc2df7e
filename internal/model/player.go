package model

// PlayerID uniquely identifies a player within a game session
type PlayerID string

// Amounts are in thousands of coins throughout the system.
const (
	// StartingBalance is the balance every new player begins with (15 million coins)
	StartingBalance int64 = 15000

	// MinBalance is the elimination threshold: a player is active while their
	// balance is at or above it
	MinBalance int64 = -5000
)

// Player is a participant in the banking session. Eliminated players stay in
// the roster with IsActive false; they are never removed.
type Player struct {
	ID       PlayerID `json:"id"`
	Name     string   `json:"name"`
	Balance  int64    `json:"balance"`
	IsActive bool     `json:"isActive"`
}
