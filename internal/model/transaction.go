package model

import "time"

// TransactionID uniquely identifies a transaction
type TransactionID string

// TransactionType describes what kind of balance change a transaction records
type TransactionType string

const (
	TransactionIncome      TransactionType = "income"
	TransactionExpense     TransactionType = "expense"
	TransactionTransfer    TransactionType = "transfer"
	TransactionPlayerAdded TransactionType = "player_added"
)

// Valid reports whether t is one of the known transaction types
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionTransfer, TransactionPlayerAdded:
		return true
	}
	return false
}

// Transaction is one immutable entry of the session ledger. Amount is always
// a non-negative magnitude; direction is carried by Type and by which of
// FromPlayerID/ToPlayerID is set (transfer sets both, income and player_added
// set only the destination, expense only the source).
type Transaction struct {
	ID           TransactionID   `json:"id"`
	Timestamp    time.Time       `json:"timestamp"`
	Type         TransactionType `json:"type"`
	Amount       int64           `json:"amount"`
	FromPlayerID PlayerID        `json:"fromPlayerId,omitempty"`
	ToPlayerID   PlayerID        `json:"toPlayerId,omitempty"`
	Description  string          `json:"description"`
}
