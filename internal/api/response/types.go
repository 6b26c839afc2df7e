package response

import (
	"time"

	"github.com/okarpov/boardbanker/internal/model"
	"github.com/okarpov/boardbanker/internal/money"
	"github.com/okarpov/boardbanker/internal/services/board"
)

// PlayerResponse is the API view of a player
type PlayerResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Balance          int64  `json:"balance"`
	FormattedBalance string `json:"formattedBalance"`
	IsActive         bool   `json:"isActive"`
}

// TransactionResponse is the API view of a ledger entry
type TransactionResponse struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Type         string    `json:"type"`
	Amount       int64     `json:"amount"`
	FromPlayerID string    `json:"fromPlayerId,omitempty"`
	ToPlayerID   string    `json:"toPlayerId,omitempty"`
	Description  string    `json:"description"`
}

// SessionResponse is the API view of the whole aggregate
type SessionResponse struct {
	Players      []PlayerResponse      `json:"players"`
	Transactions []TransactionResponse `json:"transactions"`
	GameID       string                `json:"gameId"`
}

// FieldResponse is the API view of a board field
type FieldResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Effect          string `json:"effect"`
	Amount          int64  `json:"amount"`
	FormattedAmount string `json:"formattedAmount"`
}

// OutcomeResponse describes a resolved board field trigger
type OutcomeResponse struct {
	Field    FieldResponse   `json:"field"`
	PlayerID string          `json:"playerId"`
	Player   string          `json:"player"`
	Amount   int64           `json:"amount"`
	Session  SessionResponse `json:"session"`
}

// AuthResponse carries a freshly minted banker token
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// PlayerResponseFrom converts a model player
func PlayerResponseFrom(p model.Player) PlayerResponse {
	magnitude := p.Balance
	formatted := money.Format(magnitude)
	if magnitude < 0 {
		formatted = "-" + money.Format(-magnitude)
	}
	return PlayerResponse{
		ID:               string(p.ID),
		Name:             p.Name,
		Balance:          p.Balance,
		FormattedBalance: formatted,
		IsActive:         p.IsActive,
	}
}

// TransactionResponseFrom converts a model transaction
func TransactionResponseFrom(tx model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           string(tx.ID),
		Timestamp:    tx.Timestamp,
		Type:         string(tx.Type),
		Amount:       tx.Amount,
		FromPlayerID: string(tx.FromPlayerID),
		ToPlayerID:   string(tx.ToPlayerID),
		Description:  tx.Description,
	}
}

// SessionResponseFrom converts the session aggregate
func SessionResponseFrom(s *model.Session) SessionResponse {
	players := make([]PlayerResponse, 0, len(s.Players))
	for _, p := range s.Players {
		players = append(players, PlayerResponseFrom(p))
	}

	transactions := make([]TransactionResponse, 0, len(s.Transactions))
	for _, tx := range s.Transactions {
		transactions = append(transactions, TransactionResponseFrom(tx))
	}

	return SessionResponse{
		Players:      players,
		Transactions: transactions,
		GameID:       string(s.ID),
	}
}

// FieldResponseFrom converts a board field
func FieldResponseFrom(f board.Field) FieldResponse {
	return FieldResponse{
		ID:              f.ID,
		Name:            f.Name,
		Description:     f.Description,
		Effect:          string(f.Effect),
		Amount:          f.Amount,
		FormattedAmount: money.Format(f.Amount),
	}
}

// OutcomeResponseFrom converts a board trigger outcome
func OutcomeResponseFrom(o *board.Outcome) OutcomeResponse {
	return OutcomeResponse{
		Field:    FieldResponseFrom(o.Field),
		PlayerID: string(o.Player.ID),
		Player:   o.Player.Name,
		Amount:   o.Amount,
		Session:  SessionResponseFrom(o.Session),
	}
}

// AuthResponseFrom converts an issued banker token
func AuthResponseFrom(t *model.BankerToken) AuthResponse {
	return AuthResponse{
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
	}
}
