// Package ledger implements the pure state-transition rules of the banking
// session: player creation, balance updates with the elimination rule, and
// transaction construction. It holds no state and performs no I/O; fresh
// identifiers and timestamps are supplied by the caller.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/okarpov/boardbanker/internal/model"
	"github.com/okarpov/boardbanker/internal/money"
)

// NewTransaction builds a ledger entry. amount must already be a non-negative
// magnitude; direction is expressed by typ and the from/to ids.
func NewTransaction(
	id model.TransactionID,
	now time.Time,
	typ model.TransactionType,
	amount int64,
	description string,
	from, to model.PlayerID,
) model.Transaction {
	return model.Transaction{
		ID:           id,
		Timestamp:    now,
		Type:         typ,
		Amount:       amount,
		FromPlayerID: from,
		ToPlayerID:   to,
		Description:  description,
	}
}

// AddPlayer creates a player with the starting balance, together with the
// player_added transaction that records it. It fails with model.ErrNameTaken
// when the trimmed name matches an existing player's name case-insensitively;
// eliminated players keep their names reserved. Length validation is the
// caller's responsibility.
func AddPlayer(
	name string,
	existing []model.Player,
	playerID model.PlayerID,
	txID model.TransactionID,
	now time.Time,
) (model.Player, model.Transaction, error) {
	if NameTaken(name, existing) {
		return model.Player{}, model.Transaction{}, model.ErrNameTaken
	}

	player := model.Player{
		ID:       playerID,
		Name:     name,
		Balance:  model.StartingBalance,
		IsActive: true,
	}

	desc := fmt.Sprintf("Добавлен игрок %q со стартовым балансом %s",
		name, money.Format(model.StartingBalance))
	tx := NewTransaction(txID, now, model.TransactionPlayerAdded,
		model.StartingBalance, desc, "", player.ID)

	return player, tx, nil
}

// NameTaken reports whether name is already used by any player in the list,
// active or eliminated. Comparison ignores case and surrounding whitespace.
func NameTaken(name string, players []model.Player) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, p := range players {
		if strings.ToLower(strings.TrimSpace(p.Name)) == needle {
			return true
		}
	}
	return false
}

// ApplyDelta returns the player with delta added to their balance. IsActive
// is recomputed from the new balance on every call, so a positive swing can
// bring an eliminated player back above the threshold and reactivate them.
func ApplyDelta(p model.Player, delta int64) model.Player {
	p.Balance += delta
	p.IsActive = p.Balance >= model.MinBalance
	return p
}

// MaxTransfer is the most a player may send in one transfer: they must keep
// a strictly positive balance of at least 1 afterwards. This floor is
// independent of the elimination threshold.
func MaxTransfer(p model.Player) int64 {
	if p.Balance <= 1 {
		return 0
	}
	return p.Balance - 1
}

// TransferDescription renders the log line for a transfer between players
func TransferDescription(from, to model.Player, amount int64) string {
	return fmt.Sprintf("%q передает %q %d тысяч монет", from.Name, to.Name, amount)
}

// IncomeDescription renders the log line for money received from the bank
func IncomeDescription(p model.Player, amount int64) string {
	return fmt.Sprintf("%s получил %d тысяч монет", p.Name, amount)
}

// ExpenseDescription renders the log line for money paid to the bank
func ExpenseDescription(p model.Player, amount int64) string {
	return fmt.Sprintf("%s потерял %d тысяч монет", p.Name, amount)
}

// FieldDescription renders the log line for a board field effect
func FieldDescription(p model.Player, description string) string {
	return fmt.Sprintf("%s: %s", p.Name, description)
}
