// Package session owns the single mutable game aggregate. It routes banker
// operations through the ledger rules and persists the result after every
// externally visible change.
package session

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/okarpov/boardbanker/internal/dependencies/clock"
	"github.com/okarpov/boardbanker/internal/dependencies/random"
	"github.com/okarpov/boardbanker/internal/ledger"
	"github.com/okarpov/boardbanker/internal/model"
	"github.com/okarpov/boardbanker/internal/storage"
)

const (
	// MinNameLength and MaxNameLength bound a player name after trimming
	MinNameLength = 2
	MaxNameLength = 20
)

// Controller manages the session aggregate's lifecycle and operations
type Controller struct {
	storage storage.Store
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Store,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Current returns the stored session, or starts a fresh empty one when
// nothing (or nothing parseable) is stored. A fresh session is persisted
// immediately so its id stays stable across reads.
func (c *Controller) Current(ctx context.Context) (*model.Session, error) {
	stored, err := c.storage.LoadSession(ctx)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return stored, nil
	}

	sess := model.NewSession(model.SessionID(random.ID(c.random)))
	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("new session started", slog.String("session_id", string(sess.ID)))
	return sess, nil
}

// AddPlayer registers a new player with the starting balance and logs the
// player_added transaction. The trimmed name must be 2-20 characters and not
// already taken, eliminated players included.
func (c *Controller) AddPlayer(ctx context.Context, name string) (*model.Session, error) {
	trimmed := strings.TrimSpace(name)
	if n := utf8.RuneCountInString(trimmed); n < MinNameLength || n > MaxNameLength {
		return nil, model.ErrInvalidName
	}

	sess, err := c.Current(ctx)
	if err != nil {
		return nil, err
	}

	player, tx, err := ledger.AddPlayer(trimmed, sess.Players,
		model.PlayerID(random.ID(c.random)), model.TransactionID(random.ID(c.random)), c.clock.Now())
	if err != nil {
		return nil, err
	}

	sess.Players = append(sess.Players, player)
	sess.Prepend(tx)

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("player added",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name))
	return sess, nil
}

// ApplyTransaction applies an income, expense or transfer. amount is a
// positive magnitude; direction comes from kind. Operations aimed at an
// inactive participant deliberately change nothing and raise nothing.
func (c *Controller) ApplyTransaction(
	ctx context.Context,
	kind model.TransactionType,
	amount int64,
	playerID, targetPlayerID model.PlayerID,
) (*model.Session, error) {
	if amount <= 0 {
		return nil, model.ErrInvalidAmount
	}

	switch kind {
	case model.TransactionTransfer:
		return c.applyTransfer(ctx, amount, playerID, targetPlayerID)
	case model.TransactionIncome, model.TransactionExpense:
		return c.applyIncomeExpense(ctx, kind, amount, playerID)
	default:
		return nil, model.ErrInvalidType
	}
}

func (c *Controller) applyTransfer(
	ctx context.Context,
	amount int64,
	fromID, toID model.PlayerID,
) (*model.Session, error) {
	if toID == "" {
		return nil, model.ErrMissingTarget
	}
	// Applying the debit and the credit to one roster entry would net +amount
	if fromID == toID {
		return nil, model.ErrSelfTransfer
	}

	sess, err := c.Current(ctx)
	if err != nil {
		return nil, err
	}

	fromIdx := sess.PlayerIndex(fromID)
	toIdx := sess.PlayerIndex(toID)
	if fromIdx < 0 || toIdx < 0 {
		return nil, model.ErrPlayerNotFound
	}

	from := sess.Players[fromIdx]
	to := sess.Players[toIdx]

	if !from.IsActive || !to.IsActive {
		// Deliberate no-op: eliminated players can neither send nor receive
		c.logger.Debug("transfer skipped, inactive participant",
			slog.String("from", string(fromID)), slog.String("to", string(toID)))
		return sess, nil
	}

	// The sender must keep at least 1 after the transfer, regardless of how
	// far the elimination threshold is below zero
	if from.Balance-amount < 1 {
		return nil, model.ErrTransferLimit
	}

	sess.Players[fromIdx] = ledger.ApplyDelta(from, -amount)
	sess.Players[toIdx] = ledger.ApplyDelta(to, amount)

	tx := ledger.NewTransaction(model.TransactionID(random.ID(c.random)), c.clock.Now(),
		model.TransactionTransfer, amount, ledger.TransferDescription(from, to, amount), fromID, toID)
	sess.Prepend(tx)

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("transfer applied",
		slog.String("from", string(fromID)),
		slog.String("to", string(toID)),
		slog.Int64("amount", amount))
	return sess, nil
}

func (c *Controller) applyIncomeExpense(
	ctx context.Context,
	kind model.TransactionType,
	amount int64,
	playerID model.PlayerID,
) (*model.Session, error) {
	sess, err := c.Current(ctx)
	if err != nil {
		return nil, err
	}

	idx := sess.PlayerIndex(playerID)
	if idx < 0 {
		return nil, model.ErrPlayerNotFound
	}

	p := sess.Players[idx]
	if !p.IsActive {
		c.logger.Debug("transaction skipped, inactive player",
			slog.String("player_id", string(playerID)))
		return sess, nil
	}

	delta := amount
	desc := ledger.IncomeDescription(p, amount)
	var fromID, toID model.PlayerID = "", playerID
	if kind == model.TransactionExpense {
		delta = -amount
		desc = ledger.ExpenseDescription(p, amount)
		fromID, toID = playerID, ""
	}

	sess.Players[idx] = ledger.ApplyDelta(p, delta)

	tx := ledger.NewTransaction(model.TransactionID(random.ID(c.random)), c.clock.Now(),
		kind, amount, desc, fromID, toID)
	sess.Prepend(tx)

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("transaction applied",
		slog.String("type", string(kind)),
		slog.String("player_id", string(playerID)),
		slog.Int64("amount", amount))
	return sess, nil
}

// ApplyFieldEffect applies a board field outcome to one player: positive
// amounts are income, negative are expense. An inactive target is left
// untouched with no transaction recorded.
func (c *Controller) ApplyFieldEffect(
	ctx context.Context,
	playerID model.PlayerID,
	amount int64,
	description string,
) (*model.Session, error) {
	if amount == 0 {
		return nil, model.ErrInvalidAmount
	}

	sess, err := c.Current(ctx)
	if err != nil {
		return nil, err
	}

	idx := sess.PlayerIndex(playerID)
	if idx < 0 {
		return nil, model.ErrPlayerNotFound
	}

	p := sess.Players[idx]
	if !p.IsActive {
		c.logger.Debug("field effect skipped, inactive player",
			slog.String("player_id", string(playerID)))
		return sess, nil
	}

	sess.Players[idx] = ledger.ApplyDelta(p, amount)

	kind := model.TransactionIncome
	magnitude := amount
	var fromID, toID model.PlayerID = "", playerID
	if amount < 0 {
		kind = model.TransactionExpense
		magnitude = -amount
		fromID, toID = playerID, ""
	}

	tx := ledger.NewTransaction(model.TransactionID(random.ID(c.random)), c.clock.Now(),
		kind, magnitude, ledger.FieldDescription(p, description), fromID, toID)
	sess.Prepend(tx)

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("field effect applied",
		slog.String("player_id", string(playerID)),
		slog.Int64("amount", amount))
	return sess, nil
}

// Reset discards the current game and starts the replacement: empty roster,
// empty log, a fresh session id persisted in place of the old snapshot.
func (c *Controller) Reset(ctx context.Context) (*model.Session, error) {
	if err := c.storage.ClearSession(ctx); err != nil {
		return nil, err
	}
	return c.Current(ctx)
}
