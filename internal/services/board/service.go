// Package board runs the board mini-game: a field is triggered and a random
// active player takes its income or expense effect. Field selection happens
// here; the session controller only ever sees a concrete player id and a
// signed amount.
package board

import (
	"context"
	"log/slog"

	"github.com/okarpov/boardbanker/internal/dependencies/random"
	"github.com/okarpov/boardbanker/internal/model"
	"github.com/okarpov/boardbanker/internal/services/session"
)

// Effect is the direction of a field's balance change
type Effect string

const (
	EffectIncome  Effect = "income"
	EffectExpense Effect = "expense"
)

// Field is one cell of the mini-game board. Amount is a positive magnitude
// in thousands of coins.
type Field struct {
	ID          int
	Name        string
	Description string
	Effect      Effect
	Amount      int64
}

// The classic board layout
var fields = []Field{
	{ID: 1, Name: "Старт", Description: "Получите 2 миллиона монет", Effect: EffectIncome, Amount: 2000},
	{ID: 2, Name: "Банк", Description: "Получите 3 миллиона монет", Effect: EffectIncome, Amount: 3000},
	{ID: 3, Name: "Лотерея", Description: "Получите 1.5 миллиона монет", Effect: EffectIncome, Amount: 1500},
	{ID: 4, Name: "Бонус", Description: "Получите 1 миллион монет", Effect: EffectIncome, Amount: 1000},
	{ID: 5, Name: "Налоговая", Description: "Заплатите 1 миллион монет", Effect: EffectExpense, Amount: 1000},
	{ID: 6, Name: "Штраф", Description: "Заплатите 500 тысяч монет", Effect: EffectExpense, Amount: 500},
	{ID: 7, Name: "Больница", Description: "Заплатите 2 миллиона монет", Effect: EffectExpense, Amount: 2000},
	{ID: 8, Name: "Пожар", Description: "Заплатите 1.5 миллиона монет", Effect: EffectExpense, Amount: 1500},
}

// Outcome describes one resolved field trigger
type Outcome struct {
	Field   Field
	Player  model.Player // the chosen player, as they were before the effect
	Amount  int64        // signed: positive income, negative expense
	Session *model.Session
}

// Service provides board mini-game operations
type Service struct {
	sessions *session.Controller
	random   random.Random
	logger   *slog.Logger
}

// New creates a new board Service
func New(sessions *session.Controller, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		random:   random,
		logger:   logger,
	}
}

// Fields returns the board layout in order
func (s *Service) Fields() []Field {
	return append([]Field(nil), fields...)
}

// Field returns the field with the given id
func (s *Service) Field(id int) (Field, error) {
	for _, f := range fields {
		if f.ID == id {
			return f, nil
		}
	}
	return Field{}, model.ErrFieldNotFound
}

// PickActivePlayer selects a uniformly random active player from the session
func (s *Service) PickActivePlayer(sess *model.Session) (model.Player, error) {
	active := sess.ActivePlayers()
	if len(active) == 0 {
		return model.Player{}, model.ErrNoActivePlayers
	}
	return active[s.random.Intn(len(active))], nil
}

// Trigger applies the field's effect to a randomly chosen active player
func (s *Service) Trigger(ctx context.Context, fieldID int) (*Outcome, error) {
	field, err := s.Field(fieldID)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	player, err := s.PickActivePlayer(sess)
	if err != nil {
		return nil, err
	}

	amount := field.Amount
	if field.Effect == EffectExpense {
		amount = -amount
	}

	updated, err := s.sessions.ApplyFieldEffect(ctx, player.ID, amount, field.Description)
	if err != nil {
		return nil, err
	}

	s.logger.Info("field triggered",
		slog.Int("field_id", field.ID),
		slog.String("player_id", string(player.ID)),
		slog.Int64("amount", amount))

	return &Outcome{
		Field:   field,
		Player:  player,
		Amount:  amount,
		Session: updated,
	}, nil
}
