package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/okarpov/boardbanker/internal/dependencies/mocks"
	"github.com/okarpov/boardbanker/internal/model"
	"github.com/okarpov/boardbanker/internal/storage/memory"
	"github.com/okarpov/boardbanker/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Store
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

// addPlayer is a helper that adds a player and returns their id
func (s *ControllerSuite) addPlayer(name string) model.PlayerID {
	sess, err := s.controller.AddPlayer(s.ctx, name)
	s.Require().NoError(err)
	return sess.Players[len(sess.Players)-1].ID
}

// Current tests

func (s *ControllerSuite) TestCurrentEmptyStoreStartsFreshSession() {
	s.random.QueueString("session-1")

	sess, err := s.controller.Current(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.SessionID("session-1"), sess.ID)
	s.Empty(sess.Players)
	s.Empty(sess.Transactions)

	// The fresh session is persisted right away
	stored, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal(sess, stored)
}

func (s *ControllerSuite) TestCurrentIDStableAcrossReads() {
	first, err := s.controller.Current(s.ctx)
	s.Require().NoError(err)

	second, err := s.controller.Current(s.ctx)
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
}

func (s *ControllerSuite) TestCurrentCorruptSnapshotGivesFreshSession() {
	s.storage.SetRaw([]byte("garbage"))

	sess, err := s.controller.Current(s.ctx)
	s.Require().NoError(err)
	s.Empty(sess.Players)
}

// AddPlayer tests

func (s *ControllerSuite) TestAddPlayerSucceeds() {
	sess, err := s.controller.AddPlayer(s.ctx, "Alice")
	s.Require().NoError(err)

	s.Require().Len(sess.Players, 1)
	s.Equal("Alice", sess.Players[0].Name)
	s.Equal(model.StartingBalance, sess.Players[0].Balance)
	s.True(sess.Players[0].IsActive)

	s.Require().Len(sess.Transactions, 1)
	s.Equal(model.TransactionPlayerAdded, sess.Transactions[0].Type)
	s.Equal(model.StartingBalance, sess.Transactions[0].Amount)
	s.Equal(sess.Players[0].ID, sess.Transactions[0].ToPlayerID)
}

func (s *ControllerSuite) TestAddPlayerIsPersisted() {
	_, err := s.controller.AddPlayer(s.ctx, "Alice")
	s.Require().NoError(err)

	stored, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Len(stored.Players, 1)
}

func (s *ControllerSuite) TestAddPlayerTrimsName() {
	sess, err := s.controller.AddPlayer(s.ctx, "  Alice  ")
	s.Require().NoError(err)
	s.Equal("Alice", sess.Players[0].Name)
}

func (s *ControllerSuite) TestAddPlayerNameConflictLeavesStateUnchanged() {
	s.addPlayer("Alice")

	_, err := s.controller.AddPlayer(s.ctx, "alice ")
	s.ErrorIs(err, model.ErrNameTaken)

	stored, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Len(stored.Players, 1)
	s.Len(stored.Transactions, 1)
}

func (s *ControllerSuite) TestAddPlayerNameLengthValidation() {
	_, err := s.controller.AddPlayer(s.ctx, "A")
	s.ErrorIs(err, model.ErrInvalidName)

	_, err = s.controller.AddPlayer(s.ctx, "   A   ")
	s.ErrorIs(err, model.ErrInvalidName)

	_, err = s.controller.AddPlayer(s.ctx, "ThisNameIsMuchTooLongToUse")
	s.ErrorIs(err, model.ErrInvalidName)
}

// ApplyTransaction tests

func (s *ControllerSuite) TestIncomeIncreasesBalance() {
	id := s.addPlayer("Alice")

	sess, err := s.controller.ApplyTransaction(s.ctx, model.TransactionIncome, 2000, id, "")
	s.Require().NoError(err)

	p, ok := sess.Player(id)
	s.Require().True(ok)
	s.Equal(int64(17000), p.Balance)

	s.Equal(model.TransactionIncome, sess.Transactions[0].Type)
	s.Equal(int64(2000), sess.Transactions[0].Amount)
	s.Empty(sess.Transactions[0].FromPlayerID)
	s.Equal(id, sess.Transactions[0].ToPlayerID)
}

func (s *ControllerSuite) TestExpenseDecreasesBalance() {
	id := s.addPlayer("Alice")

	sess, err := s.controller.ApplyTransaction(s.ctx, model.TransactionExpense, 500, id, "")
	s.Require().NoError(err)

	p, _ := sess.Player(id)
	s.Equal(int64(14500), p.Balance)

	s.Equal(model.TransactionExpense, sess.Transactions[0].Type)
	s.Equal(id, sess.Transactions[0].FromPlayerID)
	s.Empty(sess.Transactions[0].ToPlayerID)
}

func (s *ControllerSuite) TestNonPositiveAmountRejected() {
	id := s.addPlayer("Alice")

	_, err := s.controller.ApplyTransaction(s.ctx, model.TransactionIncome, 0, id, "")
	s.ErrorIs(err, model.ErrInvalidAmount)

	_, err = s.controller.ApplyTransaction(s.ctx, model.TransactionIncome, -100, id, "")
	s.ErrorIs(err, model.ErrInvalidAmount)
}

func (s *ControllerSuite) TestUnknownTypeRejected() {
	id := s.addPlayer("Alice")

	_, err := s.controller.ApplyTransaction(s.ctx, "loan", 100, id, "")
	s.ErrorIs(err, model.ErrInvalidType)
}

func (s *ControllerSuite) TestIncomeForInactivePlayerIsSilentNoOp() {
	id := s.addPlayer("Alice")

	// Drive Alice below the elimination threshold
	_, err := s.controller.ApplyTransaction(s.ctx, model.TransactionExpense, 21000, id, "")
	s.Require().NoError(err)

	before, err := s.controller.Current(s.ctx)
	s.Require().NoError(err)
	p, _ := before.Player(id)
	s.Require().False(p.IsActive)

	after, err := s.controller.ApplyTransaction(s.ctx, model.TransactionIncome, 1000, id, "")
	s.Require().NoError(err)

	s.Equal(before.Players, after.Players)
	s.Len(after.Transactions, len(before.Transactions))
}

// Transfer tests

func (s *ControllerSuite) TestTransferMovesMoneyBetweenPlayers() {
	alice := s.addPlayer("Alice")
	bob := s.addPlayer("Bob")

	sess, err := s.controller.ApplyTransaction(s.ctx, model.TransactionTransfer, 5000, alice, bob)
	s.Require().NoError(err)

	pa, _ := sess.Player(alice)
	pb, _ := sess.Player(bob)
	s.Equal(int64(10000), pa.Balance)
	s.Equal(int64(20000), pb.Balance)

	s.Require().Len(sess.Transactions, 3)
	s.Equal(model.TransactionTransfer, sess.Transactions[0].Type)
	s.Equal(alice, sess.Transactions[0].FromPlayerID)
	s.Equal(bob, sess.Transactions[0].ToPlayerID)
	s.Equal(int64(5000), sess.Transactions[0].Amount)
}

func (s *ControllerSuite) TestTransferFloorAllowsPostBalanceOfOne() {
	alice := s.addPlayer("Alice")
	bob := s.addPlayer("Bob")

	// Bring Alice down to 5000
	_, err := s.controller.ApplyTransaction(s.ctx, model.TransactionExpense, 10000, alice, "")
	s.Require().NoError(err)

	sess, err := s.controller.ApplyTransaction(s.ctx, model.TransactionTransfer, 4999, alice, bob)
	s.Require().NoError(err)

	pa, _ := sess.Player(alice)
	s.Equal(int64(1), pa.Balance)
}

func (s *ControllerSuite) TestTransferFloorRejectsPostBalanceOfZero() {
	alice := s.addPlayer("Alice")
	bob := s.addPlayer("Bob")

	_, err := s.controller.ApplyTransaction(s.ctx, model.TransactionExpense, 10000, alice, "")
	s.Require().NoError(err)

	_, err = s.controller.ApplyTransaction(s.ctx, model.TransactionTransfer, 5000, alice, bob)
	s.ErrorIs(err, model.ErrTransferLimit)

	// Nothing changed
	stored, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	pa, _ := stored.Player(alice)
	pb, _ := stored.Player(bob)
	s.Equal(int64(5000), pa.Balance)
	s.Equal(int64(15000), pb.Balance)
}

func (s *ControllerSuite) TestTransferWithInactiveParticipantIsSilentNoOp() {
	alice := s.addPlayer("Alice")
	bob := s.addPlayer("Bob")

	// Eliminate Bob
	_, err := s.controller.ApplyTransaction(s.ctx, model.TransactionExpense, 21000, bob, "")
	s.Require().NoError(err)

	before, err := s.controller.Current(s.ctx)
	s.Require().NoError(err)

	after, err := s.controller.ApplyTransaction(s.ctx, model.TransactionTransfer, 1000, alice, bob)
	s.Require().NoError(err)

	s.Equal(before.Players, after.Players)
	s.Len(after.Transactions, len(before.Transactions))
}

func (s *ControllerSuite) TestTransferMissingTargetRejected() {
	alice := s.addPlayer("Alice")

	_, err := s.controller.ApplyTransaction(s.ctx, model.TransactionTransfer, 1000, alice, "")
	s.ErrorIs(err, model.ErrMissingTarget)
}

func (s *ControllerSuite) TestTransferToSelfRejected() {
	alice := s.addPlayer("Alice")

	_, err := s.controller.ApplyTransaction(s.ctx, model.TransactionTransfer, 1000, alice, alice)
	s.ErrorIs(err, model.ErrSelfTransfer)

	// The balance is untouched and no transaction was recorded
	stored, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	p, _ := stored.Player(alice)
	s.Equal(model.StartingBalance, p.Balance)
	s.Len(stored.Transactions, 1)
}

func (s *ControllerSuite) TestTransferUnknownPlayerRejected() {
	alice := s.addPlayer("Alice")

	_, err := s.controller.ApplyTransaction(s.ctx, model.TransactionTransfer, 1000, alice, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Field effect tests

func (s *ControllerSuite) TestFieldEffectIncome() {
	id := s.addPlayer("Alice")

	sess, err := s.controller.ApplyFieldEffect(s.ctx, id, 2000, "Получите 2 миллиона монет")
	s.Require().NoError(err)

	p, _ := sess.Player(id)
	s.Equal(int64(17000), p.Balance)

	tx := sess.Transactions[0]
	s.Equal(model.TransactionIncome, tx.Type)
	s.Equal(int64(2000), tx.Amount)
	s.Equal(id, tx.ToPlayerID)
	s.Equal("Alice: Получите 2 миллиона монет", tx.Description)
}

func (s *ControllerSuite) TestFieldEffectExpense() {
	id := s.addPlayer("Alice")

	sess, err := s.controller.ApplyFieldEffect(s.ctx, id, -1500, "Заплатите 1.5 миллиона монет")
	s.Require().NoError(err)

	p, _ := sess.Player(id)
	s.Equal(int64(13500), p.Balance)

	tx := sess.Transactions[0]
	s.Equal(model.TransactionExpense, tx.Type)
	s.Equal(int64(1500), tx.Amount)
	s.Equal(id, tx.FromPlayerID)
}

func (s *ControllerSuite) TestFieldEffectOnInactivePlayerIsSilentNoOp() {
	id := s.addPlayer("Alice")

	_, err := s.controller.ApplyTransaction(s.ctx, model.TransactionExpense, 21000, id, "")
	s.Require().NoError(err)

	before, err := s.controller.Current(s.ctx)
	s.Require().NoError(err)

	after, err := s.controller.ApplyFieldEffect(s.ctx, id, 500, "Бонус")
	s.Require().NoError(err)

	s.Equal(before.Players, after.Players)
	s.Len(after.Transactions, len(before.Transactions))
}

// Reset tests

func (s *ControllerSuite) TestResetClearsStorageAndStartsFresh() {
	s.addPlayer("Alice")

	prev, err := s.controller.Current(s.ctx)
	s.Require().NoError(err)

	fresh, err := s.controller.Reset(s.ctx)
	s.Require().NoError(err)

	s.Empty(fresh.Players)
	s.Empty(fresh.Transactions)
	s.NotEqual(prev.ID, fresh.ID)

	// The replacement session is what's now persisted, so reads after the
	// reset keep its id
	stored, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal(fresh.ID, stored.ID)
	s.Empty(stored.Players)
}

// Ordering and end-to-end

func (s *ControllerSuite) TestTransactionsAreNewestFirst() {
	s.clock.Set(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	alice := s.addPlayer("Alice")

	s.clock.Advance(time.Minute)
	bob := s.addPlayer("Bob")

	s.clock.Advance(time.Minute)
	sess, err := s.controller.ApplyTransaction(s.ctx, model.TransactionTransfer, 1000, alice, bob)
	s.Require().NoError(err)

	s.Require().Len(sess.Transactions, 3)
	for i := 0; i < len(sess.Transactions)-1; i++ {
		s.False(sess.Transactions[i].Timestamp.Before(sess.Transactions[i+1].Timestamp))
	}
	s.Equal(model.TransactionTransfer, sess.Transactions[0].Type)
	s.Equal(model.TransactionPlayerAdded, sess.Transactions[2].Type)
}

func (s *ControllerSuite) TestEndToEndScenario() {
	alice := s.addPlayer("Alice")
	bob := s.addPlayer("Bob")

	sess, err := s.controller.ApplyTransaction(s.ctx, model.TransactionTransfer, 5000, alice, bob)
	s.Require().NoError(err)

	pa, _ := sess.Player(alice)
	pb, _ := sess.Player(bob)
	s.Equal(int64(10000), pa.Balance)
	s.Equal(int64(20000), pb.Balance)
	s.Len(sess.Transactions, 3)

	// The whole aggregate survives a reload
	stored, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(sess, stored)
}
