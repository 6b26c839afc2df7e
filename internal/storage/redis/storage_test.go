package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/okarpov/boardbanker/internal/model"
)

type StoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.store = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StoreSuite) sampleSession() *model.Session {
	sess := model.NewSession("game-1")
	sess.Players = append(sess.Players,
		model.Player{ID: "p-1", Name: "Alice", Balance: 15000, IsActive: true},
		model.Player{ID: "p-2", Name: "Bob", Balance: -7000, IsActive: false},
	)
	sess.Prepend(model.Transaction{
		ID:           "tx-1",
		Timestamp:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Type:         model.TransactionTransfer,
		Amount:       5000,
		FromPlayerID: "p-1",
		ToPlayerID:   "p-2",
		Description:  "\"Alice\" передает \"Bob\" 5000 тысяч монет",
	})
	return sess
}

func (s *StoreSuite) TestSaveAndLoadRoundTrip() {
	sess := s.sampleSession()

	s.Require().NoError(s.store.SaveSession(s.ctx, sess))

	loaded, err := s.store.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(loaded)
	s.Equal(sess, loaded)
}

func (s *StoreSuite) TestLoadNothingStored() {
	loaded, err := s.store.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Nil(loaded)
}

func (s *StoreSuite) TestLoadAfterClear() {
	s.Require().NoError(s.store.SaveSession(s.ctx, s.sampleSession()))
	s.Require().NoError(s.store.ClearSession(s.ctx))

	loaded, err := s.store.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Nil(loaded)
}

func (s *StoreSuite) TestLoadCorruptBlobReturnsAbsent() {
	s.Require().NoError(s.mini.Set(sessionKey(), "{definitely not json"))

	loaded, err := s.store.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Nil(loaded)
}

func (s *StoreSuite) TestTokenRoundTrip() {
	token := &model.BankerToken{
		Token:     "tok-1",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		ExpiresAt: time.Now().UTC().Truncate(time.Second).Add(24 * time.Hour),
	}

	s.Require().NoError(s.store.SaveToken(s.ctx, token))

	loaded, err := s.store.GetToken(s.ctx, "tok-1")
	s.Require().NoError(err)
	s.Require().NotNil(loaded)
	s.Equal(token, loaded)

	// The record expires with the token
	ttl := s.mini.TTL(tokenKey("tok-1"))
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, 24*time.Hour)
}

func (s *StoreSuite) TestGetUnknownToken() {
	loaded, err := s.store.GetToken(s.ctx, "nope")
	s.Require().NoError(err)
	s.Nil(loaded)
}

func (s *StoreSuite) TestDeleteToken() {
	token := &model.BankerToken{
		Token:     "tok-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	s.Require().NoError(s.store.SaveToken(s.ctx, token))
	s.Require().NoError(s.store.DeleteToken(s.ctx, "tok-1"))

	loaded, err := s.store.GetToken(s.ctx, "tok-1")
	s.Require().NoError(err)
	s.Nil(loaded)
}

func (s *StoreSuite) TestSaveAppliesConfiguredTTL() {
	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour
	s.store.cfg = cfg

	s.Require().NoError(s.store.SaveSession(s.ctx, s.sampleSession()))
	s.Equal(time.Hour, s.mini.TTL(sessionKey()))
}

func (s *StoreSuite) TestSaveWithoutTTLKeepsSnapshot() {
	s.Require().NoError(s.store.SaveSession(s.ctx, s.sampleSession()))

	s.mini.FastForward(24 * 365 * time.Hour)

	loaded, err := s.store.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.NotNil(loaded)
}
