package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/okarpov/boardbanker/internal/dependencies/mocks"
	"github.com/okarpov/boardbanker/internal/dependencies/random"
	"github.com/okarpov/boardbanker/internal/storage/memory"
	"github.com/okarpov/boardbanker/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Store
	clock   *mocks.MockClock
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()
}

func (s *ServiceSuite) newService(cfg Config) *Service {
	svc, err := New(s.storage, s.clock, random.New(), cfg, testutil.NopLogger())
	s.Require().NoError(err)
	return svc
}

func (s *ServiceSuite) TestDisabledWithoutPasscode() {
	svc := s.newService(Config{})
	s.True(svc.Disabled())

	_, err := svc.Login(s.ctx, "anything")
	s.ErrorIs(err, ErrDisabled)
}

func (s *ServiceSuite) TestLoginWithCorrectPasscode() {
	svc := s.newService(Config{Passcode: "secret"})
	s.False(svc.Disabled())

	token, err := svc.Login(s.ctx, "secret")
	s.Require().NoError(err)
	s.NotEmpty(token.Token)
	s.Equal(s.clock.Now(), token.CreatedAt)
	s.Equal(s.clock.Now().Add(24*time.Hour), token.ExpiresAt)
}

func (s *ServiceSuite) TestLoginWithWrongPasscode() {
	svc := s.newService(Config{Passcode: "secret"})

	_, err := svc.Login(s.ctx, "nope")
	s.ErrorIs(err, ErrInvalidPasscode)
}

func (s *ServiceSuite) TestValidateIssuedToken() {
	svc := s.newService(Config{Passcode: "secret"})

	token, err := svc.Login(s.ctx, "secret")
	s.Require().NoError(err)

	validated, err := svc.Validate(s.ctx, token.Token)
	s.Require().NoError(err)
	s.Equal(token.Token, validated.Token)
}

func (s *ServiceSuite) TestValidateUnknownToken() {
	svc := s.newService(Config{Passcode: "secret"})

	_, err := svc.Validate(s.ctx, "bogus")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestValidateExpiredToken() {
	svc := s.newService(Config{Passcode: "secret", TokenDuration: time.Hour})

	token, err := svc.Login(s.ctx, "secret")
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)

	_, err = svc.Validate(s.ctx, token.Token)
	s.ErrorIs(err, ErrInvalidToken)

	// The expired record was also removed from storage
	stored, err := s.storage.GetToken(s.ctx, token.Token)
	s.Require().NoError(err)
	s.Nil(stored)
}

func (s *ServiceSuite) TestLogoutRevokesToken() {
	svc := s.newService(Config{Passcode: "secret"})

	token, err := svc.Login(s.ctx, "secret")
	s.Require().NoError(err)

	s.Require().NoError(svc.Logout(s.ctx, token.Token))

	_, err = svc.Validate(s.ctx, token.Token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestTokenSurvivesServiceRestart() {
	svc := s.newService(Config{Passcode: "secret"})

	token, err := svc.Login(s.ctx, "secret")
	s.Require().NoError(err)

	// A new service over the same storage still accepts the token
	restarted := s.newService(Config{Passcode: "secret"})

	validated, err := restarted.Validate(s.ctx, token.Token)
	s.Require().NoError(err)
	s.Equal(token.Token, validated.Token)
}
