// Package auth guards mutating banker operations behind a shared passcode.
// When no passcode is configured the service is disabled and every request
// is allowed through. Issued tokens are persisted through the storage layer
// so a logged-in banker survives a server restart.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/okarpov/boardbanker/internal/dependencies/clock"
	"github.com/okarpov/boardbanker/internal/dependencies/random"
	"github.com/okarpov/boardbanker/internal/model"
	"github.com/okarpov/boardbanker/internal/storage"
)

// Errors
var (
	ErrInvalidPasscode = errors.New("invalid passcode")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrDisabled        = errors.New("banker auth is not enabled")
)

const (
	tokenLength   = 32
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Config holds configuration for the auth service
type Config struct {
	// Passcode is the shared banker passcode; empty disables auth entirely
	Passcode string
	// TokenDuration is how long issued tokens stay valid
	TokenDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		TokenDuration: 24 * time.Hour,
	}
}

// Service issues and validates banker tokens
type Service struct {
	storage storage.Store
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	passcodeHash  []byte
	tokenDuration time.Duration
}

// New creates a new auth Service. The passcode is stored only as a bcrypt hash.
func New(
	store storage.Store,
	clock clock.Clock,
	random random.Random,
	cfg Config,
	logger *slog.Logger,
) (*Service, error) {
	if cfg.TokenDuration == 0 {
		cfg.TokenDuration = DefaultConfig().TokenDuration
	}

	var hash []byte
	if cfg.Passcode != "" {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.Passcode), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
	}

	return &Service{
		storage:       store,
		clock:         clock,
		random:        random,
		logger:        logger,
		passcodeHash:  hash,
		tokenDuration: cfg.TokenDuration,
	}, nil
}

// Disabled reports whether the service lets every request through
func (s *Service) Disabled() bool {
	return s.passcodeHash == nil
}

// Login exchanges the banker passcode for a token
func (s *Service) Login(ctx context.Context, passcode string) (*model.BankerToken, error) {
	if s.Disabled() {
		return nil, ErrDisabled
	}

	if err := bcrypt.CompareHashAndPassword(s.passcodeHash, []byte(passcode)); err != nil {
		s.logger.Warn("failed banker login attempt")
		return nil, ErrInvalidPasscode
	}

	now := s.clock.Now()
	token := &model.BankerToken{
		Token:     s.random.String(tokenLength, tokenAlphabet),
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenDuration),
	}

	if err := s.storage.SaveToken(ctx, token); err != nil {
		return nil, err
	}

	s.logger.Info("banker logged in")
	return token, nil
}

// Validate checks a token and returns its stored record
func (s *Service) Validate(ctx context.Context, token string) (*model.BankerToken, error) {
	stored, err := s.storage.GetToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrInvalidToken
	}

	if s.clock.Now().After(stored.ExpiresAt) {
		if err := s.storage.DeleteToken(ctx, token); err != nil {
			s.logger.Warn("failed to delete expired token", slog.String("error", err.Error()))
		}
		return nil, ErrInvalidToken
	}

	return stored, nil
}

// Logout revokes a token
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.storage.DeleteToken(ctx, token)
}
