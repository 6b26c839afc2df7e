package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/okarpov/boardbanker/internal/model"
	"github.com/okarpov/boardbanker/internal/storage"
)

// Store is a Redis-backed implementation of the storage interface
type Store struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis store
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Store {
	return &Store{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

func (s *Store) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(), data, s.cfg.SessionTTL).Err()
}

func (s *Store) LoadSession(ctx context.Context) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// A blob that no longer parses counts as no saved session
		return nil, nil
	}
	return &session, nil
}

func (s *Store) ClearSession(ctx context.Context) error {
	return s.client.Del(ctx, sessionKey()).Err()
}

func (s *Store) SaveToken(ctx context.Context, token *model.BankerToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	// Let redis expire the record with the token itself
	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, tokenKey(token.Token), data, ttl).Err()
}

func (s *Store) GetToken(ctx context.Context, token string) (*model.BankerToken, error) {
	data, err := s.client.Get(ctx, tokenKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var t model.BankerToken
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, nil
	}
	return &t, nil
}

func (s *Store) DeleteToken(ctx context.Context, token string) error {
	return s.client.Del(ctx, tokenKey(token)).Err()
}
