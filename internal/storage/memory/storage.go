package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/okarpov/boardbanker/internal/model"
	"github.com/okarpov/boardbanker/internal/storage"
)

// Store is an in-memory implementation of the storage interface. The snapshot
// is held in serialized form so that loads return isolated copies and the
// corrupt-blob policy behaves exactly as in the real backends.
type Store struct {
	mu     sync.RWMutex
	blob   []byte
	tokens map[string]model.BankerToken
}

// New creates a new in-memory store
func New() *Store {
	return &Store{
		tokens: make(map[string]model.BankerToken),
	}
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

func (s *Store) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = data
	return nil
}

func (s *Store) LoadSession(ctx context.Context) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.blob == nil {
		return nil, nil
	}
	var session model.Session
	if err := json.Unmarshal(s.blob, &session); err != nil {
		// Treated as no saved session, not an error
		return nil, nil
	}
	return &session, nil
}

func (s *Store) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = nil
	return nil
}

func (s *Store) SaveToken(ctx context.Context, token *model.BankerToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token.Token] = *token
	return nil
}

func (s *Store) GetToken(ctx context.Context, token string) (*model.BankerToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tokens[token]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *Store) DeleteToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

// SetRaw overwrites the stored blob with arbitrary bytes. Tests use it to
// simulate a corrupted snapshot.
func (s *Store) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = data
}
