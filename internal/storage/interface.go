package storage

import (
	"context"

	"github.com/okarpov/boardbanker/internal/model"
)

// Store persists the session snapshot as a single JSON blob under a fixed
// well-known key.
type Store interface {
	// SaveSession serializes and stores the full session, replacing any
	// previous snapshot.
	SaveSession(ctx context.Context, session *model.Session) error

	// LoadSession returns the stored snapshot, or (nil, nil) when nothing is
	// stored or the stored blob does not parse as a session. By contract a
	// corrupt snapshot is indistinguishable from an absent one.
	LoadSession(ctx context.Context) (*model.Session, error)

	// ClearSession removes the stored snapshot
	ClearSession(ctx context.Context) error

	// SaveToken stores an issued banker token. Backends may expire the
	// record at token.ExpiresAt; expiry is also enforced on validation.
	SaveToken(ctx context.Context, token *model.BankerToken) error

	// GetToken returns the stored token record, or (nil, nil) when the
	// token is unknown or the stored blob does not parse.
	GetToken(ctx context.Context, token string) (*model.BankerToken, error)

	// DeleteToken revokes a banker token
	DeleteToken(ctx context.Context, token string) error
}
