// Package session persists the authenticated session (bearer token plus
// user profile) across runs of the client.
package session

import (
	"context"

	"github.com/dkrasnov/notecompass/internal/client/models"
)

// Store is the durable session cache.
//
// Contract:
//   - Save persists token and user together; a reload must yield exactly
//     what was stored.
//   - Load returns nil (no error) when no session is persisted. A stored
//     user profile that no longer parses is treated as logged out, and the
//     corrupt values are removed so the bad state cannot stick around.
//   - Clear removes both values; used on logout.
type Store interface {
	Save(ctx context.Context, sess models.Session) error
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}
