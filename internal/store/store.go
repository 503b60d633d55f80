// Package store persists rooms as one JSON document per code. The
// contract offers no locking or conditional writes; serialization of
// concurrent mutations is the service layer's responsibility.
package store

import (
	"context"

	"github.com/Apurva9997/planning-poker/internal/domain"
)

// Store is the persistence contract consumed by the room service.
//
// Load returns (nil, nil) when no room exists under the code: absence is
// an expected outcome (join silently creates), not an error. Save is a
// full-document overwrite. Implementations wrap infrastructure failures
// with domain.ErrStorage so callers can tell retriable storage trouble
// from command rejections.
type Store interface {
	Load(ctx context.Context, code string) (*domain.Room, error)
	Save(ctx context.Context, code string, room *domain.Room) error
	Delete(ctx context.Context, code string) error

	// Codes lists every stored room code; used by the expiry sweeper.
	Codes(ctx context.Context) ([]string, error)

	Close() error
}
