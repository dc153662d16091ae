package store

import (
	"context"
	"errors"

	"github.com/joestump/joe-photos/internal/domain"
)

var (
	// ErrCorrupt is returned by Load when the backing data exists but cannot
	// be decoded.
	ErrCorrupt = errors.New("album store is corrupt")
)

// Gateway persists the complete album collection. It has no notion of
// individual albums: Save writes a whole snapshot, Load reads one back.
type Gateway interface {
	// Load returns the stored collection, or an empty one when nothing has
	// been saved yet.
	Load(ctx context.Context) ([]*domain.Album, error)
	// Save replaces the stored collection with albums. After Save returns nil,
	// Load returns exactly what was written.
	Save(ctx context.Context, albums []*domain.Album) error
}
