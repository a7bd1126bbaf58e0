package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrNotLoaded = errors.New("store: no snapshot loaded")
)

// Store holds the currently loaded team snapshot. Concrete drivers implement
// this; the only one today is the in-memory driver, since the directory is
// never persisted.
type Store interface {
	Members() Members

	// Replace swaps the whole snapshot atomically. Readers see either the old
	// or the new list, never a mix.
	Replace(ctx context.Context, snap Snapshot) error

	// Current returns metadata about the loaded snapshot, or ErrNotLoaded.
	Current(ctx context.Context) (SnapshotInfo, error)

	// Ping reports ErrNotLoaded until the first snapshot is in place.
	Ping(ctx context.Context) error

	Close() error
}

type Members interface {
	// ListAll returns every member in source order. Callers may reorder the
	// returned slice freely.
	ListAll(ctx context.Context) ([]domain.Member, error)

	// GetBySlug returns the first member with the given slug.
	GetBySlug(ctx context.Context, slug string) (domain.Member, error)
}

// Snapshot is one successful load of the team data.
type Snapshot struct {
	Members  []domain.Member
	Source   string // URL the data was read from
	LoadedAt time.Time
}

// SnapshotInfo describes the loaded snapshot without copying the members.
type SnapshotInfo struct {
	Source   string
	LoadedAt time.Time
	Count    int
}
