package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
	"github.com/aussiebroadwan/teamdir/internal/directory/store"
)

// Store keeps the snapshot in process memory behind a RWMutex.
type Store struct {
	mu     sync.RWMutex
	snap   store.Snapshot
	loaded bool
}

var _ store.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

// NewStoreWith returns a store pre-loaded with members. Mostly for tests and
// one-shot CLI commands.
func NewStoreWith(snap store.Snapshot) *Store {
	s := NewStore()
	_ = s.Replace(context.Background(), snap)
	return s
}

func (s *Store) Members() store.Members { return members{s} }

func (s *Store) Replace(_ context.Context, snap store.Snapshot) error {
	// Take our own copy so the caller can't mutate what readers see.
	snap.Members = slices.Clone(snap.Members)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.loaded = true
	return nil
}

func (s *Store) Current(_ context.Context) (store.SnapshotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return store.SnapshotInfo{}, store.ErrNotLoaded
	}
	return store.SnapshotInfo{
		Source:   s.snap.Source,
		LoadedAt: s.snap.LoadedAt,
		Count:    len(s.snap.Members),
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	_, err := s.Current(ctx)
	return err
}

func (s *Store) Close() error { return nil }

type members struct{ s *Store }

func (m members) ListAll(_ context.Context) ([]domain.Member, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	if !m.s.loaded {
		return nil, store.ErrNotLoaded
	}
	return slices.Clone(m.s.snap.Members), nil
}

func (m members) GetBySlug(_ context.Context, slug string) (domain.Member, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	if !m.s.loaded {
		return domain.Member{}, store.ErrNotLoaded
	}

	i := slices.IndexFunc(m.s.snap.Members, func(x domain.Member) bool {
		return x.Slug == slug
	})
	if i < 0 {
		return domain.Member{}, store.ErrNotFound
	}
	return m.s.snap.Members[i], nil
}
