package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
	"github.com/aussiebroadwan/teamdir/internal/directory/store"
)

var ErrProfileNotFound = errors.New("profile not found")

type DirectoryService struct {
	Store store.Store
}

// List returns the members matching q in display order.
func (s *DirectoryService) List(ctx context.Context, q Query) ([]domain.Member, error) {
	all, err := s.Store.Members().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(all, q), nil
}

// Profile looks a member up by slug. A missing slug never matches, even a
// member whose own slug is empty.
func (s *DirectoryService) Profile(ctx context.Context, slug string) (domain.Member, error) {
	if slug == "" {
		return domain.Member{}, ErrProfileNotFound
	}
	m, err := s.Store.Members().GetBySlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Member{}, ErrProfileNotFound
	}
	return m, err
}

// States returns the options for the state filter.
func (s *DirectoryService) States(ctx context.Context) ([]string, error) {
	all, err := s.Store.Members().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return DistinctStates(all), nil
}

// Roles returns the options for the role filter.
func (s *DirectoryService) Roles(ctx context.Context) ([]domain.Role, error) {
	all, err := s.Store.Members().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return DistinctRoles(all), nil
}

// Listing is one consistent read of the grid: the filtered members plus the
// unfiltered count and filter options, all from the same snapshot.
type Listing struct {
	Members []domain.Member
	Total   int
	States  []string
	Roles   []domain.Role
}

// Listing returns everything the grid view needs for q.
func (s *DirectoryService) Listing(ctx context.Context, q Query) (Listing, error) {
	all, err := s.Store.Members().ListAll(ctx)
	if err != nil {
		return Listing{}, err
	}
	return Listing{
		Members: Apply(all, q),
		Total:   len(all),
		States:  DistinctStates(all),
		Roles:   DistinctRoles(all),
	}, nil
}
