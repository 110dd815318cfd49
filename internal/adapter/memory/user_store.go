package memory

import (
	"context"
	"slices"
	"sync"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// UserStore implements port.UserRepository in process memory.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

var _ port.UserRepository = (*UserStore)(nil)

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]domain.User)}
}

func (s *UserStore) FindUsersByIDs(_ context.Context, ids []string) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *UserStore) FindUsersByScreenNames(_ context.Context, names []string) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(names))
	for _, u := range s.users {
		if u.ScreenName != "" && slices.Contains(names, u.ScreenName) {
			out = append(out, u)
		}
	}
	slices.SortFunc(out, func(a, b domain.User) int {
		return slices.Index(names, a.ScreenName) - slices.Index(names, b.ScreenName)
	})
	return out, nil
}

// UpsertUser keeps the original DateAdded of an existing user.
func (s *UserStore) UpsertUser(_ context.Context, u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.users[u.ID]; ok {
		u.DateAdded = existing.DateAdded
	}
	s.users[u.ID] = u
	return nil
}
