package salesman

import (
	"context"
	"sort"
	"sync"

	id "salescredit/pkg/domain"
	"salescredit/pkg/platform/sentinel"
)

// InMemoryStore keeps salesmen in process memory for development and tests.
type InMemoryStore struct {
	mu       sync.RWMutex
	salesmen map[id.SalesmanID]Salesman
	byUser   map[id.UserID]id.SalesmanID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		salesmen: make(map[id.SalesmanID]Salesman),
		byUser:   make(map[id.UserID]id.SalesmanID),
	}
}

func (s *InMemoryStore) CreateIfUserAvailable(_ context.Context, sm *Salesman) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUser[sm.UserID]; exists {
		return sentinel.ErrConflict
	}
	s.salesmen[sm.ID] = *sm
	s.byUser[sm.UserID] = sm.ID
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, salesmanID id.SalesmanID) (*Salesman, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sm, ok := s.salesmen[salesmanID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copy := sm
	return &copy, nil
}

func (s *InMemoryStore) FindByUser(_ context.Context, userID id.UserID) (*Salesman, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	salesmanID, ok := s.byUser[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	sm := s.salesmen[salesmanID]
	copy := sm
	return &copy, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*Salesman, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Salesman, 0, len(s.salesmen))
	for _, sm := range s.salesmen {
		copy := sm
		out = append(out, &copy)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemoryStore) Update(_ context.Context, sm *Salesman) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.salesmen[sm.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.salesmen[sm.ID] = *sm
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, salesmanID id.SalesmanID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sm, ok := s.salesmen[salesmanID]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.byUser, sm.UserID)
	delete(s.salesmen, salesmanID)
	return nil
}
