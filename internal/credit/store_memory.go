package credit

import (
	"context"
	"sort"
	"sync"

	id "salescredit/pkg/domain"
	"salescredit/pkg/platform/sentinel"
)

// InMemoryStore keeps credits in process memory for development and tests.
type InMemoryStore struct {
	mu        sync.RWMutex
	credits   map[id.CreditID]Credit
	byLicense map[id.LicenseID]id.CreditID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		credits:   make(map[id.CreditID]Credit),
		byLicense: make(map[id.LicenseID]id.CreditID),
	}
}

func (s *InMemoryStore) Create(_ context.Context, c *Credit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byLicense[c.LicenseID]; exists {
		return sentinel.ErrConflict
	}
	s.credits[c.ID] = *c
	s.byLicense[c.LicenseID] = c.ID
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, creditID id.CreditID) (*Credit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.credits[creditID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copy := c
	return &copy, nil
}

func (s *InMemoryStore) FindByLicense(_ context.Context, licenseID id.LicenseID) (*Credit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	creditID, ok := s.byLicense[licenseID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	c := s.credits[creditID]
	copy := c
	return &copy, nil
}

func (s *InMemoryStore) ListBySalesman(_ context.Context, salesmanID id.SalesmanID) ([]*Credit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Credit
	for _, c := range s.credits {
		if c.SalesmanID == salesmanID {
			copy := c
			out = append(out, &copy)
		}
	}
	sortByCreation(out)
	return out, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*Credit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Credit, 0, len(s.credits))
	for _, c := range s.credits {
		copy := c
		out = append(out, &copy)
	}
	sortByCreation(out)
	return out, nil
}

func (s *InMemoryStore) Delete(_ context.Context, creditID id.CreditID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.credits[creditID]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.byLicense, c.LicenseID)
	delete(s.credits, creditID)
	return nil
}

func sortByCreation(credits []*Credit) {
	sort.Slice(credits, func(i, j int) bool {
		return credits[i].CreatedAt.Before(credits[j].CreatedAt)
	})
}
