package salesman

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	id "salescredit/pkg/domain"
	"salescredit/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.ctx = context.Background()
}

func (s *InMemoryStoreSuite) seed(userID id.UserID) *Salesman {
	sm, err := NewSalesman(id.NewSalesmanID(), userID, decimal.NewFromInt(1000), time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.store.CreateIfUserAvailable(s.ctx, sm))
	return sm
}

func (s *InMemoryStoreSuite) TestCreateAndFind() {
	sm := s.seed("7")

	found, err := s.store.FindByID(s.ctx, sm.ID)
	s.Require().NoError(err)
	s.Equal(sm.ID, found.ID)

	byUser, err := s.store.FindByUser(s.ctx, "7")
	s.Require().NoError(err)
	s.Equal(sm.ID, byUser.ID)
}

func (s *InMemoryStoreSuite) TestDuplicateUserConflicts() {
	s.seed("7")

	dup, err := NewSalesman(id.NewSalesmanID(), "7", decimal.NewFromInt(50), time.Now())
	s.Require().NoError(err)
	s.ErrorIs(s.store.CreateIfUserAvailable(s.ctx, dup), sentinel.ErrConflict)
}

func (s *InMemoryStoreSuite) TestFindMissing() {
	_, err := s.store.FindByID(s.ctx, id.NewSalesmanID())
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.FindByUser(s.ctx, "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestUpdate() {
	sm := s.seed("7")
	sm.Limit = decimal.NewFromInt(2000)
	s.Require().NoError(s.store.Update(s.ctx, sm))

	found, err := s.store.FindByID(s.ctx, sm.ID)
	s.Require().NoError(err)
	s.True(found.Limit.Equal(decimal.NewFromInt(2000)))
}

func (s *InMemoryStoreSuite) TestUpdateMissing() {
	sm, err := NewSalesman(id.NewSalesmanID(), "7", decimal.NewFromInt(1), time.Now())
	s.Require().NoError(err)
	s.ErrorIs(s.store.Update(s.ctx, sm), sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestDeleteFreesUser() {
	sm := s.seed("7")
	s.Require().NoError(s.store.Delete(s.ctx, sm.ID))

	_, err := s.store.FindByID(s.ctx, sm.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	// The user slot is free again after deletion.
	s.seed("7")
}

func (s *InMemoryStoreSuite) TestListOrderedByCreation() {
	first, err := NewSalesman(id.NewSalesmanID(), "1", decimal.NewFromInt(1), time.Now().Add(-time.Hour))
	s.Require().NoError(err)
	s.Require().NoError(s.store.CreateIfUserAvailable(s.ctx, first))
	second := s.seed("2")

	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(first.ID, list[0].ID)
	s.Equal(second.ID, list[1].ID)
}
