//go:build integration

package salesman_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"salescredit/internal/salesman"
	id "salescredit/pkg/domain"
	"salescredit/pkg/platform/sentinel"
	"salescredit/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *salesman.PostgresStore
	ctx   context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = salesman.NewPostgres(s.pg.DB)
	s.ctx = context.Background()
}

func (s *PostgresStoreSuite) SetupTest() {
	s.pg.Truncate(s.ctx, s.T())
}

func (s *PostgresStoreSuite) seed(userID id.UserID) *salesman.Salesman {
	sm, err := salesman.NewSalesman(id.NewSalesmanID(), userID, decimal.RequireFromString("1000.00"), time.Now().UTC())
	s.Require().NoError(err)
	s.Require().NoError(s.store.CreateIfUserAvailable(s.ctx, sm))
	return sm
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	sm := s.seed("7")

	found, err := s.store.FindByID(s.ctx, sm.ID)
	s.Require().NoError(err)
	s.Equal(sm.UserID, found.UserID)
	s.True(found.Limit.Equal(sm.Limit))
	s.Equal(salesman.StateActive, found.State)

	byUser, err := s.store.FindByUser(s.ctx, "7")
	s.Require().NoError(err)
	s.Equal(sm.ID, byUser.ID)
}

func (s *PostgresStoreSuite) TestDuplicateUserConflicts() {
	s.seed("7")

	dup, err := salesman.NewSalesman(id.NewSalesmanID(), "7", decimal.NewFromInt(1), time.Now().UTC())
	s.Require().NoError(err)
	s.ErrorIs(s.store.CreateIfUserAvailable(s.ctx, dup), sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestUpdatePersistsLimitAndState() {
	sm := s.seed("7")
	sm.Limit = decimal.RequireFromString("42.50")
	sm.ApplySuspension(time.Now().UTC())
	s.Require().NoError(s.store.Update(s.ctx, sm))

	found, err := s.store.FindByID(s.ctx, sm.ID)
	s.Require().NoError(err)
	s.True(found.Limit.Equal(decimal.RequireFromString("42.50")))
	s.Equal(salesman.StateSuspended, found.State)
}

func (s *PostgresStoreSuite) TestUpdateMissing() {
	sm, err := salesman.NewSalesman(id.NewSalesmanID(), "7", decimal.NewFromInt(1), time.Now().UTC())
	s.Require().NoError(err)
	s.ErrorIs(s.store.Update(s.ctx, sm), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDelete() {
	sm := s.seed("7")
	s.Require().NoError(s.store.Delete(s.ctx, sm.ID))
	s.ErrorIs(s.store.Delete(s.ctx, sm.ID), sentinel.ErrNotFound)

	_, err := s.store.FindByID(s.ctx, sm.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestList() {
	s.seed("1")
	s.seed("2")

	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 2)
}
