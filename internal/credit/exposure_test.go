package credit_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"salescredit/internal/credit"
	"salescredit/internal/salesman"
	"salescredit/internal/upstream"
	id "salescredit/pkg/domain"
	dErrors "salescredit/pkg/domain-errors"
	"salescredit/pkg/requestcontext"
)

type ExposureSuite struct {
	suite.Suite
	licenses *upstream.MockLicenseService
	salesmen *salesman.Service
	engine   *credit.Engine
	ctx      context.Context
}

func TestExposureSuite(t *testing.T) {
	suite.Run(t, new(ExposureSuite))
}

func (s *ExposureSuite) SetupTest() {
	s.licenses = upstream.NewMockLicenseService()
	s.salesmen = salesman.NewService(salesman.NewInMemoryStore(), upstream.MockUserClient{})
	s.engine = credit.NewEngine(credit.NewInMemoryStore(), s.salesmen, s.licenses, s.licenses)
	s.ctx = requestcontext.WithToken(context.Background(), "test-token")
}

func (s *ExposureSuite) newSalesman(limit string) *salesman.Salesman {
	sm, err := s.salesmen.Register(s.ctx, "user-1", decimal.RequireFromString(limit))
	s.Require().NoError(err)
	return sm
}

func (s *ExposureSuite) issue(sm *salesman.Salesman, licenseID, price string) {
	s.licenses.AddLicense(upstream.License{
		ID:     id.LicenseID(licenseID),
		Price:  decimal.RequireFromString(price),
		Status: upstream.LicenseAvailable,
	})
	_, err := s.engine.Issue(s.ctx, sm.ID, id.LicenseID(licenseID))
	s.Require().NoError(err)
}

func (s *ExposureSuite) TestNoCredits() {
	sm := s.newSalesman("1000")

	report, err := s.engine.Exposure(s.ctx, sm.ID)
	s.Require().NoError(err)
	s.True(report.Exposure.IsZero())
	s.True(report.Remaining.Equal(decimal.NewFromInt(1000)))
	s.Zero(report.Credits)
}

func (s *ExposureSuite) TestSumsLivePrices() {
	sm := s.newSalesman("1000")
	s.issue(sm, "L1", "100.50")
	s.issue(sm, "L2", "200.25")
	s.issue(sm, "L3", "0.25")

	report, err := s.engine.Exposure(s.ctx, sm.ID)
	s.Require().NoError(err)
	s.True(report.Exposure.Equal(decimal.RequireFromString("301.00")), "got %s", report.Exposure)
	s.True(report.Remaining.Equal(decimal.RequireFromString("699.00")))
	s.Equal(3, report.Credits)
}

// Exposure follows remote price changes rather than any locally cached value.
func (s *ExposureSuite) TestReflectsRemotePriceChange() {
	sm := s.newSalesman("1000")
	s.issue(sm, "L1", "100")

	s.licenses.AddLicense(upstream.License{
		ID:     "L1",
		Price:  decimal.NewFromInt(400),
		Status: upstream.LicenseOnCredit,
	})

	report, err := s.engine.Exposure(s.ctx, sm.ID)
	s.Require().NoError(err)
	s.True(report.Exposure.Equal(decimal.NewFromInt(400)))
}

// Only licenses still on_credit count. Once a license sells off its credit
// the liability sits with the sale, not the salesman's exposure.
func (s *ExposureSuite) TestExcludesSoldLicenses() {
	sm := s.newSalesman("1000")
	s.issue(sm, "L1", "100")
	s.issue(sm, "L2", "200")

	s.licenses.RecordSale("L1")

	report, err := s.engine.Exposure(s.ctx, sm.ID)
	s.Require().NoError(err)
	s.True(report.Exposure.Equal(decimal.NewFromInt(200)), "got %s", report.Exposure)
	s.True(report.Remaining.Equal(decimal.NewFromInt(800)))
	s.Equal(2, report.Credits)
}

// A license left available by a failed status flip never encumbered the
// salesman, so its price is excluded too.
func (s *ExposureSuite) TestExcludesLicenseLeftAvailable() {
	sm := s.newSalesman("1000")

	flaky := &flakyLicenses{MockLicenseService: s.licenses}
	engine := credit.NewEngine(credit.NewInMemoryStore(), s.salesmen, flaky, flaky)

	s.licenses.AddLicense(upstream.License{
		ID:     "L1",
		Price:  decimal.NewFromInt(100),
		Status: upstream.LicenseAvailable,
	})
	flaky.set(&flaky.failSetStatus, true)
	result, err := engine.Issue(s.ctx, sm.ID, "L1")
	s.Require().NoError(err)
	s.Require().NotNil(result.Warning)

	report, err := engine.Exposure(s.ctx, sm.ID)
	s.Require().NoError(err)
	s.True(report.Exposure.IsZero(), "got %s", report.Exposure)
	s.Equal(1, report.Credits)
}

// A sale frees the limit for new issuances.
func (s *ExposureSuite) TestSoldLicenseFreesLimitForIssue() {
	sm := s.newSalesman("100")
	s.issue(sm, "L1", "100")

	s.licenses.AddLicense(upstream.License{
		ID:     "L2",
		Price:  decimal.NewFromInt(100),
		Status: upstream.LicenseAvailable,
	})
	_, err := s.engine.Issue(s.ctx, sm.ID, "L2")
	s.True(dErrors.HasCode(err, dErrors.CodeLimitExceeded))

	s.licenses.RecordSale("L1")
	_, err = s.engine.Issue(s.ctx, sm.ID, "L2")
	s.Require().NoError(err)
}

func (s *ExposureSuite) TestAbortsOnFetchFailure() {
	sm := s.newSalesman("1000")
	s.issue(sm, "L1", "100")
	s.issue(sm, "L2", "200")

	// Simulate the remote record disappearing; its fetch now fails.
	s.licenses.RemoveLicense("L2")

	_, err := s.engine.Exposure(s.ctx, sm.ID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUpstream))
}

func (s *ExposureSuite) TestUnknownSalesman() {
	_, err := s.engine.Exposure(s.ctx, id.NewSalesmanID())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
