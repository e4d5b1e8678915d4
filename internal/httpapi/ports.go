package httpapi

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"salescredit/internal/credit"
	"salescredit/internal/salesman"
	id "salescredit/pkg/domain"
)

// CreditService is the issuance engine surface the handlers consume.
type CreditService interface {
	Issue(ctx context.Context, salesmanID id.SalesmanID, licenseID id.LicenseID) (*credit.IssueResult, error)
	Revoke(ctx context.Context, creditID id.CreditID) (*credit.RevokeResult, error)
	Get(ctx context.Context, creditID id.CreditID) (*credit.Credit, error)
	List(ctx context.Context) ([]*credit.Credit, error)
	ListBySalesman(ctx context.Context, salesmanID id.SalesmanID) ([]*credit.Credit, error)
	Exposure(ctx context.Context, salesmanID id.SalesmanID) (*credit.ExposureReport, error)
}

// SalesmanService is the salesman lifecycle surface the handlers consume.
type SalesmanService interface {
	Register(ctx context.Context, userID id.UserID, limit decimal.Decimal) (*salesman.Salesman, error)
	Get(ctx context.Context, salesmanID id.SalesmanID) (*salesman.Salesman, error)
	GetByUser(ctx context.Context, userID id.UserID) (*salesman.Salesman, error)
	List(ctx context.Context) ([]*salesman.Salesman, error)
	UpdateLimit(ctx context.Context, salesmanID id.SalesmanID, limit decimal.Decimal) (*salesman.Salesman, error)
	Suspend(ctx context.Context, salesmanID id.SalesmanID) (*salesman.Salesman, error)
	Restore(ctx context.Context, salesmanID id.SalesmanID) (*salesman.Salesman, error)
	Delete(ctx context.Context, salesmanID id.SalesmanID) error
}
