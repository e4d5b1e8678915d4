package credit

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"salescredit/internal/salesman"
	id "salescredit/pkg/domain"
)

// Store persists credit records. Implementations return sentinel errors;
// the engine translates them into domain errors.
type Store interface {
	// Create inserts the credit, failing with sentinel.ErrConflict if the
	// license already has a credit. Uniqueness is enforced by the store so
	// it holds even across racing engine instances.
	Create(ctx context.Context, c *Credit) error

	FindByID(ctx context.Context, creditID id.CreditID) (*Credit, error)
	FindByLicense(ctx context.Context, licenseID id.LicenseID) (*Credit, error)
	ListBySalesman(ctx context.Context, salesmanID id.SalesmanID) ([]*Credit, error)
	List(ctx context.Context) ([]*Credit, error)

	Delete(ctx context.Context, creditID id.CreditID) error
}

// SalesmanReader is the slice of the salesman service the engine needs.
type SalesmanReader interface {
	Get(ctx context.Context, salesmanID id.SalesmanID) (*salesman.Salesman, error)
}

// AuditRecorder captures who did what. Recording never fails the operation.
type AuditRecorder interface {
	Record(ctx context.Context, action, description string)
}

type noopAudit struct{}

func (noopAudit) Record(context.Context, string, string) {}
