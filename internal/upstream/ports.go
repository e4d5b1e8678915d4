// Package upstream holds the clients for the remote License and User
// services. The interfaces are small on purpose so tests can stub them
// deterministically; the engine treats every call as a weak read of remote
// state, never a cacheable fact.
package upstream

import (
	"context"

	"github.com/shopspring/decimal"

	id "salescredit/pkg/domain"
)

// LicenseStatus is the remote License service's lifecycle field.
type LicenseStatus string

const (
	LicenseAvailable LicenseStatus = "available"
	LicenseOnCredit  LicenseStatus = "on_credit"
	LicenseSold      LicenseStatus = "sold"
)

func (s LicenseStatus) IsValid() bool {
	switch s {
	case LicenseAvailable, LicenseOnCredit, LicenseSold:
		return true
	}
	return false
}

// License is a projection of the remote record. The remote service is the
// source of truth and may have concurrent writers.
type License struct {
	ID     id.LicenseID
	Price  decimal.Decimal
	Status LicenseStatus
}

// LicenseClient reads and flips remote license state. The token is the
// caller's opaque capability, forwarded verbatim.
type LicenseClient interface {
	Fetch(ctx context.Context, licenseID id.LicenseID, token string) (License, error)
	SetStatus(ctx context.Context, licenseID id.LicenseID, status LicenseStatus, token string) error
}

// SalesClient answers whether a license has a recorded sale. Used as the
// compensation probe during revocation.
type SalesClient interface {
	HasSaleFor(ctx context.Context, licenseID id.LicenseID, token string) (bool, error)
}

// UserClient verifies that a user account exists before it is registered as
// a salesman.
type UserClient interface {
	Exists(ctx context.Context, userID id.UserID, token string) (bool, error)
}
