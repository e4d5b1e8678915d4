package credit

import (
	"time"

	id "salescredit/pkg/domain"
)

// Credit is the local ledger record stating that a salesman holds a license
// on credit. The ledger stores no price; the license price lives in the
// remote License service and is fetched fresh for every exposure computation.
type Credit struct {
	ID         id.CreditID   `json:"id"`
	SalesmanID id.SalesmanID `json:"salesman_id"`
	LicenseID  id.LicenseID  `json:"license_id"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Warning codes for partially successful operations.
const (
	// WarnStatusNotSet: the credit was recorded locally but the remote
	// license could not be flipped to on_credit.
	WarnStatusNotSet = "remote_status_not_set"

	// WarnStatusNotReleased: the credit was deleted locally but the remote
	// license could not be flipped back to available.
	WarnStatusNotReleased = "remote_status_not_released"

	// WarnSaleProbeFailed: the credit was deleted locally but the sale probe
	// failed, so the remote license status was left untouched.
	WarnSaleProbeFailed = "sale_probe_failed"
)

// Warning describes the remote half of a partially successful operation.
// It rides on the result, never the error channel: the local ledger write
// is the durability point and is not rolled back when the remote call fails.
type Warning struct {
	Code      string       `json:"code"`
	Message   string       `json:"message"`
	LicenseID id.LicenseID `json:"license_id"`
}

// IssueResult is the outcome of issuing a credit. Warning is non-nil when
// the remote status flip failed after the local record was committed.
type IssueResult struct {
	Credit  *Credit  `json:"credit"`
	Warning *Warning `json:"warning,omitempty"`
}

// RevokeResult is the outcome of revoking a credit. Warning is non-nil when
// the remote compensation after the local delete could not complete.
type RevokeResult struct {
	Warning *Warning `json:"warning,omitempty"`
}
