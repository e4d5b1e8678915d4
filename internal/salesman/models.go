package salesman

import (
	"time"

	"github.com/shopspring/decimal"

	id "salescredit/pkg/domain"
	dErrors "salescredit/pkg/domain-errors"
)

// State is the suspension state machine: Active → Suspended → Restored →
// Suspended → … Restored and Active both authorize issuance; they are kept
// distinct so the audit history shows that a suspension happened.
type State string

const (
	StateActive    State = "active"
	StateSuspended State = "suspended"
	StateRestored  State = "restored"
)

func (s State) IsValid() bool {
	switch s {
	case StateActive, StateSuspended, StateRestored:
		return true
	}
	return false
}

// Salesman owns a credit limit against which the issuance engine checks
// exposure. Suspension never touches existing credits; it only blocks future
// issuance, and that gate lives in the HTTP layer so the limit logic stays
// orthogonal to access control.
type Salesman struct {
	ID        id.SalesmanID   `json:"id"`
	UserID    id.UserID       `json:"user_id"`
	Limit     decimal.Decimal `json:"limit"`
	State     State           `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewSalesman validates and constructs a salesman record.
func NewSalesman(salesmanID id.SalesmanID, userID id.UserID, limit decimal.Decimal, now time.Time) (*Salesman, error) {
	if userID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user id is required")
	}
	if limit.IsNegative() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "limit must not be negative")
	}
	return &Salesman{
		ID:        salesmanID,
		UserID:    userID,
		Limit:     limit,
		State:     StateActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsSuspended reports whether future issuance is blocked for this salesman.
func (s *Salesman) IsSuspended() bool {
	return s.State == StateSuspended
}

// CanSuspend checks the Active/Restored → Suspended transition.
func (s *Salesman) CanSuspend() error {
	if s.State == StateSuspended {
		return dErrors.New(dErrors.CodeConflict, "salesman is already suspended")
	}
	return nil
}

// ApplySuspension transitions to Suspended. Call CanSuspend first.
func (s *Salesman) ApplySuspension(now time.Time) {
	s.State = StateSuspended
	s.UpdatedAt = now
}

// CanRestore checks the Suspended → Restored transition.
func (s *Salesman) CanRestore() error {
	if s.State != StateSuspended {
		return dErrors.New(dErrors.CodeConflict, "salesman is not suspended")
	}
	return nil
}

// ApplyRestoration transitions to Restored. Call CanRestore first.
func (s *Salesman) ApplyRestoration(now time.Time) {
	s.State = StateRestored
	s.UpdatedAt = now
}
