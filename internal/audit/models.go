package audit

import (
	"context"
	"time"

	id "salescredit/pkg/domain"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp   time.Time
	Actor       id.UserID
	Action      string
	Description string
	RequestID   string
	UserAgent   string
}

// Store persists audit events. Append-only.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByActor(ctx context.Context, actor id.UserID) ([]Event, error)
}

// Actions recorded by this service.
const (
	ActionIssueCredit      = "issue_credit"
	ActionRevokeCredit     = "revoke_credit"
	ActionRegisterSalesman = "register_salesman"
	ActionUpdateSalesman   = "update_salesman"
	ActionDeleteSalesman   = "delete_salesman"
	ActionSuspendSalesman  = "suspend_salesman"
	ActionRestoreSalesman  = "restore_salesman"
)
