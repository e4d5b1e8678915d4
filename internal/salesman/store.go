package salesman

import (
	"context"

	id "salescredit/pkg/domain"
)

// Store persists salesman records. Implementations return sentinel errors
// (pkg/platform/sentinel); the service translates them into domain errors.
type Store interface {
	// CreateIfUserAvailable inserts the salesman, failing with
	// sentinel.ErrConflict if the backing user is already registered.
	CreateIfUserAvailable(ctx context.Context, s *Salesman) error

	FindByID(ctx context.Context, salesmanID id.SalesmanID) (*Salesman, error)
	FindByUser(ctx context.Context, userID id.UserID) (*Salesman, error)
	List(ctx context.Context) ([]*Salesman, error)

	// Update persists limit and state changes.
	Update(ctx context.Context, s *Salesman) error

	Delete(ctx context.Context, salesmanID id.SalesmanID) error
}
