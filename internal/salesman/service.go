package salesman

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"salescredit/internal/audit"
	id "salescredit/pkg/domain"
	dErrors "salescredit/pkg/domain-errors"
	"salescredit/pkg/platform/sentinel"
	"salescredit/pkg/requestcontext"
)

// UserChecker verifies that a user exists in the user service before a
// salesman record is created for it.
type UserChecker interface {
	Exists(ctx context.Context, userID id.UserID, token string) (bool, error)
}

// AuditRecorder captures who did what. Recording never fails the operation.
type AuditRecorder interface {
	Record(ctx context.Context, action, description string)
}

type noopAudit struct{}

func (noopAudit) Record(context.Context, string, string) {}

// Service owns salesman lifecycle: registration, limit changes, and the
// suspension state machine.
type Service struct {
	store  Store
	users  UserChecker
	audit  AuditRecorder
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditRecorder(recorder AuditRecorder) Option {
	return func(s *Service) { s.audit = recorder }
}

func NewService(store Store, users UserChecker, opts ...Option) *Service {
	s := &Service{
		store:  store,
		users:  users,
		audit:  noopAudit{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a salesman for an existing user. Each user backs at most
// one salesman.
func (s *Service) Register(ctx context.Context, userID id.UserID, limit decimal.Decimal) (*Salesman, error) {
	exists, err := s.users.Exists(ctx, userID, requestcontext.Token(ctx))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "user lookup failed")
	}
	if !exists {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "user %s not found", userID)
	}

	sm, err := NewSalesman(id.NewSalesmanID(), userID, limit, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateIfUserAvailable(ctx, sm); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Newf(dErrors.CodeConflict, "user %s is already a salesman", userID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create salesman")
	}

	s.audit.Record(ctx, audit.ActionRegisterSalesman, "registered salesman "+sm.ID.String()+" for user "+userID.String())
	s.logger.Info("salesman registered", "salesman_id", sm.ID, "user_id", userID)
	return sm, nil
}

func (s *Service) Get(ctx context.Context, salesmanID id.SalesmanID) (*Salesman, error) {
	sm, err := s.store.FindByID(ctx, salesmanID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "salesman %s not found", salesmanID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load salesman")
	}
	return sm, nil
}

func (s *Service) GetByUser(ctx context.Context, userID id.UserID) (*Salesman, error) {
	sm, err := s.store.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "no salesman for user %s", userID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load salesman")
	}
	return sm, nil
}

func (s *Service) List(ctx context.Context) ([]*Salesman, error) {
	out, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list salesmen")
	}
	return out, nil
}

// UpdateLimit replaces the credit limit. Lowering the limit below current
// exposure is allowed; existing credits are never clawed back, the salesman
// simply cannot issue more until exposure drops.
func (s *Service) UpdateLimit(ctx context.Context, salesmanID id.SalesmanID, limit decimal.Decimal) (*Salesman, error) {
	if limit.IsNegative() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "limit must not be negative")
	}

	sm, err := s.Get(ctx, salesmanID)
	if err != nil {
		return nil, err
	}

	sm.Limit = limit
	sm.UpdatedAt = requestcontext.Now(ctx)
	if err := s.update(ctx, sm); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.ActionUpdateSalesman, "set limit of salesman "+sm.ID.String()+" to "+limit.String())
	return sm, nil
}

// Suspend blocks future issuance for the salesman. Existing credits stand.
func (s *Service) Suspend(ctx context.Context, salesmanID id.SalesmanID) (*Salesman, error) {
	sm, err := s.Get(ctx, salesmanID)
	if err != nil {
		return nil, err
	}
	if err := sm.CanSuspend(); err != nil {
		return nil, err
	}

	sm.ApplySuspension(requestcontext.Now(ctx))
	if err := s.update(ctx, sm); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.ActionSuspendSalesman, "suspended salesman "+sm.ID.String())
	s.logger.Info("salesman suspended", "salesman_id", sm.ID)
	return sm, nil
}

// Restore lifts a suspension.
func (s *Service) Restore(ctx context.Context, salesmanID id.SalesmanID) (*Salesman, error) {
	sm, err := s.Get(ctx, salesmanID)
	if err != nil {
		return nil, err
	}
	if err := sm.CanRestore(); err != nil {
		return nil, err
	}

	sm.ApplyRestoration(requestcontext.Now(ctx))
	if err := s.update(ctx, sm); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.ActionRestoreSalesman, "restored salesman "+sm.ID.String())
	s.logger.Info("salesman restored", "salesman_id", sm.ID)
	return sm, nil
}

func (s *Service) Delete(ctx context.Context, salesmanID id.SalesmanID) error {
	if err := s.store.Delete(ctx, salesmanID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Newf(dErrors.CodeNotFound, "salesman %s not found", salesmanID)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete salesman")
	}

	s.audit.Record(ctx, audit.ActionDeleteSalesman, "deleted salesman "+salesmanID.String())
	return nil
}

func (s *Service) update(ctx context.Context, sm *Salesman) error {
	if err := s.store.Update(ctx, sm); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Newf(dErrors.CodeNotFound, "salesman %s not found", sm.ID)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update salesman")
	}
	return nil
}
