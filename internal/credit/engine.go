// Package credit implements the issuance engine: credits are granted against
// a salesman's limit, with the limit checked against live remote prices and
// the remote license status flipped after the local ledger write.
//
// Ordering is deliberate. The local insert is the durability point; the
// remote status flip comes after it and is never compensated by rolling the
// insert back. A failed flip surfaces as a warning on the result instead, so
// callers can distinguish "credit exists, remote is stale" from failure.
package credit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"salescredit/internal/audit"
	"salescredit/internal/platform/lock"
	"salescredit/internal/platform/metrics"
	"salescredit/internal/upstream"
	id "salescredit/pkg/domain"
	dErrors "salescredit/pkg/domain-errors"
	"salescredit/pkg/platform/sentinel"
	"salescredit/pkg/requestcontext"
)

// lockTTL bounds how long a crashed replica can block a salesman's issuance.
const lockTTL = 10 * time.Second

// Engine coordinates the multi-step issuance and revocation flows.
type Engine struct {
	store    Store
	salesmen SalesmanReader
	licenses upstream.LicenseClient
	sales    upstream.SalesClient
	locker   lock.Locker
	audit    AuditRecorder
	metrics  *metrics.Metrics
	logger   *slog.Logger
	tracer   trace.Tracer

	// fetchConcurrency caps parallel license fetches during exposure
	// computation.
	fetchConcurrency int
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

func WithAuditRecorder(recorder AuditRecorder) Option {
	return func(e *Engine) { e.audit = recorder }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

func WithLocker(l lock.Locker) Option {
	return func(e *Engine) { e.locker = l }
}

func WithFetchConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.fetchConcurrency = n
		}
	}
}

func NewEngine(store Store, salesmen SalesmanReader, licenses upstream.LicenseClient, sales upstream.SalesClient, opts ...Option) *Engine {
	e := &Engine{
		store:            store,
		salesmen:         salesmen,
		licenses:         licenses,
		sales:            sales,
		locker:           lock.NewMemory(),
		audit:            noopAudit{},
		logger:           slog.Default(),
		tracer:           otel.Tracer("salescredit/credit"),
		fetchConcurrency: 8,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Issue grants a credit for a license to a salesman.
//
// The flow is: salesman must exist, the license must not already be on
// credit, the license must be available, and the salesman's exposure plus
// the license price must stay within the limit. The check-and-commit window
// is serialized per salesman so two racing requests cannot both pass the
// limit check against the same exposure.
func (e *Engine) Issue(ctx context.Context, salesmanID id.SalesmanID, licenseID id.LicenseID) (*IssueResult, error) {
	ctx, span := e.tracer.Start(ctx, "credit.Issue", trace.WithAttributes(
		attribute.String("salesman.id", salesmanID.String()),
		attribute.String("license.id", licenseID.String()),
	))
	defer span.End()

	token := requestcontext.Token(ctx)

	release, err := e.locker.Acquire(ctx, "salesman:"+salesmanID.String(), lockTTL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to serialize issuance")
	}
	defer release()

	sm, err := e.salesmen.Get(ctx, salesmanID)
	if err != nil {
		return nil, err
	}

	if existing, err := e.store.FindByLicense(ctx, licenseID); err == nil {
		return nil, dErrors.Newf(dErrors.CodeConflict, "license %s is already on credit %s", licenseID, existing.ID)
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check license uniqueness")
	}

	license, err := e.licenses.Fetch(ctx, licenseID, token)
	if err != nil {
		e.metrics.IncrementUpstreamErrors()
		return nil, err
	}
	if license.Status != upstream.LicenseAvailable {
		return nil, dErrors.Newf(dErrors.CodeConflict, "license %s is %s, not available", licenseID, license.Status)
	}

	exposure, err := e.exposure(ctx, salesmanID, token)
	if err != nil {
		return nil, err
	}

	if exposure.Add(license.Price).GreaterThan(sm.Limit) {
		e.metrics.IncrementLimitRejections()
		return nil, dErrors.Newf(dErrors.CodeLimitExceeded,
			"credit of %s would raise exposure %s above limit %s",
			license.Price, exposure, sm.Limit)
	}

	now := requestcontext.Now(ctx)
	c := &Credit{
		ID:         id.NewCreditID(),
		SalesmanID: salesmanID,
		LicenseID:  licenseID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := e.store.Create(ctx, c); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Newf(dErrors.CodeConflict, "license %s is already on credit", licenseID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record credit")
	}

	// Past the durability point. Remote failures from here on are warnings.
	result := &IssueResult{Credit: c}
	if err := e.licenses.SetStatus(ctx, licenseID, upstream.LicenseOnCredit, token); err != nil {
		e.metrics.IncrementUpstreamErrors()
		e.metrics.IncrementPartialSuccesses()
		e.logger.Warn("credit recorded but license status not set",
			"credit_id", c.ID, "license_id", licenseID, "error", err)
		result.Warning = &Warning{
			Code:      WarnStatusNotSet,
			Message:   "credit recorded but the license could not be marked on_credit",
			LicenseID: licenseID,
		}
	}

	e.metrics.IncrementCreditsIssued()
	e.audit.Record(ctx, audit.ActionIssueCredit,
		fmt.Sprintf("issued credit %s for license %s to salesman %s", c.ID, licenseID, salesmanID))
	e.logger.Info("credit issued", "credit_id", c.ID, "salesman_id", salesmanID, "license_id", licenseID)
	return result, nil
}

// Revoke deletes a credit and compensates remote state.
//
// The local delete is the durability point. Compensation then probes the
// sales ledger: a license with a recorded sale keeps its status, anything
// else is flipped back to available. Probe or flip failures leave the
// deletion standing and surface as warnings.
func (e *Engine) Revoke(ctx context.Context, creditID id.CreditID) (*RevokeResult, error) {
	ctx, span := e.tracer.Start(ctx, "credit.Revoke", trace.WithAttributes(
		attribute.String("credit.id", creditID.String()),
	))
	defer span.End()

	token := requestcontext.Token(ctx)

	c, err := e.Get(ctx, creditID)
	if err != nil {
		return nil, err
	}

	if err := e.store.Delete(ctx, creditID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "credit %s not found", creditID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete credit")
	}

	result := &RevokeResult{}
	sold, err := e.sales.HasSaleFor(ctx, c.LicenseID, token)
	switch {
	case err != nil:
		e.metrics.IncrementUpstreamErrors()
		e.metrics.IncrementPartialSuccesses()
		e.logger.Warn("credit deleted but sale probe failed",
			"credit_id", creditID, "license_id", c.LicenseID, "error", err)
		result.Warning = &Warning{
			Code:      WarnSaleProbeFailed,
			Message:   "credit deleted but the sale check failed; license status left untouched",
			LicenseID: c.LicenseID,
		}
	case sold:
		// The license was sold off this credit; its status stays sold.
	default:
		if err := e.licenses.SetStatus(ctx, c.LicenseID, upstream.LicenseAvailable, token); err != nil {
			e.metrics.IncrementUpstreamErrors()
			e.metrics.IncrementPartialSuccesses()
			e.logger.Warn("credit deleted but license status not released",
				"credit_id", creditID, "license_id", c.LicenseID, "error", err)
			result.Warning = &Warning{
				Code:      WarnStatusNotReleased,
				Message:   "credit deleted but the license could not be marked available",
				LicenseID: c.LicenseID,
			}
		}
	}

	e.metrics.IncrementCreditsRevoked()
	e.audit.Record(ctx, audit.ActionRevokeCredit,
		fmt.Sprintf("revoked credit %s for license %s of salesman %s", creditID, c.LicenseID, c.SalesmanID))
	e.logger.Info("credit revoked", "credit_id", creditID, "license_id", c.LicenseID)
	return result, nil
}

// Get loads a single credit.
func (e *Engine) Get(ctx context.Context, creditID id.CreditID) (*Credit, error) {
	c, err := e.store.FindByID(ctx, creditID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "credit %s not found", creditID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load credit")
	}
	return c, nil
}

// ListBySalesman returns the salesman's open credits.
func (e *Engine) ListBySalesman(ctx context.Context, salesmanID id.SalesmanID) ([]*Credit, error) {
	if _, err := e.salesmen.Get(ctx, salesmanID); err != nil {
		return nil, err
	}
	out, err := e.store.ListBySalesman(ctx, salesmanID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list credits")
	}
	return out, nil
}

// List returns all open credits.
func (e *Engine) List(ctx context.Context) ([]*Credit, error) {
	out, err := e.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list credits")
	}
	return out, nil
}
