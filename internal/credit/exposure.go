package credit

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"salescredit/internal/upstream"
	id "salescredit/pkg/domain"
	dErrors "salescredit/pkg/domain-errors"
	"salescredit/pkg/requestcontext"
)

// ExposureReport is a point-in-time view of a salesman's credit exposure
// against live remote prices. It is advisory: prices may change the moment
// after it is computed.
type ExposureReport struct {
	SalesmanID id.SalesmanID   `json:"salesman_id"`
	Exposure   decimal.Decimal `json:"exposure"`
	Limit      decimal.Decimal `json:"limit"`
	Remaining  decimal.Decimal `json:"remaining"`
	Credits    int             `json:"credits"`
}

// Exposure sums the live remote prices of the salesman's open credits whose
// licenses the remote still reports as on_credit. A sold license is the
// sale's liability, not the credit's, and a license left available by a
// failed status flip never encumbered the salesman.
//
// Every price is fetched fresh; if any fetch fails the whole computation
// fails. A partial sum would silently understate exposure and let the limit
// check pass when it should not, so there is no degraded mode.
func (e *Engine) Exposure(ctx context.Context, salesmanID id.SalesmanID) (*ExposureReport, error) {
	ctx, span := e.tracer.Start(ctx, "credit.Exposure", trace.WithAttributes(
		attribute.String("salesman.id", salesmanID.String()),
	))
	defer span.End()

	sm, err := e.salesmen.Get(ctx, salesmanID)
	if err != nil {
		return nil, err
	}

	credits, err := e.store.ListBySalesman(ctx, salesmanID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list credits")
	}

	exposure, err := e.sumPrices(ctx, credits, requestcontext.Token(ctx))
	if err != nil {
		return nil, err
	}

	return &ExposureReport{
		SalesmanID: salesmanID,
		Exposure:   exposure,
		Limit:      sm.Limit,
		Remaining:  sm.Limit.Sub(exposure),
		Credits:    len(credits),
	}, nil
}

// exposure is the engine-internal variant used inside the issuance critical
// section, where the salesman is already loaded.
func (e *Engine) exposure(ctx context.Context, salesmanID id.SalesmanID, token string) (decimal.Decimal, error) {
	credits, err := e.store.ListBySalesman(ctx, salesmanID)
	if err != nil {
		return decimal.Zero, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list credits")
	}
	return e.sumPrices(ctx, credits, token)
}

func (e *Engine) sumPrices(ctx context.Context, credits []*Credit, token string) (decimal.Decimal, error) {
	if len(credits) == 0 {
		return decimal.Zero, nil
	}

	var (
		mu  sync.Mutex
		sum decimal.Decimal
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.fetchConcurrency)

	for _, c := range credits {
		g.Go(func() error {
			license, err := e.licenses.Fetch(ctx, c.LicenseID, token)
			if err != nil {
				return err
			}
			if license.Status != upstream.LicenseOnCredit {
				return nil
			}
			mu.Lock()
			sum = sum.Add(license.Price)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.metrics.IncrementUpstreamErrors()
		return decimal.Zero, dErrors.Wrap(err, dErrors.CodeUpstream, "exposure computation aborted")
	}
	return sum, nil
}
