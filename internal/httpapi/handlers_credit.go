package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"salescredit/internal/salesman"
	id "salescredit/pkg/domain"
	dErrors "salescredit/pkg/domain-errors"
	"salescredit/pkg/platform/httputil"
	"salescredit/pkg/requestcontext"
)

// CreditHandler exposes the issuance engine over HTTP. Access control and
// the suspension gate live here so the engine stays pure limit logic.
type CreditHandler struct {
	credits  CreditService
	salesmen SalesmanService
}

func (h *CreditHandler) Register(r chi.Router) {
	r.Route("/credits", func(r chi.Router) {
		r.Post("/", h.issue)
		r.Get("/", h.list)
		r.Get("/{creditID}", h.get)
		r.Delete("/{creditID}", h.revoke)
		r.Get("/salesman/{salesmanID}", h.listBySalesman)
		r.Get("/salesman/{salesmanID}/exposure", h.exposure)
	})
}

type issueRequest struct {
	SalesmanID string `json:"salesman_id"`
	LicenseID  string `json:"license_id"`
}

func (h *CreditHandler) issue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	salesmanID, err := id.ParseSalesmanID(req.SalesmanID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	licenseID, err := id.ParseLicenseID(req.LicenseID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	sm, err := h.salesmen.Get(r.Context(), salesmanID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := authorizeOwner(r, sm); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if sm.IsSuspended() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "salesman is suspended"))
		return
	}

	result, err := h.credits.Issue(r.Context(), salesmanID, licenseID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, result)
}

func (h *CreditHandler) revoke(w http.ResponseWriter, r *http.Request) {
	creditID, err := id.ParseCreditID(chi.URLParam(r, "creditID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	c, err := h.credits.Get(r.Context(), creditID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.authorizeCreditOwner(r, c.SalesmanID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.credits.Revoke(r.Context(), creditID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *CreditHandler) get(w http.ResponseWriter, r *http.Request) {
	creditID, err := id.ParseCreditID(chi.URLParam(r, "creditID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	c, err := h.credits.Get(r.Context(), creditID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.authorizeCreditOwner(r, c.SalesmanID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *CreditHandler) list(w http.ResponseWriter, r *http.Request) {
	if !requestcontext.IsAdmin(r.Context()) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "you are not allowed to access this resource"))
		return
	}
	credits, err := h.credits.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, credits)
}

func (h *CreditHandler) listBySalesman(w http.ResponseWriter, r *http.Request) {
	sm, err := h.loadAuthorizedSalesman(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	credits, err := h.credits.ListBySalesman(r.Context(), sm.ID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, credits)
}

func (h *CreditHandler) exposure(w http.ResponseWriter, r *http.Request) {
	sm, err := h.loadAuthorizedSalesman(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	report, err := h.credits.Exposure(r.Context(), sm.ID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

func (h *CreditHandler) loadAuthorizedSalesman(r *http.Request) (*salesman.Salesman, error) {
	salesmanID, err := id.ParseSalesmanID(chi.URLParam(r, "salesmanID"))
	if err != nil {
		return nil, err
	}
	sm, err := h.salesmen.Get(r.Context(), salesmanID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(r, sm); err != nil {
		return nil, err
	}
	return sm, nil
}

func (h *CreditHandler) authorizeCreditOwner(r *http.Request, salesmanID id.SalesmanID) error {
	if requestcontext.IsAdmin(r.Context()) {
		return nil
	}
	sm, err := h.salesmen.Get(r.Context(), salesmanID)
	if err != nil {
		return err
	}
	return authorizeOwner(r, sm)
}

// authorizeOwner admits admins and the user backing the salesman record.
func authorizeOwner(r *http.Request, sm *salesman.Salesman) error {
	ctx := r.Context()
	if requestcontext.IsAdmin(ctx) || requestcontext.Actor(ctx) == sm.UserID {
		return nil
	}
	return dErrors.New(dErrors.CodeForbidden, "you are not allowed to access this resource")
}
