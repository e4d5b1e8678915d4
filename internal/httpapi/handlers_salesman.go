package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"salescredit/internal/platform/middleware"
	"salescredit/internal/salesman"
	id "salescredit/pkg/domain"
	dErrors "salescredit/pkg/domain-errors"
	"salescredit/pkg/platform/httputil"
	"salescredit/pkg/requestcontext"
)

// SalesmanHandler exposes salesman lifecycle management. Mutations are
// admin-only; reads are open to the owning user as well.
type SalesmanHandler struct {
	salesmen SalesmanService
}

func (h *SalesmanHandler) Register(r chi.Router) {
	r.Route("/salesmen", func(r chi.Router) {
		r.Get("/{salesmanID}", h.get)
		r.Get("/user/{userID}", h.getByUser)

		r.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireAdmin)
			admin.Post("/", h.register)
			admin.Get("/", h.list)
			admin.Put("/{salesmanID}", h.updateLimit)
			admin.Delete("/{salesmanID}", h.delete)
			admin.Put("/{salesmanID}/suspend", h.suspend)
			admin.Put("/{salesmanID}/restore", h.restore)
		})
	})
}

type registerRequest struct {
	UserID string          `json:"user_id"`
	Limit  decimal.Decimal `json:"limit"`
}

func (h *SalesmanHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	userID, err := id.ParseUserID(req.UserID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	sm, err := h.salesmen.Register(r.Context(), userID, req.Limit)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, sm)
}

func (h *SalesmanHandler) get(w http.ResponseWriter, r *http.Request) {
	salesmanID, err := id.ParseSalesmanID(chi.URLParam(r, "salesmanID"))
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
	httputil.WriteJSON(w, http.StatusOK, sm)
}

func (h *SalesmanHandler) getByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ctx := r.Context()
	if !requestcontext.IsAdmin(ctx) && requestcontext.Actor(ctx) != userID {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "you are not allowed to access this resource"))
		return
	}
	sm, err := h.salesmen.GetByUser(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sm)
}

func (h *SalesmanHandler) list(w http.ResponseWriter, r *http.Request) {
	salesmen, err := h.salesmen.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, salesmen)
}

type updateLimitRequest struct {
	Limit decimal.Decimal `json:"limit"`
}

func (h *SalesmanHandler) updateLimit(w http.ResponseWriter, r *http.Request) {
	salesmanID, err := id.ParseSalesmanID(chi.URLParam(r, "salesmanID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var req updateLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	sm, err := h.salesmen.UpdateLimit(r.Context(), salesmanID, req.Limit)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sm)
}

func (h *SalesmanHandler) suspend(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.salesmen.Suspend)
}

func (h *SalesmanHandler) restore(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.salesmen.Restore)
}

func (h *SalesmanHandler) transition(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, salesmanID id.SalesmanID) (*salesman.Salesman, error)) {
	salesmanID, err := id.ParseSalesmanID(chi.URLParam(r, "salesmanID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	sm, err := apply(r.Context(), salesmanID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sm)
}

func (h *SalesmanHandler) delete(w http.ResponseWriter, r *http.Request) {
	salesmanID, err := id.ParseSalesmanID(chi.URLParam(r, "salesmanID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.salesmen.Delete(r.Context(), salesmanID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
