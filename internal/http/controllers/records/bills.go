package records

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "github.com/dropDatabas3/finanzas/internal/http/dto/records"
	httperr "github.com/dropDatabas3/finanzas/internal/http/errors"
	mw "github.com/dropDatabas3/finanzas/internal/http/middlewares"
	"github.com/dropDatabas3/finanzas/internal/store/core"
)

const billNotFoundMsg = "Cuenta a pagar no encontrada."

func (c *Controllers) ListBills(w http.ResponseWriter, r *http.Request) {
	userID := mw.GetUserID(r.Context())
	out, err := c.svc.ListBills(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err, billNotFoundMsg)
		return
	}
	if out == nil {
		out = []core.Bill{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *Controllers) CreateBill(w http.ResponseWriter, r *http.Request) {
	var req dto.BillRequest
	if err := readJSON(w, r, &req); err != nil {
		httperr.WriteError(w, err)
		return
	}
	userID := mw.GetUserID(r.Context())
	out, err := c.svc.CreateBill(r.Context(), userID, &req)
	if err != nil {
		writeDomainError(w, r, err, billNotFoundMsg)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (c *Controllers) UpdateBill(w http.ResponseWriter, r *http.Request) {
	var req dto.BillRequest
	if err := readJSON(w, r, &req); err != nil {
		httperr.WriteError(w, err)
		return
	}
	userID := mw.GetUserID(r.Context())
	out, err := c.svc.UpdateBill(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeDomainError(w, r, err, billNotFoundMsg)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *Controllers) DeleteBill(w http.ResponseWriter, r *http.Request) {
	userID := mw.GetUserID(r.Context())
	if _, err := c.svc.DeleteBill(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, r, err, billNotFoundMsg)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Message: "Cuenta eliminada correctamente."})
}
