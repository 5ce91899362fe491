package records

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "github.com/dropDatabas3/finanzas/internal/http/dto/records"
	httperr "github.com/dropDatabas3/finanzas/internal/http/errors"
	mw "github.com/dropDatabas3/finanzas/internal/http/middlewares"
	"github.com/dropDatabas3/finanzas/internal/store/core"
)

const transactionNotFoundMsg = "Transacción no encontrada."

func (c *Controllers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID := mw.GetUserID(r.Context())
	out, err := c.svc.ListTransactions(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err, transactionNotFoundMsg)
		return
	}
	if out == nil {
		out = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *Controllers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.TransactionRequest
	if err := readJSON(w, r, &req); err != nil {
		httperr.WriteError(w, err)
		return
	}
	userID := mw.GetUserID(r.Context())
	out, err := c.svc.CreateTransaction(r.Context(), userID, &req)
	if err != nil {
		writeDomainError(w, r, err, transactionNotFoundMsg)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (c *Controllers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.TransactionRequest
	if err := readJSON(w, r, &req); err != nil {
		httperr.WriteError(w, err)
		return
	}
	userID := mw.GetUserID(r.Context())
	out, err := c.svc.UpdateTransaction(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeDomainError(w, r, err, transactionNotFoundMsg)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *Controllers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID := mw.GetUserID(r.Context())
	if _, err := c.svc.DeleteTransaction(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, r, err, transactionNotFoundMsg)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Message: "Transacción eliminada correctamente."})
}
