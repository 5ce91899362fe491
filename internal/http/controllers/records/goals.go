package records

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "github.com/dropDatabas3/finanzas/internal/http/dto/records"
	httperr "github.com/dropDatabas3/finanzas/internal/http/errors"
	mw "github.com/dropDatabas3/finanzas/internal/http/middlewares"
	"github.com/dropDatabas3/finanzas/internal/store/core"
)

const goalNotFoundMsg = "Meta no encontrada."

func (c *Controllers) ListGoals(w http.ResponseWriter, r *http.Request) {
	userID := mw.GetUserID(r.Context())
	out, err := c.svc.ListGoals(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err, goalNotFoundMsg)
		return
	}
	if out == nil {
		out = []core.Goal{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *Controllers) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req dto.GoalRequest
	if err := readJSON(w, r, &req); err != nil {
		httperr.WriteError(w, err)
		return
	}
	userID := mw.GetUserID(r.Context())
	out, err := c.svc.CreateGoal(r.Context(), userID, &req)
	if err != nil {
		writeDomainError(w, r, err, goalNotFoundMsg)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (c *Controllers) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req dto.GoalRequest
	if err := readJSON(w, r, &req); err != nil {
		httperr.WriteError(w, err)
		return
	}
	userID := mw.GetUserID(r.Context())
	out, err := c.svc.UpdateGoal(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeDomainError(w, r, err, goalNotFoundMsg)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *Controllers) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID := mw.GetUserID(r.Context())
	if _, err := c.svc.DeleteGoal(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, r, err, goalNotFoundMsg)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Message: "Meta eliminada correctamente."})
}
