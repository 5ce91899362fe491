package records

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "github.com/dropDatabas3/finanzas/internal/http/dto/records"
	httperr "github.com/dropDatabas3/finanzas/internal/http/errors"
	mw "github.com/dropDatabas3/finanzas/internal/http/middlewares"
	"github.com/dropDatabas3/finanzas/internal/store/core"
)

const categoryNotFoundMsg = "Categoría no encontrada."

func (c *Controllers) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID := mw.GetUserID(r.Context())
	out, err := c.svc.ListCategories(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, err, categoryNotFoundMsg)
		return
	}
	if out == nil {
		out = []core.Category{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *Controllers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequest
	if err := readJSON(w, r, &req); err != nil {
		httperr.WriteError(w, err)
		return
	}
	userID := mw.GetUserID(r.Context())
	out, err := c.svc.CreateCategory(r.Context(), userID, &req)
	if err != nil {
		writeDomainError(w, r, err, categoryNotFoundMsg)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (c *Controllers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequest
	if err := readJSON(w, r, &req); err != nil {
		httperr.WriteError(w, err)
		return
	}
	userID := mw.GetUserID(r.Context())
	out, err := c.svc.UpdateCategory(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeDomainError(w, r, err, categoryNotFoundMsg)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *Controllers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID := mw.GetUserID(r.Context())
	if _, err := c.svc.DeleteCategory(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, r, err, categoryNotFoundMsg)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Message: "Categoría eliminada correctamente."})
}
