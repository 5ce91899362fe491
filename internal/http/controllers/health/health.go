// Package health expone los endpoints de liveness y readiness.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	httperr "github.com/dropDatabas3/finanzas/internal/http/errors"
	"github.com/dropDatabas3/finanzas/internal/observability/logger"
)

// Pinger es lo mínimo que el readiness necesita del store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Controller struct {
	store Pinger
}

func New(store Pinger) *Controller {
	return &Controller{store: store}
}

// Healthz responde mientras el proceso esté vivo. No toca dependencias.
func (c *Controller) Healthz(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusOK, "ok")
}

// Readyz verifica que el store responda. 503 si no.
func (c *Controller) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := c.store.Ping(ctx); err != nil {
		logger.From(r.Context()).Warn("readyz: store no responde", logger.Err(err))
		httperr.WriteError(w, httperr.ErrServiceUnavailable.WithCause(err))
		return
	}
	writeStatus(w, http.StatusOK, "ready")
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}
