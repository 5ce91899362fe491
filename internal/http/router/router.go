// Package router arma el árbol de rutas de la API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httpx "github.com/dropDatabas3/finanzas/internal/http"
	"github.com/dropDatabas3/finanzas/internal/http/controllers/health"
	"github.com/dropDatabas3/finanzas/internal/http/controllers/records"
	httperr "github.com/dropDatabas3/finanzas/internal/http/errors"
	mw "github.com/dropDatabas3/finanzas/internal/http/middlewares"
	"github.com/dropDatabas3/finanzas/internal/jwt"
)

// Deps agrupa todo lo que el router necesita para armarse.
type Deps struct {
	Records  *records.Controllers
	Health   *health.Controller
	Verifier *jwt.Verifier
	Metrics  http.Handler // handler de /metrics; nil lo omite
	CORS     []string
}

// New construye el handler raíz: rutas chi adentro, stack de middlewares
// transversales afuera. Todo lo que cuelga de /api pasa por la puerta de
// identidad; health y metrics quedan abiertos para probes y scrapers.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperr.WriteError(w, httperr.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httperr.WriteError(w, httperr.ErrMethodNotAllowed)
	})

	r.Get("/healthz", d.Health.Healthz)
	r.Get("/readyz", d.Health.Readyz)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(mw.RequireAuth(d.Verifier))

		api.Route("/categories", func(cr chi.Router) {
			cr.Get("/", d.Records.ListCategories)
			cr.Post("/", d.Records.CreateCategory)
			cr.Put("/{id}", d.Records.UpdateCategory)
			cr.Delete("/{id}", d.Records.DeleteCategory)
		})

		api.Route("/transactions", func(tr chi.Router) {
			tr.Get("/", d.Records.ListTransactions)
			tr.Post("/", d.Records.CreateTransaction)
			tr.Put("/{id}", d.Records.UpdateTransaction)
			tr.Delete("/{id}", d.Records.DeleteTransaction)
		})

		api.Route("/goals", func(gr chi.Router) {
			gr.Get("/", d.Records.ListGoals)
			gr.Post("/", d.Records.CreateGoal)
			gr.Put("/{id}", d.Records.UpdateGoal)
			gr.Delete("/{id}", d.Records.DeleteGoal)
		})

		api.Route("/bills", func(br chi.Router) {
			br.Get("/", d.Records.ListBills)
			br.Post("/", d.Records.CreateBill)
			br.Put("/{id}", d.Records.UpdateBill)
			br.Delete("/{id}", d.Records.DeleteBill)
		})
	})

	return mw.Chain(r,
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithCORS(d.CORS),
		httpx.WithMetrics(),
		mw.WithLogging(),
	)
}
