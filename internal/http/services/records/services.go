// Package records contiene la lógica de negocio de los recursos financieros.
//
// Los servicios validan el payload, asignan identidad (id generado, userID
// verificado) y delegan en el Repository. El userID siempre viene del token
// ya verificado por el middleware, jamás del cuerpo del request.
package records

import (
	"github.com/dropDatabas3/finanzas/internal/store/core"
)

// Claves de cache por recurso.
const (
	kindCategories   = "categories"
	kindTransactions = "transactions"
	kindGoals        = "goals"
	kindBills        = "bills"
)

// Deps agrupa las dependencias de los servicios.
type Deps struct {
	Repo  core.Repository
	IDs   core.IDGenerator
	Cache *ListCache // nil desactiva el cache de listados
}

// Services expone las operaciones de los cuatro recursos.
type Services struct {
	repo  core.Repository
	ids   core.IDGenerator
	cache *ListCache
}

func New(d Deps) *Services {
	return &Services{repo: d.Repo, ids: d.IDs, cache: d.Cache}
}
