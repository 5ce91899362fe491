package records

import (
	"encoding/json"
	"mime"
	"net/http"

	httperr "github.com/dropDatabas3/finanzas/internal/http/errors"
)

const maxBodyBytes = 1 << 20 // 1 MiB alcanza de sobra para estos payloads

// readJSON decodifica el cuerpo del request en dst.
// Content-Type distinto de application/json se rechaza de entrada.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil || mt != "application/json" {
			return httperr.ErrInvalidJSON.WithDetail("Content-Type debe ser application/json")
		}
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return httperr.ErrInvalidJSON.WithCause(err)
	}
	return nil
}

// writeJSON escribe la respuesta con el status dado.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
