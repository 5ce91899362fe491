package errors

import (
	"encoding/json"
	"net/http"
)

// errorResponse controla exactamente qué campos ve el cliente.
// El campo "error" lleva el mensaje humano (forma histórica de la API);
// "code" es el código estable para clientes que quieran discriminar.
type errorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Detail string `json:"detail,omitempty"`
}

// WriteError escribe la respuesta HTTP para el error dado. Errores que no
// sean *AppError se envuelven como error interno (la causa no se expone).
func WriteError(w http.ResponseWriter, err error) {
	appErr := FromError(err)

	resp := errorResponse{
		Error:  appErr.Message,
		Code:   appErr.Code,
		Detail: appErr.Detail,
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(resp)
}
