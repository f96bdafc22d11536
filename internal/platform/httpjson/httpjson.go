// Package httpjson: helpers de request/response JSON compartidos por los handlers.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-care-hub/internal/platform/logger"
	"pet-care-hub/internal/platform/validate"
)

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, errorBody{Error: msg})
}

// Invalid responde 400 con el detalle por campo si el error lo trae.
func Invalid(w http.ResponseWriter, err error) {
	var verrs validate.Errors
	if errors.As(err, &verrs) {
		Write(w, http.StatusBadRequest, errorBody{Error: "invalid input", Fields: verrs})
		return
	}
	Error(w, http.StatusBadRequest, err.Error())
}

// Internal loguea el error con el logger del request y responde 500 genérico.
func Internal(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context(), nil).Error("internal error", map[string]any{
		"method": r.Method,
		"path":   r.URL.Path,
		"error":  err,
	})
	Error(w, http.StatusInternalServerError, "internal error")
}

// Decode lee el body JSON rechazando campos desconocidos.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
