// Package validate junta errores de validación por campo (estilo formulario).
package validate

import (
	"errors"
	"math"
	"net/mail"
	"sort"
	"strings"
)

// ErrInvalid es el sentinel común; los módulos lo re-exportan como ErrInvalidInput.
var ErrInvalid = errors.New("invalid input")

// Errors mapea campo -> mensaje. Un Errors vacío no es un error.
type Errors map[string]string

func (e Errors) Add(field, message string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = message
}

func (e Errors) HasErrors() bool {
	return len(e) > 0
}

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Is permite errors.Is(err, ErrInvalid).
func (e Errors) Is(target error) bool {
	return target == ErrInvalid
}

// Err devuelve nil si no hubo errores (evita el típico nil-interface con map vacío).
func (e Errors) Err() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func Required(errs Errors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, "is required")
	}
}

func NonNegative(errs Errors, field string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		errs.Add(field, "must be a number")
		return
	}
	if v < 0 {
		errs.Add(field, "must be zero or greater")
	}
}

func MinLen(errs Errors, field, value string, n int) {
	if len([]rune(strings.TrimSpace(value))) < n {
		errs.Add(field, "is too short")
	}
}

func MaxLen(errs Errors, field, value string, n int) {
	if len([]rune(value)) > n {
		errs.Add(field, "is too long")
	}
}

func Email(errs Errors, field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.Add(field, "is required")
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		errs.Add(field, "is not a valid email address")
	}
}

// OneOf valida contra una lista cerrada de valores.
func OneOf[T ~string](errs Errors, field string, value T, allowed ...T) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	errs.Add(field, "has an unsupported value")
}
