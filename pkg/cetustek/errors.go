package cetustek

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse la respuesta no respeta el contrato del servicio (p. ej. falta <return>).
	ErrMalformedResponse = errors.New("cetustek: respuesta malformada")
	// ErrInvalidInput falta un campo obligatorio en la entrada.
	ErrInvalidInput = errors.New("cetustek: entrada inválida")
	// ErrResponseTooLarge el cuerpo de la respuesta supera el máximo que se lee.
	ErrResponseTooLarge = errors.New("cetustek: respuesta demasiado grande")
)

// APIError el servicio devolvió un código que la operación no reconoce como éxito.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("cetustek: error de API %s - %s", e.Code, e.Message)
	}
	return fmt.Sprintf("cetustek: error de API %s", e.Code)
}

// TransportError el endpoint respondió con un estado HTTP distinto de 2xx.
type TransportError struct {
	StatusCode int
	Status     string
	Body       string // truncado
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("soap: estado HTTP %d (%s)", e.StatusCode, e.Status)
}

// ValidationError campo obligatorio ausente; errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidInput, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func newRequiredError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "campo obligatorio"}
}
