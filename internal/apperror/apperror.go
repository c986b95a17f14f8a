// Package apperror defines the canonical error taxonomy for the fuel-rationing
// system. All business failures surfaced to the caller go through this package
// so that the presentation layer can match on the kind with errors.Is while
// still showing the human-readable message.
package apperror

import "fmt"

// Kind classifies a business failure.
type Kind int

const (
	Validacion Kind = iota + 1
	NoEncontrado
	NoAprobado
	CantidadInvalida
	CupoExcedido
	StockInsuficiente
)

// Sentinels for errors.Is matching. Their messages are never shown; concrete
// errors built with New carry the real detail.
var (
	ErrValidacion        = &Error{Kind: Validacion, Detalle: "error de validación"}
	ErrNoEncontrado      = &Error{Kind: NoEncontrado, Detalle: "no encontrado"}
	ErrNoAprobado        = &Error{Kind: NoAprobado, Detalle: "no aprobado"}
	ErrCantidadInvalida  = &Error{Kind: CantidadInvalida, Detalle: "cantidad inválida"}
	ErrCupoExcedido      = &Error{Kind: CupoExcedido, Detalle: "cupo excedido"}
	ErrStockInsuficiente = &Error{Kind: StockInsuficiente, Detalle: "stock insuficiente"}
)

// Error carries the failure kind plus a message intended for the end user.
type Error struct {
	Kind    Kind
	Detalle string
	// Campos holds per-field messages for validation failures.
	Campos map[string]string
}

func (e *Error) Error() string { return e.Detalle }

// Is reports kind equality, so errors.Is(err, ErrCupoExcedido) matches any
// quota error regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detalle: fmt.Sprintf(format, args...)}
}

// NewValidacion wraps multiple field errors.
func NewValidacion(campos map[string]string) *Error {
	return &Error{Kind: Validacion, Detalle: "Error de validacion", Campos: campos}
}
