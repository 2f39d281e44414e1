package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio. Los errores tipados de abajo coinciden con estos sentinelas vía errors.Is.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrBarcodeExhausted  = errors.New("no se pudo generar un código de barras libre")
)

// ValidationError campo faltante, malformado o no positivo. La transacción candidata se rechaza
// antes de tocar el registro.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError construye un error de validación para el campo indicado.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// InsufficientStockError una venta (o el borrado de una entrada) dejaría el stock del ítem en negativo.
type InsufficientStockError struct {
	Item      string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %q solicitado %s, disponible %s",
		ErrInsufficientStock, e.Item, e.Requested.String(), e.Available.String())
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// DuplicateBarcodeError el código de barras ya existe en el catálogo.
type DuplicateBarcodeError struct {
	Barcode string
}

func (e *DuplicateBarcodeError) Error() string {
	return fmt.Sprintf("%s: código de barras %s", ErrDuplicate, e.Barcode)
}

func (e *DuplicateBarcodeError) Is(target error) bool { return target == ErrDuplicate }

// NotFoundError borrado o consulta por un id/código inexistente.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrNotFound, e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
