// Package catalog mantiene el índice código de barras ↔ ítem.
//
// Index no es seguro para uso concurrente: el motor de contabilidad serializa todas las
// mutaciones bajo su propio candado.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// Valores por defecto del generador de códigos.
const (
	DefaultBarcodeLength = 13
	DefaultMaxAttempts   = 10
)

// Options configura el índice. Los valores cero toman los defaults.
type Options struct {
	BarcodeLength int
	MaxAttempts   int
	Generator     Generator
}

// Index registro de ítems por código de barras, en orden de registro.
type Index struct {
	items       []entity.Item
	byBarcode   map[string]int
	gen         Generator
	maxAttempts int
	now         func() time.Time
}

// New construye un índice vacío.
func New(opts Options) *Index {
	if opts.BarcodeLength <= 0 {
		opts.BarcodeLength = DefaultBarcodeLength
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Generator == nil {
		opts.Generator = NewRandomGenerator(opts.BarcodeLength)
	}
	return &Index{
		byBarcode:   make(map[string]int),
		gen:         opts.Generator,
		maxAttempts: opts.MaxAttempts,
		now:         time.Now,
	}
}

// Prepare valida el ítem y le asigna código de barras sin mutar el índice.
// Si barcode está vacío se generan candidatos hasta MaxAttempts; un código explícito repetido
// devuelve DuplicateBarcodeError.
func (x *Index) Prepare(item entity.Item, barcode string) (entity.Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.TrimSpace(item.Category)
	if item.Name == "" {
		return entity.Item{}, domain.NewValidationError("name", "es obligatorio")
	}
	if !item.UnitPrice.GreaterThan(decimal.Zero) {
		return entity.Item{}, domain.NewValidationError("unit_price", "debe ser mayor que cero")
	}

	barcode = strings.TrimSpace(barcode)
	if barcode != "" {
		if !isNumeric(barcode) {
			return entity.Item{}, domain.NewValidationError("barcode", "debe ser numérico")
		}
		if _, exists := x.byBarcode[barcode]; exists {
			return entity.Item{}, &domain.DuplicateBarcodeError{Barcode: barcode}
		}
	} else {
		generated, err := x.nextFree()
		if err != nil {
			return entity.Item{}, err
		}
		barcode = generated
	}

	item.Barcode = barcode
	if item.CreatedAt.IsZero() {
		item.CreatedAt = x.now()
	}
	return item, nil
}

// nextFree regenera candidatos mientras colisionen, con un máximo de intentos.
func (x *Index) nextFree() (string, error) {
	for attempt := 0; attempt < x.maxAttempts; attempt++ {
		candidate := x.gen.Next()
		if candidate == "" {
			continue
		}
		if _, exists := x.byBarcode[candidate]; !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w tras %d intentos", domain.ErrBarcodeExhausted, x.maxAttempts)
}

// Commit agrega un ítem ya preparado. Prepare garantiza que el código no existe.
func (x *Index) Commit(item entity.Item) {
	x.byBarcode[item.Barcode] = len(x.items)
	x.items = append(x.items, item)
}

// Register Prepare + Commit.
func (x *Index) Register(item entity.Item, barcode string) (entity.Item, error) {
	prepared, err := x.Prepare(item, barcode)
	if err != nil {
		return entity.Item{}, err
	}
	x.Commit(prepared)
	return prepared, nil
}

// Lookup busca un ítem por código de barras exacto.
func (x *Index) Lookup(barcode string) (entity.Item, bool) {
	i, ok := x.byBarcode[strings.TrimSpace(barcode)]
	if !ok {
		return entity.Item{}, false
	}
	return x.items[i], true
}

// Delete quita la entrada del catálogo. No toca transacciones pasadas.
func (x *Index) Delete(barcode string) error {
	barcode = strings.TrimSpace(barcode)
	i, ok := x.byBarcode[barcode]
	if !ok {
		return &domain.NotFoundError{Resource: "código de barras", ID: barcode}
	}
	x.items = append(x.items[:i:i], x.items[i+1:]...)
	x.reindex()
	return nil
}

// Restore reemplaza el contenido con ítems persistidos (hidratación al arrancar).
func (x *Index) Restore(items []entity.Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.Barcode]; dup {
			return &domain.DuplicateBarcodeError{Barcode: it.Barcode}
		}
		seen[it.Barcode] = struct{}{}
	}
	x.items = append([]entity.Item(nil), items...)
	x.reindex()
	return nil
}

func (x *Index) reindex() {
	x.byBarcode = make(map[string]int, len(x.items))
	for i, it := range x.items {
		x.byBarcode[it.Barcode] = i
	}
}

// List copia de los ítems en orden de registro.
func (x *Index) List() []entity.Item {
	return append([]entity.Item(nil), x.items...)
}

// Len cantidad de ítems registrados.
func (x *Index) Len() int { return len(x.items) }

// Resolve traduce la referencia de una transacción a su clave de stock.
// Un código registrado se resuelve al nombre del ítem; cualquier otra referencia es el nombre.
func (x *Index) Resolve(ref string) (item, barcode string) {
	ref = strings.TrimSpace(ref)
	if it, ok := x.Lookup(ref); ok {
		return it.Name, it.Barcode
	}
	return ref, ""
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
