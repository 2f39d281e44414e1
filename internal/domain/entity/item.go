package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item entrada del catálogo de códigos de barras. Es independiente del historial: borrarla
// no invalida las transacciones que la referencian.
type Item struct {
	Barcode   string // único en el catálogo
	Name      string
	Category  string
	UnitPrice decimal.Decimal // precio de referencia
	CreatedAt time.Time
}
