package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind tipo de evento de negocio que origina la transacción.
type Kind string

// Tipos de transacción.
const (
	KindIncoming  Kind = "incoming"   // mercancía recibida de un proveedor
	KindSalePiece Kind = "sale_piece" // venta por pieza a un cliente
	KindSaleRep   Kind = "sale_rep"   // venta a través de un representante
	KindExpense   Kind = "expense"    // gasto sin efecto en stock
)

// Kinds todos los tipos válidos, en el orden en que se presentan.
var Kinds = []Kind{KindIncoming, KindSalePiece, KindSaleRep, KindExpense}

// Valid indica si k es uno de los tipos conocidos.
func (k Kind) Valid() bool {
	switch k {
	case KindIncoming, KindSalePiece, KindSaleRep, KindExpense:
		return true
	}
	return false
}

// IsCommerce tipos que mueven mercancía (requieren ítem, cantidad y precio).
func (k Kind) IsCommerce() bool { return k == KindIncoming || k.IsSale() }

// IsSale ventas por pieza o por representante.
func (k Kind) IsSale() bool { return k == KindSalePiece || k == KindSaleRep }

// Transaction registro inmutable del log. Solo puede borrarse completo.
// Item es la clave de stock ya resuelta (nombre del ítem); Barcode se llena si la referencia
// original era un código de barras registrado.
type Transaction struct {
	ID           string
	Seq          uint64 // secuencia de inserción, desempate para fechas iguales
	Date         Date
	Kind         Kind
	Item         string
	Barcode      string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	AmountIn     decimal.Decimal
	AmountOut    decimal.Decimal
	Description  string
	Counterparty string // proveedor, cliente o representante
	CreatedAt    time.Time
}

// Net efecto de la transacción sobre el saldo de caja.
func (t Transaction) Net() decimal.Decimal { return t.AmountIn.Sub(t.AmountOut) }

// StockDelta efecto de la transacción sobre el stock de su ítem.
func (t Transaction) StockDelta() decimal.Decimal {
	switch {
	case t.Kind == KindIncoming:
		return t.Quantity
	case t.Kind.IsSale():
		return t.Quantity.Neg()
	default:
		return decimal.Zero
	}
}
