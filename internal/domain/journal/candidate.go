// Package journal implementa el registro de transacciones: log de solo-agregar, validado,
// con secuencia de inserción. No es seguro para uso concurrente por sí mismo.
package journal

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// Candidate transacción propuesta, antes de validar.
// Para tipos comerciales el monto es Quantity × UnitPrice. Para gastos se usa Amount, o
// Quantity × UnitPrice si Amount viene en cero.
type Candidate struct {
	Date         entity.Date
	Kind         entity.Kind
	ItemRef      string // nombre del ítem o código de barras
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	Amount       decimal.Decimal
	Description  string
	Counterparty string
}

// Validate rechaza campos faltantes o no positivos. Devuelve el primer *domain.ValidationError.
func Validate(c Candidate) error {
	if !c.Kind.Valid() {
		return domain.NewValidationError("kind", "desconocido: "+string(c.Kind))
	}
	if c.Date.IsZero() {
		return domain.NewValidationError("date", "es obligatoria")
	}
	if c.Kind.IsCommerce() {
		if strings.TrimSpace(c.ItemRef) == "" {
			return domain.NewValidationError("item", "es obligatorio")
		}
		if strings.TrimSpace(c.Counterparty) == "" {
			return domain.NewValidationError("counterparty", "es obligatorio")
		}
		if !c.Quantity.IsPositive() {
			return domain.NewValidationError("quantity", "debe ser mayor que cero")
		}
		if !c.UnitPrice.IsPositive() {
			return domain.NewValidationError("unit_price", "debe ser mayor que cero")
		}
		return nil
	}

	// expense
	if c.Amount.IsNegative() || c.Quantity.IsNegative() || c.UnitPrice.IsNegative() {
		return domain.NewValidationError("amount", "no puede ser negativo")
	}
	if !expenseAmount(c).IsPositive() {
		return domain.NewValidationError("amount", "debe ser mayor que cero")
	}
	if strings.TrimSpace(c.Description) == "" {
		return domain.NewValidationError("description", "es obligatoria para gastos")
	}
	return nil
}

func expenseAmount(c Candidate) decimal.Decimal {
	if !c.Amount.IsZero() {
		return c.Amount
	}
	return c.Quantity.Mul(c.UnitPrice)
}

// route reparte el monto al lado correcto según el tipo:
// incoming → AmountIn; ventas y gastos → AmountOut.
func route(kind entity.Kind, amount decimal.Decimal) (in, out decimal.Decimal) {
	if kind == entity.KindIncoming {
		return amount, decimal.Zero
	}
	return decimal.Zero, amount
}

// checkExclusive exactamente uno de AmountIn / AmountOut es positivo.
func checkExclusive(tx entity.Transaction) error {
	in, out := tx.AmountIn.IsPositive(), tx.AmountOut.IsPositive()
	if in == out || tx.AmountIn.IsNegative() || tx.AmountOut.IsNegative() {
		return domain.NewValidationError("amount", "exactamente uno de entrada/salida debe ser positivo")
	}
	return nil
}
