package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// CheckSale falla si quantity supera el stock disponible del ítem en txs, que debe ser el
// log tal como estaba antes de la candidata. El llamador mantiene el candado de escritura
// entre este chequeo y el Commit.
func CheckSale(txs []entity.Transaction, item string, quantity decimal.Decimal) error {
	available := StockOf(txs, item)
	if quantity.GreaterThan(available) {
		return &domain.InsufficientStockError{Item: item, Requested: quantity, Available: available}
	}
	return nil
}

// CheckRemoval falla si quitar la transacción dejaría negativo el stock de su ítem
// (solo puede ocurrir al borrar una entrada ya consumida por ventas).
func CheckRemoval(txs []entity.Transaction, removed entity.Transaction) error {
	if !removed.StockDelta().IsPositive() {
		return nil
	}
	available := StockOf(txs, removed.Item)
	if available.LessThan(removed.Quantity) {
		return &domain.InsufficientStockError{Item: removed.Item, Requested: removed.Quantity, Available: available}
	}
	return nil
}
