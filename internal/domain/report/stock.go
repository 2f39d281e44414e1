package report

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/ledger-api/internal/domain/inventory"
)

// DefaultTopN cantidad de ítems del ranking por valor.
const DefaultTopN = 5

// FilterRows filas cuyo nombre, código o categoría contiene searchText (sin distinguir mayúsculas).
func FilterRows(rows []inventory.Row, searchText string) []inventory.Row {
	q := strings.TrimSpace(searchText)
	if q == "" {
		return slices.Clone(rows)
	}
	caser := cases.Fold()
	needle := caser.String(q)
	out := make([]inventory.Row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(caser.String(r.Item), needle) ||
			strings.Contains(r.Barcode, needle) ||
			strings.Contains(caser.String(r.Category), needle) {
			out = append(out, r)
		}
	}
	return out
}

// LowStock filas en estado bajo o crítico, en el orden recibido.
func LowStock(rows []inventory.Row) []inventory.Row {
	out := make([]inventory.Row, 0)
	for _, r := range rows {
		if r.Status.NeedsAttention() {
			out = append(out, r)
		}
	}
	return out
}

// TopByValue las n filas de mayor valor total; n ≤ 0 usa DefaultTopN.
func TopByValue(rows []inventory.Row, n int) []inventory.Row {
	if n <= 0 {
		n = DefaultTopN
	}
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b inventory.Row) int { return b.TotalValue.Cmp(a.TotalValue) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// InventoryValue Σ valor total de las filas.
func InventoryValue(rows []inventory.Row) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.TotalValue)
	}
	return total
}
