// Package inventory deriva stock, valor y estado por ítem a partir del log de transacciones.
// Nada de lo que calcula se almacena: cada consulta recorre el log vigente.
package inventory

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// Row fila del balance de almacén.
type Row struct {
	Item          string
	Barcode       string
	Category      string
	TotalIncoming decimal.Decimal
	TotalOutgoing decimal.Decimal
	CurrentStock  decimal.Decimal
	UnitPrice     decimal.Decimal // precio de referencia del catálogo, o último precio de entrada
	AverageCost   decimal.Decimal // costo promedio ponderado de las entradas
	TotalValue    decimal.Decimal // CurrentStock × UnitPrice
	Status        Status
}

// StockOf Σ entradas − Σ ventas (ambos tipos) del ítem sobre el log completo.
func StockOf(txs []entity.Transaction, item string) decimal.Decimal {
	stock := decimal.Zero
	for _, tx := range txs {
		if tx.Item == item {
			stock = stock.Add(tx.StockDelta())
		}
	}
	return stock
}

type accum struct {
	row          Row
	avgCost      decimal.Decimal
	lastInPrice  decimal.Decimal
	catalogPrice bool
}

// Snapshot una fila por ítem visto en el log o registrado en el catálogo, ordenadas por nombre.
// Si dos entradas del catálogo comparten nombre se usa la primera registrada.
func Snapshot(txs []entity.Transaction, items []entity.Item, th Thresholds) []Row {
	byItem := make(map[string]*accum)
	get := func(name string) *accum {
		a, ok := byItem[name]
		if !ok {
			a = &accum{row: Row{
				Item:          name,
				TotalIncoming: decimal.Zero,
				TotalOutgoing: decimal.Zero,
				CurrentStock:  decimal.Zero,
				UnitPrice:     decimal.Zero,
			}, avgCost: decimal.Zero, lastInPrice: decimal.Zero}
			byItem[name] = a
		}
		return a
	}

	for _, it := range items {
		a := get(it.Name)
		if a.catalogPrice {
			continue
		}
		a.row.Barcode = it.Barcode
		a.row.Category = it.Category
		a.row.UnitPrice = it.UnitPrice
		a.catalogPrice = true
	}

	for _, tx := range txs {
		if !tx.Kind.IsCommerce() || tx.Item == "" {
			continue
		}
		a := get(tx.Item)
		switch {
		case tx.Kind == entity.KindIncoming:
			a.avgCost = WeightedCost(a.row.TotalIncoming, a.avgCost, tx.Quantity, tx.UnitPrice)
			a.row.TotalIncoming = a.row.TotalIncoming.Add(tx.Quantity)
			a.lastInPrice = tx.UnitPrice
		case tx.Kind.IsSale():
			a.row.TotalOutgoing = a.row.TotalOutgoing.Add(tx.Quantity)
		}
		if a.row.Barcode == "" && tx.Barcode != "" {
			a.row.Barcode = tx.Barcode
		}
	}

	rows := make([]Row, 0, len(byItem))
	for _, a := range byItem {
		r := a.row
		if !a.catalogPrice {
			r.UnitPrice = a.lastInPrice
		}
		r.CurrentStock = r.TotalIncoming.Sub(r.TotalOutgoing)
		r.AverageCost = a.avgCost.Round(4)
		r.TotalValue = r.CurrentStock.Mul(r.UnitPrice)
		r.Status = th.Classify(r.CurrentStock)
		rows = append(rows, r)
	}
	slices.SortFunc(rows, func(a, b Row) int { return strings.Compare(a.Item, b.Item) })
	return rows
}
