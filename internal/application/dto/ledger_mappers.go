package dto

import (
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/inventory"
	"github.com/jhoicas/ledger-api/internal/domain/ledger"
	"github.com/jhoicas/ledger-api/internal/domain/report"
)

// FromTransaction convierte la entidad en su representación HTTP.
func FromTransaction(tx entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID: tx.ID, Seq: tx.Seq, Date: tx.Date, Kind: string(tx.Kind),
		Item: tx.Item, Barcode: tx.Barcode,
		Quantity: tx.Quantity, UnitPrice: tx.UnitPrice,
		AmountIn: tx.AmountIn, AmountOut: tx.AmountOut,
		Description: tx.Description, Counterparty: tx.Counterparty, CreatedAt: tx.CreatedAt,
	}
}

// FromTransactions recorta la página pedida manteniendo el orden.
func FromTransactions(txs []entity.Transaction, page PageRequest) TransactionListResponse {
	start := min(page.Offset, len(txs))
	end := min(start+page.Limit, len(txs))
	items := make([]TransactionResponse, 0, end-start)
	for _, tx := range txs[start:end] {
		items = append(items, FromTransaction(tx))
	}
	return TransactionListResponse{
		Items: items,
		Page:  PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(txs)},
	}
}

// FromStatement entradas filtradas más sus totales.
func FromStatement(entries []ledger.Entry, totals report.Totals) StatementResponse {
	out := StatementResponse{
		Entries: make([]StatementEntryResponse, 0, len(entries)),
		Totals: StatementTotalsResponse{
			TotalIn: totals.TotalIn, TotalOut: totals.TotalOut, Net: totals.Net,
			Balance: totals.Balance, Count: totals.Count,
		},
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, StatementEntryResponse{
			TransactionResponse: FromTransaction(e.Transaction),
			Balance:             e.Balance,
		})
	}
	return out
}

// FromInventoryRows filas del balance de almacén.
func FromInventoryRows(rows []inventory.Row) []InventoryRowResponse {
	out := make([]InventoryRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, InventoryRowResponse{
			Item: r.Item, Barcode: r.Barcode, Category: r.Category,
			TotalIncoming: r.TotalIncoming, TotalOutgoing: r.TotalOutgoing, CurrentStock: r.CurrentStock,
			UnitPrice: r.UnitPrice, AverageCost: r.AverageCost, TotalValue: r.TotalValue,
			Status: string(r.Status),
		})
	}
	return out
}

// FromItem entrada del catálogo.
func FromItem(it entity.Item) ItemResponse {
	return ItemResponse{Barcode: it.Barcode, Name: it.Name, Category: it.Category, UnitPrice: it.UnitPrice, CreatedAt: it.CreatedAt}
}

// FromItems catálogo completo.
func FromItems(items []entity.Item) ItemListResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromItem(it))
	}
	return ItemListResponse{Items: out, Total: len(out)}
}

// FromRepRows resumen por representante.
func FromRepRows(rows []report.RepRow) []RepRowResponse {
	out := make([]RepRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, RepRowResponse{
			RepName: r.RepName, TotalSales: r.TotalSales, TotalQuantity: r.TotalQuantity,
			TotalRevenue: r.TotalRevenue, AverageSale: r.AverageSale,
		})
	}
	return out
}
