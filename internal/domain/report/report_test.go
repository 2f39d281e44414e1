package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/inventory"
	"github.com/jhoicas/ledger-api/internal/domain/ledger"
	"github.com/jhoicas/ledger-api/internal/domain/report"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func day(n int) entity.Date { return entity.NewDate(2024, time.June, n) }

// ─── Fixtures ─────────────────────────────────────────────────────────────────

func sampleLog() []entity.Transaction {
	return []entity.Transaction{
		{ID: "1", Seq: 1, Date: day(1), Kind: entity.KindIncoming, Item: "Crema Facial", Quantity: d(100), UnitPrice: d(10), AmountIn: d(1000), Counterparty: "Proveedor Norte"},
		{ID: "2", Seq: 2, Date: day(2), Kind: entity.KindSalePiece, Item: "Crema Facial", Quantity: d(30), UnitPrice: d(10), AmountOut: d(300), Counterparty: "Cliente Sur"},
		{ID: "3", Seq: 3, Date: day(3), Kind: entity.KindSaleRep, Item: "Crema Facial", Quantity: d(10), UnitPrice: d(12), AmountOut: d(120), Counterparty: "Ana"},
		{ID: "4", Seq: 4, Date: day(4), Kind: entity.KindExpense, AmountOut: d(50), Description: "Transporte ÑANDÚ"},
		{ID: "5", Seq: 5, Date: day(5), Kind: entity.KindSaleRep, Item: "Jabón", Quantity: d(5), UnitPrice: d(40), AmountOut: d(200), Counterparty: "Luis"},
		{ID: "6", Seq: 6, Date: day(6), Kind: entity.KindSaleRep, Item: "Jabón", Quantity: d(2), UnitPrice: d(40), AmountOut: d(80), Counterparty: "Ana"},
	}
}

// ─── Estado de cuenta ─────────────────────────────────────────────────────────

func TestQueryStatement_FiltroVacioDevuelveTodo(t *testing.T) {
	entries := ledger.Recompute(sampleLog())
	got := report.QueryStatement(entries, report.Filter{})
	assert.Equal(t, entries, got)
}

func TestQueryStatement_FiltrosPorTipoDisjuntos(t *testing.T) {
	entries := ledger.Recompute(sampleLog())
	seen := make(map[string]entity.Kind)
	total := 0
	for _, k := range entity.Kinds {
		for _, e := range report.QueryStatement(entries, report.Filter{Kind: k}) {
			assert.Equal(t, k, e.Transaction.Kind)
			_, dup := seen[e.Transaction.ID]
			assert.False(t, dup, "transacción %s en dos tipos", e.Transaction.ID)
			seen[e.Transaction.ID] = k
			total++
		}
	}
	assert.Equal(t, len(entries), total)
}

func TestQueryStatement_SaldosDelLogCompleto(t *testing.T) {
	entries := ledger.Recompute(sampleLog())
	got := report.QueryStatement(entries, report.Filter{Kind: entity.KindExpense})
	require.Len(t, got, 1)
	// 1000 − 300 − 120 − 50
	assert.True(t, got[0].Balance.Equal(d(530)))
}

func TestQueryStatement_RangoDeFechas(t *testing.T) {
	entries := ledger.Recompute(sampleLog())
	got := report.QueryStatement(entries, report.Filter{DateFrom: day(2), DateTo: day(4)})
	require.Len(t, got, 3)
	assert.Equal(t, "2", got[0].Transaction.ID)
	assert.Equal(t, "4", got[2].Transaction.ID)
}

func TestQueryStatement_BusquedaSinMayusculas(t *testing.T) {
	entries := ledger.Recompute(sampleLog())

	got := report.QueryStatement(entries, report.Filter{SearchText: "ñandú"})
	require.Len(t, got, 1)
	assert.Equal(t, "4", got[0].Transaction.ID)

	got = report.QueryStatement(entries, report.Filter{SearchText: "  TRANSPORTE "})
	require.Len(t, got, 1)
	assert.Equal(t, "4", got[0].Transaction.ID)
}

func TestQueryStatement_BusquedaSoloEnDescripcion(t *testing.T) {
	entries := ledger.Recompute([]entity.Transaction{
		{ID: "1", Seq: 1, Date: day(1), Kind: entity.KindIncoming, Item: "Widget", Barcode: "2000000000001",
			Quantity: d(5), UnitPrice: d(2), AmountIn: d(10), Counterparty: "Acme", Description: "restock"},
		{ID: "2", Seq: 2, Date: day(2), Kind: entity.KindExpense, AmountOut: d(3), Description: "rent"},
	})

	tests := []struct {
		needle string
		want   int
	}{
		{"widget", 0},
		{"acme", 0},
		{"2000000000001", 0},
		{"RESTOCK", 1},
		{"ren", 1},
	}
	for _, tt := range tests {
		t.Run(tt.needle, func(t *testing.T) {
			got := report.QueryStatement(entries, report.Filter{SearchText: tt.needle})
			assert.Len(t, got, tt.want)
		})
	}

	// con ítem y contraparte coincidentes pero descripción distinta no pasa
	assert.False(t, report.Filter{SearchText: "acme", Kind: entity.KindIncoming}.Match(entries[0].Transaction))
}

func TestFilter_Validate(t *testing.T) {
	assert.NoError(t, report.Filter{}.Validate())
	assert.ErrorIs(t, report.Filter{Kind: "refund"}.Validate(), domain.ErrInvalidInput)
	assert.ErrorIs(t, report.Filter{DateFrom: day(5), DateTo: day(1)}.Validate(), domain.ErrInvalidInput)
}

func TestSummarize(t *testing.T) {
	entries := ledger.Recompute(sampleLog())
	all := report.Summarize(entries)
	assert.True(t, all.TotalIn.Equal(d(1000)))
	assert.True(t, all.TotalOut.Equal(d(750)))
	assert.True(t, all.Net.Equal(d(250)))
	assert.True(t, all.Balance.Equal(d(250)))
	assert.Equal(t, 6, all.Count)

	reps := report.Summarize(report.QueryStatement(entries, report.Filter{Kind: entity.KindSaleRep}))
	assert.True(t, reps.TotalIn.IsZero())
	assert.True(t, reps.TotalOut.Equal(d(400)))
	assert.Equal(t, 3, reps.Count)

	empty := report.Summarize(nil)
	assert.Zero(t, empty.Count)
	assert.True(t, empty.Balance.IsZero())
}

// ─── Representantes ───────────────────────────────────────────────────────────

func TestRepresentativeSummary(t *testing.T) {
	rows := report.RepresentativeSummary(sampleLog())
	require.Len(t, rows, 2)

	// empate en 200: decide el nombre
	ana := rows[0]
	assert.Equal(t, "Ana", ana.RepName)
	assert.Equal(t, 2, ana.TotalSales)
	assert.True(t, ana.TotalQuantity.Equal(d(12)))
	assert.True(t, ana.TotalRevenue.Equal(d(200)))
	assert.True(t, ana.AverageSale.Equal(d(100)))

	luis := rows[1]
	assert.Equal(t, "Luis", luis.RepName)
	assert.Equal(t, 1, luis.TotalSales)
	assert.True(t, luis.TotalRevenue.Equal(d(200)))

	assert.True(t, report.RepTotal(rows).Equal(d(400)))
}

func TestRepresentativeSummary_EmpateOrdenaPorNombre(t *testing.T) {
	txs := []entity.Transaction{
		{Kind: entity.KindSaleRep, Counterparty: "Zoe", Quantity: d(1), AmountOut: d(10)},
		{Kind: entity.KindSaleRep, Counterparty: "Bea", Quantity: d(1), AmountOut: d(10)},
	}
	rows := report.RepresentativeSummary(txs)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bea", rows[0].RepName)
}

func TestRepresentativeSummary_SinVentas(t *testing.T) {
	rows := report.RepresentativeSummary([]entity.Transaction{{Kind: entity.KindSalePiece, AmountOut: d(5)}})
	assert.Empty(t, rows)
	assert.True(t, report.RepTotal(rows).IsZero())
}

// ─── Almacén ──────────────────────────────────────────────────────────────────

func stockRows() []inventory.Row {
	return []inventory.Row{
		{Item: "Aceite", Barcode: "1000000000001", Category: "insumos", TotalValue: d(50), Status: inventory.StatusCritical},
		{Item: "Crema Facial", Barcode: "1000000000002", Category: "productos", TotalValue: d(700), Status: inventory.StatusGood},
		{Item: "Jabón", Barcode: "1000000000003", Category: "productos", TotalValue: d(300), Status: inventory.StatusLow},
	}
}

func TestFilterRows(t *testing.T) {
	rows := stockRows()
	assert.Len(t, report.FilterRows(rows, ""), 3)
	assert.Len(t, report.FilterRows(rows, "PRODUCTOS"), 2)

	got := report.FilterRows(rows, "jabón")
	require.Len(t, got, 1)
	assert.Equal(t, "Jabón", got[0].Item)

	got = report.FilterRows(rows, "0001")
	require.Len(t, got, 1)
	assert.Equal(t, "Aceite", got[0].Item)
}

func TestLowStockYValor(t *testing.T) {
	rows := stockRows()
	low := report.LowStock(rows)
	assert.Equal(t, []string{"Aceite", "Jabón"}, []string{low[0].Item, low[1].Item})
	assert.True(t, report.InventoryValue(rows).Equal(d(1050)))
}

func TestTopByValue(t *testing.T) {
	rows := stockRows()
	top := report.TopByValue(rows, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Crema Facial", top[0].Item)
	assert.Equal(t, "Jabón", top[1].Item)

	assert.Len(t, report.TopByValue(rows, 0), 3, "n ≤ 0 usa el default")
	assert.Equal(t, "Aceite", rows[0].Item, "no reordena la entrada")
}
