package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/inventory"
	"github.com/jhoicas/ledger-api/internal/domain/ledger"
	"github.com/jhoicas/ledger-api/internal/domain/report"
)

func meta() bookkeeping.ReportMeta {
	return bookkeeping.ReportMeta{Title: "Prueba", Company: "Tienda", Currency: "EGP", Subtitle: "Tipo: incoming"}
}

func assertPDF(t *testing.T, b []byte, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerateStatementPDF(t *testing.T) {
	g := NewMarotoPDFGenerator()
	entries := ledger.Recompute([]entity.Transaction{
		{ID: "1", Seq: 1, Date: entity.NewDate(2024, time.June, 1), Kind: entity.KindIncoming, Item: "Crema",
			Counterparty: "Proveedor", AmountIn: decimal.NewFromInt(1000)},
		{ID: "2", Seq: 2, Date: entity.NewDate(2024, time.June, 2), Kind: entity.KindExpense,
			Description: "Flete", AmountOut: decimal.NewFromInt(1200)},
	})
	b, err := g.GenerateStatementPDF(context.Background(), meta(), entries, report.Summarize(entries))
	assertPDF(t, b, err)
}

func TestGenerateStatementPDF_Vacio(t *testing.T) {
	b, err := NewMarotoPDFGenerator().GenerateStatementPDF(context.Background(), meta(), nil, report.Summarize(nil))
	assertPDF(t, b, err)
}

func TestGenerateInventoryPDF(t *testing.T) {
	rows := []inventory.Row{
		{Item: "Crema", Barcode: "1111111111111", TotalIncoming: decimal.NewFromInt(100), TotalOutgoing: decimal.NewFromInt(95),
			CurrentStock: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(10), TotalValue: decimal.NewFromInt(50),
			Status: inventory.StatusCritical},
	}
	inv := bookkeeping.InventoryReport{Rows: rows, TotalValue: decimal.NewFromInt(50), LowStock: rows, TopValue: rows}
	b, err := NewMarotoPDFGenerator().GenerateInventoryPDF(context.Background(), meta(), inv)
	assertPDF(t, b, err)
}

func TestGenerateLabelsPDF(t *testing.T) {
	items := []entity.Item{
		{Barcode: "1111111111111", Name: "Crema", UnitPrice: decimal.NewFromInt(10)},
		{Barcode: "2222222222222", Name: "Jabón", UnitPrice: decimal.NewFromInt(4)},
		{Barcode: "3333333333333", Name: "Aceite", UnitPrice: decimal.NewFromInt(7)},
		{Barcode: "4444444444444", Name: "Champú", UnitPrice: decimal.NewFromInt(9)},
	}
	b, err := NewMarotoPDFGenerator().GenerateLabelsPDF(context.Background(), meta(), items)
	assertPDF(t, b, err)

	b, err = NewMarotoPDFGenerator().GenerateLabelsPDF(context.Background(), meta(), nil)
	assertPDF(t, b, err)
}

func TestDetail(t *testing.T) {
	assert.Equal(t, "Crema · Ana", detail(entity.Transaction{Item: "Crema", Counterparty: "Ana"}))
	assert.Equal(t, "Flete", detail(entity.Transaction{Description: "Flete"}))
	assert.Equal(t, "—", detail(entity.Transaction{}))
}
