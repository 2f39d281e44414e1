// Package pdf implementa las salidas impresas del libro con Maroto v2.
//
// Layout común de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título      │  Filtro / fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: columnas según el documento                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES alineados a la derecha                              │
//	└─────────────────────────────────────────────────────────────┘
//
// Las etiquetas de códigos de barras usan una grilla de tres columnas.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/ledger"
	"github.com/jhoicas/ledger-api/internal/domain/report"
	"github.com/jhoicas/ledger-api/pkg/currency"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorCritical = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorLow      = &props.Color{Red: 200, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ bookkeeping.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa bookkeeping.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{now: time.Now} }

// GenerateStatementPDF estado de cuenta: una fila por entrada con su saldo corrido.
func (g *MarotoPDFGenerator) GenerateStatementPDF(
	_ context.Context,
	meta bookkeeping.ReportMeta,
	entries []ledger.Entry,
	totals report.Totals,
) ([]byte, error) {
	m := g.newDocument(meta)
	f := currency.NewFormatter(meta.Currency)

	m.AddRows(statementHeaderRow())
	m.AddRows(statementRows(entries, f)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow([][2]string{
		{"Total entradas:", f.Format(totals.TotalIn)},
		{"Total salidas:", f.Format(totals.TotalOut)},
		{"Saldo:", f.Format(totals.Balance)},
	}))
	return generate(m)
}

// GenerateInventoryPDF balance de almacén con valor total y stock bajo.
func (g *MarotoPDFGenerator) GenerateInventoryPDF(
	_ context.Context,
	meta bookkeeping.ReportMeta,
	inv bookkeeping.InventoryReport,
) ([]byte, error) {
	m := g.newDocument(meta)
	f := currency.NewFormatter(meta.Currency)

	m.AddRows(inventoryHeaderRow())
	m.AddRows(inventoryRows(inv.Rows, f)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow([][2]string{
		{"Ítems:", fmt.Sprintf("%d", len(inv.Rows))},
		{"Stock bajo o crítico:", fmt.Sprintf("%d", len(inv.LowStock))},
		{"Valor total:", f.Format(inv.TotalValue)},
	}))
	if len(inv.TopValue) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionTitleRow("MAYOR VALOR EN ALMACÉN"))
		m.AddRows(topValueRows(inv.TopValue, f)...)
	}
	return generate(m)
}

// GenerateLabelsPDF etiquetas con nombre, precio y código de barras.
func (g *MarotoPDFGenerator) GenerateLabelsPDF(
	_ context.Context,
	meta bookkeeping.ReportMeta,
	items []entity.Item,
) ([]byte, error) {
	m := g.newDocument(meta)
	m.AddRows(labelRows(items, currency.NewFormatter(meta.Currency))...)
	return generate(m)
}

func (g *MarotoPDFGenerator) newDocument(meta bookkeeping.ReportMeta) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(meta.Title, true).
		WithAuthor(meta.Company, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(meta, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	return m
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}
