package pdf

import (
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/inventory"
	"github.com/jhoicas/ledger-api/internal/domain/ledger"
	"github.com/jhoicas/ledger-api/pkg/currency"
)

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + título (izq) y filtro + fecha de emisión (der).
func headerRow(meta bookkeeping.ReportMeta, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(meta.Company, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(meta.Title, props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(meta.Subtitle, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Emitido: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
	))
}

type column struct {
	label string
	size  int
	align align.Type
}

// tableHeader: cabecera con fondo del color primario.
func tableHeader(cols []column) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cells...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func cell(size int, s string, a align.Type, color *props.Color) core.Col {
	return col.New(size).Add(text.New(s, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: color,
	}))
}

var statementColumns = []column{
	{"Fecha", 2, align.Left},
	{"Tipo", 1, align.Left},
	{"Detalle", 4, align.Left},
	{"Entrada", 2, align.Right},
	{"Salida", 1, align.Right},
	{"Saldo", 2, align.Right},
}

func statementHeaderRow() core.Row { return tableHeader(statementColumns) }

// statementRows: una fila por entrada; el detalle combina ítem, contraparte y descripción.
func statementRows(entries []ledger.Entry, f currency.Formatter) []core.Row {
	rows := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		tx := e.Transaction
		rows = append(rows, row.New(7).Add(
			cell(2, tx.Date.String(), align.Left, nil),
			cell(1, kindLabel(tx.Kind), align.Left, nil),
			cell(4, detail(tx), align.Left, nil),
			cell(2, amountOrDash(f, tx.AmountIn), align.Right, nil),
			cell(1, amountOrDash(f, tx.AmountOut), align.Right, nil),
			cell(2, f.Format(e.Balance), align.Right, balanceColor(e)),
		))
	}
	return rows
}

var inventoryColumns = []column{
	{"Ítem", 3, align.Left},
	{"Código", 2, align.Left},
	{"Entradas", 1, align.Right},
	{"Salidas", 1, align.Right},
	{"Stock", 1, align.Right},
	{"Precio", 2, align.Right},
	{"Valor", 2, align.Right},
}

func inventoryHeaderRow() core.Row { return tableHeader(inventoryColumns) }

// inventoryRows: el stock se colorea según su estado.
func inventoryRows(items []inventory.Row, f currency.Formatter) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, r := range items {
		rows = append(rows, row.New(7).Add(
			cell(3, r.Item, align.Left, nil),
			cell(2, nonEmpty(r.Barcode, "—"), align.Left, colorGray),
			cell(1, r.TotalIncoming.String(), align.Right, nil),
			cell(1, r.TotalOutgoing.String(), align.Right, nil),
			cell(1, r.CurrentStock.String(), align.Right, statusColor(r.Status)),
			cell(2, f.Format(r.UnitPrice), align.Right, nil),
			cell(2, f.Format(r.TotalValue), align.Right, nil),
		))
	}
	return rows
}

func topValueRows(items []inventory.Row, f currency.Formatter) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for i, r := range items {
		rows = append(rows, row.New(6).Add(
			cell(1, strconv.Itoa(i+1)+".", align.Right, colorGray),
			cell(7, r.Item, align.Left, nil),
			cell(4, f.Format(r.TotalValue), align.Right, nil),
		))
	}
	return rows
}

// totalsRow: pares etiqueta/valor alineados a la derecha.
func totalsRow(pairs [][2]string) core.Row {
	labels := make([]core.Component, 0, len(pairs))
	values := make([]core.Component, 0, len(pairs))
	for i, p := range pairs {
		top := float64(i * 6)
		labels = append(labels, text.New(p[0], props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		}))
		values = append(values, text.New(p[1], props.Text{
			Size: 9, Align: align.Right, Right: 1, Top: top,
		}))
	}
	return row.New(float64(len(pairs)*6+2)).Add(
		col.New(6),
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
	)
}

const labelsPerRow = 3

// labelRows: grilla de etiquetas; cada una con nombre, precio y código de barras.
func labelRows(items []entity.Item, f currency.Formatter) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(10).Add(col.New(12).Add(
			text.New("Sin ítems registrados.", props.Text{Size: 9, Align: align.Center, Top: 3, Color: colorGray}),
		))}
	}
	var rows []core.Row
	for start := 0; start < len(items); start += labelsPerRow {
		end := min(start+labelsPerRow, len(items))
		cols := make([]core.Col, 0, labelsPerRow)
		for _, it := range items[start:end] {
			cols = append(cols, col.New(12/labelsPerRow).Add(
				text.New(it.Name, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 1}),
				text.New(f.Format(it.UnitPrice), props.Text{Size: 8, Align: align.Center, Top: 6, Color: colorGray}),
			))
		}
		rows = append(rows, row.New(12).Add(cols...))

		bars := make([]core.Col, 0, labelsPerRow)
		for _, it := range items[start:end] {
			bars = append(bars, col.New(12/labelsPerRow).Add(
				code.NewBar(it.Barcode, props.Barcode{Percent: 70, Center: true}),
			))
		}
		rows = append(rows, row.New(18).Add(bars...))

		digits := make([]core.Col, 0, labelsPerRow)
		for _, it := range items[start:end] {
			digits = append(digits, col.New(12/labelsPerRow).Add(
				text.New(it.Barcode, props.Text{Size: 7, Align: align.Center, Top: 1}),
			))
		}
		rows = append(rows, row.New(8).Add(digits...))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func kindLabel(k entity.Kind) string {
	switch k {
	case entity.KindIncoming:
		return "Entrada"
	case entity.KindSalePiece:
		return "Venta"
	case entity.KindSaleRep:
		return "Repr."
	case entity.KindExpense:
		return "Gasto"
	}
	return string(k)
}

func detail(tx entity.Transaction) string {
	s := tx.Item
	if tx.Counterparty != "" {
		if s != "" {
			s += " · "
		}
		s += tx.Counterparty
	}
	if tx.Description != "" {
		if s != "" {
			s += " · "
		}
		s += tx.Description
	}
	return nonEmpty(s, "—")
}

func amountOrDash(f currency.Formatter, v decimal.Decimal) string {
	if v.IsZero() {
		return "—"
	}
	return f.Format(v)
}

func balanceColor(e ledger.Entry) *props.Color {
	if e.Balance.IsNegative() {
		return colorCritical
	}
	return nil
}

func statusColor(s inventory.Status) *props.Color {
	switch s {
	case inventory.StatusCritical:
		return colorCritical
	case inventory.StatusLow:
		return colorLow
	}
	return nil
}
