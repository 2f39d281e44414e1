package report

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// RepRow desempeño de un representante sobre sus ventas sale_rep.
type RepRow struct {
	RepName       string
	TotalSales    int
	TotalQuantity decimal.Decimal
	TotalRevenue  decimal.Decimal
	AverageSale   decimal.Decimal // TotalRevenue / TotalSales
}

// RepresentativeSummary agrupa las ventas por representante (contraparte). Solo aparecen
// representantes con ventas; orden por ingreso descendente y, a igualdad, por nombre.
func RepresentativeSummary(txs []entity.Transaction) []RepRow {
	byRep := make(map[string]*RepRow)
	for _, tx := range txs {
		if tx.Kind != entity.KindSaleRep {
			continue
		}
		name := strings.TrimSpace(tx.Counterparty)
		r, ok := byRep[name]
		if !ok {
			r = &RepRow{RepName: name, TotalQuantity: decimal.Zero, TotalRevenue: decimal.Zero}
			byRep[name] = r
		}
		r.TotalSales++
		r.TotalQuantity = r.TotalQuantity.Add(tx.Quantity)
		r.TotalRevenue = r.TotalRevenue.Add(tx.AmountOut)
	}

	rows := make([]RepRow, 0, len(byRep))
	for _, r := range byRep {
		r.AverageSale = r.TotalRevenue.Div(decimal.NewFromInt(int64(r.TotalSales))).Round(2)
		rows = append(rows, *r)
	}
	slices.SortFunc(rows, func(a, b RepRow) int {
		if c := b.TotalRevenue.Cmp(a.TotalRevenue); c != 0 {
			return c
		}
		return cmp.Compare(a.RepName, b.RepName)
	})
	return rows
}

// RepTotal monto total vendido por todos los representantes.
func RepTotal(rows []RepRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.TotalRevenue)
	}
	return total
}
