// Package report arma las vistas de consulta: estado de cuenta filtrado, totales,
// resumen por representante y cortes del balance de almacén.
package report

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/ledger"
)

// Filter criterios conjuntivos del estado de cuenta. Los campos vacíos no filtran.
type Filter struct {
	Kind       entity.Kind
	DateFrom   entity.Date
	DateTo     entity.Date
	SearchText string // subcadena de la descripción, sin distinguir mayúsculas
}

// Validate tipo conocido y rango de fechas coherente.
func (f Filter) Validate() error {
	if f.Kind != "" && !f.Kind.Valid() {
		return domain.NewValidationError("kind", "desconocido: "+string(f.Kind))
	}
	if !f.DateFrom.IsZero() && !f.DateTo.IsZero() && f.DateFrom.After(f.DateTo) {
		return domain.NewValidationError("date_from", "posterior a date_to")
	}
	return nil
}

// QueryStatement entradas que pasan el filtro, con los saldos calculados sobre el log completo.
func QueryStatement(entries []ledger.Entry, f Filter) []ledger.Entry {
	m := newMatcher(f)
	out := make([]ledger.Entry, 0, len(entries))
	for _, e := range entries {
		if m.match(e.Transaction) {
			out = append(out, e)
		}
	}
	return out
}

// Match indica si la transacción pasa el filtro.
func (f Filter) Match(tx entity.Transaction) bool { return newMatcher(f).match(tx) }

type matcher struct {
	f      Filter
	caser  cases.Caser
	needle string
}

// cases.Caser guarda estado: uno por consulta.
func newMatcher(f Filter) *matcher {
	m := &matcher{f: f, caser: cases.Fold()}
	if q := strings.TrimSpace(f.SearchText); q != "" {
		m.needle = m.caser.String(q)
	}
	return m
}

func (m *matcher) match(tx entity.Transaction) bool {
	if m.f.Kind != "" && tx.Kind != m.f.Kind {
		return false
	}
	if !m.f.DateFrom.IsZero() && tx.Date.Before(m.f.DateFrom) {
		return false
	}
	if !m.f.DateTo.IsZero() && tx.Date.After(m.f.DateTo) {
		return false
	}
	if m.needle == "" {
		return true
	}
	return m.contains(tx.Description)
}

func (m *matcher) contains(s string) bool {
	return s != "" && strings.Contains(m.caser.String(s), m.needle)
}

// Totals resumen de un conjunto de entradas del estado de cuenta.
type Totals struct {
	TotalIn  decimal.Decimal
	TotalOut decimal.Decimal
	Net      decimal.Decimal
	Balance  decimal.Decimal // saldo corrido tras la última entrada del conjunto
	Count    int
}

// Summarize suma entradas y salidas del conjunto filtrado.
func Summarize(entries []ledger.Entry) Totals {
	t := Totals{TotalIn: decimal.Zero, TotalOut: decimal.Zero, Balance: ledger.Final(entries), Count: len(entries)}
	for _, e := range entries {
		t.TotalIn = t.TotalIn.Add(e.Transaction.AmountIn)
		t.TotalOut = t.TotalOut.Add(e.Transaction.AmountOut)
	}
	t.Net = t.TotalIn.Sub(t.TotalOut)
	return t
}
