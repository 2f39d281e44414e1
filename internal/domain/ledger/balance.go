// Package ledger calcula el saldo de caja corrido en orden cronológico.
package ledger

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// Entry transacción con el saldo inmediatamente posterior a ella.
type Entry struct {
	Transaction entity.Transaction
	Balance     decimal.Decimal
}

// Chronological copia de txs ordenada por (fecha asc, secuencia asc).
func Chronological(txs []entity.Transaction) []entity.Transaction {
	ordered := slices.Clone(txs)
	slices.SortStableFunc(ordered, func(a, b entity.Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Seq, b.Seq)
	})
	return ordered
}

// Recompute ordena el log completo y acumula balance_i = balance_{i-1} + in_i − out_i, desde 0.
func Recompute(txs []entity.Transaction) []Entry {
	ordered := Chronological(txs)
	entries := make([]Entry, len(ordered))
	balance := decimal.Zero
	for i, tx := range ordered {
		balance = balance.Add(tx.AmountIn).Sub(tx.AmountOut)
		entries[i] = Entry{Transaction: tx, Balance: balance}
	}
	return entries
}

// Final saldo después de la última entrada (0 si no hay entradas).
func Final(entries []Entry) decimal.Decimal {
	if len(entries) == 0 {
		return decimal.Zero
	}
	return entries[len(entries)-1].Balance
}
