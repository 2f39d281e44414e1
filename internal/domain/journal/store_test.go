package journal_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/journal"
)

var junio1 = entity.NewDate(2024, time.June, 1)

func incoming(item string, qty, price int64) journal.Candidate {
	return journal.Candidate{
		Date: junio1, Kind: entity.KindIncoming, ItemRef: item,
		Quantity: decimal.NewFromInt(qty), UnitPrice: decimal.NewFromInt(price),
		Counterparty: "Proveedores ABC", Description: "compra",
	}
}

func TestAppend_EnrutaMontosPorTipo(t *testing.T) {
	s := journal.NewStore()

	in, err := s.Append(incoming("A", 100, 10), nil)
	require.NoError(t, err)
	assert.True(t, in.AmountIn.Equal(decimal.NewFromInt(1000)))
	assert.True(t, in.AmountOut.IsZero())

	sale := incoming("A", 30, 10)
	sale.Kind = entity.KindSalePiece
	out, err := s.Append(sale, nil)
	require.NoError(t, err)
	assert.True(t, out.AmountIn.IsZero())
	assert.True(t, out.AmountOut.Equal(decimal.NewFromInt(300)))

	exp, err := s.Append(journal.Candidate{
		Date: junio1, Kind: entity.KindExpense, Amount: decimal.NewFromInt(150), Description: "oficina",
	}, nil)
	require.NoError(t, err)
	assert.True(t, exp.AmountOut.Equal(decimal.NewFromInt(150)))
	assert.Empty(t, exp.Item)

	assert.Equal(t, []uint64{1, 2, 3}, []uint64{in.Seq, out.Seq, exp.Seq})
	assert.NotEqual(t, in.ID, out.ID)
}

func TestAppend_GastoPorCantidadYPrecio(t *testing.T) {
	s := journal.NewStore()
	exp, err := s.Append(journal.Candidate{
		Date: junio1, Kind: entity.KindExpense, Description: "transporte",
		Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(42.5),
	}, nil)
	require.NoError(t, err)
	assert.True(t, exp.AmountOut.Equal(decimal.NewFromInt(85)))
}

func TestValidate_Rechazos(t *testing.T) {
	base := incoming("A", 1, 1)
	cases := []struct {
		name  string
		mod   func(c *journal.Candidate)
		field string
	}{
		{"tipo desconocido", func(c *journal.Candidate) { c.Kind = "refund" }, "kind"},
		{"sin fecha", func(c *journal.Candidate) { c.Date = entity.Date{} }, "date"},
		{"sin ítem", func(c *journal.Candidate) { c.ItemRef = "  " }, "item"},
		{"sin contraparte", func(c *journal.Candidate) { c.Counterparty = "" }, "counterparty"},
		{"cantidad cero", func(c *journal.Candidate) { c.Quantity = decimal.Zero }, "quantity"},
		{"cantidad negativa", func(c *journal.Candidate) { c.Quantity = decimal.NewFromInt(-3) }, "quantity"},
		{"precio cero", func(c *journal.Candidate) { c.UnitPrice = decimal.Zero }, "unit_price"},
		{"gasto sin monto", func(c *journal.Candidate) {
			*c = journal.Candidate{Date: junio1, Kind: entity.KindExpense, Description: "x"}
		}, "amount"},
		{"gasto negativo", func(c *journal.Candidate) {
			*c = journal.Candidate{Date: junio1, Kind: entity.KindExpense, Description: "x", Amount: decimal.NewFromInt(-5)}
		}, "amount"},
		{"gasto sin descripción", func(c *journal.Candidate) {
			*c = journal.Candidate{Date: junio1, Kind: entity.KindExpense, Amount: decimal.NewFromInt(5)}
		}, "description"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := journal.NewStore()
			c := base
			tc.mod(&c)
			_, err := s.Append(c, nil)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 0, s.Len(), "una candidata rechazada no toca el registro")
		})
	}
}

func TestPrepare_NoConsumeSecuencia(t *testing.T) {
	s := journal.NewStore()
	a, err := s.Prepare(incoming("A", 1, 1), nil)
	require.NoError(t, err)
	b, err := s.Prepare(incoming("A", 1, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, a.Seq, b.Seq)
	assert.Equal(t, 0, s.Len())
}

func TestRemove(t *testing.T) {
	s := journal.NewStore()
	a, _ := s.Append(incoming("A", 1, 1), nil)
	b, _ := s.Append(incoming("B", 2, 1), nil)

	require.NoError(t, s.Remove(a.ID))
	_, ok := s.Get(a.ID)
	assert.False(t, ok)

	got, ok := s.Get(b.ID)
	require.True(t, ok)
	assert.Equal(t, "B", got.Item)

	assert.ErrorIs(t, s.Remove(a.ID), domain.ErrNotFound)

	c, _ := s.Append(incoming("C", 1, 1), nil)
	assert.Equal(t, uint64(3), c.Seq, "las secuencias no se reutilizan")
}

func TestList_OrdenDeAgregado(t *testing.T) {
	s := journal.NewStore()
	late := incoming("A", 1, 1)
	late.Date = entity.NewDate(2024, time.June, 9)
	_, _ = s.Append(late, nil)
	_, _ = s.Append(incoming("B", 1, 1), nil)

	all := s.List(nil)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Item, "List no ordena por fecha")

	onlyB := s.List(func(tx entity.Transaction) bool { return tx.Item == "B" })
	require.Len(t, onlyB, 1)
}

func TestRestore_ContinuaSecuencia(t *testing.T) {
	s := journal.NewStore()
	loaded := []entity.Transaction{
		{ID: "b", Seq: 7, Date: junio1, Kind: entity.KindExpense, AmountOut: decimal.NewFromInt(1)},
		{ID: "a", Seq: 3, Date: junio1, Kind: entity.KindIncoming, Item: "A",
			Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1), AmountIn: decimal.NewFromInt(1)},
	}
	require.NoError(t, s.Restore(loaded))
	assert.Equal(t, "a", s.All()[0].ID)

	next, err := s.Append(incoming("A", 1, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), next.Seq)
}

func TestRestore_RechazaMontosInvalidos(t *testing.T) {
	s := journal.NewStore()
	bad := []entity.Transaction{{ID: "x", Seq: 1, Date: junio1, Kind: entity.KindExpense}}
	assert.ErrorIs(t, s.Restore(bad), domain.ErrInvalidInput)
	assert.Equal(t, 0, s.Len())
}
