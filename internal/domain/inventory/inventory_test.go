package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/inventory"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func tx(kind entity.Kind, item string, qty, price int64) entity.Transaction {
	t := entity.Transaction{
		Date: entity.NewDate(2024, time.June, 1), Kind: kind, Item: item,
		Quantity: d(qty), UnitPrice: d(price),
	}
	if kind == entity.KindIncoming {
		t.AmountIn = d(qty * price)
	} else {
		t.AmountOut = d(qty * price)
	}
	return t
}

func TestStockOf_EntradasMenosVentas(t *testing.T) {
	txs := []entity.Transaction{
		tx(entity.KindIncoming, "A", 100, 10),
		tx(entity.KindSalePiece, "A", 30, 10),
		tx(entity.KindSaleRep, "A", 5, 12),
		tx(entity.KindIncoming, "B", 7, 1),
		{Kind: entity.KindExpense, AmountOut: d(50)},
	}
	assert.True(t, inventory.StockOf(txs, "A").Equal(d(65)))
	assert.True(t, inventory.StockOf(txs, "B").Equal(d(7)))
	assert.True(t, inventory.StockOf(txs, "C").IsZero())
}

func TestThresholds_Classify(t *testing.T) {
	th := inventory.DefaultThresholds()
	cases := []struct {
		stock int64
		want  inventory.Status
	}{
		{0, inventory.StatusCritical},
		{10, inventory.StatusCritical},
		{11, inventory.StatusLow},
		{20, inventory.StatusLow},
		{21, inventory.StatusGood},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, th.Classify(d(tc.stock)), "stock %d", tc.stock)
	}

	custom := inventory.Thresholds{Critical: d(2), Low: d(5)}
	assert.Equal(t, inventory.StatusGood, custom.Classify(d(6)))
	assert.Equal(t, inventory.StatusCritical, custom.Classify(d(2)))
}

func TestThresholds_Validate(t *testing.T) {
	assert.NoError(t, inventory.DefaultThresholds().Validate())
	assert.ErrorIs(t, inventory.Thresholds{Critical: d(30), Low: d(20)}.Validate(), domain.ErrInvalidInput)
	assert.ErrorIs(t, inventory.Thresholds{Critical: d(-1), Low: d(20)}.Validate(), domain.ErrInvalidInput)
}

func TestSnapshot(t *testing.T) {
	items := []entity.Item{
		{Barcode: "1111111111111", Name: "A", Category: "productos", UnitPrice: d(10)},
		{Barcode: "2222222222222", Name: "Sin movimientos", UnitPrice: d(3)},
	}
	txs := []entity.Transaction{
		tx(entity.KindIncoming, "A", 100, 8),
		tx(entity.KindIncoming, "A", 100, 12),
		tx(entity.KindSalePiece, "A", 185, 15),
		tx(entity.KindIncoming, "Materia X", 50, 4),
	}

	rows := inventory.Snapshot(txs, items, inventory.DefaultThresholds())
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"A", "Materia X", "Sin movimientos"}, []string{rows[0].Item, rows[1].Item, rows[2].Item})

	a := rows[0]
	assert.Equal(t, "1111111111111", a.Barcode)
	assert.True(t, a.TotalIncoming.Equal(d(200)))
	assert.True(t, a.TotalOutgoing.Equal(d(185)))
	assert.True(t, a.CurrentStock.Equal(d(15)))
	assert.True(t, a.UnitPrice.Equal(d(10)), "precio de referencia del catálogo")
	assert.True(t, a.AverageCost.Equal(d(10)), "promedio ponderado de 8 y 12")
	assert.True(t, a.TotalValue.Equal(d(150)))
	assert.Equal(t, inventory.StatusLow, a.Status)

	x := rows[1]
	assert.True(t, x.UnitPrice.Equal(d(4)), "sin catálogo usa el último precio de entrada")
	assert.True(t, x.TotalValue.Equal(d(200)))
	assert.Equal(t, inventory.StatusGood, x.Status)

	empty := rows[2]
	assert.True(t, empty.CurrentStock.IsZero())
	assert.Equal(t, inventory.StatusCritical, empty.Status)
}

func TestCheckSale(t *testing.T) {
	txs := []entity.Transaction{tx(entity.KindIncoming, "A", 70, 10)}

	require.NoError(t, inventory.CheckSale(txs, "A", d(70)))

	err := inventory.CheckSale(txs, "A", d(80))
	var ise *domain.InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, "A", ise.Item)
	assert.True(t, ise.Available.Equal(d(70)))
	assert.True(t, ise.Requested.Equal(d(80)))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Error(t, inventory.CheckSale(txs, "desconocido", d(1)))
}

func TestCheckRemoval(t *testing.T) {
	first := tx(entity.KindIncoming, "A", 50, 10)
	second := tx(entity.KindIncoming, "A", 50, 10)
	sale := tx(entity.KindSalePiece, "A", 80, 10)
	txs := []entity.Transaction{first, second, sale}

	err := inventory.CheckRemoval(txs, first)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "quitar una entrada consumida deja stock negativo")

	assert.NoError(t, inventory.CheckRemoval(txs, sale), "quitar una venta solo aumenta el stock")
}

func TestWeightedCost(t *testing.T) {
	assert.True(t, inventory.WeightedCost(d(0), d(0), d(5), d(8)).Equal(d(8)))
	assert.True(t, inventory.WeightedCost(d(5), d(8), d(5), d(12)).Equal(d(10)))
	assert.True(t, inventory.WeightedCost(d(0), d(0), d(0), d(3)).IsZero())

	// 1 @ 10 y luego 2 @ 11: 32 / 3
	avg := inventory.WeightedCost(d(1), d(10), d(2), d(11))
	assert.Equal(t, "10.6667", avg.Round(4).String())
}
