package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// execQuerier responde a Exec con un tag y error fijos y guarda el último SQL.
type execQuerier struct {
	tag     pgconn.CommandTag
	err     error
	lastSQL string
	args    []any
}

func (q *execQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.lastSQL, q.args = sql, args
	return q.tag, q.err
}

func (q *execQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no usado")
}

func (q *execQuerier) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(errors.New(`ERROR: duplicate key (SQLSTATE 23505)`)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestItemRepo_Save_Duplicado(t *testing.T) {
	q := &execQuerier{err: &pgconn.PgError{Code: "23505"}}
	err := NewItemRepository(q).Save(context.Background(), entity.Item{Barcode: "1111111111111", Name: "Crema", UnitPrice: decimal.NewFromInt(10)})

	var dup *domain.DuplicateBarcodeError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "1111111111111", dup.Barcode)
	assert.Contains(t, q.lastSQL, "INSERT INTO ledger_items")
}

func TestTransactionRepo_Remove_NoEncontrada(t *testing.T) {
	q := &execQuerier{tag: pgconn.NewCommandTag("DELETE 0")}
	err := NewTransactionRepository(q).Remove(context.Background(), "t-9")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	q.tag = pgconn.NewCommandTag("DELETE 1")
	assert.NoError(t, NewTransactionRepository(q).Remove(context.Background(), "t-9"))
}

func TestTransactionRepo_Append_Argumentos(t *testing.T) {
	q := &execQuerier{tag: pgconn.NewCommandTag("INSERT 0 1")}
	tx := entity.Transaction{ID: "t-1", Seq: 7, Date: entity.NewDate(2024, 6, 2), Kind: entity.KindSaleRep,
		Item: "Crema", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(10), AmountOut: decimal.NewFromInt(30)}
	require.NoError(t, NewTransactionRepository(q).Append(context.Background(), tx))

	require.Len(t, q.args, 13)
	assert.Equal(t, int64(7), q.args[1])
	assert.Equal(t, "sale_rep", q.args[3])

	q.err = errors.New("conexión perdida")
	err := NewTransactionRepository(q).Append(context.Background(), tx)
	assert.ErrorContains(t, err, "insert transaction")
}
