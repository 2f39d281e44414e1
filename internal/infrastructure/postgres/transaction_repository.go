package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador del log. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Append persiste una transacción ya validada por el motor.
func (r *TransactionRepo) Append(ctx context.Context, tx entity.Transaction) error {
	query := `
		INSERT INTO ledger_transactions (id, seq, date, kind, item, barcode, quantity, unit_price,
			amount_in, amount_out, description, counterparty, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, int64(tx.Seq), tx.Date.Time(), string(tx.Kind), tx.Item, tx.Barcode,
		tx.Quantity, tx.UnitPrice, tx.AmountIn, tx.AmountOut, tx.Description, tx.Counterparty, tx.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transacción %s", domain.ErrDuplicate, tx.ID)
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// Remove borra la transacción por id.
func (r *TransactionRepo) Remove(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM ledger_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if noRowsAffected(tag) {
		return &domain.NotFoundError{Resource: "transacción", ID: id}
	}
	return nil
}

// List log completo ordenado por secuencia.
func (r *TransactionRepo) List(ctx context.Context) ([]entity.Transaction, error) {
	query := `
		SELECT id, seq, date, kind, item, barcode, quantity, unit_price, amount_in, amount_out,
			description, counterparty, created_at
		FROM ledger_transactions ORDER BY seq`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []entity.Transaction
	for rows.Next() {
		var (
			tx   entity.Transaction
			seq  int64
			date time.Time
			kind string
		)
		if err := rows.Scan(&tx.ID, &seq, &date, &kind, &tx.Item, &tx.Barcode,
			&tx.Quantity, &tx.UnitPrice, &tx.AmountIn, &tx.AmountOut,
			&tx.Description, &tx.Counterparty, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Seq = uint64(seq)
		tx.Date = entity.DateOf(date)
		tx.Kind = entity.Kind(kind)
		list = append(list, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return list, nil
}
