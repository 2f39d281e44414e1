package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo catálogo de códigos de barras sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Save inserta el ítem. Un código repetido devuelve *domain.DuplicateBarcodeError.
func (r *ItemRepo) Save(ctx context.Context, item entity.Item) error {
	query := `
		INSERT INTO ledger_items (barcode, name, category, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, item.Barcode, item.Name, item.Category, item.UnitPrice, item.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateBarcodeError{Barcode: item.Barcode}
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Delete borra el ítem por código.
func (r *ItemRepo) Delete(ctx context.Context, barcode string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM ledger_items WHERE barcode = $1`, barcode)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if noRowsAffected(tag) {
		return &domain.NotFoundError{Resource: "código de barras", ID: barcode}
	}
	return nil
}

// List catálogo en orden de registro.
func (r *ItemRepo) List(ctx context.Context) ([]entity.Item, error) {
	rows, err := r.q.Query(ctx, `
		SELECT barcode, name, category, unit_price, created_at
		FROM ledger_items ORDER BY created_at, barcode`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.Barcode, &it.Name, &it.Category, &it.UnitPrice, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return list, nil
}
