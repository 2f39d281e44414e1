package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

var (
	_ repository.TransactionRepository = (*TransactionRepo)(nil)
	_ repository.ItemRepository        = (*ItemRepo)(nil)
)

// TransactionRepo log de transacciones sobre GORM (usable con la base o una tx).
type TransactionRepo struct {
	db *gorm.DB
}

// NewTransactionRepository construye el adaptador del log.
func NewTransactionRepository(db *gorm.DB) *TransactionRepo { return &TransactionRepo{db: db} }

func (r *TransactionRepo) Append(ctx context.Context, tx entity.Transaction) error {
	m := toTransactionModel(tx)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transacción %s", domain.ErrDuplicate, tx.ID)
		}
		return fmt.Errorf("guardar transacción: %w", err)
	}
	return nil
}

func (r *TransactionRepo) Remove(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&transactionModel{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("borrar transacción: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Resource: "transacción", ID: id}
	}
	return nil
}

// List log completo ordenado por secuencia.
func (r *TransactionRepo) List(ctx context.Context) ([]entity.Transaction, error) {
	var rows []transactionModel
	if err := r.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listar transacciones: %w", err)
	}
	out := make([]entity.Transaction, 0, len(rows))
	for _, m := range rows {
		tx, err := m.toEntity()
		if err != nil {
			return nil, fmt.Errorf("transacción %s: %w", m.ID, err)
		}
		out = append(out, tx)
	}
	return out, nil
}

// ItemRepo catálogo de códigos de barras sobre GORM.
type ItemRepo struct {
	db *gorm.DB
}

// NewItemRepository construye el adaptador del catálogo.
func NewItemRepository(db *gorm.DB) *ItemRepo { return &ItemRepo{db: db} }

func (r *ItemRepo) Save(ctx context.Context, item entity.Item) error {
	m := toItemModel(item)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateBarcodeError{Barcode: item.Barcode}
		}
		return fmt.Errorf("guardar ítem: %w", err)
	}
	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, barcode string) error {
	res := r.db.WithContext(ctx).Delete(&itemModel{}, "barcode = ?", barcode)
	if res.Error != nil {
		return fmt.Errorf("borrar ítem: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Resource: "código de barras", ID: barcode}
	}
	return nil
}

// List catálogo en orden de registro.
func (r *ItemRepo) List(ctx context.Context) ([]entity.Item, error) {
	var rows []itemModel
	if err := r.db.WithContext(ctx).Order("rowid").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listar ítems: %w", err)
	}
	out := make([]entity.Item, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
