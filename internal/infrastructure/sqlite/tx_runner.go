package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

var _ bookkeeping.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción GORM; db.Transaction hace Commit o Rollback.
type TxRunner struct {
	db *gorm.DB
}

// Run ejecuta fn con repos atados a la tx.
func (r *TxRunner) Run(ctx context.Context, fn func(
	txRepo repository.TransactionRepository,
	itemRepo repository.ItemRepository,
) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewTransactionRepository(tx), NewItemRepository(tx))
	})
}
