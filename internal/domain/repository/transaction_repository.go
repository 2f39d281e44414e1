package repository

import (
	"context"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// TransactionRepository puerto de persistencia del log de transacciones.
// List devuelve el log completo ordenado por secuencia.
type TransactionRepository interface {
	Append(ctx context.Context, tx entity.Transaction) error
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.Transaction, error)
}
