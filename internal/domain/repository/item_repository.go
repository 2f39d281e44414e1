package repository

import (
	"context"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// ItemRepository puerto de persistencia del catálogo de códigos de barras.
// Save con un código existente devuelve *domain.DuplicateBarcodeError.
type ItemRepository interface {
	Save(ctx context.Context, item entity.Item) error
	Delete(ctx context.Context, barcode string) error
	List(ctx context.Context) ([]entity.Item, error)
}
