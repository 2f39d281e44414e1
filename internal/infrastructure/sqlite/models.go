package sqlite

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// transactionModel fila de la tabla ledger_transactions. La fecha se guarda como texto ISO,
// los montos como texto decimal exacto.
type transactionModel struct {
	ID           string          `gorm:"primaryKey;size:36"`
	Seq          uint64          `gorm:"uniqueIndex;not null"`
	Date         string          `gorm:"size:10;index;not null"`
	Kind         string          `gorm:"size:16;index;not null"`
	Item         string          `gorm:"index"`
	Barcode      string          `gorm:"size:32"`
	Quantity     decimal.Decimal `gorm:"type:text;not null"`
	UnitPrice    decimal.Decimal `gorm:"type:text;not null"`
	AmountIn     decimal.Decimal `gorm:"type:text;not null"`
	AmountOut    decimal.Decimal `gorm:"type:text;not null"`
	Description  string
	Counterparty string
	CreatedAt    time.Time
}

func (transactionModel) TableName() string { return "ledger_transactions" }

func toTransactionModel(tx entity.Transaction) transactionModel {
	return transactionModel{
		ID: tx.ID, Seq: tx.Seq, Date: tx.Date.String(), Kind: string(tx.Kind),
		Item: tx.Item, Barcode: tx.Barcode,
		Quantity: tx.Quantity, UnitPrice: tx.UnitPrice, AmountIn: tx.AmountIn, AmountOut: tx.AmountOut,
		Description: tx.Description, Counterparty: tx.Counterparty, CreatedAt: tx.CreatedAt,
	}
}

func (m transactionModel) toEntity() (entity.Transaction, error) {
	date, err := entity.ParseDate(m.Date)
	if err != nil {
		return entity.Transaction{}, err
	}
	return entity.Transaction{
		ID: m.ID, Seq: m.Seq, Date: date, Kind: entity.Kind(m.Kind),
		Item: m.Item, Barcode: m.Barcode,
		Quantity: m.Quantity, UnitPrice: m.UnitPrice, AmountIn: m.AmountIn, AmountOut: m.AmountOut,
		Description: m.Description, Counterparty: m.Counterparty, CreatedAt: m.CreatedAt,
	}, nil
}

// itemModel fila de la tabla ledger_items. El rowid implícito conserva el orden de registro.
type itemModel struct {
	Barcode   string `gorm:"primaryKey;size:32"`
	Name      string `gorm:"not null;index"`
	Category  string
	UnitPrice decimal.Decimal `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (itemModel) TableName() string { return "ledger_items" }

func toItemModel(it entity.Item) itemModel {
	return itemModel{Barcode: it.Barcode, Name: it.Name, Category: it.Category, UnitPrice: it.UnitPrice, CreatedAt: it.CreatedAt}
}

func (m itemModel) toEntity() entity.Item {
	return entity.Item{Barcode: m.Barcode, Name: m.Name, Category: m.Category, UnitPrice: m.UnitPrice, CreatedAt: m.CreatedAt}
}
