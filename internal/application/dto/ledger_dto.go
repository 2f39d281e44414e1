package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// CreateTransactionRequest body para POST /api/transactions.
// item acepta el nombre del ítem o un código de barras registrado.
type CreateTransactionRequest struct {
	Date         entity.Date     `json:"date" validate:"required"`
	Kind         string          `json:"kind" validate:"required,oneof=incoming sale_piece sale_rep expense"`
	ItemRef      string          `json:"item" validate:"required_unless=Kind expense,max=200"`
	Quantity     decimal.Decimal `json:"quantity" validate:"gte=0"`
	UnitPrice    decimal.Decimal `json:"unit_price" validate:"gte=0"`
	Amount       decimal.Decimal `json:"amount" validate:"gte=0"`
	Description  string          `json:"description" validate:"max=500"`
	Counterparty string          `json:"counterparty" validate:"required_unless=Kind expense,max=200"`
}

// TransactionResponse transacción registrada.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Seq          uint64          `json:"seq"`
	Date         entity.Date     `json:"date"`
	Kind         string          `json:"kind"`
	Item         string          `json:"item,omitempty"`
	Barcode      string          `json:"barcode,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	AmountIn     decimal.Decimal `json:"amount_in"`
	AmountOut    decimal.Decimal `json:"amount_out"`
	Description  string          `json:"description,omitempty"`
	Counterparty string          `json:"counterparty,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// TransactionListResponse página del log en orden de agregado. Page.Total cuenta todas las que
// pasan el filtro de tipo.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// StatementEntryResponse fila del estado de cuenta con el saldo corrido tras ella.
type StatementEntryResponse struct {
	TransactionResponse
	Balance decimal.Decimal `json:"balance"`
}

// StatementTotalsResponse resumen del conjunto filtrado.
type StatementTotalsResponse struct {
	TotalIn  decimal.Decimal `json:"total_in"`
	TotalOut decimal.Decimal `json:"total_out"`
	Net      decimal.Decimal `json:"net"`
	Balance  decimal.Decimal `json:"balance"`
	Count    int             `json:"count"`
}

// StatementResponse GET /api/statement.
type StatementResponse struct {
	Entries []StatementEntryResponse `json:"entries"`
	Totals  StatementTotalsResponse  `json:"totals"`
}

// InventoryRowResponse fila del balance de almacén.
type InventoryRowResponse struct {
	Item          string          `json:"item"`
	Barcode       string          `json:"barcode,omitempty"`
	Category      string          `json:"category,omitempty"`
	TotalIncoming decimal.Decimal `json:"total_incoming"`
	TotalOutgoing decimal.Decimal `json:"total_outgoing"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	AverageCost   decimal.Decimal `json:"average_cost"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Status        string          `json:"status"`
}

// InventoryResponse GET /api/inventory.
type InventoryResponse struct {
	Items      []InventoryRowResponse `json:"items"`
	TotalValue decimal.Decimal        `json:"total_value"`
	LowStock   []InventoryRowResponse `json:"low_stock"`
	TopValue   []InventoryRowResponse `json:"top_value"`
}

// StockResponse GET /api/inventory/:item/stock.
type StockResponse struct {
	Item   string          `json:"item"`
	Stock  decimal.Decimal `json:"stock"`
	Status string          `json:"status"`
}

// RegisterBarcodeRequest body para POST /api/barcodes. barcode vacío genera uno.
type RegisterBarcodeRequest struct {
	Barcode   string          `json:"barcode" validate:"omitempty,numeric,max=32"`
	Name      string          `json:"name" validate:"required,max=200"`
	Category  string          `json:"category" validate:"max=100"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gt=0"`
}

// ItemResponse entrada del catálogo.
type ItemResponse struct {
	Barcode   string          `json:"barcode"`
	Name      string          `json:"name"`
	Category  string          `json:"category,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
}

// ItemListResponse catálogo en orden de registro.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// RepRowResponse desempeño de un representante.
type RepRowResponse struct {
	RepName       string          `json:"rep_name"`
	TotalSales    int             `json:"total_sales"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AverageSale   decimal.Decimal `json:"average_sale"`
}

// RepSummaryResponse GET /api/representatives/summary.
type RepSummaryResponse struct {
	Representatives []RepRowResponse `json:"representatives"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
}

// InsufficientStockResponse cuerpo de 409 INSUFFICIENT_STOCK.
type InsufficientStockResponse struct {
	ErrorResponse
	Item      string          `json:"item"`
	Requested decimal.Decimal `json:"requested"`
	Available decimal.Decimal `json:"available"`
}
