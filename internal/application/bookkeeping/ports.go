package bookkeeping

import (
	"context"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/ledger"
	"github.com/jhoicas/ledger-api/internal/domain/report"
	"github.com/jhoicas/ledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del journal, pasando repositorios
// atados a esa tx. Si fn devuelve error se hace Rollback y el motor no muta su estado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		itemRepo repository.ItemRepository,
	) error) error
}

// PDFGenerator salida impresa de las vistas del motor.
type PDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, meta ReportMeta, entries []ledger.Entry, totals report.Totals) ([]byte, error)
	GenerateInventoryPDF(ctx context.Context, meta ReportMeta, inv InventoryReport) ([]byte, error)
	GenerateLabelsPDF(ctx context.Context, meta ReportMeta, items []entity.Item) ([]byte, error)
}

// ReportMeta encabezado común de los documentos impresos.
type ReportMeta struct {
	Title    string
	Company  string
	Currency string
	Subtitle string // ej. rango de fechas o filtro aplicado
}
