package bookkeeping

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/report"
)

// ExportUseCase genera los documentos impresos: estado de cuenta, balance de almacén y
// etiquetas de códigos de barras.
type ExportUseCase struct {
	engine    *Engine
	generator PDFGenerator
	company   string
	currency  string
}

// NewExportUseCase construye el caso de uso inyectando el generador.
func NewExportUseCase(engine *Engine, generator PDFGenerator, company, currency string) *ExportUseCase {
	return &ExportUseCase{engine: engine, generator: generator, company: company, currency: currency}
}

// StatementPDF estado de cuenta filtrado con sus totales.
func (uc *ExportUseCase) StatementPDF(ctx context.Context, f report.Filter) (pdfBytes []byte, filename string, err error) {
	entries, err := uc.engine.QueryStatement(f)
	if err != nil {
		return nil, "", err
	}
	meta := uc.meta("Estado de cuenta", statementSubtitle(f))
	pdfBytes, err = uc.generator.GenerateStatementPDF(ctx, meta, entries, report.Summarize(entries))
	if err != nil {
		return nil, "", fmt.Errorf("pdf: estado de cuenta: %w", err)
	}
	return pdfBytes, "estado_de_cuenta.pdf", nil
}

// InventoryPDF balance de almacén filtrado por texto.
func (uc *ExportUseCase) InventoryPDF(ctx context.Context, searchText string) ([]byte, string, error) {
	inv := uc.engine.Inventory(searchText)
	subtitle := ""
	if q := strings.TrimSpace(searchText); q != "" {
		subtitle = "Búsqueda: " + q
	}
	pdfBytes, err := uc.generator.GenerateInventoryPDF(ctx, uc.meta("Balance de almacén", subtitle), inv)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: almacén: %w", err)
	}
	return pdfBytes, "balance_almacen.pdf", nil
}

// LabelsPDF etiquetas de los códigos indicados; sin códigos imprime todo el catálogo.
func (uc *ExportUseCase) LabelsPDF(ctx context.Context, barcodes []string) ([]byte, string, error) {
	var items []entity.Item
	if len(barcodes) == 0 {
		items = uc.engine.ListItems()
	} else {
		items = make([]entity.Item, 0, len(barcodes))
		for _, bc := range barcodes {
			it, err := uc.engine.LookupBarcode(bc)
			if err != nil {
				return nil, "", err
			}
			items = append(items, it)
		}
	}
	pdfBytes, err := uc.generator.GenerateLabelsPDF(ctx, uc.meta("Etiquetas", ""), items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: etiquetas: %w", err)
	}
	return pdfBytes, "etiquetas.pdf", nil
}

func (uc *ExportUseCase) meta(title, subtitle string) ReportMeta {
	return ReportMeta{Title: title, Company: uc.company, Currency: uc.currency, Subtitle: subtitle}
}

func statementSubtitle(f report.Filter) string {
	var parts []string
	if f.Kind != "" {
		parts = append(parts, "Tipo: "+string(f.Kind))
	}
	switch {
	case !f.DateFrom.IsZero() && !f.DateTo.IsZero():
		parts = append(parts, fmt.Sprintf("Del %s al %s", f.DateFrom, f.DateTo))
	case !f.DateFrom.IsZero():
		parts = append(parts, "Desde "+f.DateFrom.String())
	case !f.DateTo.IsZero():
		parts = append(parts, "Hasta "+f.DateTo.String())
	}
	if q := strings.TrimSpace(f.SearchText); q != "" {
		parts = append(parts, "Búsqueda: "+q)
	}
	return strings.Join(parts, " · ")
}
