package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/report"
)

// StatementHandler estado de cuenta con saldo corrido.
type StatementHandler struct {
	engine *bookkeeping.Engine
	export *bookkeeping.ExportUseCase
}

// NewStatementHandler construye el handler.
func NewStatementHandler(engine *bookkeeping.Engine, export *bookkeeping.ExportUseCase) *StatementHandler {
	return &StatementHandler{engine: engine, export: export}
}

// Get godoc
// @Summary      Estado de cuenta
// @Description  Filtros conjuntivos. Los saldos de cada fila se calculan sobre el log completo.
// @Tags         statement
// @Produce      json
// @Param        kind       query  string  false  "Tipo de transacción"
// @Param        date_from  query  string  false  "Desde (YYYY-MM-DD, inclusive)"
// @Param        date_to    query  string  false  "Hasta (YYYY-MM-DD, inclusive)"
// @Param        q          query  string  false  "Texto en la descripción"
// @Success      200        {object}  dto.StatementResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/statement [get]
func (h *StatementHandler) Get(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	entries, err := h.engine.QueryStatement(f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromStatement(entries, report.Summarize(entries)))
}

// PDF godoc
// @Summary      Estado de cuenta en PDF
// @Tags         statement
// @Produce      application/pdf
// @Param        kind       query  string  false  "Tipo de transacción"
// @Param        date_from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        date_to    query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        q          query  string  false  "Texto en la descripción"
// @Success      200        {file}    binary
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/statement.pdf [get]
func (h *StatementHandler) PDF(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	pdfBytes, filename, err := h.export.StatementPDF(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, filename, pdfBytes)
}

func parseFilter(c *fiber.Ctx) (report.Filter, error) {
	f := report.Filter{Kind: entity.Kind(c.Query("kind")), SearchText: c.Query("q")}
	var err error
	if s := c.Query("date_from"); s != "" {
		if f.DateFrom, err = entity.ParseDate(s); err != nil {
			return report.Filter{}, domain.NewValidationError("date_from", "debe tener formato YYYY-MM-DD")
		}
	}
	if s := c.Query("date_to"); s != "" {
		if f.DateTo, err = entity.ParseDate(s); err != nil {
			return report.Filter{}, domain.NewValidationError("date_to", "debe tener formato YYYY-MM-DD")
		}
	}
	return f, f.Validate()
}

func sendPDF(c *fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(body)
}
