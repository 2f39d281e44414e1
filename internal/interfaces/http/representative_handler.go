package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/application/dto"
)

// RepresentativeHandler desempeño de los representantes de venta.
type RepresentativeHandler struct {
	engine *bookkeeping.Engine
}

// NewRepresentativeHandler construye el handler.
func NewRepresentativeHandler(engine *bookkeeping.Engine) *RepresentativeHandler {
	return &RepresentativeHandler{engine: engine}
}

// Summary godoc
// @Summary      Resumen por representante
// @Description  Solo ventas sale_rep, ordenado por ingreso descendente.
// @Tags         representatives
// @Produce      json
// @Success      200  {object}  dto.RepSummaryResponse
// @Router       /api/representatives/summary [get]
func (h *RepresentativeHandler) Summary(c *fiber.Ctx) error {
	rows, total := h.engine.RepresentativeSummary()
	return c.JSON(dto.RepSummaryResponse{Representatives: dto.FromRepRows(rows), TotalAmount: total})
}
