package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/application/dto"
)

// InventoryHandler balance de almacén derivado del log.
type InventoryHandler struct {
	engine *bookkeeping.Engine
	export *bookkeeping.ExportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(engine *bookkeeping.Engine, export *bookkeeping.ExportUseCase) *InventoryHandler {
	return &InventoryHandler{engine: engine, export: export}
}

// Get godoc
// @Summary      Balance de almacén
// @Description  Una fila por ítem con entradas, salidas, stock, costo promedio, valor y estado.
//
//	Incluye el valor total, los ítems en stock bajo y el ranking por valor.
//
// @Tags         inventory
// @Produce      json
// @Param        q    query  string  false  "Texto en ítem, categoría o código"
// @Success      200  {object}  dto.InventoryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	inv := h.engine.Inventory(c.Query("q"))
	return c.JSON(dto.InventoryResponse{
		Items:      dto.FromInventoryRows(inv.Rows),
		TotalValue: inv.TotalValue,
		LowStock:   dto.FromInventoryRows(inv.LowStock),
		TopValue:   dto.FromInventoryRows(inv.TopValue),
	})
}

// Stock godoc
// @Summary      Stock de un ítem
// @Description  item acepta nombre o código de barras. Un ítem sin movimientos tiene stock 0.
// @Tags         inventory
// @Produce      json
// @Param        item  path  string  true  "Nombre o código de barras"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/{item}/stock [get]
func (h *InventoryHandler) Stock(c *fiber.Ctx) error {
	ref, err := url.PathUnescape(c.Params("item"))
	if err != nil || ref == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ITEM", Message: "item es requerido"})
	}
	item, stock := h.engine.StockOf(ref)
	return c.JSON(dto.StockResponse{Item: item, Stock: stock, Status: string(h.engine.StatusOf(stock))})
}

// PDF godoc
// @Summary      Balance de almacén en PDF
// @Tags         inventory
// @Produce      application/pdf
// @Param        q    query  string  false  "Texto de búsqueda"
// @Success      200  {file}  binary
// @Router       /api/inventory.pdf [get]
func (h *InventoryHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.export.InventoryPDF(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, filename, pdfBytes)
}
