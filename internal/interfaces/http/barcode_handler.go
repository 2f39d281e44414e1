package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
)

// BarcodeHandler catálogo de códigos de barras.
type BarcodeHandler struct {
	engine *bookkeeping.Engine
	export *bookkeeping.ExportUseCase
}

// NewBarcodeHandler construye el handler.
func NewBarcodeHandler(engine *bookkeeping.Engine, export *bookkeeping.ExportUseCase) *BarcodeHandler {
	return &BarcodeHandler{engine: engine, export: export}
}

// Create godoc
// @Summary      Registrar código de barras
// @Description  Sin barcode se genera uno numérico libre.
// @Tags         barcodes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterBarcodeRequest  true  "Ítem"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/barcodes [post]
func (h *BarcodeHandler) Create(c *fiber.Ctx) error {
	var in dto.RegisterBarcodeRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	item, err := h.engine.RegisterBarcode(c.UserContext(), entity.Item{
		Name:      in.Name,
		Category:  in.Category,
		UnitPrice: in.UnitPrice,
	}, in.Barcode)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromItem(item))
}

// List godoc
// @Summary      Listar catálogo
// @Tags         barcodes
// @Produce      json
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/barcodes [get]
func (h *BarcodeHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.FromItems(h.engine.ListItems()))
}

// Get godoc
// @Summary      Buscar por código de barras
// @Tags         barcodes
// @Produce      json
// @Param        barcode  path  string  true  "Código de barras"
// @Success      200      {object}  dto.ItemResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/barcodes/{barcode} [get]
func (h *BarcodeHandler) Get(c *fiber.Ctx) error {
	item, err := h.engine.LookupBarcode(c.Params("barcode"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromItem(item))
}

// Delete godoc
// @Summary      Borrar código de barras
// @Tags         barcodes
// @Param        barcode  path  string  true  "Código de barras"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/barcodes/{barcode} [delete]
func (h *BarcodeHandler) Delete(c *fiber.Ctx) error {
	if err := h.engine.DeleteBarcode(c.UserContext(), c.Params("barcode")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Labels godoc
// @Summary      Etiquetas imprimibles
// @Tags         barcodes
// @Produce      application/pdf
// @Param        barcodes  query  string  false  "Códigos separados por coma; vacío imprime todo el catálogo"
// @Success      200       {file}    binary
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/barcodes/labels.pdf [get]
func (h *BarcodeHandler) Labels(c *fiber.Ctx) error {
	var codes []string
	for _, s := range strings.Split(c.Query("barcodes"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			codes = append(codes, s)
		}
	}
	pdfBytes, filename, err := h.export.LabelsPDF(c.UserContext(), codes)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, filename, pdfBytes)
}
