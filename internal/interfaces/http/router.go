package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Engine *bookkeeping.Engine
	Export *bookkeeping.ExportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health(deps.Engine))

	api := app.Group("/api")

	// Transacciones
	txHandler := NewTransactionHandler(deps.Engine)
	transactions := api.Group("/transactions")
	transactions.Post("/", txHandler.Create)
	transactions.Get("/", txHandler.List)
	transactions.Delete("/:id", txHandler.Delete)

	// Estado de cuenta
	statementHandler := NewStatementHandler(deps.Engine, deps.Export)
	api.Get("/statement", statementHandler.Get)
	api.Get("/statement.pdf", statementHandler.PDF)

	// Almacén
	inventoryHandler := NewInventoryHandler(deps.Engine, deps.Export)
	api.Get("/inventory", inventoryHandler.Get)
	api.Get("/inventory.pdf", inventoryHandler.PDF)
	api.Get("/inventory/:item/stock", inventoryHandler.Stock)

	// Códigos de barras; labels.pdf antes de /:barcode
	barcodeHandler := NewBarcodeHandler(deps.Engine, deps.Export)
	barcodes := api.Group("/barcodes")
	barcodes.Get("/labels.pdf", barcodeHandler.Labels)
	barcodes.Post("/", barcodeHandler.Create)
	barcodes.Get("/", barcodeHandler.List)
	barcodes.Get("/:barcode", barcodeHandler.Get)
	barcodes.Delete("/:barcode", barcodeHandler.Delete)

	// Representantes
	repHandler := NewRepresentativeHandler(deps.Engine)
	api.Get("/representatives/summary", repHandler.Summary)
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func Health(engine *bookkeeping.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txs, items := engine.Len()
		return c.JSON(fiber.Map{"status": "ok", "transactions": txs, "items": items})
	}
}
