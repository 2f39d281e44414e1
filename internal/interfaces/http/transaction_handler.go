package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/bookkeeping"
	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain/entity"
	"github.com/jhoicas/ledger-api/internal/domain/journal"
)

// TransactionHandler registro y borrado de transacciones.
type TransactionHandler struct {
	engine *bookkeeping.Engine
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(engine *bookkeeping.Engine) *TransactionHandler {
	return &TransactionHandler{engine: engine}
}

// Create godoc
// @Summary      Registrar transacción
// @Description  Valida, verifica stock en ventas y agrega al log. item acepta nombre o código de barras.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Transacción"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.InsufficientStockResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	tx, err := h.engine.SubmitTransaction(c.UserContext(), journal.Candidate{
		Date:         in.Date,
		Kind:         entity.Kind(in.Kind),
		ItemRef:      in.ItemRef,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		Amount:       in.Amount,
		Description:  in.Description,
		Counterparty: in.Counterparty,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromTransaction(tx))
}

// List godoc
// @Summary      Listar transacciones
// @Tags         transactions
// @Produce      json
// @Param        kind    query  string  false  "incoming | sale_piece | sale_rep | expense"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.TransactionListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	if err := validate.Struct(page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: describe(err)})
	}
	txs, err := h.engine.ListTransactions(entity.Kind(c.Query("kind")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromTransactions(txs, page))
}

// Delete godoc
// @Summary      Borrar transacción
// @Description  Rechaza el borrado de una entrada cuyo stock ya fue vendido.
// @Tags         transactions
// @Param        id   path  string  true  "ID de la transacción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.InsufficientStockResponse
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.engine.DeleteTransaction(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
