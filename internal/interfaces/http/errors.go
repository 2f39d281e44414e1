package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledger-api/internal/application/dto"
	"github.com/jhoicas/ledger-api/internal/domain"
)

// writeError traduce los errores del dominio a su código HTTP y cuerpo JSON.
func writeError(c *fiber.Ctx, err error) error {
	var (
		validation *domain.ValidationError
		stock      *domain.InsufficientStockError
		dup        *domain.DuplicateBarcodeError
		notFound   *domain.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.As(err, &stock):
		return c.Status(fiber.StatusConflict).JSON(dto.InsufficientStockResponse{
			ErrorResponse: dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()},
			Item:          stock.Item,
			Requested:     stock.Requested,
			Available:     stock.Available,
		})
	case errors.As(err, &dup):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_BARCODE", Message: err.Error()})
	case errors.As(err, &notFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrBarcodeExhausted):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "BARCODE_EXHAUSTED", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
