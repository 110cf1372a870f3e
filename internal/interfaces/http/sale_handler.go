package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/application/sales"
	"github.com/yosyfood/yosyfood-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP para ventas.
type SaleHandler struct {
	uc *sales.UseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.UseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar venta multi-línea
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Carrito, pago, vendedor y casino"
// @Success      201   {object}  dto.RecordSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordSale(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "carrito, vendedor y casino son requeridos; cantidades positivas"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OUT_OF_STOCK", Message: "stock insuficiente para una de las líneas"})
		}
		if errors.Is(err, domain.ErrInsufficientPayment) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_PAYMENT", Message: "el pago no cubre el total"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReceipts godoc
// @Summary      Listar recibos de venta agrupados
// @Tags         ventas
// @Produce      json
// @Param        casino  query  string  true  "Casino"
// @Success      200     {array}  dto.SaleReceiptResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) ListReceipts(c *fiber.Ctx) error {
	casino := c.Query("casino")
	out, err := h.uc.ListReceipts(c.Context(), casino)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
