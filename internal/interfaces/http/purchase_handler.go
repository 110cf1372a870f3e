package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/application/purchases"
	"github.com/yosyfood/yosyfood-api/internal/domain"
)

// PurchaseHandler maneja las peticiones HTTP para compras.
type PurchaseHandler struct {
	uc *purchases.UseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *purchases.UseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar compra multi-línea
// @Tags         compras
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPurchaseRequest  true  "Carrito, proveedor, comprador y casino"
// @Success      201   {object}  dto.RecordPurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras [post]
func (h *PurchaseHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordPurchase(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "carrito, proveedor, comprador y casino son requeridos; cantidades positivas y costos no negativos"})
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_PRODUCT", Message: "una de las líneas referencia un producto inexistente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReceipts godoc
// @Summary      Listar órdenes de compra agrupadas
// @Tags         compras
// @Produce      json
// @Param        casino  query  string  true  "Casino"
// @Success      200     {array}  dto.PurchaseReceiptResponse
// @Router       /api/compras [get]
func (h *PurchaseHandler) ListReceipts(c *fiber.Ctx) error {
	casino := c.Query("casino")
	out, err := h.uc.ListReceipts(c.Context(), casino)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
