package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yosyfood/yosyfood-api/internal/application/consumption"
	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/domain"
)

// ConsumptionHandler maneja las peticiones HTTP para lotes de consumo.
type ConsumptionHandler struct {
	uc *consumption.UseCase
}

// NewConsumptionHandler construye el handler.
func NewConsumptionHandler(uc *consumption.UseCase) *ConsumptionHandler {
	return &ConsumptionHandler{uc: uc}
}

func consumptionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha (YYYY-MM-DD), descripcion, responsable, casino y cantidad_total positiva son requeridos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consumo no encontrado"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_PRODUCT", Message: "una de las líneas referencia un producto inexistente"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OUT_OF_STOCK", Message: "stock insuficiente para una de las líneas"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Registrar lote de consumo
// @Tags         consumos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsumptionRequest  true  "Cabecera y líneas de ratio"
// @Success      201   {object}  dto.ConsumptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/consumos [post]
func (h *ConsumptionHandler) Create(c *fiber.Ctx) error {
	var in dto.ConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return consumptionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar lote de consumo (revierte y re-aplica)
// @Tags         consumos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.ConsumptionRequest  true  "Cabecera y líneas nuevas"
// @Success      200   {object}  dto.ConsumptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consumos/{id} [put]
func (h *ConsumptionHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return consumptionError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lote de consumo (restaura inventario)
// @Tags         consumos
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumos/{id} [delete]
func (h *ConsumptionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return consumptionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get godoc
// @Summary      Obtener lote de consumo con sus items
// @Tags         consumos
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.ConsumptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumos/{id} [get]
func (h *ConsumptionHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return consumptionError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar lotes de consumo del casino
// @Tags         consumos
// @Produce      json
// @Param        casino  query  string  true  "Casino"
// @Success      200     {array}  dto.ConsumptionResponse
// @Router       /api/consumos [get]
func (h *ConsumptionHandler) List(c *fiber.Ctx) error {
	casino := c.Query("casino")
	out, err := h.uc.List(c.Context(), casino)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
