package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/application/usecase"
	"github.com/yosyfood/yosyfood-api/internal/domain"
)

// ExpenseHandler maneja las peticiones HTTP para gastos.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

func expenseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha (YYYY-MM-DD), descripcion, proveedor, comprador y casino son requeridos; costo no negativo"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/gastos [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return expenseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar gastos del casino
// @Tags         gastos
// @Produce      json
// @Param        casino  query  string  true  "Casino"
// @Success      200     {array}  dto.ExpenseResponse
// @Router       /api/gastos [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	casino := c.Query("casino")
	out, err := h.uc.List(c.Context(), casino)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar gasto
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del gasto"
// @Param        body  body  dto.ExpenseRequest  true  "Datos del gasto"
// @Success      200   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return expenseError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar gasto
// @Tags         gastos
// @Produce      json
// @Param        id  path  string  true  "ID del gasto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return expenseError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// InvestmentHandler maneja las peticiones HTTP para inversiones. Mismos
// cuerpos que los gastos, tabla y rutas separadas.
type InvestmentHandler struct {
	uc *usecase.InvestmentUseCase
}

// NewInvestmentHandler construye el handler.
func NewInvestmentHandler(uc *usecase.InvestmentUseCase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar inversión
// @Tags         inversiones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExpenseRequest  true  "Datos de la inversión"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inversiones [post]
func (h *InvestmentHandler) Create(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return expenseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar inversiones del casino
// @Tags         inversiones
// @Produce      json
// @Param        casino  query  string  true  "Casino"
// @Success      200     {array}  dto.ExpenseResponse
// @Router       /api/inversiones [get]
func (h *InvestmentHandler) List(c *fiber.Ctx) error {
	casino := c.Query("casino")
	out, err := h.uc.List(c.Context(), casino)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar inversión
// @Tags         inversiones
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la inversión"
// @Param        body  body  dto.ExpenseRequest  true  "Datos de la inversión"
// @Success      200   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inversiones/{id} [put]
func (h *InvestmentHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return expenseError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar inversión
// @Tags         inversiones
// @Produce      json
// @Param        id  path  string  true  "ID de la inversión"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inversiones/{id} [delete]
func (h *InvestmentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return expenseError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
