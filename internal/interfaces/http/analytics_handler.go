package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/application/usecase"
	"github.com/yosyfood/yosyfood-api/internal/domain"
)

// AnalyticsHandler maneja las peticiones HTTP del tablero de análisis.
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetReport godoc
// @Summary      Reporte del período (ingresos, costos, ganancia, series)
// @Tags         analisis
// @Produce      json
// @Param        casino        query  string  true   "Casino"
// @Param        fecha_inicio  query  string  false  "YYYY-MM-DD, inclusiva"
// @Param        fecha_fin     query  string  false  "YYYY-MM-DD, inclusiva"
// @Success      200  {object}  dto.AnalyticsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analisis [get]
func (h *AnalyticsHandler) GetReport(c *fiber.Ctx) error {
	var in dto.AnalyticsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.GetReport(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "casino es requerido; fechas YYYY-MM-DD con inicio <= fin"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
