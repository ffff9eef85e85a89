package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/application/usecase"
)

// InsightsHandler gera a análise de negócio via IA (dono e gerente).
type InsightsHandler struct {
	uc *usecase.InsightsUseCase
}

// NewInsightsHandler constrói o handler.
func NewInsightsHandler(uc *usecase.InsightsUseCase) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

// Generate godoc
// @Summary      Gerar análise de negócio a partir dos indicadores
// @Tags         insights
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InsightsRequest  true  "Indicadores agregados"
// @Success      200   {object}  dto.InsightsResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/insights [post]
func (h *InsightsHandler) Generate(c *fiber.Ctx) error {
	var in dto.InsightsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
