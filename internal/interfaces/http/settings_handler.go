package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/application/usecase"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
)

// SettingsHandler trata as configurações da loja (documento único).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler constrói o handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Configurações da loja
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.StoreConfig
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Put godoc
// @Summary      Salvar configurações da loja
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.StoreConfig  true  "Configurações"
// @Success      200   {object}  entity.StoreConfig
// @Router       /api/settings [put]
func (h *SettingsHandler) Put(c *fiber.Ctx) error {
	var in entity.StoreConfig
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Put(&in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
