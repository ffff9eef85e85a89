package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorcell/gestor-api/internal/application/auth"
	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/domain"
)

// AuthHandler trata login, perfil e configuração inicial do sistema.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e password são obrigatórios"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "email ou senha inválidos"})
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Perfil do usuário autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SystemStatus godoc
// @Summary      Estado do sistema (já existe usuário?)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SystemStatusResponse
// @Router       /api/auth/system-status [get]
func (h *AuthHandler) SystemStatus(c *fiber.Ctx) error {
	out, err := h.uc.SystemStatus()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetupOwner godoc
// @Summary      Criar o primeiro usuário (dono)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetupOwnerRequest  true  "Dados do dono"
// @Success      201   {object}  dto.LoginResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/setup-owner [post]
func (h *AuthHandler) SetupOwner(c *fiber.Ctx) error {
	var in dto.SetupOwnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email e password são obrigatórios"})
	}
	out, err := h.uc.SetupOwner(in)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_CONFIGURED", Message: "o sistema já possui usuários"})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
