package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/application/serviceorder"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
)

// ServiceOrderHandler trata as ordens de serviço. Todas as rotas aceitam
// técnico; as restrições por status ficam no caso de uso.
type ServiceOrderHandler struct {
	uc *serviceorder.UseCase
}

// NewServiceOrderHandler constrói o handler.
func NewServiceOrderHandler(uc *serviceorder.UseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir ordem de serviço
// @Tags         service-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceOrderRequest  true  "Dados da ordem"
// @Success      201   {object}  dto.ServiceOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/service-orders [post]
func (h *ServiceOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toServiceOrderResponse(out))
}

// Update godoc
// @Summary      Editar ordem de serviço
// @Tags         service-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da ordem (OS-AAAAMM-NNNN)"
// @Param        body  body  dto.UpdateServiceOrderRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.ServiceOrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id} [put]
func (h *ServiceOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), GetRole(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toServiceOrderResponse(out))
}

// ToggleStatus godoc
// @Summary      Concluir ou reabrir ordem de serviço
// @Tags         service-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da ordem"
// @Param        body  body  dto.ToggleServiceOrderRequest  false  "Fechamento financeiro (na conclusão)"
// @Success      200   {object}  dto.ServiceOrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id}/toggle-status [post]
func (h *ServiceOrderHandler) ToggleStatus(c *fiber.Ctx) error {
	var in dto.ToggleServiceOrderRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
		}
	}
	out, err := h.uc.ToggleStatus(c.Params("id"), GetRole(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toServiceOrderResponse(out))
}

// Delete godoc
// @Summary      Excluir ordem de serviço
// @Tags         service-orders
// @Security     Bearer
// @Param        id  path  string  true  "ID da ordem"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id} [delete]
func (h *ServiceOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetRole(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ordem de serviço excluída"})
}

// GetByID godoc
// @Summary      Buscar ordem de serviço por ID
// @Tags         service-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da ordem"
// @Success      200  {object}  dto.ServiceOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id} [get]
func (h *ServiceOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toServiceOrderResponse(out))
}

// List godoc
// @Summary      Listar ordens de serviço
// @Tags         service-orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ServiceOrderResponse
// @Router       /api/service-orders [get]
func (h *ServiceOrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ServiceOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toServiceOrderResponse(&orders[i]))
	}
	return c.JSON(out)
}

// Sheet godoc
// @Summary      Ficha da ordem de serviço em PDF
// @Tags         service-orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID da ordem"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id}/pdf [get]
func (h *ServiceOrderHandler) Sheet(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Sheet(id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s.pdf", id))
	return c.Send(pdf)
}

func toServiceOrderResponse(o *entity.ServiceOrder) dto.ServiceOrderResponse {
	return dto.ServiceOrderResponse{
		ID:                 o.ID,
		CustomerName:       o.CustomerName,
		CustomerWhatsapp:   o.CustomerWhatsapp,
		CustomerID:         o.CustomerID,
		ServiceID:          o.ServiceID,
		ServiceDescription: o.ServiceDescription,
		TotalPrice:         o.TotalPrice,
		TotalCost:          o.TotalCost,
		OtherCosts:         o.OtherCosts,
		Status:             o.Status,
		FinalPrice:         o.FinalPrice,
		Discount:           o.Discount,
		PaymentMethod:      o.PaymentMethod,
		CreatedAt:          o.CreatedAt,
		CompletedAt:        o.CompletedAt,
	}
}
