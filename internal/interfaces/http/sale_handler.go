package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/application/sale"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
)

// SaleHandler trata as vendas de balcão (qualquer usuário autenticado).
type SaleHandler struct {
	uc *sale.UseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *sale.UseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venda
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Dados da venda"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	seller := sale.Seller{ID: GetUserID(c), Name: GetUserName(c)}
	out, err := h.uc.Create(in, seller)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(out))
}

// Delete godoc
// @Summary      Excluir venda (devolve estoque e apaga o lançamento no caixa)
// @Tags         sales
// @Security     Bearer
// @Param        id  path  string  true  "ID da venda (TC-AAAAMM-NNNN)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "venda excluída"})
}

// GetByID godoc
// @Summary      Buscar venda por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSaleResponse(out))
}

// List godoc
// @Summary      Listar vendas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	sales, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, toSaleResponse(&sales[i]))
	}
	return c.JSON(out)
}

func toSaleResponse(s *entity.TicketSale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse(it))
	}
	return dto.SaleResponse{
		ID:               s.ID,
		Items:            items,
		Total:            s.Total,
		TotalCost:        s.TotalCost,
		Discount:         s.Discount,
		PaymentMethod:    s.PaymentMethod,
		Timestamp:        s.Timestamp,
		CustomerName:     s.CustomerName,
		CustomerWhatsapp: s.CustomerWhatsapp,
		CustomerID:       s.CustomerID,
		SaleHour:         s.SaleHour,
		UserID:           s.UserID,
		UserName:         s.UserName,
	}
}
