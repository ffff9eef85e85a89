package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/application/purchase"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
)

// PurchaseHandler trata as ordens de compra (dono e gerente).
type PurchaseHandler struct {
	uc *purchase.UseCase
}

// NewPurchaseHandler constrói o handler.
func NewPurchaseHandler(uc *purchase.UseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar ordem de compra
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Dados da compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	order, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPurchaseResponse(order))
}

// Update godoc
// @Summary      Editar ordem de compra
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da ordem (PO-AAAAMM-NNNN)"
// @Param        body  body  dto.CreatePurchaseRequest  true  "Dados da compra"
// @Success      200   {object}  dto.PurchaseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [put]
func (h *PurchaseHandler) Update(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	order, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPurchaseResponse(order))
}

// Delete godoc
// @Summary      Excluir ordem de compra (estorna estoque, custo e caixa)
// @Tags         purchases
// @Security     Bearer
// @Param        id  path  string  true  "ID da ordem"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [delete]
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ordem de compra excluída"})
}

// GetByID godoc
// @Summary      Buscar ordem de compra por ID
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da ordem"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPurchaseResponse(order))
}

// List godoc
// @Summary      Listar ordens de compra
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	orders, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.PurchaseResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toPurchaseResponse(&orders[i]))
	}
	return c.JSON(out)
}

func toPurchaseResponse(o *entity.PurchaseOrder) dto.PurchaseResponse {
	items := make([]dto.PurchaseItemRequest, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.PurchaseItemRequest(it))
	}
	installments := make([]dto.InstallmentRequest, 0, len(o.PaymentDetails.Installments))
	for _, inst := range o.PaymentDetails.Installments {
		installments = append(installments, dto.InstallmentRequest(inst))
	}
	return dto.PurchaseResponse{
		ID:          o.ID,
		Items:       items,
		FreightCost: o.FreightCost,
		OtherCost:   o.OtherCost,
		TotalCost:   o.TotalCost,
		PaymentDetails: dto.PaymentDetailsRequest{
			Method:       o.PaymentDetails.Method,
			PaymentDate:  o.PaymentDetails.PaymentDate,
			Bank:         o.PaymentDetails.Bank,
			Installments: installments,
		},
		SupplierInfo: dto.SupplierInfoRequest(o.SupplierInfo),
		Reference:    o.Reference,
		CreatedAt:    o.CreatedAt,
	}
}
