package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceOrderRequest entrada para abrir uma ordem de serviço.
type CreateServiceOrderRequest struct {
	CustomerName     string          `json:"customerName" validate:"required"`
	CustomerWhatsapp string          `json:"customerWhatsapp" validate:"required"`
	CustomerCnpjCpf  string          `json:"customerCnpjCpf"`
	ServiceID        string          `json:"serviceId"`
	ServiceDescription string        `json:"serviceDescription" validate:"required"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	TotalCost        decimal.Decimal `json:"totalCost"`
	OtherCosts       decimal.Decimal `json:"otherCosts"`
}

// UpdateServiceOrderRequest entrada para editar uma ordem de serviço.
type UpdateServiceOrderRequest struct {
	CustomerName       *string          `json:"customerName"`
	CustomerWhatsapp   *string          `json:"customerWhatsapp"`
	ServiceDescription *string          `json:"serviceDescription"`
	TotalPrice         *decimal.Decimal `json:"totalPrice"`
	TotalCost          *decimal.Decimal `json:"totalCost"`
	OtherCosts         *decimal.Decimal `json:"otherCosts"`
}

// ToggleServiceOrderRequest entrada para concluir ou reabrir uma ordem.
// FinalPrice, Discount e PaymentMethod só valem na conclusão.
type ToggleServiceOrderRequest struct {
	FinalPrice    *decimal.Decimal `json:"finalPrice"`
	Discount      *decimal.Decimal `json:"discount"`
	PaymentMethod string           `json:"paymentMethod"`
}

// ServiceOrderResponse saída de uma ordem de serviço.
type ServiceOrderResponse struct {
	ID                 string           `json:"id"`
	CustomerName       string           `json:"customerName"`
	CustomerWhatsapp   string           `json:"customerWhatsapp"`
	CustomerID         string           `json:"customerId,omitempty"`
	ServiceID          string           `json:"serviceId,omitempty"`
	ServiceDescription string           `json:"serviceDescription"`
	TotalPrice         decimal.Decimal  `json:"totalPrice"`
	TotalCost          decimal.Decimal  `json:"totalCost"`
	OtherCosts         decimal.Decimal  `json:"otherCosts"`
	Status             string           `json:"status"`
	FinalPrice         *decimal.Decimal `json:"finalPrice,omitempty"`
	Discount           *decimal.Decimal `json:"discount,omitempty"`
	PaymentMethod      string           `json:"paymentMethod,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	CompletedAt        *time.Time       `json:"completedAt,omitempty"`
}
