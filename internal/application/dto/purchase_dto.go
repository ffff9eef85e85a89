package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest item de uma ordem de compra.
type PurchaseItemRequest struct {
	ProductID   string          `json:"productId" validate:"required"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity" validate:"required,min=1"`
	UnitCost    decimal.Decimal `json:"unitCost"`
}

// InstallmentRequest parcela de um boleto.
type InstallmentRequest struct {
	Number  int             `json:"number"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"dueDate"`
}

// PaymentDetailsRequest condições de pagamento da compra.
type PaymentDetailsRequest struct {
	Method       string               `json:"method" validate:"required"`
	PaymentDate  *time.Time           `json:"paymentDate"`
	Bank         string               `json:"bank"`
	Installments []InstallmentRequest `json:"installments"`
}

// SupplierInfoRequest dados do fornecedor anexados à compra.
type SupplierInfoRequest struct {
	Name          string `json:"name" validate:"required"`
	CnpjCpf       string `json:"cnpjCpf" validate:"required"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
}

// CreatePurchaseRequest entrada para registrar uma ordem de compra.
type CreatePurchaseRequest struct {
	Items          []PurchaseItemRequest `json:"items" validate:"required,min=1"`
	FreightCost    decimal.Decimal       `json:"freightCost"`
	OtherCost      decimal.Decimal       `json:"otherCost"`
	PaymentDetails PaymentDetailsRequest `json:"paymentDetails" validate:"required"`
	SupplierInfo   SupplierInfoRequest   `json:"supplierInfo" validate:"required"`
	Reference      string                `json:"reference" validate:"required"`
}

// PurchaseResponse saída de uma ordem de compra. Reusa os mesmos shapes da
// entrada para itens, pagamento e fornecedor.
type PurchaseResponse struct {
	ID             string                `json:"id"`
	Items          []PurchaseItemRequest `json:"items"`
	FreightCost    decimal.Decimal       `json:"freightCost"`
	OtherCost      decimal.Decimal       `json:"otherCost"`
	TotalCost      decimal.Decimal       `json:"totalCost"`
	PaymentDetails PaymentDetailsRequest `json:"paymentDetails"`
	SupplierInfo   SupplierInfoRequest   `json:"supplierInfo"`
	Reference      string                `json:"reference"`
	CreatedAt      time.Time             `json:"createdAt"`
}
