package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento.
const (
	PaymentPix          = "Pix"
	PaymentCreditCard   = "Cartão de Crédito"
	PaymentBankTransfer = "Transferência Bancária"
	PaymentCash         = "Dinheiro"
	PaymentBankSlip     = "Boleto Bancário"
)

// PurchaseItem linha de uma ordem de compra. Referencia o produto por ID (código de barras).
type PurchaseItem struct {
	ProductID   string
	ProductName string
	Quantity    int64
	UnitCost    decimal.Decimal
}

// Installment parcela de um pagamento por boleto.
type Installment struct {
	Number  int
	Amount  decimal.Decimal
	DueDate time.Time
}

// PaymentDetails condições de pagamento da compra.
// Installments só é usado quando Method é Boleto Bancário.
type PaymentDetails struct {
	Method       string
	PaymentDate  *time.Time
	Bank         string
	Installments []Installment
}

// SupplierInfo snapshot desnormalizado do fornecedor no momento da compra.
type SupplierInfo struct {
	Name          string
	CnpjCpf       string
	ContactPerson string
	Phone         string
}

// PurchaseOrder representa uma ordem de compra de produtos.
// O ID é sequencial por período (PO-AAAAMM-NNNN).
type PurchaseOrder struct {
	ID             string
	Items          []PurchaseItem
	FreightCost    decimal.Decimal
	OtherCost      decimal.Decimal
	TotalCost      decimal.Decimal
	PaymentDetails PaymentDetails
	SupplierInfo   SupplierInfo
	Reference      string
	CreatedAt      time.Time
}
