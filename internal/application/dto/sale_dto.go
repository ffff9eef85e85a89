package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest item de venda. Snapshot carrega o documento completo do
// produto ou serviço no momento da venda, preservado como foi recebido.
type SaleItemRequest struct {
	ItemID           string          `json:"itemId" validate:"required"`
	Item             json.RawMessage `json:"item" validate:"required"`
	Quantity         int64           `json:"quantity" validate:"required,min=1"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	UnitCost         decimal.Decimal `json:"unitCost"`
	Type             string          `json:"type" validate:"required,oneof=product service"`
	UniqueIdentifier string          `json:"uniqueIdentifier"`
}

// CreateSaleRequest entrada para registrar uma venda de balcão.
type CreateSaleRequest struct {
	Items            []SaleItemRequest `json:"items" validate:"required,min=1"`
	Total            decimal.Decimal   `json:"total"`
	TotalCost        decimal.Decimal   `json:"totalCost"`
	Discount         decimal.Decimal   `json:"discount"`
	PaymentMethod    string            `json:"paymentMethod"`
	CustomerName     string            `json:"customerName"`
	CustomerWhatsapp string            `json:"customerWhatsapp"`
	CustomerCnpjCpf  string            `json:"customerCnpjCpf"`
}

// SaleItemResponse item dentro de uma venda registrada.
type SaleItemResponse struct {
	ItemID           string          `json:"itemId"`
	Item             json.RawMessage `json:"item"`
	Quantity         int64           `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	UnitCost         decimal.Decimal `json:"unitCost"`
	Type             string          `json:"type"`
	UniqueIdentifier string          `json:"uniqueIdentifier,omitempty"`
}

// SaleResponse saída de uma venda.
type SaleResponse struct {
	ID               string             `json:"id"`
	Items            []SaleItemResponse `json:"items"`
	Total            decimal.Decimal    `json:"total"`
	TotalCost        decimal.Decimal    `json:"totalCost"`
	Discount         decimal.Decimal    `json:"discount"`
	PaymentMethod    string             `json:"paymentMethod"`
	Timestamp        time.Time          `json:"timestamp"`
	CustomerName     string             `json:"customerName"`
	CustomerWhatsapp string             `json:"customerWhatsapp"`
	CustomerID       string             `json:"customerId,omitempty"`
	SaleHour         int                `json:"saleHour"`
	UserID           string             `json:"userId"`
	UserName         string             `json:"userName"`
}
