package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para lançar uma transação manual no caixa.
type CreateTransactionRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=income expense"`
	Category    string          `json:"category" validate:"required"`
	Status      string          `json:"status"`
	DueDate     *time.Time      `json:"dueDate"`
}

// UpdateTransactionRequest entrada para editar uma transação manual.
type UpdateTransactionRequest struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Status      *string          `json:"status"`
	DueDate     *time.Time       `json:"dueDate"`
}

// TransactionResponse saída de uma transação do caixa.
type TransactionResponse struct {
	ID             string          `json:"id"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type"`
	Category       string          `json:"category"`
	Status         string          `json:"status"`
	Timestamp      time.Time       `json:"timestamp"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	ServiceOrderID string          `json:"serviceOrderId,omitempty"`
	PurchaseID     string          `json:"purchaseId,omitempty"`
	SaleID         string          `json:"saleId,omitempty"`
}
