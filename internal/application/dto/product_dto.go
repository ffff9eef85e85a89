package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para cadastrar um produto. O código de barras
// vira o ID do documento.
type CreateProductRequest struct {
	Barcode          string          `json:"barcode" validate:"required,min=1,max=100"`
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	Price            decimal.Decimal `json:"price"`
	Cost             decimal.Decimal `json:"cost"`
	Stock            int64           `json:"stock"`
	Category         string          `json:"category"`
	Brand            string          `json:"brand"`
	Model            string          `json:"model"`
	Location         string          `json:"location"`
	RequiresUniqueID bool            `json:"requiresUniqueId"`
}

// UpdateProductRequest entrada para atualizar um produto. Campos nulos são
// preservados.
type UpdateProductRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price            *decimal.Decimal `json:"price"`
	Cost             *decimal.Decimal `json:"cost"`
	Stock            *int64           `json:"stock"`
	Category         *string          `json:"category"`
	Brand            *string          `json:"brand"`
	Model            *string          `json:"model"`
	Location         *string          `json:"location"`
	RequiresUniqueID *bool            `json:"requiresUniqueId"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID               string          `json:"id"`
	Barcode          string          `json:"barcode"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	Cost             decimal.Decimal `json:"cost"`
	Stock            int64           `json:"stock"`
	Category         string          `json:"category"`
	Brand            string          `json:"brand"`
	Model            string          `json:"model"`
	Location         string          `json:"location"`
	LastSold         *time.Time      `json:"lastSold,omitempty"`
	RequiresUniqueID bool            `json:"requiresUniqueId"`
}
