package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest entrada para cadastrar um serviço de manutenção.
type CreateServiceRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	Price        decimal.Decimal `json:"price"`
	PartCost     decimal.Decimal `json:"partCost"`
	ServiceCost  decimal.Decimal `json:"serviceCost"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
}

// UpdateServiceRequest entrada para atualizar um serviço.
type UpdateServiceRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Brand        *string          `json:"brand"`
	Model        *string          `json:"model"`
	Price        *decimal.Decimal `json:"price"`
	PartCost     *decimal.Decimal `json:"partCost"`
	ServiceCost  *decimal.Decimal `json:"serviceCost"`
	ShippingCost *decimal.Decimal `json:"shippingCost"`
}

// ServiceResponse saída de um serviço do catálogo.
type ServiceResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	Price        decimal.Decimal `json:"price"`
	PartCost     decimal.Decimal `json:"partCost"`
	ServiceCost  decimal.Decimal `json:"serviceCost"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
}
