package entity

import "github.com/shopspring/decimal"

// Marcas atendidas pela assistência.
const (
	BrandApple    = "Apple"
	BrandSamsung  = "Samsung"
	BrandMotorola = "Motorola"
	BrandXiaomi   = "Xiaomi"
	BrandOther    = "Outra"
)

// Service representa um serviço de assistência técnica do catálogo (ex.: troca de tela).
type Service struct {
	ID           string
	Name         string
	Brand        string
	Model        string
	Price        decimal.Decimal
	PartCost     decimal.Decimal
	ServiceCost  decimal.Decimal
	ShippingCost decimal.Decimal
}
