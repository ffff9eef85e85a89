package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanyAddress endereço da empresa nas configurações da loja.
type CompanyAddress struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Complement   string `json:"complement"`
}

// CompanyInfo dados cadastrais da empresa.
type CompanyInfo struct {
	Name    string         `json:"name"`
	CnpjCpf string         `json:"cnpjCpf"`
	Phone   string         `json:"phone"`
	Email   string         `json:"email"`
	Address CompanyAddress `json:"address"`
}

// StockThresholds limites (em dias de cobertura) para classificar o nível de estoque.
type StockThresholds struct {
	RiskMin   int `json:"riskMin"`
	RiskMax   int `json:"riskMax"`
	SafetyMax int `json:"safetyMax"`
}

// StoreConfig configurações globais da loja (documento único).
type StoreConfig struct {
	PredictedAvgMargin    decimal.Decimal `json:"predictedAvgMargin"`
	NetProfit             decimal.Decimal `json:"netProfit"`
	InventoryTurnoverGoal decimal.Decimal `json:"inventoryTurnoverGoal"`

	EffectiveTaxRate decimal.Decimal `json:"effectiveTaxRate"`

	FeePix               decimal.Decimal `json:"feePix"`
	FeeDebit             decimal.Decimal `json:"feeDebit"`
	FeeCreditSight       decimal.Decimal `json:"feeCreditSight"`
	FeeCreditInstallment decimal.Decimal `json:"feeCreditInstallment"`

	MinContributionMargin decimal.Decimal `json:"minContributionMargin"`
	FixedCostAllocation   decimal.Decimal `json:"fixedCostAllocation"`

	TurnoverPeriod  string          `json:"turnoverPeriod"`
	StockThresholds StockThresholds `json:"stockThresholds"`

	DiscountSafety decimal.Decimal `json:"discountSafety"`
	DiscountRisk   decimal.Decimal `json:"discountRisk"`
	DiscountExcess decimal.Decimal `json:"discountExcess"`

	CompanyInfo CompanyInfo `json:"companyInfo"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultStoreConfig devolve a configuração padrão usada no primeiro acesso.
func DefaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		PredictedAvgMargin:    decimal.NewFromInt(40),
		NetProfit:             decimal.NewFromInt(5000),
		InventoryTurnoverGoal: decimal.NewFromFloat(1.5),
		EffectiveTaxRate:      decimal.NewFromFloat(4.0),
		FeePix:                decimal.Zero,
		FeeDebit:              decimal.NewFromFloat(1.5),
		FeeCreditSight:        decimal.NewFromFloat(3.0),
		FeeCreditInstallment:  decimal.NewFromFloat(12.0),
		MinContributionMargin: decimal.NewFromFloat(20.0),
		FixedCostAllocation:   decimal.NewFromFloat(15.0),
		TurnoverPeriod:        "Mensal (30 dias)",
		StockThresholds:       StockThresholds{RiskMin: 1, RiskMax: 15, SafetyMax: 45},
		DiscountSafety:        decimal.Zero,
		DiscountRisk:          decimal.NewFromInt(5),
		DiscountExcess:        decimal.NewFromInt(15),
	}
}
