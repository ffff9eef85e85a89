package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transação do caixa.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Status de uma transação do caixa.
const (
	TransactionPending = "Pendente"
	TransactionPaid    = "Pago"
)

// Categorias de transação do caixa.
const (
	CategoryRent            = "Aluguel"
	CategoryWater           = "Água"
	CategoryElectricity     = "Luz"
	CategoryInternet        = "Internet"
	CategoryTaxes           = "IPTU/Impostos"
	CategorySalary          = "Salário"
	CategoryProductPurchase = "Compra de Produto"
	CategoryServiceRevenue  = "Faturamento de Serviço"
	CategorySalesRevenue    = "Faturamento de Venda"
	CategoryServiceCost     = "Custo de Serviço"
	CategoryOtherExpense    = "Outros"
)

// CashTransaction representa um lançamento do livro-caixa.
// Quando PurchaseID, SaleID ou ServiceOrderID estão preenchidos a transação é
// derivada do documento de origem: deve ser apagada/regenerada junto com ele,
// nunca editada de forma independente.
type CashTransaction struct {
	ID             string
	Description    string
	Amount         decimal.Decimal
	Type           string // income | expense
	Category       string
	Status         string // Pendente | Pago
	Timestamp      time.Time
	DueDate        time.Time
	ServiceOrderID string
	PurchaseID     string
	SaleID         string
}
