package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma ordem de serviço.
const (
	ServiceOrderPending   = "Pendente"
	ServiceOrderCompleted = "Concluído"
)

// ServiceOrder representa uma ordem de serviço da assistência técnica.
// O ID é sequencial por período (OS-AAAAMM-NNNN).
// A transição Pendente→Concluído gera duas transações no caixa (receita paga +
// custo pendente); Concluído→Pendente apaga as duas e limpa os campos
// financeiros de fechamento.
type ServiceOrder struct {
	ID                 string
	CustomerName       string
	CustomerWhatsapp   string
	CustomerContact    string
	CustomerID         string
	CustomerCnpjCpf    string
	ServiceID          string
	ServiceDescription string
	TotalPrice         decimal.Decimal
	TotalCost          decimal.Decimal
	OtherCosts         decimal.Decimal
	Status             string
	FinalPrice         *decimal.Decimal
	Discount           *decimal.Decimal
	PaymentMethod      string
	CreatedAt          time.Time
	CompletedAt        *time.Time
}
