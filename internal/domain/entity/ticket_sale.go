package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de item de venda.
const (
	SaleItemProduct = "product"
	SaleItemService = "service"
)

// SaleItem linha de uma venda. Item carrega o objeto completo (produto ou
// serviço) copiado no momento da venda, um snapshot histórico de preço e
// detalhes em vez de uma referência viva. ItemID e Type ficam tipados para as
// operações de estoque.
type SaleItem struct {
	ItemID           string
	Item             json.RawMessage // snapshot embutido do produto/serviço
	Quantity         int64
	UnitPrice        decimal.Decimal
	UnitCost         decimal.Decimal // snapshot do custo
	Type             string          // product | service
	UniqueIdentifier string          // IMEI/serial quando o produto exige
}

// TicketSale representa um cupom de venda do balcão.
// O ID é sequencial por período (TC-AAAAMM-NNNN).
type TicketSale struct {
	ID               string
	Items            []SaleItem
	Total            decimal.Decimal // valor final pago pelo cliente
	TotalCost        decimal.Decimal // custo total das mercadorias vendidas
	Discount         decimal.Decimal
	PaymentMethod    string
	Timestamp        time.Time
	CustomerName     string
	CustomerWhatsapp string
	CustomerID       string
	SaleHour         int
	UserID           string
	UserName         string
}
