package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorias de produto da loja.
const (
	CategoryCellphone  = "Celular"
	CategoryAccessory  = "Acessório de Celular"
	CategoryElectronic = "Eletrônico"
	CategoryOther      = "Outro"
)

// Product representa um produto do estoque. O ID é o próprio código de barras.
// Cost é o custo médio ponderado do estoque atual e Stock a quantidade em mãos;
// ambos são mutados apenas pelo motor de custos (compras) e pelo ciclo de vendas.
// Quando Stock chega a 0, Cost volta a 0 (estoque vazio não carrega valor residual).
type Product struct {
	ID              string // código de barras
	Barcode         string
	Name            string
	Price           decimal.Decimal // preço de venda
	Cost            decimal.Decimal // custo médio ponderado
	Stock           int64
	Category        string
	Brand           string
	Model           string
	Location        string
	LastSold        *time.Time
	RequiresUniqueID bool // exige identificador único (IMEI/serial) na venda
}
