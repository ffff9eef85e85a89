package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorcell/gestor-api/internal/domain/entity"
)

// ProductRepository porta de persistência de produtos.
type ProductRepository interface {
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	Delete(id string) error
	GetByID(id string) (*entity.Product, error)
	List() ([]entity.Product, error)

	// AdjustStock soma delta ao estoque do produto e, quando lastSold não é
	// nulo, atualiza a data da última venda. Delta negativo representa saída.
	AdjustStock(id string, delta int64, lastSold *time.Time) error

	// SetStockAndCost grava estoque e custo médio de uma vez, usado pelo
	// motor de custeio após aplicar ou reverter uma compra.
	SetStockAndCost(id string, stock int64, cost decimal.Decimal) error
}
