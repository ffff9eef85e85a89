package repository

import "github.com/gestorcell/gestor-api/internal/domain/entity"

// TicketSaleRepository porta de persistência de vendas de balcão.
type TicketSaleRepository interface {
	Create(sale *entity.TicketSale) error
	Delete(id string) error
	GetByID(id string) (*entity.TicketSale, error)
	List() ([]entity.TicketSale, error)
}
