package repository

import "github.com/gestorcell/gestor-api/internal/domain/entity"

// ServiceOrderRepository porta de persistência de ordens de serviço.
type ServiceOrderRepository interface {
	Create(order *entity.ServiceOrder) error
	Update(order *entity.ServiceOrder) error
	Delete(id string) error
	GetByID(id string) (*entity.ServiceOrder, error)
	List() ([]entity.ServiceOrder, error)
}
