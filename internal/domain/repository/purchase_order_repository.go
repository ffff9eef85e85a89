package repository

import "github.com/gestorcell/gestor-api/internal/domain/entity"

// PurchaseOrderRepository porta de persistência de ordens de compra.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	Update(order *entity.PurchaseOrder) error
	Delete(id string) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	List() ([]entity.PurchaseOrder, error)
}
