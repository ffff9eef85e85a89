package repository

import "github.com/gestorcell/gestor-api/internal/domain/entity"

// ServiceRepository porta de persistência do catálogo de serviços.
type ServiceRepository interface {
	Create(service *entity.Service) error
	Update(service *entity.Service) error
	Delete(id string) error
	GetByID(id string) (*entity.Service, error)
	List() ([]entity.Service, error)
}
