package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// ServiceUseCase casos de uso CRUD do catálogo de serviços de manutenção.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase monta o caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// Create cadastra um serviço.
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	service := &entity.Service{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Brand:        in.Brand,
		Model:        in.Model,
		Price:        in.Price,
		PartCost:     in.PartCost,
		ServiceCost:  in.ServiceCost,
		ShippingCost: in.ShippingCost,
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	resp := toServiceResponse(service)
	return &resp, nil
}

// Update atualiza os campos informados de um serviço.
func (uc *ServiceUseCase) Update(id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Brand != nil {
		service.Brand = *in.Brand
	}
	if in.Model != nil {
		service.Model = *in.Model
	}
	if in.Price != nil {
		service.Price = *in.Price
	}
	if in.PartCost != nil {
		service.PartCost = *in.PartCost
	}
	if in.ServiceCost != nil {
		service.ServiceCost = *in.ServiceCost
	}
	if in.ShippingCost != nil {
		service.ShippingCost = *in.ShippingCost
	}

	if err := uc.repo.Update(service); err != nil {
		return nil, err
	}
	resp := toServiceResponse(service)
	return &resp, nil
}

// Delete remove um serviço do catálogo.
func (uc *ServiceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// GetByID devolve um serviço pelo identificador.
func (uc *ServiceUseCase) GetByID(id string) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toServiceResponse(service)
	return &resp, nil
}

// List devolve o catálogo completo de serviços.
func (uc *ServiceUseCase) List() ([]dto.ServiceResponse, error) {
	services, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, toServiceResponse(&services[i]))
	}
	return out, nil
}

func toServiceResponse(s *entity.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:           s.ID,
		Name:         s.Name,
		Brand:        s.Brand,
		Model:        s.Model,
		Price:        s.Price,
		PartCost:     s.PartCost,
		ServiceCost:  s.ServiceCost,
		ShippingCost: s.ShippingCost,
	}
}
