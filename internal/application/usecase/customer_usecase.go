package usecase

import (
	"github.com/gestorcell/gestor-api/internal/application/directory"
	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD de clientes. A criação passa pelo
// diretório para manter o WhatsApp normalizado como chave.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	dir  *directory.Directory
}

// NewCustomerUseCase monta o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, dir *directory.Directory) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, dir: dir}
}

// Create cadastra (ou atualiza) um cliente pelo WhatsApp.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	id, err := uc.dir.UpsertCustomer(in.Name, in.Whatsapp, in.CnpjCpf)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Update atualiza os dados cadastrais de um cliente existente.
func (uc *CustomerUseCase) Update(id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	customer.Name = in.Name
	customer.CnpjCpf = directory.CleanID(in.CnpjCpf)
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Delete remove um cliente.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// GetByID devolve um cliente pelo telefone normalizado.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// List devolve todos os clientes.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, toCustomerResponse(&customers[i]))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{ID: c.ID, Name: c.Name, CnpjCpf: c.CnpjCpf}
}
