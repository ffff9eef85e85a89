package usecase

import (
	"github.com/gestorcell/gestor-api/internal/application/directory"
	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD de fornecedores, com o CNPJ/CPF
// normalizado como chave.
type SupplierUseCase struct {
	repo repository.SupplierRepository
	dir  *directory.Directory
}

// NewSupplierUseCase monta o caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, dir *directory.Directory) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, dir: dir}
}

// Create cadastra (ou atualiza) um fornecedor pelo CNPJ/CPF.
func (uc *SupplierUseCase) Create(in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	id, err := uc.dir.UpsertSupplier(entity.SupplierInfo{
		Name:          in.Name,
		CnpjCpf:       in.CnpjCpf,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
	})
	if err != nil {
		return nil, err
	}
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// Update atualiza os dados cadastrais de um fornecedor existente.
func (uc *SupplierUseCase) Update(id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	supplier.Name = in.Name
	supplier.ContactPerson = in.ContactPerson
	supplier.Phone = in.Phone
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// Delete remove um fornecedor.
func (uc *SupplierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// GetByID devolve um fornecedor pelo documento normalizado.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// List devolve todos os fornecedores.
func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, toSupplierResponse(&suppliers[i]))
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
	}
}
