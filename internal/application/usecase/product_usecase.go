package usecase

import (
	"strings"

	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD do catálogo de produtos. Estoque e custo
// médio são movimentados pelos fluxos de compra e venda, não por aqui.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase monta o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cadastra um produto usando o código de barras como ID. Código já
// cadastrado devolve ErrDuplicate.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	barcode := strings.TrimSpace(in.Barcode)
	if barcode == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:               barcode,
		Barcode:          barcode,
		Name:             in.Name,
		Price:            in.Price,
		Cost:             in.Cost,
		Stock:            in.Stock,
		Category:         in.Category,
		Brand:            in.Brand,
		Model:            in.Model,
		Location:         in.Location,
		RequiresUniqueID: in.RequiresUniqueID,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update atualiza os campos informados de um produto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Model != nil {
		product.Model = *in.Model
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	if in.RequiresUniqueID != nil {
		product.RequiresUniqueID = *in.RequiresUniqueID
	}

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete remove um produto do catálogo.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// GetByID devolve um produto pelo código de barras.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List devolve o catálogo completo.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:               p.ID,
		Barcode:          p.Barcode,
		Name:             p.Name,
		Price:            p.Price,
		Cost:             p.Cost,
		Stock:            p.Stock,
		Category:         p.Category,
		Brand:            p.Brand,
		Model:            p.Model,
		Location:         p.Location,
		LastSold:         p.LastSold,
		RequiresUniqueID: p.RequiresUniqueID,
	}
}
