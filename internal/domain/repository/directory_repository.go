package repository

import "github.com/gestorcell/gestor-api/internal/domain/entity"

// CustomerRepository porta de persistência de clientes. O ID do cliente é o
// WhatsApp normalizado (somente dígitos).
type CustomerRepository interface {
	Upsert(customer *entity.Customer) error
	Update(customer *entity.Customer) error
	Delete(id string) error
	GetByID(id string) (*entity.Customer, error)
	List() ([]entity.Customer, error)
}

// SupplierRepository porta de persistência de fornecedores. O ID do
// fornecedor é o CNPJ/CPF normalizado (somente dígitos).
type SupplierRepository interface {
	Upsert(supplier *entity.Supplier) error
	Update(supplier *entity.Supplier) error
	Delete(id string) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]entity.Supplier, error)
}
