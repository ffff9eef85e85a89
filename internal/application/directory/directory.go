// Package directory resolve clientes e fornecedores para registros
// canônicos. O identificador natural (WhatsApp do cliente, CNPJ/CPF do
// fornecedor) é normalizado para somente dígitos e vira o ID do documento,
// então o mesmo contato nunca é duplicado entre vendas, ordens e compras.
package directory

import (
	"strings"

	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// Directory centraliza o find-or-create de clientes e fornecedores.
type Directory struct {
	customers repository.CustomerRepository
	suppliers repository.SupplierRepository
}

// New cria o diretório sobre os repositórios de clientes e fornecedores.
func New(customers repository.CustomerRepository, suppliers repository.SupplierRepository) *Directory {
	return &Directory{customers: customers, suppliers: suppliers}
}

// CleanID normaliza um identificador de contato removendo tudo que não é
// dígito.
func CleanID(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UpsertCustomer garante o cadastro do cliente identificado pelo WhatsApp e
// devolve o ID canônico. Nome e CNPJ/CPF são atualizados quando informados.
// WhatsApp vazio (ou sem dígitos) é ignorado e devolve ID vazio.
func (d *Directory) UpsertCustomer(name, whatsapp, cnpjCpf string) (string, error) {
	id := CleanID(whatsapp)
	if id == "" {
		return "", nil
	}
	customer := &entity.Customer{
		ID:      id,
		Name:    strings.TrimSpace(name),
		CnpjCpf: CleanID(cnpjCpf),
	}
	if err := d.customers.Upsert(customer); err != nil {
		return "", err
	}
	return id, nil
}

// UpsertSupplier garante o cadastro do fornecedor identificado pelo CNPJ/CPF
// e devolve o ID canônico. Fornecedor sem documento é rejeitado.
func (d *Directory) UpsertSupplier(info entity.SupplierInfo) (string, error) {
	id := CleanID(info.CnpjCpf)
	if id == "" {
		return "", domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:            id,
		Name:          strings.TrimSpace(info.Name),
		ContactPerson: info.ContactPerson,
		Phone:         info.Phone,
	}
	if err := d.suppliers.Upsert(supplier); err != nil {
		return "", err
	}
	return id, nil
}
