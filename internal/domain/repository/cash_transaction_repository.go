package repository

import "github.com/gestorcell/gestor-api/internal/domain/entity"

// CashTransactionRepository porta de persistência do livro caixa.
type CashTransactionRepository interface {
	Create(txn *entity.CashTransaction) error
	CreateBatch(txns []entity.CashTransaction) error
	Update(txn *entity.CashTransaction) error
	Delete(id string) error
	GetByID(id string) (*entity.CashTransaction, error)
	List() ([]entity.CashTransaction, error)

	// DeleteByPurchaseID remove todas as transações derivadas de uma compra,
	// usado na reconciliação após edição ou exclusão da ordem.
	DeleteByPurchaseID(purchaseID string) error

	// DeleteBySaleID remove a transação de receita derivada de uma venda.
	DeleteBySaleID(saleID string) error

	// DeleteByServiceOrderID remove receita e custo derivados de uma ordem
	// de serviço, usado na reabertura e na exclusão da ordem.
	DeleteByServiceOrderID(serviceOrderID string) error
}
