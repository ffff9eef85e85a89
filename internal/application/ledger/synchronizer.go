// Package ledger mantém o livro-caixa sincronizado com os documentos que o
// alimentam. Toda transação derivada carrega o ID do documento de origem
// (compra, venda ou ordem de serviço) e só existe enquanto o documento
// existir no estado correspondente: editar regenera, excluir apaga.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// Synchronizer gera e reconcilia transações derivadas no livro-caixa.
type Synchronizer struct {
	transactions repository.CashTransactionRepository
}

// NewSynchronizer cria o sincronizador sobre o repositório de transações.
func NewSynchronizer(transactions repository.CashTransactionRepository) *Synchronizer {
	return &Synchronizer{transactions: transactions}
}

// BuildPurchaseTransactions monta as transações de despesa de uma compra.
// Boleto bancário gera uma despesa Pendente por parcela, com vencimento; os
// demais métodos geram uma única despesa Paga pelo custo total.
func BuildPurchaseTransactions(order *entity.PurchaseOrder) []entity.CashTransaction {
	pd := order.PaymentDetails

	if pd.Method == entity.PaymentBankSlip && len(pd.Installments) > 0 {
		txns := make([]entity.CashTransaction, 0, len(pd.Installments))
		total := len(pd.Installments)
		for _, inst := range pd.Installments {
			txns = append(txns, entity.CashTransaction{
				ID:          uuid.NewString(),
				Description: fmt.Sprintf("Compra #%s (%d/%d) - %s", order.ID, inst.Number, total, order.SupplierInfo.Name),
				Amount:      inst.Amount,
				Type:        entity.TransactionExpense,
				Category:    entity.CategoryProductPurchase,
				Status:      entity.TransactionPending,
				Timestamp:   inst.DueDate,
				DueDate:     inst.DueDate,
				PurchaseID:  order.ID,
			})
		}
		return txns
	}

	ts := order.CreatedAt
	if pd.PaymentDate != nil {
		ts = *pd.PaymentDate
	}
	return []entity.CashTransaction{{
		ID:          uuid.NewString(),
		Description: fmt.Sprintf("Compra #%s (%s) - %s", order.ID, pd.Method, order.SupplierInfo.Name),
		Amount:      order.TotalCost,
		Type:        entity.TransactionExpense,
		Category:    entity.CategoryProductPurchase,
		Status:      entity.TransactionPaid,
		Timestamp:   ts,
		DueDate:     ts,
		PurchaseID:  order.ID,
	}}
}

// SyncPurchaseCreate grava as despesas derivadas de uma compra recém-criada.
func (s *Synchronizer) SyncPurchaseCreate(order *entity.PurchaseOrder) error {
	return s.transactions.CreateBatch(BuildPurchaseTransactions(order))
}

// ReconcilePurchaseUpdate substitui as despesas derivadas após a edição de
// uma compra: apaga as antigas e regenera a partir do documento atual.
func (s *Synchronizer) ReconcilePurchaseUpdate(order *entity.PurchaseOrder) error {
	if err := s.transactions.DeleteByPurchaseID(order.ID); err != nil {
		return err
	}
	return s.SyncPurchaseCreate(order)
}

// ReconcilePurchaseDelete apaga as despesas derivadas de uma compra excluída.
func (s *Synchronizer) ReconcilePurchaseDelete(purchaseID string) error {
	return s.transactions.DeleteByPurchaseID(purchaseID)
}

// BuildSaleTransaction monta a receita Paga de uma venda de balcão.
func BuildSaleTransaction(sale *entity.TicketSale) entity.CashTransaction {
	return entity.CashTransaction{
		ID:          uuid.NewString(),
		Description: fmt.Sprintf("Venda #%s", sale.ID),
		Amount:      sale.Total,
		Type:        entity.TransactionIncome,
		Category:    entity.CategorySalesRevenue,
		Status:      entity.TransactionPaid,
		Timestamp:   sale.Timestamp,
		DueDate:     sale.Timestamp,
		SaleID:      sale.ID,
	}
}

// RecordSale grava a receita derivada de uma venda.
func (s *Synchronizer) RecordSale(sale *entity.TicketSale) error {
	txn := BuildSaleTransaction(sale)
	return s.transactions.Create(&txn)
}

// BuildServiceOrderTransactions monta o par receita/custo da conclusão de
// uma ordem de serviço: receita Paga pelo valor final acordado (ou o preço
// original, na ausência de ajuste) e custo Pendente pelo custo de peças.
// O par é sempre gerado, mesmo com custo zero.
func BuildServiceOrderTransactions(order *entity.ServiceOrder, completedAt time.Time) []entity.CashTransaction {
	revenue := order.TotalPrice
	if order.FinalPrice != nil {
		revenue = *order.FinalPrice
	}

	return []entity.CashTransaction{
		{
			ID:             uuid.NewString(),
			Description:    fmt.Sprintf("Faturamento OS #%s - %s", order.ID, order.ServiceDescription),
			Amount:         revenue,
			Type:           entity.TransactionIncome,
			Category:       entity.CategoryServiceRevenue,
			Status:         entity.TransactionPaid,
			Timestamp:      completedAt,
			ServiceOrderID: order.ID,
		},
		{
			ID:             uuid.NewString(),
			Description:    fmt.Sprintf("Custo OS #%s - %s", order.ID, order.ServiceDescription),
			Amount:         order.TotalCost,
			Type:           entity.TransactionExpense,
			Category:       entity.CategoryServiceCost,
			Status:         entity.TransactionPending,
			Timestamp:      completedAt,
			ServiceOrderID: order.ID,
		},
	}
}

// CompleteServiceOrder grava receita e custo derivados da conclusão.
func (s *Synchronizer) CompleteServiceOrder(order *entity.ServiceOrder, completedAt time.Time) error {
	return s.transactions.CreateBatch(BuildServiceOrderTransactions(order, completedAt))
}

// ReopenServiceOrder apaga as transações derivadas de uma ordem reaberta ou
// excluída.
func (s *Synchronizer) ReopenServiceOrder(serviceOrderID string) error {
	return s.transactions.DeleteByServiceOrderID(serviceOrderID)
}
