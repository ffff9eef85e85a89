package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorcell/gestor-api/internal/application/ledger"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────
// Compras
// ──────────────────────────────────────────────────────────────────────────

func TestBuildPurchaseTransactions_BoletoGeraParcelasPendentes(t *testing.T) {
	due1 := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)
	due2 := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	order := &entity.PurchaseOrder{
		ID:        "PO-202507-0001",
		TotalCost: decimal.NewFromInt(1000),
		PaymentDetails: entity.PaymentDetails{
			Method: entity.PaymentBankSlip,
			Bank:   "Banco do Brasil",
			Installments: []entity.Installment{
				{Number: 1, Amount: decimal.NewFromInt(500), DueDate: due1},
				{Number: 2, Amount: decimal.NewFromInt(500), DueDate: due2},
			},
		},
		SupplierInfo: entity.SupplierInfo{Name: "Distribuidora ABC"},
	}

	txns := ledger.BuildPurchaseTransactions(order)
	require.Len(t, txns, 2)

	assert.Equal(t, "Compra #PO-202507-0001 (1/2) - Distribuidora ABC", txns[0].Description)
	assert.Equal(t, "Compra #PO-202507-0001 (2/2) - Distribuidora ABC", txns[1].Description)
	for i, txn := range txns {
		assert.Equal(t, entity.TransactionExpense, txn.Type)
		assert.Equal(t, entity.TransactionPending, txn.Status, "parcela %d deve nascer pendente", i+1)
		assert.Equal(t, entity.CategoryProductPurchase, txn.Category)
		assert.Equal(t, "PO-202507-0001", txn.PurchaseID)
		assert.True(t, decimal.NewFromInt(500).Equal(txn.Amount))
	}
	assert.Equal(t, due1, txns[0].DueDate)
	assert.Equal(t, due2, txns[1].DueDate)
}

func TestBuildPurchaseTransactions_PagamentoAVistaGeraDespesaPaga(t *testing.T) {
	paid := time.Date(2025, 7, 5, 14, 0, 0, 0, time.UTC)
	order := &entity.PurchaseOrder{
		ID:        "PO-202507-0002",
		TotalCost: decimal.NewFromInt(750),
		PaymentDetails: entity.PaymentDetails{
			Method:      entity.PaymentPix,
			PaymentDate: &paid,
		},
		SupplierInfo: entity.SupplierInfo{Name: "Peças & Cia"},
		CreatedAt:    time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	txns := ledger.BuildPurchaseTransactions(order)
	require.Len(t, txns, 1)

	txn := txns[0]
	assert.Equal(t, "Compra #PO-202507-0002 (Pix) - Peças & Cia", txn.Description)
	assert.Equal(t, entity.TransactionPaid, txn.Status)
	assert.True(t, decimal.NewFromInt(750).Equal(txn.Amount))
	assert.Equal(t, paid, txn.Timestamp, "data de pagamento informada prevalece sobre a criação")
	assert.Equal(t, paid, txn.DueDate, "despesa à vista também registra o vencimento na data do pagamento")
}

func TestBuildPurchaseTransactions_SemDataDePagamentoUsaCriacao(t *testing.T) {
	created := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	order := &entity.PurchaseOrder{
		ID:             "PO-202507-0003",
		TotalCost:      decimal.NewFromInt(100),
		PaymentDetails: entity.PaymentDetails{Method: entity.PaymentCash},
		SupplierInfo:   entity.SupplierInfo{Name: "Fornecedor"},
		CreatedAt:      created,
	}

	txns := ledger.BuildPurchaseTransactions(order)
	require.Len(t, txns, 1)
	assert.Equal(t, created, txns[0].Timestamp)
}

// ──────────────────────────────────────────────────────────────────────────
// Vendas
// ──────────────────────────────────────────────────────────────────────────

func TestBuildSaleTransaction(t *testing.T) {
	ts := time.Date(2025, 7, 20, 16, 30, 0, 0, time.UTC)
	sale := &entity.TicketSale{
		ID:        "TC-202507-0042",
		Total:     decimal.NewFromFloat(199.90),
		Timestamp: ts,
	}

	txn := ledger.BuildSaleTransaction(sale)

	assert.Equal(t, "Venda #TC-202507-0042", txn.Description)
	assert.Equal(t, entity.TransactionIncome, txn.Type)
	assert.Equal(t, entity.TransactionPaid, txn.Status)
	assert.Equal(t, entity.CategorySalesRevenue, txn.Category)
	assert.Equal(t, "TC-202507-0042", txn.SaleID)
	assert.Equal(t, ts, txn.Timestamp)
	assert.Equal(t, ts, txn.DueDate)
	assert.True(t, decimal.NewFromFloat(199.90).Equal(txn.Amount))
}

// ──────────────────────────────────────────────────────────────────────────
// Ordens de serviço
// ──────────────────────────────────────────────────────────────────────────

func TestBuildServiceOrderTransactions_ReceitaECusto(t *testing.T) {
	completedAt := time.Date(2025, 7, 22, 11, 0, 0, 0, time.UTC)
	order := &entity.ServiceOrder{
		ID:                 "OS-202507-0007",
		ServiceDescription: "Troca de tela iPhone 13",
		TotalPrice:         decimal.NewFromInt(450),
		TotalCost:          decimal.NewFromInt(200),
		OtherCosts:         decimal.NewFromInt(30),
	}

	txns := ledger.BuildServiceOrderTransactions(order, completedAt)
	require.Len(t, txns, 2)

	income, cost := txns[0], txns[1]
	assert.Equal(t, "Faturamento OS #OS-202507-0007 - Troca de tela iPhone 13", income.Description)
	assert.Equal(t, entity.TransactionIncome, income.Type)
	assert.Equal(t, entity.TransactionPaid, income.Status)
	assert.True(t, decimal.NewFromInt(450).Equal(income.Amount))

	assert.Equal(t, "Custo OS #OS-202507-0007 - Troca de tela iPhone 13", cost.Description)
	assert.Equal(t, entity.TransactionExpense, cost.Type)
	assert.Equal(t, entity.TransactionPending, cost.Status, "custo nasce pendente até o acerto com o fornecedor")
	assert.True(t, decimal.NewFromInt(200).Equal(cost.Amount), "a despesa registra o custo de peças; outros custos não entram no caixa")

	for _, txn := range txns {
		assert.Equal(t, "OS-202507-0007", txn.ServiceOrderID)
		assert.Equal(t, completedAt, txn.Timestamp)
	}
}

func TestBuildServiceOrderTransactions_PrecoFinalPrevalece(t *testing.T) {
	final := decimal.NewFromInt(400)
	order := &entity.ServiceOrder{
		ID:         "OS-202507-0008",
		TotalPrice: decimal.NewFromInt(450),
		FinalPrice: &final,
	}

	txns := ledger.BuildServiceOrderTransactions(order, time.Now())
	require.NotEmpty(t, txns)
	assert.True(t, final.Equal(txns[0].Amount), "valor negociado no fechamento substitui o preço original")
}

func TestBuildServiceOrderTransactions_SemCustoGeraParMesmoAssim(t *testing.T) {
	order := &entity.ServiceOrder{
		ID:         "OS-202507-0009",
		TotalPrice: decimal.NewFromInt(100),
	}

	txns := ledger.BuildServiceOrderTransactions(order, time.Now())
	require.Len(t, txns, 2, "a conclusão sempre gera receita e custo, mesmo com custo zero")
	assert.Equal(t, entity.TransactionIncome, txns[0].Type)
	assert.Equal(t, entity.TransactionExpense, txns[1].Type)
	assert.True(t, txns[1].Amount.IsZero())
}
