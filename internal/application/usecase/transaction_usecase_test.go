package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/application/usecase"
	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────
// Fake em memória
// ──────────────────────────────────────────────────────────────────────────

type memTransactionRepo struct {
	byID map[string]*entity.CashTransaction
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{byID: map[string]*entity.CashTransaction{}}
}

func (r *memTransactionRepo) Create(txn *entity.CashTransaction) error {
	cp := *txn
	r.byID[txn.ID] = &cp
	return nil
}

func (r *memTransactionRepo) CreateBatch(txns []entity.CashTransaction) error {
	for i := range txns {
		if err := r.Create(&txns[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *memTransactionRepo) Update(txn *entity.CashTransaction) error {
	if _, ok := r.byID[txn.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *txn
	r.byID[txn.ID] = &cp
	return nil
}

func (r *memTransactionRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memTransactionRepo) GetByID(id string) (*entity.CashTransaction, error) {
	txn, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *txn
	return &cp, nil
}

func (r *memTransactionRepo) List() ([]entity.CashTransaction, error) {
	out := make([]entity.CashTransaction, 0, len(r.byID))
	for _, txn := range r.byID {
		out = append(out, *txn)
	}
	return out, nil
}

func (r *memTransactionRepo) DeleteByPurchaseID(purchaseID string) error {
	for id, txn := range r.byID {
		if txn.PurchaseID == purchaseID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *memTransactionRepo) DeleteBySaleID(saleID string) error {
	for id, txn := range r.byID {
		if txn.SaleID == saleID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *memTransactionRepo) DeleteByServiceOrderID(serviceOrderID string) error {
	for id, txn := range r.byID {
		if txn.ServiceOrderID == serviceOrderID {
			delete(r.byID, id)
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────

func TestCreateTransaction_SemStatusNascePaga(t *testing.T) {
	repo := newMemTransactionRepo()
	uc := usecase.NewTransactionUseCase(repo)

	out, err := uc.Create(dto.CreateTransactionRequest{
		Description: "Aluguel de agosto",
		Amount:      decimal.NewFromInt(1200),
		Type:        entity.TransactionExpense,
		Category:    entity.CategoryRent,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TransactionPaid, out.Status,
		"transação sem status informado deve nascer Paga")
	assert.Nil(t, out.DueDate, "sem vencimento informado não deve haver dueDate")
}

func TestCreateTransaction_ComVencimentoUsaVencimentoComoCompetencia(t *testing.T) {
	repo := newMemTransactionRepo()
	uc := usecase.NewTransactionUseCase(repo)

	due := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	out, err := uc.Create(dto.CreateTransactionRequest{
		Description: "Boleto do fornecedor",
		Amount:      decimal.NewFromInt(350),
		Type:        entity.TransactionExpense,
		Category:    entity.CategoryProductPurchase,
		Status:      entity.TransactionPending,
		DueDate:     &due,
	})
	require.NoError(t, err)

	require.NotNil(t, out.DueDate)
	assert.True(t, out.DueDate.Equal(due))
	assert.True(t, out.Timestamp.Equal(due),
		"com vencimento informado, a competência deve ser a data do vencimento")
}

func TestCreateTransaction_EntradaInvalida(t *testing.T) {
	repo := newMemTransactionRepo()
	uc := usecase.NewTransactionUseCase(repo)

	cases := []struct {
		name string
		req  dto.CreateTransactionRequest
	}{
		{"descrição vazia", dto.CreateTransactionRequest{Amount: decimal.NewFromInt(10), Type: entity.TransactionIncome}},
		{"valor zero", dto.CreateTransactionRequest{Description: "x", Type: entity.TransactionIncome}},
		{"valor negativo", dto.CreateTransactionRequest{Description: "x", Amount: decimal.NewFromInt(-5), Type: entity.TransactionIncome}},
		{"tipo desconhecido", dto.CreateTransactionRequest{Description: "x", Amount: decimal.NewFromInt(10), Type: "transfer"}},
		{"status desconhecido", dto.CreateTransactionRequest{Description: "x", Amount: decimal.NewFromInt(10), Type: entity.TransactionIncome, Status: "Agendado"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────
// Tests de proteção das transações derivadas
// ──────────────────────────────────────────────────────────────────────────

func TestUpdateTransaction_DerivadaDeCompraDevolveConflito(t *testing.T) {
	repo := newMemTransactionRepo()
	require.NoError(t, repo.Create(&entity.CashTransaction{
		ID:          "txn-1",
		Description: "Compra #PO-202608-0001 (Pix) - Fornecedor",
		Amount:      decimal.NewFromInt(500),
		Type:        entity.TransactionExpense,
		Status:      entity.TransactionPaid,
		PurchaseID:  "PO-202608-0001",
	}))
	uc := usecase.NewTransactionUseCase(repo)

	novaDesc := "tentativa de edição"
	_, err := uc.Update("txn-1", dto.UpdateTransactionRequest{Description: &novaDesc})
	assert.ErrorIs(t, err, domain.ErrConflict,
		"transação derivada de compra não pode ser editada manualmente")
}

func TestDeleteTransaction_DerivadaDeVendaDevolveConflito(t *testing.T) {
	repo := newMemTransactionRepo()
	require.NoError(t, repo.Create(&entity.CashTransaction{
		ID:          "txn-2",
		Description: "Venda #TC-202608-0003",
		Amount:      decimal.NewFromInt(99),
		Type:        entity.TransactionIncome,
		Status:      entity.TransactionPaid,
		SaleID:      "TC-202608-0003",
	}))
	uc := usecase.NewTransactionUseCase(repo)

	err := uc.Delete("txn-2")
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = repo.GetByID("txn-2")
	assert.NoError(t, err, "a transação derivada deve continuar no caixa")
}

func TestDeleteTransaction_ManualRemove(t *testing.T) {
	repo := newMemTransactionRepo()
	require.NoError(t, repo.Create(&entity.CashTransaction{
		ID:          "txn-3",
		Description: "Conta de luz",
		Amount:      decimal.NewFromInt(180),
		Type:        entity.TransactionExpense,
		Status:      entity.TransactionPaid,
	}))
	uc := usecase.NewTransactionUseCase(repo)

	require.NoError(t, uc.Delete("txn-3"))

	_, err := repo.GetByID("txn-3")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
