package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// TransactionUseCase casos de uso de lançamentos manuais do livro-caixa.
// Transações derivadas de compras, vendas e ordens de serviço são
// gerenciadas pelos respectivos fluxos e não podem ser editadas por aqui.
type TransactionUseCase struct {
	repo repository.CashTransactionRepository
}

// NewTransactionUseCase monta o caso de uso.
func NewTransactionUseCase(repo repository.CashTransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Create lança uma transação manual. Sem status ela nasce Paga; com
// vencimento informado, o vencimento vira a data de competência.
func (uc *TransactionUseCase) Create(in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if strings.TrimSpace(in.Description) == "" || in.Amount.IsNegative() || in.Amount.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.TransactionIncome && in.Type != entity.TransactionExpense {
		return nil, domain.ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = entity.TransactionPaid
	}
	if status != entity.TransactionPaid && status != entity.TransactionPending {
		return nil, domain.ErrInvalidInput
	}

	ts := time.Now()
	var due time.Time
	if in.DueDate != nil {
		ts = *in.DueDate
		due = *in.DueDate
	}

	txn := &entity.CashTransaction{
		ID:          uuid.NewString(),
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Status:      status,
		Timestamp:   ts,
		DueDate:     due,
	}
	if err := uc.repo.Create(txn); err != nil {
		return nil, err
	}
	resp := toTransactionResponse(txn)
	return &resp, nil
}

// Update edita uma transação manual. Transação derivada devolve ErrConflict.
func (uc *TransactionUseCase) Update(id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	txn, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if isDerived(txn) {
		return nil, domain.ErrConflict
	}

	if in.Description != nil {
		txn.Description = *in.Description
	}
	if in.Amount != nil {
		txn.Amount = *in.Amount
	}
	if in.Category != nil {
		txn.Category = *in.Category
	}
	if in.Status != nil {
		txn.Status = *in.Status
	}
	if in.DueDate != nil {
		txn.DueDate = *in.DueDate
	}

	if err := uc.repo.Update(txn); err != nil {
		return nil, err
	}
	resp := toTransactionResponse(txn)
	return &resp, nil
}

// Delete remove uma transação manual. Transação derivada devolve ErrConflict.
func (uc *TransactionUseCase) Delete(id string) error {
	txn, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if isDerived(txn) {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// List devolve o livro-caixa completo.
func (uc *TransactionUseCase) List() ([]dto.TransactionResponse, error) {
	txns, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, toTransactionResponse(&txns[i]))
	}
	return out, nil
}

func isDerived(t *entity.CashTransaction) bool {
	return t.PurchaseID != "" || t.SaleID != "" || t.ServiceOrderID != ""
}

func toTransactionResponse(t *entity.CashTransaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:             t.ID,
		Description:    t.Description,
		Amount:         t.Amount,
		Type:           t.Type,
		Category:       t.Category,
		Status:         t.Status,
		Timestamp:      t.Timestamp,
		ServiceOrderID: t.ServiceOrderID,
		PurchaseID:     t.PurchaseID,
		SaleID:         t.SaleID,
	}
	if !t.DueDate.IsZero() {
		due := t.DueDate
		resp.DueDate = &due
	}
	return resp
}
