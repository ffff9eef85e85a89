package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

var _ repository.CashTransactionRepository = (*CashTransactionRepo)(nil)

// CashTransactionRepo implementação do porto CashTransactionRepository sobre PostgreSQL.
type CashTransactionRepo struct {
	q Querier
}

// NewCashTransactionRepository monta o adaptador do livro-caixa.
func NewCashTransactionRepository(q Querier) *CashTransactionRepo {
	return &CashTransactionRepo{q: q}
}

const transactionColumns = `id, description, amount, type, category, status, "timestamp", due_date, service_order_id, purchase_id, sale_id`

// Create persiste um lançamento.
func (r *CashTransactionRepo) Create(t *entity.CashTransaction) error {
	query := `
		INSERT INTO cash_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Description, t.Amount, t.Type, t.Category, t.Status, t.Timestamp,
		nullableTime(t.DueDate), t.ServiceOrderID, t.PurchaseID, t.SaleID)
	if err != nil {
		return fmt.Errorf("insert cash transaction: %w", err)
	}
	return nil
}

// CreateBatch persiste vários lançamentos de uma vez.
func (r *CashTransactionRepo) CreateBatch(txns []entity.CashTransaction) error {
	for i := range txns {
		if err := r.Create(&txns[i]); err != nil {
			return err
		}
	}
	return nil
}

// Update regrava um lançamento existente.
func (r *CashTransactionRepo) Update(t *entity.CashTransaction) error {
	query := `
		UPDATE cash_transactions SET description = $2, amount = $3, type = $4, category = $5,
			status = $6, "timestamp" = $7, due_date = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		t.ID, t.Description, t.Amount, t.Type, t.Category, t.Status, t.Timestamp, nullableTime(t.DueDate))
	if err != nil {
		return fmt.Errorf("update cash transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um lançamento.
func (r *CashTransactionRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM cash_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cash transaction: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID busca um lançamento pelo identificador.
func (r *CashTransactionRepo) GetByID(id string) (*entity.CashTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM cash_transactions WHERE id = $1`
	t, err := scanTransaction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get cash transaction: %w", err)
	}
	return t, nil
}

// List devolve o livro-caixa completo, do mais recente para o mais antigo.
func (r *CashTransactionRepo) List() ([]entity.CashTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM cash_transactions ORDER BY "timestamp" DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cash transactions: %w", err)
	}
	defer rows.Close()

	var out []entity.CashTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cash transaction: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// DeleteByPurchaseID remove todas as despesas derivadas de uma compra.
func (r *CashTransactionRepo) DeleteByPurchaseID(purchaseID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cash_transactions WHERE purchase_id = $1`, purchaseID)
	if err != nil {
		return fmt.Errorf("delete transactions by purchase: %w", err)
	}
	return nil
}

// DeleteBySaleID remove a receita derivada de uma venda.
func (r *CashTransactionRepo) DeleteBySaleID(saleID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cash_transactions WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete transactions by sale: %w", err)
	}
	return nil
}

// DeleteByServiceOrderID remove receita e custo derivados de uma ordem de serviço.
func (r *CashTransactionRepo) DeleteByServiceOrderID(serviceOrderID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cash_transactions WHERE service_order_id = $1`, serviceOrderID)
	if err != nil {
		return fmt.Errorf("delete transactions by service order: %w", err)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*entity.CashTransaction, error) {
	var (
		t   entity.CashTransaction
		due *time.Time
	)
	err := row.Scan(
		&t.ID, &t.Description, &t.Amount, &t.Type, &t.Category, &t.Status, &t.Timestamp,
		&due, &t.ServiceOrderID, &t.PurchaseID, &t.SaleID)
	if err != nil {
		return nil, err
	}
	if due != nil {
		t.DueDate = *due
	}
	return &t, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
