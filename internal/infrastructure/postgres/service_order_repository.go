package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

var _ repository.ServiceOrderRepository = (*ServiceOrderRepo)(nil)

// ServiceOrderRepo implementação do porto ServiceOrderRepository sobre PostgreSQL.
type ServiceOrderRepo struct {
	q Querier
}

// NewServiceOrderRepository monta o adaptador de persistência de ordens de serviço.
func NewServiceOrderRepository(q Querier) *ServiceOrderRepo {
	return &ServiceOrderRepo{q: q}
}

const serviceOrderColumns = `id, customer_name, customer_whatsapp, customer_contact, customer_id, customer_cnpj_cpf,
	service_id, service_description, total_price, total_cost, other_costs, status,
	final_price, discount, payment_method, created_at, completed_at`

// Create persiste uma nova ordem de serviço.
func (r *ServiceOrderRepo) Create(o *entity.ServiceOrder) error {
	query := `
		INSERT INTO service_orders (` + serviceOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.CustomerName, o.CustomerWhatsapp, o.CustomerContact, o.CustomerID, o.CustomerCnpjCpf,
		o.ServiceID, o.ServiceDescription, o.TotalPrice, o.TotalCost, o.OtherCosts, o.Status,
		o.FinalPrice, o.Discount, o.PaymentMethod, o.CreatedAt, o.CompletedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service order: %w", err)
	}
	return nil
}

// Update regrava uma ordem existente.
func (r *ServiceOrderRepo) Update(o *entity.ServiceOrder) error {
	query := `
		UPDATE service_orders SET customer_name = $2, customer_whatsapp = $3, customer_contact = $4,
			customer_id = $5, customer_cnpj_cpf = $6, service_id = $7, service_description = $8,
			total_price = $9, total_cost = $10, other_costs = $11, status = $12,
			final_price = $13, discount = $14, payment_method = $15, completed_at = $16
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		o.ID, o.CustomerName, o.CustomerWhatsapp, o.CustomerContact, o.CustomerID, o.CustomerCnpjCpf,
		o.ServiceID, o.ServiceDescription, o.TotalPrice, o.TotalCost, o.OtherCosts, o.Status,
		o.FinalPrice, o.Discount, o.PaymentMethod, o.CompletedAt)
	if err != nil {
		return fmt.Errorf("update service order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma ordem de serviço.
func (r *ServiceOrderRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM service_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID busca uma ordem pelo identificador.
func (r *ServiceOrderRepo) GetByID(id string) (*entity.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders WHERE id = $1`
	o, err := scanServiceOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get service order: %w", err)
	}
	return o, nil
}

// List devolve todas as ordens, da mais recente para a mais antiga.
func (r *ServiceOrderRepo) List() ([]entity.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	defer rows.Close()

	var out []entity.ServiceOrder
	for rows.Next() {
		o, err := scanServiceOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service order: %w", err)
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func scanServiceOrder(row pgx.Row) (*entity.ServiceOrder, error) {
	var o entity.ServiceOrder
	err := row.Scan(
		&o.ID, &o.CustomerName, &o.CustomerWhatsapp, &o.CustomerContact, &o.CustomerID, &o.CustomerCnpjCpf,
		&o.ServiceID, &o.ServiceDescription, &o.TotalPrice, &o.TotalCost, &o.OtherCosts, &o.Status,
		&o.FinalPrice, &o.Discount, &o.PaymentMethod, &o.CreatedAt, &o.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
