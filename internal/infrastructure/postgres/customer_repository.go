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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementação do porto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository monta o adaptador de persistência de clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Upsert insere o cliente ou atualiza nome e documento quando o telefone já existe.
func (r *CustomerRepo) Upsert(c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, cnpj_cpf)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			cnpj_cpf = CASE WHEN EXCLUDED.cnpj_cpf <> '' THEN EXCLUDED.cnpj_cpf ELSE customers.cnpj_cpf END`
	if _, err := r.q.Exec(context.Background(), query, c.ID, c.Name, c.CnpjCpf); err != nil {
		return fmt.Errorf("upsert customer: %w", err)
	}
	return nil
}

// Update atualiza os dados cadastrais de um cliente existente.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE customers SET name = $2, cnpj_cpf = $3 WHERE id = $1`, c.ID, c.Name, c.CnpjCpf)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um cliente.
func (r *CustomerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID busca um cliente pelo telefone normalizado.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, cnpj_cpf FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.CnpjCpf)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List devolve todos os clientes ordenados por nome.
func (r *CustomerRepo) List() ([]entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, cnpj_cpf FROM customers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.CnpjCpf); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
