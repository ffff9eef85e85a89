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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementação do porto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository monta o adaptador de persistência de fornecedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Upsert insere o fornecedor ou atualiza os dados quando o documento já existe.
func (r *SupplierRepo) Upsert(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_person, phone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			contact_person = CASE WHEN EXCLUDED.contact_person <> '' THEN EXCLUDED.contact_person ELSE suppliers.contact_person END,
			phone = CASE WHEN EXCLUDED.phone <> '' THEN EXCLUDED.phone ELSE suppliers.phone END`
	if _, err := r.q.Exec(context.Background(), query, s.ID, s.Name, s.ContactPerson, s.Phone); err != nil {
		return fmt.Errorf("upsert supplier: %w", err)
	}
	return nil
}

// Update atualiza os dados cadastrais de um fornecedor existente.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET name = $2, contact_person = $3, phone = $4 WHERE id = $1`,
		s.ID, s.Name, s.ContactPerson, s.Phone)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um fornecedor.
func (r *SupplierRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID busca um fornecedor pelo documento normalizado.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, contact_person, phone FROM suppliers WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List devolve todos os fornecedores ordenados por nome.
func (r *SupplierRepo) List() ([]entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, contact_person, phone FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var out []entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Phone); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
