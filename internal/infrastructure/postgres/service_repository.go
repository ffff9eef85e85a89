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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementação do porto ServiceRepository sobre PostgreSQL.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository monta o adaptador do catálogo de serviços.
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

const serviceColumns = `id, name, brand, model, price, part_cost, service_cost, shipping_cost`

// Create persiste um novo serviço.
func (r *ServiceRepo) Create(s *entity.Service) error {
	query := `
		INSERT INTO services (id, name, brand, model, price, part_cost, service_cost, shipping_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Brand, s.Model, s.Price, s.PartCost, s.ServiceCost, s.ShippingCost)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// Update atualiza um serviço existente.
func (r *ServiceRepo) Update(s *entity.Service) error {
	query := `
		UPDATE services SET name = $2, brand = $3, model = $4, price = $5,
			part_cost = $6, service_cost = $7, shipping_cost = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Brand, s.Model, s.Price, s.PartCost, s.ServiceCost, s.ShippingCost)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um serviço.
func (r *ServiceRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID busca um serviço pelo identificador.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	var s entity.Service
	err := r.q.QueryRow(context.Background(),
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Brand, &s.Model, &s.Price, &s.PartCost, &s.ServiceCost, &s.ShippingCost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// List devolve o catálogo completo ordenado por nome.
func (r *ServiceRepo) List() ([]entity.Service, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+serviceColumns+` FROM services ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var out []entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Brand, &s.Model, &s.Price, &s.PartCost, &s.ServiceCost, &s.ShippingCost); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
