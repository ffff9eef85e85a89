package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL
// (aceita pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository monta o adaptador de persistência de produtos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, barcode, name, price, cost, stock, category, brand, model, location, last_sold, requires_unique_id`

// Create persiste um novo produto. Código de barras repetido devolve ErrDuplicate.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (id, barcode, name, price, cost, stock, category, brand, model, location, last_sold, requires_unique_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Barcode, p.Name, p.Price, p.Cost, p.Stock,
		p.Category, p.Brand, p.Model, p.Location, p.LastSold, p.RequiresUniqueID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update atualiza um produto existente.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET barcode = $2, name = $3, price = $4, cost = $5, stock = $6,
			category = $7, brand = $8, model = $9, location = $10, last_sold = $11, requires_unique_id = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Barcode, p.Name, p.Price, p.Cost, p.Stock,
		p.Category, p.Brand, p.Model, p.Location, p.LastSold, p.RequiresUniqueID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um produto do catálogo.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID busca um produto pelo código de barras.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List devolve o catálogo completo ordenado por nome.
func (r *ProductRepo) List() ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// AdjustStock soma delta ao estoque e opcionalmente carimba a última venda.
func (r *ProductRepo) AdjustStock(id string, delta int64, lastSold *time.Time) error {
	query := `UPDATE products SET stock = stock + $2, last_sold = COALESCE($3, last_sold) WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, delta, lastSold)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStockAndCost grava estoque e custo médio de uma vez.
func (r *ProductRepo) SetStockAndCost(id string, stock int64, cost decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, cost = $3 WHERE id = $1`, id, stock, cost)
	if err != nil {
		return fmt.Errorf("set stock and cost: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Barcode, &p.Name, &p.Price, &p.Cost, &p.Stock,
		&p.Category, &p.Brand, &p.Model, &p.Location, &p.LastSold, &p.RequiresUniqueID,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
