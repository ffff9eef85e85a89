package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

var _ repository.TicketSaleRepository = (*TicketSaleRepo)(nil)

// TicketSaleRepo implementação do porto TicketSaleRepository sobre
// PostgreSQL. Os itens, com seus snapshots embutidos, ficam em JSONB.
type TicketSaleRepo struct {
	q Querier
}

// NewTicketSaleRepository monta o adaptador de persistência de vendas.
func NewTicketSaleRepository(q Querier) *TicketSaleRepo {
	return &TicketSaleRepo{q: q}
}

type saleItemRow struct {
	ItemID           string          `json:"itemId"`
	Item             json.RawMessage `json:"item"`
	Quantity         int64           `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	UnitCost         decimal.Decimal `json:"unitCost"`
	Type             string          `json:"type"`
	UniqueIdentifier string          `json:"uniqueIdentifier,omitempty"`
}

const saleColumns = `id, items, total, total_cost, discount, payment_method, "timestamp", customer_name, customer_whatsapp, customer_id, sale_hour, user_id, user_name`

// Create persiste um novo cupom de venda.
func (r *TicketSaleRepo) Create(s *entity.TicketSale) error {
	itemRows := make([]saleItemRow, 0, len(s.Items))
	for _, it := range s.Items {
		itemRows = append(itemRows, saleItemRow(it))
	}
	items, err := json.Marshal(itemRows)
	if err != nil {
		return fmt.Errorf("marshal sale items: %w", err)
	}

	query := `
		INSERT INTO ticket_sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(context.Background(), query,
		s.ID, items, s.Total, s.TotalCost, s.Discount, s.PaymentMethod, s.Timestamp,
		s.CustomerName, s.CustomerWhatsapp, s.CustomerID, s.SaleHour, s.UserID, s.UserName)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ticket sale: %w", err)
	}
	return nil
}

// Delete remove um cupom de venda.
func (r *TicketSaleRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM ticket_sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID busca uma venda pelo identificador.
func (r *TicketSaleRepo) GetByID(id string) (*entity.TicketSale, error) {
	query := `SELECT ` + saleColumns + ` FROM ticket_sales WHERE id = $1`
	s, err := scanTicketSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get ticket sale: %w", err)
	}
	return s, nil
}

// List devolve todas as vendas, da mais recente para a mais antiga.
func (r *TicketSaleRepo) List() ([]entity.TicketSale, error) {
	query := `SELECT ` + saleColumns + ` FROM ticket_sales ORDER BY "timestamp" DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ticket sales: %w", err)
	}
	defer rows.Close()

	var out []entity.TicketSale
	for rows.Next() {
		s, err := scanTicketSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket sale: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func scanTicketSale(row pgx.Row) (*entity.TicketSale, error) {
	var (
		s     entity.TicketSale
		items []byte
	)
	err := row.Scan(
		&s.ID, &items, &s.Total, &s.TotalCost, &s.Discount, &s.PaymentMethod, &s.Timestamp,
		&s.CustomerName, &s.CustomerWhatsapp, &s.CustomerID, &s.SaleHour, &s.UserID, &s.UserName)
	if err != nil {
		return nil, err
	}

	var itemRows []saleItemRow
	if err := json.Unmarshal(items, &itemRows); err != nil {
		return nil, fmt.Errorf("unmarshal sale items: %w", err)
	}
	s.Items = make([]entity.SaleItem, 0, len(itemRows))
	for _, it := range itemRows {
		s.Items = append(s.Items, entity.SaleItem(it))
	}
	return &s, nil
}
