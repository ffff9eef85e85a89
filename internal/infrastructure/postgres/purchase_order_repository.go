package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementação do porto PurchaseOrderRepository sobre
// PostgreSQL. Itens, condições de pagamento e snapshot do fornecedor são
// documentos JSONB dentro da linha da ordem.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository monta o adaptador de persistência de compras.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Shapes JSONB das colunas de documento.
type purchaseItemRow struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
}

type installmentRow struct {
	Number  int             `json:"number"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"dueDate"`
}

type paymentDetailsRow struct {
	Method       string           `json:"method"`
	PaymentDate  *time.Time       `json:"paymentDate,omitempty"`
	Bank         string           `json:"bank,omitempty"`
	Installments []installmentRow `json:"installments,omitempty"`
}

type supplierInfoRow struct {
	Name          string `json:"name"`
	CnpjCpf       string `json:"cnpjCpf"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// Create persiste uma nova ordem de compra.
func (r *PurchaseOrderRepo) Create(o *entity.PurchaseOrder) error {
	items, payment, supplier, err := marshalPurchaseDocs(o)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO purchase_orders (id, items, freight_cost, other_cost, total_cost, payment_details, supplier_info, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		o.ID, items, o.FreightCost, o.OtherCost, o.TotalCost, payment, supplier, o.Reference, o.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// Update regrava uma ordem existente.
func (r *PurchaseOrderRepo) Update(o *entity.PurchaseOrder) error {
	items, payment, supplier, err := marshalPurchaseDocs(o)
	if err != nil {
		return err
	}
	query := `
		UPDATE purchase_orders SET items = $2, freight_cost = $3, other_cost = $4, total_cost = $5,
			payment_details = $6, supplier_info = $7, reference = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		o.ID, items, o.FreightCost, o.OtherCost, o.TotalCost, payment, supplier, o.Reference)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma ordem de compra.
func (r *PurchaseOrderRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID busca uma ordem pelo identificador.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, items, freight_cost, other_cost, total_cost, payment_details, supplier_info, reference, created_at
		FROM purchase_orders WHERE id = $1`
	o, err := scanPurchaseOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return o, nil
}

// List devolve todas as ordens, da mais recente para a mais antiga.
func (r *PurchaseOrderRepo) List() ([]entity.PurchaseOrder, error) {
	query := `
		SELECT id, items, freight_cost, other_cost, total_cost, payment_details, supplier_info, reference, created_at
		FROM purchase_orders ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var out []entity.PurchaseOrder
	for rows.Next() {
		o, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func marshalPurchaseDocs(o *entity.PurchaseOrder) (items, payment, supplier []byte, err error) {
	itemRows := make([]purchaseItemRow, 0, len(o.Items))
	for _, it := range o.Items {
		itemRows = append(itemRows, purchaseItemRow(it))
	}
	if items, err = json.Marshal(itemRows); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal items: %w", err)
	}

	instRows := make([]installmentRow, 0, len(o.PaymentDetails.Installments))
	for _, inst := range o.PaymentDetails.Installments {
		instRows = append(instRows, installmentRow(inst))
	}
	pd := paymentDetailsRow{
		Method:       o.PaymentDetails.Method,
		PaymentDate:  o.PaymentDetails.PaymentDate,
		Bank:         o.PaymentDetails.Bank,
		Installments: instRows,
	}
	if payment, err = json.Marshal(pd); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal payment details: %w", err)
	}

	if supplier, err = json.Marshal(supplierInfoRow(o.SupplierInfo)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal supplier info: %w", err)
	}
	return items, payment, supplier, nil
}

func scanPurchaseOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var (
		o        entity.PurchaseOrder
		items    []byte
		payment  []byte
		supplier []byte
	)
	err := row.Scan(&o.ID, &items, &o.FreightCost, &o.OtherCost, &o.TotalCost, &payment, &supplier, &o.Reference, &o.CreatedAt)
	if err != nil {
		return nil, err
	}

	var itemRows []purchaseItemRow
	if err := json.Unmarshal(items, &itemRows); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	o.Items = make([]entity.PurchaseItem, 0, len(itemRows))
	for _, it := range itemRows {
		o.Items = append(o.Items, entity.PurchaseItem(it))
	}

	var pd paymentDetailsRow
	if err := json.Unmarshal(payment, &pd); err != nil {
		return nil, fmt.Errorf("unmarshal payment details: %w", err)
	}
	o.PaymentDetails = entity.PaymentDetails{
		Method:      pd.Method,
		PaymentDate: pd.PaymentDate,
		Bank:        pd.Bank,
	}
	for _, inst := range pd.Installments {
		o.PaymentDetails.Installments = append(o.PaymentDetails.Installments, entity.Installment(inst))
	}

	var si supplierInfoRow
	if err := json.Unmarshal(supplier, &si); err != nil {
		return nil, fmt.Errorf("unmarshal supplier info: %w", err)
	}
	o.SupplierInfo = entity.SupplierInfo(si)

	return &o, nil
}
