package purchase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorcell/gestor-api/internal/application/directory"
	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/application/ledger"
	"github.com/gestorcell/gestor-api/internal/application/purchase"
	"github.com/gestorcell/gestor-api/internal/application/sequence"
	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────

type memPurchaseRepo struct {
	byID map[string]*entity.PurchaseOrder
}

func newMemPurchaseRepo() *memPurchaseRepo {
	return &memPurchaseRepo{byID: map[string]*entity.PurchaseOrder{}}
}

func (m *memPurchaseRepo) Create(o *entity.PurchaseOrder) error { m.byID[o.ID] = o; return nil }
func (m *memPurchaseRepo) Update(o *entity.PurchaseOrder) error { m.byID[o.ID] = o; return nil }
func (m *memPurchaseRepo) Delete(id string) error               { delete(m.byID, id); return nil }
func (m *memPurchaseRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	if o, ok := m.byID[id]; ok {
		return o, nil
	}
	return nil, domain.ErrNotFound
}
func (m *memPurchaseRepo) List() ([]entity.PurchaseOrder, error) {
	out := make([]entity.PurchaseOrder, 0, len(m.byID))
	for _, o := range m.byID {
		out = append(out, *o)
	}
	return out, nil
}

type memProductRepo struct {
	byID map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	m := &memProductRepo{byID: map[string]*entity.Product{}}
	for _, p := range products {
		m.byID[p.ID] = p
	}
	return m
}

func (m *memProductRepo) Create(p *entity.Product) error { m.byID[p.ID] = p; return nil }
func (m *memProductRepo) Update(p *entity.Product) error { m.byID[p.ID] = p; return nil }
func (m *memProductRepo) Delete(id string) error         { delete(m.byID, id); return nil }
func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := m.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}
func (m *memProductRepo) List() ([]entity.Product, error) { return nil, nil }
func (m *memProductRepo) AdjustStock(id string, delta int64, lastSold *time.Time) error {
	p, err := m.GetByID(id)
	if err != nil {
		return err
	}
	p.Stock += delta
	if lastSold != nil {
		p.LastSold = lastSold
	}
	return nil
}
func (m *memProductRepo) SetStockAndCost(id string, stock int64, cost decimal.Decimal) error {
	p, err := m.GetByID(id)
	if err != nil {
		return err
	}
	p.Stock = stock
	p.Cost = cost
	return nil
}

type memTxnRepo struct {
	byID map[string]*entity.CashTransaction
}

func newMemTxnRepo() *memTxnRepo {
	return &memTxnRepo{byID: map[string]*entity.CashTransaction{}}
}

func (m *memTxnRepo) Create(t *entity.CashTransaction) error { m.byID[t.ID] = t; return nil }
func (m *memTxnRepo) CreateBatch(txns []entity.CashTransaction) error {
	for i := range txns {
		txn := txns[i]
		m.byID[txn.ID] = &txn
	}
	return nil
}
func (m *memTxnRepo) Update(t *entity.CashTransaction) error { m.byID[t.ID] = t; return nil }
func (m *memTxnRepo) Delete(id string) error                 { delete(m.byID, id); return nil }
func (m *memTxnRepo) GetByID(id string) (*entity.CashTransaction, error) {
	if t, ok := m.byID[id]; ok {
		return t, nil
	}
	return nil, domain.ErrNotFound
}
func (m *memTxnRepo) List() ([]entity.CashTransaction, error) {
	out := make([]entity.CashTransaction, 0, len(m.byID))
	for _, t := range m.byID {
		out = append(out, *t)
	}
	return out, nil
}
func (m *memTxnRepo) DeleteByPurchaseID(purchaseID string) error {
	for id, t := range m.byID {
		if t.PurchaseID == purchaseID {
			delete(m.byID, id)
		}
	}
	return nil
}
func (m *memTxnRepo) DeleteBySaleID(saleID string) error {
	for id, t := range m.byID {
		if t.SaleID == saleID {
			delete(m.byID, id)
		}
	}
	return nil
}
func (m *memTxnRepo) DeleteByServiceOrderID(serviceOrderID string) error {
	for id, t := range m.byID {
		if t.ServiceOrderID == serviceOrderID {
			delete(m.byID, id)
		}
	}
	return nil
}

type memCustomerRepo struct{ byID map[string]*entity.Customer }

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{byID: map[string]*entity.Customer{}}
}
func (m *memCustomerRepo) Upsert(c *entity.Customer) error { m.byID[c.ID] = c; return nil }
func (m *memCustomerRepo) Update(c *entity.Customer) error { m.byID[c.ID] = c; return nil }
func (m *memCustomerRepo) Delete(id string) error          { delete(m.byID, id); return nil }
func (m *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}
func (m *memCustomerRepo) List() ([]entity.Customer, error) { return nil, nil }

type memSupplierRepo struct{ byID map[string]*entity.Supplier }

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{byID: map[string]*entity.Supplier{}}
}
func (m *memSupplierRepo) Upsert(s *entity.Supplier) error { m.byID[s.ID] = s; return nil }
func (m *memSupplierRepo) Update(s *entity.Supplier) error { m.byID[s.ID] = s; return nil }
func (m *memSupplierRepo) Delete(id string) error          { delete(m.byID, id); return nil }
func (m *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if s, ok := m.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}
func (m *memSupplierRepo) List() ([]entity.Supplier, error) { return nil, nil }

type memSequenceRepo struct{ counters map[string]int64 }

func (m *memSequenceRepo) Next(scope, period string) (int64, error) {
	if m.counters == nil {
		m.counters = map[string]int64{}
	}
	key := scope + "|" + period
	m.counters[key]++
	return m.counters[key], nil
}

// ──────────────────────────────────────────────────────────────────────────
// Cenário
// ──────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *purchase.UseCase
	purchases *memPurchaseRepo
	products  *memProductRepo
	suppliers *memSupplierRepo
	txns      *memTxnRepo
}

func newFixture(products ...*entity.Product) *fixture {
	f := &fixture{
		purchases: newMemPurchaseRepo(),
		products:  newMemProductRepo(products...),
		suppliers: newMemSupplierRepo(),
		txns:      newMemTxnRepo(),
	}
	dir := directory.New(newMemCustomerRepo(), f.suppliers)
	f.uc = purchase.NewUseCase(
		f.purchases,
		f.products,
		dir,
		ledger.NewSynchronizer(f.txns),
		sequence.NewGenerator(&memSequenceRepo{}),
	)
	return f
}

func basePurchaseRequest() dto.CreatePurchaseRequest {
	return dto.CreatePurchaseRequest{
		Items: []dto.PurchaseItemRequest{
			{ProductID: "789000001", ProductName: "Película 3D", Quantity: 10, UnitCost: decimal.NewFromInt(5)},
		},
		PaymentDetails: dto.PaymentDetailsRequest{Method: entity.PaymentPix},
		SupplierInfo: dto.SupplierInfoRequest{
			Name:    "Distribuidora ABC",
			CnpjCpf: "12.345.678/0001-90",
		},
		Reference: "NF 1234",
	}
}

// ──────────────────────────────────────────────────────────────────────────
// Testes
// ──────────────────────────────────────────────────────────────────────────

func TestCreate_AtualizaEstoqueCustoFornecedorECaixa(t *testing.T) {
	f := newFixture(&entity.Product{
		ID:    "789000001",
		Name:  "Película 3D",
		Stock: 10,
		Cost:  decimal.NewFromInt(4),
	})

	req := basePurchaseRequest()
	req.FreightCost = decimal.NewFromInt(10)

	order, err := f.uc.Create(req)
	require.NoError(t, err)

	assert.Regexp(t, `^PO-\d{6}-0001$`, order.ID)
	assert.True(t, decimal.NewFromInt(60).Equal(order.TotalCost), "total = itens 50 + frete 10")

	// custo diluído: 5 + 10/10 = 6; média: (10*4 + 10*6)/20 = 5
	p, err := f.products.GetByID("789000001")
	require.NoError(t, err)
	assert.EqualValues(t, 20, p.Stock)
	assert.True(t, decimal.NewFromInt(5).Equal(p.Cost), "custo médio ponderado, obtido %s", p.Cost)

	// fornecedor entrou no diretório pelo CNPJ limpo
	_, err = f.suppliers.GetByID("12345678000190")
	assert.NoError(t, err)

	// despesa única paga no caixa
	txns, err := f.txns.List()
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, entity.TransactionPaid, txns[0].Status)
	assert.Equal(t, order.ID, txns[0].PurchaseID)
	assert.True(t, order.TotalCost.Equal(txns[0].Amount))
}

func TestCreate_ProdutoInexistenteNaoImpedeACompra(t *testing.T) {
	f := newFixture() // catálogo vazio

	order, err := f.uc.Create(basePurchaseRequest())
	require.NoError(t, err, "produto ausente é pulado, não é erro")

	_, err = f.purchases.GetByID(order.ID)
	assert.NoError(t, err)
}

func TestCreate_ValidaEntrada(t *testing.T) {
	f := newFixture()

	semItens := basePurchaseRequest()
	semItens.Items = nil
	_, err := f.uc.Create(semItens)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	semReferencia := basePurchaseRequest()
	semReferencia.Reference = "  "
	_, err = f.uc.Create(semReferencia)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	quantidadeZero := basePurchaseRequest()
	quantidadeZero.Items[0].Quantity = 0
	_, err = f.uc.Create(quantidadeZero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	semFornecedor := basePurchaseRequest()
	semFornecedor.SupplierInfo.CnpjCpf = ""
	_, err = f.uc.Create(semFornecedor)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ReverteEReaplicaEfeitos(t *testing.T) {
	f := newFixture(&entity.Product{ID: "789000001", Stock: 0, Cost: decimal.Zero})

	order, err := f.uc.Create(basePurchaseRequest())
	require.NoError(t, err)

	p, _ := f.products.GetByID("789000001")
	require.EqualValues(t, 10, p.Stock)

	// dobra a quantidade e muda o custo unitário
	req := basePurchaseRequest()
	req.Items[0].Quantity = 20
	req.Items[0].UnitCost = decimal.NewFromInt(8)

	updated, err := f.uc.Update(order.ID, req)
	require.NoError(t, err)
	assert.Equal(t, order.ID, updated.ID, "edição preserva o identificador")

	p, _ = f.products.GetByID("789000001")
	assert.EqualValues(t, 20, p.Stock, "estoque reflete só a versão nova")
	assert.True(t, decimal.NewFromInt(8).Equal(p.Cost), "custo reflete só a versão nova, obtido %s", p.Cost)

	// caixa foi regenerado: continua 1 despesa, com o novo valor
	txns, _ := f.txns.List()
	require.Len(t, txns, 1)
	assert.True(t, decimal.NewFromInt(160).Equal(txns[0].Amount))
}

func TestUpdate_CompraInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Update("PO-000000-0000", basePurchaseRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_DesfazEstoqueECaixa(t *testing.T) {
	f := newFixture(&entity.Product{ID: "789000001", Stock: 5, Cost: decimal.NewFromInt(5)})

	order, err := f.uc.Create(basePurchaseRequest())
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(order.ID))

	p, _ := f.products.GetByID("789000001")
	assert.EqualValues(t, 5, p.Stock, "estoque volta ao valor anterior à compra")

	txns, _ := f.txns.List()
	assert.Empty(t, txns, "despesas derivadas são apagadas junto com a compra")

	_, err = f.purchases.GetByID(order.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_BoletoGeraParcelasPendentes(t *testing.T) {
	f := newFixture(&entity.Product{ID: "789000001"})

	req := basePurchaseRequest()
	req.PaymentDetails = dto.PaymentDetailsRequest{
		Method: entity.PaymentBankSlip,
		Installments: []dto.InstallmentRequest{
			{Number: 1, Amount: decimal.NewFromInt(25), DueDate: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)},
			{Number: 2, Amount: decimal.NewFromInt(25), DueDate: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)},
		},
	}

	_, err := f.uc.Create(req)
	require.NoError(t, err)

	txns, _ := f.txns.List()
	require.Len(t, txns, 2)
	for _, txn := range txns {
		assert.Equal(t, entity.TransactionPending, txn.Status)
	}
}
