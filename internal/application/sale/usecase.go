// Package sale implementa o ciclo de vida das vendas de balcão: numeração
// sequencial, vínculo com o cliente, baixa de estoque e receita no caixa.
package sale

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorcell/gestor-api/internal/application/directory"
	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/application/ledger"
	"github.com/gestorcell/gestor-api/internal/application/sequence"
	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// Seller identifica o usuário autenticado que registrou a venda.
type Seller struct {
	ID   string
	Name string
}

// UseCase orquestra criação, exclusão e listagem de vendas.
type UseCase struct {
	sales     repository.TicketSaleRepository
	products  repository.ProductRepository
	directory *directory.Directory
	ledger    *ledger.Synchronizer
	sequences *sequence.Generator
	txRunner  TxRunner
}

// NewUseCase monta o caso de uso de vendas.
func NewUseCase(
	sales repository.TicketSaleRepository,
	products repository.ProductRepository,
	dir *directory.Directory,
	ledgerSync *ledger.Synchronizer,
	sequences *sequence.Generator,
	txRunner TxRunner,
) *UseCase {
	return &UseCase{
		sales:     sales,
		products:  products,
		directory: dir,
		ledger:    ledgerSync,
		sequences: sequences,
		txRunner:  txRunner,
	}
}

// Create registra uma venda: garante o cliente no diretório, gera o ID
// sequencial, dá baixa no estoque dos produtos (serviços não movimentam
// estoque), grava a receita no caixa e por fim o cupom.
func (uc *UseCase) Create(req dto.CreateSaleRequest, seller Seller) (*entity.TicketSale, error) {
	// Total zerado é indistinguível de total ausente no decimal
	if len(req.Items) == 0 || req.Total.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range req.Items {
		if it.ItemID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if it.Type != entity.SaleItemProduct && it.Type != entity.SaleItemService {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()

	customerID, err := uc.directory.UpsertCustomer(req.CustomerName, req.CustomerWhatsapp, req.CustomerCnpjCpf)
	if err != nil {
		return nil, err
	}

	id, err := uc.sequences.NextID(sequence.PrefixSale, now)
	if err != nil {
		return nil, err
	}

	items := make([]entity.SaleItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.SaleItem{
			ItemID:           it.ItemID,
			Item:             it.Item,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			UnitCost:         it.UnitCost,
			Type:             it.Type,
			UniqueIdentifier: it.UniqueIdentifier,
		})
	}

	sale := &entity.TicketSale{
		ID:               id,
		Items:            items,
		Total:            req.Total,
		TotalCost:        uc.totalCost(req),
		Discount:         req.Discount,
		PaymentMethod:    req.PaymentMethod,
		Timestamp:        now,
		CustomerName:     req.CustomerName,
		CustomerWhatsapp: req.CustomerWhatsapp,
		CustomerID:       customerID,
		SaleHour:         now.Hour(),
		UserID:           seller.ID,
		UserName:         seller.Name,
	}

	for _, item := range sale.Items {
		if item.Type != entity.SaleItemProduct {
			continue
		}
		if err := uc.products.AdjustStock(item.ItemID, -item.Quantity, &now); err != nil {
			return nil, err
		}
	}

	if err := uc.ledger.RecordSale(sale); err != nil {
		return nil, err
	}
	if err := uc.sales.Create(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Delete cancela uma venda dentro de uma transação: devolve o estoque dos
// produtos, apaga a receita derivada e remove o cupom. Qualquer falha
// desfaz tudo.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		sales repository.TicketSaleRepository,
		products repository.ProductRepository,
		transactions repository.CashTransactionRepository,
	) error {
		sale, err := sales.GetByID(id)
		if err != nil {
			return err
		}
		for _, item := range sale.Items {
			if item.Type != entity.SaleItemProduct {
				continue
			}
			if err := products.AdjustStock(item.ItemID, item.Quantity, nil); err != nil {
				return err
			}
		}
		if err := transactions.DeleteBySaleID(sale.ID); err != nil {
			return err
		}
		return sales.Delete(sale.ID)
	})
}

// GetByID devolve uma venda pelo identificador.
func (uc *UseCase) GetByID(id string) (*entity.TicketSale, error) {
	return uc.sales.GetByID(id)
}

// List devolve todas as vendas registradas.
func (uc *UseCase) List() ([]entity.TicketSale, error) {
	return uc.sales.List()
}

// totalCost devolve o custo informado ou, quando zerado, a soma dos custos
// unitários dos itens.
func (uc *UseCase) totalCost(req dto.CreateSaleRequest) decimal.Decimal {
	if !req.TotalCost.IsZero() {
		return req.TotalCost
	}
	total := decimal.Zero
	for _, it := range req.Items {
		total = total.Add(it.UnitCost.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}
