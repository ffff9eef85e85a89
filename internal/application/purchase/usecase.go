// Package purchase implementa o ciclo de vida das ordens de compra: entrada
// de estoque com custo médio ponderado, cadastro do fornecedor e geração das
// despesas no livro-caixa.
package purchase

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gestorcell/gestor-api/internal/application/directory"
	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/application/ledger"
	"github.com/gestorcell/gestor-api/internal/application/sequence"
	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/costing"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// UseCase orquestra criação, edição, exclusão e listagem de compras.
type UseCase struct {
	purchases repository.PurchaseOrderRepository
	products  repository.ProductRepository
	directory *directory.Directory
	ledger    *ledger.Synchronizer
	sequences *sequence.Generator
}

// NewUseCase monta o caso de uso de compras.
func NewUseCase(
	purchases repository.PurchaseOrderRepository,
	products repository.ProductRepository,
	dir *directory.Directory,
	ledgerSync *ledger.Synchronizer,
	sequences *sequence.Generator,
) *UseCase {
	return &UseCase{
		purchases: purchases,
		products:  products,
		directory: dir,
		ledger:    ledgerSync,
		sequences: sequences,
	}
}

// Create registra uma ordem de compra: gera o ID sequencial, garante o
// fornecedor no diretório, aplica a entrada de estoque com custo médio
// ponderado, gera as despesas derivadas e por fim grava a ordem.
func (uc *UseCase) Create(req dto.CreatePurchaseRequest) (*entity.PurchaseOrder, error) {
	order, err := uc.buildOrder(req)
	if err != nil {
		return nil, err
	}

	id, err := uc.sequences.NextID(sequence.PrefixPurchase, order.CreatedAt)
	if err != nil {
		return nil, err
	}
	order.ID = id

	if _, err := uc.directory.UpsertSupplier(order.SupplierInfo); err != nil {
		return nil, err
	}

	if err := uc.applyToProducts(order); err != nil {
		return nil, err
	}
	if err := uc.ledger.SyncPurchaseCreate(order); err != nil {
		return nil, err
	}
	if err := uc.purchases.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Update edita uma compra existente: reverte os efeitos da versão antiga
// sobre estoque e caixa, reaplica com os novos dados e regrava a ordem.
func (uc *UseCase) Update(id string, req dto.CreatePurchaseRequest) (*entity.PurchaseOrder, error) {
	previous, err := uc.purchases.GetByID(id)
	if err != nil {
		return nil, err
	}

	order, err := uc.buildOrder(req)
	if err != nil {
		return nil, err
	}
	order.ID = previous.ID
	order.CreatedAt = previous.CreatedAt

	if err := uc.reverseFromProducts(previous); err != nil {
		return nil, err
	}
	if _, err := uc.directory.UpsertSupplier(order.SupplierInfo); err != nil {
		return nil, err
	}
	if err := uc.applyToProducts(order); err != nil {
		return nil, err
	}
	if err := uc.ledger.ReconcilePurchaseUpdate(order); err != nil {
		return nil, err
	}
	if err := uc.purchases.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete exclui uma compra revertendo a entrada de estoque e apagando as
// despesas derivadas.
func (uc *UseCase) Delete(id string) error {
	order, err := uc.purchases.GetByID(id)
	if err != nil {
		return err
	}
	if err := uc.reverseFromProducts(order); err != nil {
		return err
	}
	if err := uc.ledger.ReconcilePurchaseDelete(order.ID); err != nil {
		return err
	}
	return uc.purchases.Delete(order.ID)
}

// GetByID devolve uma compra pelo identificador.
func (uc *UseCase) GetByID(id string) (*entity.PurchaseOrder, error) {
	return uc.purchases.GetByID(id)
}

// List devolve todas as compras registradas.
func (uc *UseCase) List() ([]entity.PurchaseOrder, error) {
	return uc.purchases.List()
}

// buildOrder valida a entrada e monta a ordem com o custo total calculado.
func (uc *UseCase) buildOrder(req dto.CreatePurchaseRequest) (*entity.PurchaseOrder, error) {
	if len(req.Items) == 0 || strings.TrimSpace(req.Reference) == "" {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(req.SupplierInfo.Name) == "" || directory.CleanID(req.SupplierInfo.CnpjCpf) == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.PaymentDetails.Method == "" {
		return nil, domain.ErrInvalidInput
	}

	items := make([]entity.PurchaseItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.ProductID == "" || it.Quantity <= 0 || it.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.PurchaseItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitCost:    it.UnitCost,
		})
	}

	installments := make([]entity.Installment, 0, len(req.PaymentDetails.Installments))
	for _, inst := range req.PaymentDetails.Installments {
		installments = append(installments, entity.Installment{
			Number:  inst.Number,
			Amount:  inst.Amount,
			DueDate: inst.DueDate,
		})
	}

	totalItems := costing.TotalItemCost(items)
	totalCost := totalItems.Add(req.FreightCost).Add(req.OtherCost)

	return &entity.PurchaseOrder{
		Items:       items,
		FreightCost: req.FreightCost,
		OtherCost:   req.OtherCost,
		TotalCost:   totalCost,
		PaymentDetails: entity.PaymentDetails{
			Method:       req.PaymentDetails.Method,
			PaymentDate:  req.PaymentDetails.PaymentDate,
			Bank:         req.PaymentDetails.Bank,
			Installments: installments,
		},
		SupplierInfo: entity.SupplierInfo{
			Name:          req.SupplierInfo.Name,
			CnpjCpf:       req.SupplierInfo.CnpjCpf,
			ContactPerson: req.SupplierInfo.ContactPerson,
			Phone:         req.SupplierInfo.Phone,
		},
		Reference: req.Reference,
		CreatedAt: time.Now(),
	}, nil
}

// applyToProducts dá entrada nos itens da compra diluindo frete e outros
// custos no custo unitário antes da média ponderada. Produtos não
// encontrados são registrados e pulados; a compra segue válida.
func (uc *UseCase) applyToProducts(order *entity.PurchaseOrder) error {
	totalItems := costing.TotalItemCost(order.Items)
	additional := order.FreightCost.Add(order.OtherCost)

	for _, item := range order.Items {
		product, err := uc.products.GetByID(item.ProductID)
		if errors.Is(err, domain.ErrNotFound) {
			log.Warn().Str("product_id", item.ProductID).Str("purchase_id", order.ID).
				Msg("produto da compra não encontrado, entrada de estoque ignorada")
			continue
		}
		if err != nil {
			return err
		}

		fuc := costing.FinalUnitCost(item, totalItems, additional)
		stock, cost := costing.ApplyEntry(product.Stock, product.Cost, item.Quantity, fuc)
		if err := uc.products.SetStockAndCost(product.ID, stock, cost); err != nil {
			return err
		}
	}
	return nil
}

// reverseFromProducts desfaz a entrada de estoque de uma compra usando o
// mesmo custo unitário diluído da aplicação original.
func (uc *UseCase) reverseFromProducts(order *entity.PurchaseOrder) error {
	totalItems := costing.TotalItemCost(order.Items)
	additional := order.FreightCost.Add(order.OtherCost)

	for _, item := range order.Items {
		product, err := uc.products.GetByID(item.ProductID)
		if errors.Is(err, domain.ErrNotFound) {
			log.Warn().Str("product_id", item.ProductID).Str("purchase_id", order.ID).
				Msg("produto da compra não encontrado, reversão de estoque ignorada")
			continue
		}
		if err != nil {
			return err
		}

		fuc := costing.FinalUnitCost(item, totalItems, additional)
		stock, cost := costing.ReverseEntry(product.Stock, product.Cost, item.Quantity, fuc)
		if err := uc.products.SetStockAndCost(product.ID, stock, cost); err != nil {
			return err
		}
	}
	return nil
}
