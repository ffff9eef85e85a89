// Package serviceorder implementa o ciclo de vida das ordens de serviço da
// assistência: abertura, edição, conclusão com fechamento financeiro,
// reabertura e a ficha em PDF entregue ao cliente.
package serviceorder

import (
	"errors"
	"strings"
	"time"

	"github.com/gestorcell/gestor-api/internal/application/directory"
	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/application/ledger"
	"github.com/gestorcell/gestor-api/internal/application/sequence"
	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/permission"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// SheetGenerator gera a ficha impressa de uma ordem de serviço.
type SheetGenerator interface {
	ServiceOrderSheet(order *entity.ServiceOrder, cfg *entity.StoreConfig) ([]byte, error)
}

// UseCase orquestra o ciclo de vida das ordens de serviço.
type UseCase struct {
	orders    repository.ServiceOrderRepository
	settings  repository.StoreConfigRepository
	directory *directory.Directory
	ledger    *ledger.Synchronizer
	sequences *sequence.Generator
	sheets    SheetGenerator
}

// NewUseCase monta o caso de uso de ordens de serviço.
func NewUseCase(
	orders repository.ServiceOrderRepository,
	settings repository.StoreConfigRepository,
	dir *directory.Directory,
	ledgerSync *ledger.Synchronizer,
	sequences *sequence.Generator,
	sheets SheetGenerator,
) *UseCase {
	return &UseCase{
		orders:    orders,
		settings:  settings,
		directory: dir,
		ledger:    ledgerSync,
		sequences: sequences,
		sheets:    sheets,
	}
}

// Create abre uma ordem de serviço: gera o ID sequencial, garante o cliente
// no diretório e grava a ordem como Pendente.
func (uc *UseCase) Create(req dto.CreateServiceOrderRequest) (*entity.ServiceOrder, error) {
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.ServiceDescription) == "" {
		return nil, domain.ErrInvalidInput
	}
	if directory.CleanID(req.CustomerWhatsapp) == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	id, err := uc.sequences.NextID(sequence.PrefixServiceOrder, now)
	if err != nil {
		return nil, err
	}

	customerID, err := uc.directory.UpsertCustomer(req.CustomerName, req.CustomerWhatsapp, req.CustomerCnpjCpf)
	if err != nil {
		return nil, err
	}

	order := &entity.ServiceOrder{
		ID:                 id,
		CustomerName:       req.CustomerName,
		CustomerWhatsapp:   req.CustomerWhatsapp,
		CustomerID:         customerID,
		CustomerCnpjCpf:    req.CustomerCnpjCpf,
		ServiceID:          req.ServiceID,
		ServiceDescription: req.ServiceDescription,
		TotalPrice:         req.TotalPrice,
		TotalCost:          req.TotalCost,
		OtherCosts:         req.OtherCosts,
		Status:             entity.ServiceOrderPending,
		CreatedAt:          now,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Update edita os dados de uma ordem. Técnico não pode editar ordem
// concluída.
func (uc *UseCase) Update(id, role string, req dto.UpdateServiceOrderRequest) (*entity.ServiceOrder, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !permission.CanServiceOrder(role, permission.ActionUpdateServiceOrder, order.Status) {
		return nil, domain.ErrForbidden
	}

	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}
	if req.CustomerWhatsapp != nil {
		order.CustomerWhatsapp = *req.CustomerWhatsapp
	}
	if req.ServiceDescription != nil {
		order.ServiceDescription = *req.ServiceDescription
	}
	if req.TotalPrice != nil {
		order.TotalPrice = *req.TotalPrice
	}
	if req.TotalCost != nil {
		order.TotalCost = *req.TotalCost
	}
	if req.OtherCosts != nil {
		order.OtherCosts = *req.OtherCosts
	}

	if err := uc.orders.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// ToggleStatus alterna a ordem entre Pendente e Concluído.
//
// Concluir carimba a data, grava o preço final, desconto e forma de
// pagamento informados e gera o par receita/custo no caixa. Reabrir apaga
// as transações derivadas e limpa os campos de fechamento; técnico não pode
// reabrir.
func (uc *UseCase) ToggleStatus(id, role string, req dto.ToggleServiceOrderRequest) (*entity.ServiceOrder, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}

	if order.Status == entity.ServiceOrderCompleted {
		if !permission.CanServiceOrder(role, permission.ActionReopenServiceOrder, order.Status) {
			return nil, domain.ErrForbidden
		}
		if err := uc.ledger.ReopenServiceOrder(order.ID); err != nil {
			return nil, err
		}
		order.Status = entity.ServiceOrderPending
		order.CompletedAt = nil
		order.FinalPrice = nil
		order.Discount = nil
		order.PaymentMethod = ""
	} else {
		now := time.Now()
		order.Status = entity.ServiceOrderCompleted
		order.CompletedAt = &now
		order.FinalPrice = req.FinalPrice
		order.Discount = req.Discount
		order.PaymentMethod = req.PaymentMethod
		if err := uc.ledger.CompleteServiceOrder(order, now); err != nil {
			return nil, err
		}
	}

	if err := uc.orders.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete exclui uma ordem junto com as transações derivadas. Técnico só
// exclui ordem pendente.
func (uc *UseCase) Delete(id, role string) error {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return err
	}
	if !permission.CanServiceOrder(role, permission.ActionDeleteServiceOrder, order.Status) {
		return domain.ErrForbidden
	}
	if err := uc.ledger.ReopenServiceOrder(order.ID); err != nil {
		return err
	}
	return uc.orders.Delete(order.ID)
}

// GetByID devolve uma ordem pelo identificador.
func (uc *UseCase) GetByID(id string) (*entity.ServiceOrder, error) {
	return uc.orders.GetByID(id)
}

// List devolve todas as ordens registradas.
func (uc *UseCase) List() ([]entity.ServiceOrder, error) {
	return uc.orders.List()
}

// Sheet gera a ficha em PDF da ordem, com os dados da empresa vindos das
// configurações da loja.
func (uc *UseCase) Sheet(id string) ([]byte, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	cfg, err := uc.settings.Get()
	if errors.Is(err, domain.ErrNotFound) {
		cfg = entity.DefaultStoreConfig()
	} else if err != nil {
		return nil, err
	}
	return uc.sheets.ServiceOrderSheet(order, cfg)
}
