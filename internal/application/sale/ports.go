package sale

import (
	"context"

	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// TxRunner executa um callback com repositórios atados a uma transação do
// banco. A exclusão de venda depende dele: devolução de estoque, remoção da
// receita e remoção do cupom precisam acontecer juntas ou não acontecer.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		sales repository.TicketSaleRepository,
		products repository.ProductRepository,
		transactions repository.CashTransactionRepository,
	) error) error
}
