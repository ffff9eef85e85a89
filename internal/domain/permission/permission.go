// Package permission centraliza as regras de autorização que dependem do
// estado do recurso, para que fiquem testáveis fora do transporte HTTP.
// A restrição por rota (owner/manager) fica no middleware RequireRole; aqui
// ficam as regras que cruzam papel do usuário com o status do documento.
package permission

import "github.com/gestorcell/gestor-api/internal/domain/entity"

// Action ação sobre uma ordem de serviço sujeita a regra de papel+estado.
type Action string

const (
	ActionUpdateServiceOrder Action = "service_order:update"
	ActionReopenServiceOrder Action = "service_order:reopen"
	ActionDeleteServiceOrder Action = "service_order:delete"
)

// CanServiceOrder decide se o papel pode executar a ação sobre uma ordem de
// serviço no status dado.
//
// Regras:
//   - Técnico não edita ordem concluída.
//   - Técnico não reabre ordem concluída.
//   - Técnico só exclui ordem pendente.
//   - Owner e manager podem tudo.
func CanServiceOrder(role string, action Action, status string) bool {
	if role != entity.RoleTechnician {
		return true
	}
	switch action {
	case ActionUpdateServiceOrder:
		return status != entity.ServiceOrderCompleted
	case ActionReopenServiceOrder:
		return false
	case ActionDeleteServiceOrder:
		return status == entity.ServiceOrderPending
	}
	return false
}
