package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/permission"
)

func TestCanServiceOrder_MatrizDePapeis(t *testing.T) {
	cases := []struct {
		name   string
		role   string
		action permission.Action
		status string
		want   bool
	}{
		{"tecnico edita pendente", entity.RoleTechnician, permission.ActionUpdateServiceOrder, entity.ServiceOrderPending, true},
		{"tecnico nao edita concluida", entity.RoleTechnician, permission.ActionUpdateServiceOrder, entity.ServiceOrderCompleted, false},
		{"tecnico nao reabre concluida", entity.RoleTechnician, permission.ActionReopenServiceOrder, entity.ServiceOrderCompleted, false},
		{"tecnico exclui pendente", entity.RoleTechnician, permission.ActionDeleteServiceOrder, entity.ServiceOrderPending, true},
		{"tecnico nao exclui concluida", entity.RoleTechnician, permission.ActionDeleteServiceOrder, entity.ServiceOrderCompleted, false},
		{"manager reabre concluida", entity.RoleManager, permission.ActionReopenServiceOrder, entity.ServiceOrderCompleted, true},
		{"owner edita concluida", entity.RoleOwner, permission.ActionUpdateServiceOrder, entity.ServiceOrderCompleted, true},
		{"owner exclui concluida", entity.RoleOwner, permission.ActionDeleteServiceOrder, entity.ServiceOrderCompleted, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := permission.CanServiceOrder(tc.role, tc.action, tc.status)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanServiceOrder_AcaoDesconhecidaNegadaParaTecnico(t *testing.T) {
	assert.False(t, permission.CanServiceOrder(entity.RoleTechnician, permission.Action("service_order:outra"), entity.ServiceOrderPending))
}
