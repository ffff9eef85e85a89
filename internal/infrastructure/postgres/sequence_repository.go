package postgres

import (
	"context"
	"fmt"

	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contadores sequenciais por escopo e período. O UPSERT
// atômico garante que duas requisições concorrentes nunca recebem o mesmo
// número, mesmo com múltiplas instâncias da API no mesmo banco.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository monta o adaptador de contadores.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa o contador (escopo, período) e devolve o novo valor.
func (r *SequenceRepo) Next(scope, period string) (int64, error) {
	query := `
		INSERT INTO counters (scope, period, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (scope, period) DO UPDATE SET value = counters.value + 1
		RETURNING value`
	var value int64
	if err := r.q.QueryRow(context.Background(), query, scope, period).Scan(&value); err != nil {
		return 0, fmt.Errorf("next sequence %s/%s: %w", scope, period, err)
	}
	return value, nil
}
