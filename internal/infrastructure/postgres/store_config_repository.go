package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

var _ repository.StoreConfigRepository = (*StoreConfigRepo)(nil)

// StoreConfigRepo persiste a configuração da loja como documento JSONB em
// linha única (id fixo 1).
type StoreConfigRepo struct {
	q Querier
}

// NewStoreConfigRepository monta o adaptador de configurações.
func NewStoreConfigRepository(q Querier) *StoreConfigRepo {
	return &StoreConfigRepo{q: q}
}

// Get devolve a configuração gravada ou ErrNotFound no primeiro acesso.
func (r *StoreConfigRepo) Get() (*entity.StoreConfig, error) {
	var (
		data      []byte
		updatedAt time.Time
	)
	err := r.q.QueryRow(context.Background(),
		`SELECT data, updated_at FROM store_config WHERE id = 1`).
		Scan(&data, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get store config: %w", err)
	}

	var cfg entity.StoreConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal store config: %w", err)
	}
	cfg.UpdatedAt = updatedAt
	return &cfg, nil
}

// Put grava (ou substitui) a configuração da loja.
func (r *StoreConfigRepo) Put(cfg *entity.StoreConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal store config: %w", err)
	}
	query := `
		INSERT INTO store_config (id, data, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(context.Background(), query, data, cfg.UpdatedAt); err != nil {
		return fmt.Errorf("put store config: %w", err)
	}
	return nil
}
