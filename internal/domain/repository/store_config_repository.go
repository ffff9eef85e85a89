package repository

import "github.com/gestorcell/gestor-api/internal/domain/entity"

// StoreConfigRepository porta de persistência da configuração da loja.
// A configuração é um documento único; Get retorna domain.ErrNotFound
// quando ainda não foi gravada.
type StoreConfigRepository interface {
	Get() (*entity.StoreConfig, error)
	Put(cfg *entity.StoreConfig) error
}
