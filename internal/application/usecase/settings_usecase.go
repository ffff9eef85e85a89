package usecase

import (
	"errors"
	"time"

	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// SettingsUseCase gerencia a configuração global da loja, um documento
// único com metas, taxas e dados da empresa.
type SettingsUseCase struct {
	repo repository.StoreConfigRepository
}

// NewSettingsUseCase monta o caso de uso.
func NewSettingsUseCase(repo repository.StoreConfigRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devolve a configuração atual ou a padrão quando nada foi gravado.
func (uc *SettingsUseCase) Get() (*entity.StoreConfig, error) {
	cfg, err := uc.repo.Get()
	if errors.Is(err, domain.ErrNotFound) {
		return entity.DefaultStoreConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Put substitui a configuração da loja.
func (uc *SettingsUseCase) Put(cfg *entity.StoreConfig) (*entity.StoreConfig, error) {
	cfg.UpdatedAt = time.Now()
	if err := uc.repo.Put(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
