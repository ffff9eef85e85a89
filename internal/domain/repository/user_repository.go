package repository

import "github.com/gestorcell/gestor-api/internal/domain/entity"

// UserRepository porta de persistência de usuários do sistema.
type UserRepository interface {
	Create(user *entity.User) error
	Update(user *entity.User) error
	Delete(id string) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]entity.User, error)
	Count() (int64, error)
}
