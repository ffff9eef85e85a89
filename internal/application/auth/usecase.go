// Package auth casos de uso de autenticação: login, perfil e configuração
// inicial do primeiro usuário.
package auth

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
	"github.com/gestorcell/gestor-api/pkg/jwt"
)

// JWTConfig parâmetros de emissão de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticação.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase monta o caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica email e senha, emite o JWT e devolve token + usuário.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(in.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// Me devolve o perfil do usuário autenticado.
func (uc *UseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// SystemStatus indica se já existe algum usuário cadastrado, usado pelo
// frontend para decidir entre a tela de login e a de configuração inicial.
func (uc *UseCase) SystemStatus() (*dto.SystemStatusResponse, error) {
	count, err := uc.users.Count()
	if err != nil {
		return nil, err
	}
	return &dto.SystemStatusResponse{HasUsers: count > 0}, nil
}

// SetupOwner cria o primeiro usuário com o papel de dono. Só funciona com o
// sistema vazio; depois disso a rota devolve conflito.
func (uc *UseCase) SetupOwner(in dto.SetupOwnerRequest) (*dto.LoginResponse, error) {
	count, err := uc.users.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domain.ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleOwner,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
