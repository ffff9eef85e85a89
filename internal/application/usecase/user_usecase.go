package usecase

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// UserUseCase gestão da equipe. As rotas são restritas ao dono; as regras
// aqui garantem que a loja nunca fica sem um dono ativo.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase monta o caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create cadastra um usuário da equipe. Email repetido devolve
// ErrEmailAlreadyExists; só pode existir um dono.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if in.Role == entity.RoleOwner {
		if err := uc.ensureNoOtherOwner(""); err != nil {
			return nil, err
		}
	}
	if _, err := uc.repo.GetByEmail(in.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Update edita um usuário. O dono não pode ser rebaixado nem duplicado.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Role != nil && *in.Role != user.Role {
		if !validRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		if user.Role == entity.RoleOwner {
			return nil, domain.ErrConflict // rebaixar o dono deixaria a loja sem dono
		}
		if *in.Role == entity.RoleOwner {
			if err := uc.ensureNoOtherOwner(user.ID); err != nil {
				return nil, err
			}
		}
		user.Role = *in.Role
	}
	if err := uc.applyProfile(user, in.Name, in.Email, in.Password); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateProfile edita o próprio perfil sem tocar no papel.
func (uc *UserUseCase) UpdateProfile(id string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := uc.applyProfile(user, in.Name, in.Email, in.Password); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Delete remove um usuário. O dono não pode ser excluído.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user.Role == entity.RoleOwner {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// List devolve a equipe completa.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, nil
}

func (uc *UserUseCase) applyProfile(user *entity.User, name, email, password *string) error {
	if name != nil && strings.TrimSpace(*name) != "" {
		user.Name = *name
	}
	if email != nil && strings.TrimSpace(*email) != "" {
		existing, err := uc.repo.GetByEmail(*email)
		if err == nil && existing.ID != user.ID {
			return domain.ErrEmailAlreadyExists
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		user.Email = strings.ToLower(*email)
	}
	if password != nil && *password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	return nil
}

func (uc *UserUseCase) ensureNoOtherOwner(exceptID string) error {
	users, err := uc.repo.List()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Role == entity.RoleOwner && users[i].ID != exceptID {
			return domain.ErrConflict
		}
	}
	return nil
}

func validRole(role string) bool {
	switch role {
	case entity.RoleOwner, entity.RoleManager, entity.RoleTechnician:
		return true
	}
	return false
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
