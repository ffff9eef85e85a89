package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/application/usecase"
	"github.com/gestorcell/gestor-api/internal/domain"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────
// Fake em memória
// ──────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byID map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) List() ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) Count() (int64, error) {
	return int64(len(r.byID)), nil
}

func seedOwner(t *testing.T, repo *memUserRepo) *entity.User {
	t.Helper()
	owner := &entity.User{
		ID:    "owner-1",
		Name:  "Dona da Loja",
		Email: "dona@loja.com",
		Role:  entity.RoleOwner,
	}
	require.NoError(t, repo.Create(owner))
	return owner
}

// ──────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────

func TestCreateUser_HashDaSenhaEEmailMinusculo(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(dto.CreateUserRequest{
		Name:     "Técnico",
		Email:    "Tecnico@Loja.com",
		Password: "segredo123",
		Role:     entity.RoleTechnician,
	})
	require.NoError(t, err)

	assert.Equal(t, "tecnico@loja.com", out.Email)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", stored.PasswordHash, "a senha nunca é guardada em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("segredo123")))
}

func TestCreateUser_EmailRepetidoDevolveErro(t *testing.T) {
	repo := newMemUserRepo()
	seedOwner(t, repo)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{
		Name:     "Outra Pessoa",
		Email:    "DONA@loja.com",
		Password: "segredo123",
		Role:     entity.RoleManager,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateUser_SegundoDonoDevolveConflito(t *testing.T) {
	repo := newMemUserRepo()
	seedOwner(t, repo)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{
		Name:     "Segundo Dono",
		Email:    "segundo@loja.com",
		Password: "segredo123",
		Role:     entity.RoleOwner,
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "a loja só pode ter um dono")
}

func TestCreateUser_PapelDesconhecidoDevolveErro(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{
		Name:     "Alguém",
		Email:    "alguem@loja.com",
		Password: "segredo123",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateUser_RebaixarDonoDevolveConflito(t *testing.T) {
	repo := newMemUserRepo()
	owner := seedOwner(t, repo)
	uc := usecase.NewUserUseCase(repo)

	papel := entity.RoleManager
	_, err := uc.Update(owner.ID, dto.UpdateUserRequest{Role: &papel})
	assert.ErrorIs(t, err, domain.ErrConflict,
		"rebaixar o dono deixaria a loja sem dono")
}

func TestUpdateUser_PromoverComDonoExistenteDevolveConflito(t *testing.T) {
	repo := newMemUserRepo()
	seedOwner(t, repo)
	require.NoError(t, repo.Create(&entity.User{
		ID: "mgr-1", Name: "Gerente", Email: "gerente@loja.com", Role: entity.RoleManager,
	}))
	uc := usecase.NewUserUseCase(repo)

	papel := entity.RoleOwner
	_, err := uc.Update("mgr-1", dto.UpdateUserRequest{Role: &papel})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteUser_DonoNaoPodeSerExcluido(t *testing.T) {
	repo := newMemUserRepo()
	owner := seedOwner(t, repo)
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete(owner.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = repo.GetByID(owner.ID)
	assert.NoError(t, err)
}

func TestUpdateProfile_NaoAlteraPapel(t *testing.T) {
	repo := newMemUserRepo()
	require.NoError(t, repo.Create(&entity.User{
		ID: "tec-1", Name: "Técnico", Email: "tecnico@loja.com", Role: entity.RoleTechnician,
	}))
	uc := usecase.NewUserUseCase(repo)

	nome := "Técnico Sênior"
	out, err := uc.UpdateProfile("tec-1", dto.UpdateProfileRequest{Name: &nome})
	require.NoError(t, err)

	assert.Equal(t, "Técnico Sênior", out.Name)
	assert.Equal(t, entity.RoleTechnician, out.Role, "o perfil próprio nunca muda o papel")
}

func TestUpdateProfile_EmailDeOutroUsuarioDevolveErro(t *testing.T) {
	repo := newMemUserRepo()
	seedOwner(t, repo)
	require.NoError(t, repo.Create(&entity.User{
		ID: "tec-1", Name: "Técnico", Email: "tecnico@loja.com", Role: entity.RoleTechnician,
	}))
	uc := usecase.NewUserUseCase(repo)

	email := "dona@loja.com"
	_, err := uc.UpdateProfile("tec-1", dto.UpdateProfileRequest{Email: &email})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
