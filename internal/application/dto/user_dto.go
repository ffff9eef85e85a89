package dto

import "time"

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse token emitido após autenticação.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SystemStatusResponse indica se o sistema já tem usuários cadastrados.
type SystemStatusResponse struct {
	HasUsers bool `json:"hasUsers"`
}

// SetupOwnerRequest cria o primeiro usuário (dono) quando o sistema está vazio.
type SetupOwnerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// CreateUserRequest entrada para cadastrar um usuário da equipe.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=owner manager technician"`
}

// UpdateUserRequest entrada para editar um usuário. Senha vazia preserva a atual.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=owner manager technician"`
}

// UpdateProfileRequest edição do próprio perfil (não altera o papel).
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// UserResponse saída de um usuário (nunca expõe o hash da senha).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
