package entity

import "time"

// Papéis de usuário da loja.
const (
	RoleOwner      = "owner"
	RoleManager    = "manager"
	RoleTechnician = "technician"
)

// User representa um usuário do sistema (dono, gerente ou técnico).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
