package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleCajero = "cajero"
)

// ValidRole verifica que el rol sea uno de los conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCajero
}

// User representa un usuario del sistema. Nombre, Email y DNI son únicos
// a nivel global (constraint en la tabla usuarios).
type User struct {
	ID           string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Email        string
	DNI          string
	Role         string // admin | cajero
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
