package dto

import "time"

// RegisterRequest entrada para registrar un usuario.
type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
	DNI      string `json:"dni" validate:"required"`
	Role     string `json:"rol"` // admin | cajero; default cajero
}

// LoginRequest entrada de login por nombre de usuario.
type LoginRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT + datos del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	DNI       string    `json:"dni"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdatePasswordRequest cambio de contraseña por email.
type UpdatePasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UpdateRoleRequest cambio de rol de un usuario.
type UpdateRoleRequest struct {
	Role string `json:"rol" validate:"required"`
}
