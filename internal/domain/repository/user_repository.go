package repository

import "github.com/jhoicas/ordico-pos/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByDNI(dni string) (*entity.User, error)
	GetByName(name string) (*entity.User, error)
	List() ([]*entity.User, error)
	// Delete es idempotente: informa si había fila, nunca falla por ausencia.
	Delete(id string) (bool, error)
	Count() (int, error)
	UpdatePassword(email, passwordHash string) error
	UpdateRole(id, role string) error
}
