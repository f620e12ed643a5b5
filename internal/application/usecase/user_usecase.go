package usecase

import (
	"github.com/jhoicas/ordico-pos/internal/application/dto"
	"github.com/jhoicas/ordico-pos/internal/domain"
	"github.com/jhoicas/ordico-pos/internal/domain/entity"
	"github.com/jhoicas/ordico-pos/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase aplica reglas de negocio para la gestión de usuarios
// (listado, borrado, cambio de contraseña y de rol). El alta vive en auth.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// GetByEmail obtiene un usuario por email.
func (uc *UserUseCase) GetByEmail(email string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// GetByDNI obtiene un usuario por DNI.
func (uc *UserUseCase) GetByDNI(dni string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByDNI(dni)
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *entityToUserResponse(u))
	}
	return out, nil
}

// Count devuelve la cantidad de usuarios registrados.
func (uc *UserUseCase) Count() (int, error) {
	return uc.repo.Count()
}

// Delete elimina un usuario por ID. Idempotente: borrar un ID inexistente
// devuelve false sin error.
func (uc *UserUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

// UpdatePassword hashea la nueva contraseña y la persiste por email.
func (uc *UserUseCase) UpdatePassword(in dto.UpdatePasswordRequest) error {
	if in.Email == "" || len(in.NewPassword) < 8 {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.UpdatePassword(in.Email, string(hash))
}

// UpdateRole cambia el rol de un usuario, validando que sea conocido.
func (uc *UserUseCase) UpdateRole(id, role string) error {
	if !entity.ValidRole(role) {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateRole(id, role)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		DNI:       u.DNI,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
