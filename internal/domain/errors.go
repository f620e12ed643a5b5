package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). La capa de infraestructura
// traduce los errores crudos del motor de almacenamiento a esta taxonomía;
// nunca se filtran errores pgx hacia los handlers.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrOutOfRange        = errors.New("índice fuera de rango")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)

// DuplicateKeyError indica qué columna única colisionó (nombre, email o dni),
// para que el llamador pueda mostrar un mensaje accionable en lugar de un
// "recurso duplicado" genérico.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	if e.Field == "" {
		return ErrDuplicate.Error()
	}
	return fmt.Sprintf("valor duplicado en %s", e.Field)
}

// Is permite errors.Is(err, domain.ErrDuplicate) sobre el error tipado.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicate
}
