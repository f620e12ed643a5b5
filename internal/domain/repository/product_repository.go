package repository

import "github.com/jhoicas/ordico-pos/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las violaciones de unicidad se devuelven como domain.DuplicateKeyError;
// los misses de lectura como (nil, nil).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	// Delete es idempotente: informa si había fila, nunca falla por ausencia.
	Delete(id string) (bool, error)
	List() ([]*entity.Product, error)
	Count() (int, error)
	// GetByIDForUpdate bloquea la fila dentro de la transacción en curso
	// (SELECT ... FOR UPDATE). Solo tiene sentido sobre un Querier de tx.
	GetByIDForUpdate(id string) (*entity.Product, error)
	// DecrementStock descuenta qty unidades; el guard cantidad >= qty hace
	// imposible dejar stock negativo aun con la validación previa.
	DecrementStock(id string, qty int) error
}
