package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ordico-pos/internal/domain"
	"github.com/jhoicas/ordico-pos/internal/domain/entity"
	"github.com/jhoicas/ordico-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nombre, COALESCE(marca, ''), cantidad, precio, COALESCE(categoria, 'Productos Varios'), created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx vía Querier).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Nombre duplicado -> DuplicateKeyError.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (id, nombre, marca, cantidad, precio, categoria, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Brand, product.Quantity, product.Price,
		product.Category, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return duplicateKeyError(err, &domain.DuplicateKeyError{Field: "nombre"})
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Miss -> (nil, nil).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM productos WHERE id = $1`, id))
}

// GetByName obtiene un producto por nombre exacto.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM productos WHERE nombre = $1`, name))
}

// GetByIDForUpdate bloquea la fila del producto dentro de la tx en curso.
// El checkout la usa para re-validar stock sin carreras de lost-update.
func (r *ProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM productos WHERE id = $1 FOR UPDATE`, id))
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Brand, &p.Quantity, &p.Price, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente. ID ausente -> ErrNotFound.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE productos SET nombre = $2, marca = $3, cantidad = $4, precio = $5, categoria = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Brand, product.Quantity, product.Price,
		product.Category, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return duplicateKeyError(err, &domain.DuplicateKeyError{Field: "nombre"})
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementStock descuenta qty unidades. El guard cantidad >= $2 en el WHERE
// garantiza el invariante cantidad >= 0; 0 filas afectadas significa que el
// stock cambió entre la validación y el descuento.
func (r *ProductRepo) DecrementStock(id string, qty int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET cantidad = cantidad - $2, updated_at = now() WHERE id = $1 AND cantidad >= $2`,
		id, qty,
	)
	if err != nil {
		return fmt.Errorf("descontar stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// List devuelve todos los productos con marca y categoría ya normalizadas.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productColumns+` FROM productos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Quantity, &p.Price, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count devuelve la cantidad total de productos registrados.
func (r *ProductRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM productos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count productos: %w", err)
	}
	return n, nil
}

// Delete elimina un producto por ID. Idempotente: informa si había fila.
func (r *ProductRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
