package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/ordico-pos/internal/application/sale"
	"github.com/jhoicas/ordico-pos/internal/application/usecase"
	"github.com/jhoicas/ordico-pos/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Lo usan
// el checkout (re-validación + descuento de stock + venta, atómicos) y la
// importación masiva (todo-o-nada).
type TxRunner struct {
	pool *pgxpool.Pool
}

var (
	_ sale.TxRunner          = (*TxRunner)(nil)
	_ usecase.ImportTxRunner = (*TxRunner)(nil)
)

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con un ProductRepository atado a la
// tx y hace Commit o Rollback según el resultado.
func (r *TxRunner) Run(ctx context.Context, fn func(products repository.ProductRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
