package sale

import (
	"context"

	"github.com/jhoicas/ordico-pos/internal/domain/entity"
	"github.com/jhoicas/ordico-pos/internal/domain/repository"
)

// TxRunner ejecuta el cierre de la venta dentro de una transacción:
// re-validación de stock y descuento de cantidades, atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository) error) error
}

// ReceiptGenerator renderiza un ticket finalizado a bytes PDF.
type ReceiptGenerator interface {
	Generate(receipt *entity.Receipt) ([]byte, error)
}
