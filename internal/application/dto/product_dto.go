package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Marca y categoría son
// opcionales; el store aplica los defaults ("" y "Productos Varios").
type CreateProductRequest struct {
	Name     string          `json:"nombre" validate:"required,min=1,max=200"`
	Brand    string          `json:"marca"`
	Quantity int             `json:"cantidad" validate:"min=0"`
	Price    decimal.Decimal `json:"precio"`
	Category string          `json:"categoria"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name     *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Brand    *string          `json:"marca"`
	Quantity *int             `json:"cantidad"`
	Price    *decimal.Decimal `json:"precio"`
	Category *string          `json:"categoria"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"nombre"`
	Brand     string          `json:"marca"`
	Quantity  int             `json:"cantidad"`
	Price     decimal.Decimal `json:"precio"`
	Category  string          `json:"categoria"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ProductImportRow fila ya parseada de la planilla de importación
// (columnas Nombre, Marca, Cantidad, Precio, Categoría).
type ProductImportRow struct {
	Name     string
	Brand    string
	Quantity int
	Price    decimal.Decimal
	Category string
}
