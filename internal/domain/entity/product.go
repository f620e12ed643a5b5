package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory categoría centinela para productos sin categoría asignada.
const DefaultCategory = "Productos Varios"

// Product representa un producto del catálogo. Nombre es único; Quantity
// nunca es negativa (CHECK en la tabla y validación en el caso de uso).
// Brand y Category se normalizan en el borde del store: vacío -> "" y
// DefaultCategory respectivamente.
type Product struct {
	ID        string
	Name      string
	Brand     string
	Quantity  int
	Price     decimal.Decimal
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Normalize aplica los valores por defecto de Brand y Category.
func (p *Product) Normalize() {
	if p.Category == "" {
		p.Category = DefaultCategory
	}
}
