// Package sale contiene el núcleo de la venta: carrito en memoria,
// cálculo del ticket (subtotal, impuestos, total) y emisión del PDF.
package sale

import (
	"fmt"
	"sync"

	"github.com/jhoicas/ordico-pos/internal/domain"
	"github.com/jhoicas/ordico-pos/internal/domain/entity"
	"github.com/jhoicas/ordico-pos/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// Line línea transitoria del carrito. Vive solo durante la venta activa;
// no se persiste nunca.
type Line struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Total importe de la línea (precio unitario por cantidad, exacto).
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart colección ordenada de líneas de la venta activa, única por producto:
// volver a agregar un producto suma cantidades en la línea existente en vez
// de duplicarla. El mutex serializa las operaciones cuando dos requests con
// el mismo token llegan a la vez; el flujo normal es una sesión por carrito.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// NewCart construye un carrito vacío.
func NewCart() *Cart { return &Cart{} }

// AddLine valida la solicitud contra el stock y agrega (o fusiona) la línea.
// Si ya existe una línea del producto, se valida la cantidad combinada.
// Rechazo -> el carrito no se modifica y se devuelve ErrInsufficientStock;
// la decisión devuelta trae la advertencia de stock bajo cuando aplica.
func (c *Cart) AddLine(product *entity.Product, qty int) (stock.Decision, error) {
	if product == nil {
		return stock.Decision{}, domain.ErrNotFound
	}
	if qty < 1 {
		return stock.Decision{}, domain.ErrInvalidInput
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	merged := qty
	idx := -1
	for i, l := range c.lines {
		if l.ProductID == product.ID {
			idx = i
			merged += l.Quantity
			break
		}
	}
	decision := stock.Validate(product.Quantity, merged)
	if decision.Rejected() {
		return decision, fmt.Errorf("%s: %w", product.Name, domain.ErrInsufficientStock)
	}
	if idx >= 0 {
		c.lines[idx].Quantity = merged
	} else {
		c.lines = append(c.lines, Line{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  qty,
		})
	}
	return decision, nil
}

// RemoveLine quita la línea en la posición dada y reindexa.
func (c *Cart) RemoveLine(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.lines) {
		return domain.ErrOutOfRange
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Lines devuelve una copia de las líneas (snapshot de solo lectura).
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty informa si el carrito no tiene líneas.
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Clear descarta todas las líneas (checkout exitoso o venta abandonada).
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Manager mantiene el carrito activo de cada usuario. Su mutex protege el
// mapa; cada Cart serializa sus propias operaciones por separado.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewManager construye el administrador de carritos.
func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// Cart devuelve el carrito del usuario, creándolo si no existe.
func (m *Manager) Cart(userID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[userID]
	if !ok {
		c = NewCart()
		m.carts[userID] = c
	}
	return c
}
