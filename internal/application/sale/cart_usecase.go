package sale

import (
	"github.com/jhoicas/ordico-pos/internal/application/dto"
	"github.com/jhoicas/ordico-pos/internal/domain"
	"github.com/jhoicas/ordico-pos/internal/domain/repository"
)

// CartUseCase opera el carrito activo de cada usuario: agrega y quita líneas
// validando contra el stock del catálogo.
type CartUseCase struct {
	carts    *Manager
	products repository.ProductRepository
}

// NewCartUseCase construye el caso de uso del carrito.
func NewCartUseCase(carts *Manager, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// AddLine busca el producto en el catálogo, valida stock y agrega la línea.
// Producto inexistente -> ErrNotFound; stock insuficiente -> ErrInsufficientStock
// sin modificar el carrito. Una advertencia de stock bajo acompaña la
// respuesta pero no bloquea.
func (uc *CartUseCase) AddLine(userID string, in dto.AddLineRequest) (*dto.AddLineResponse, error) {
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	cart := uc.carts.Cart(userID)
	decision, err := cart.AddLine(product, in.Quantity)
	if err != nil {
		return nil, err
	}
	out := &dto.AddLineResponse{Cart: *toCartResponse(cart)}
	if decision.Warning() {
		out.Warning = decision.Message
	}
	return out, nil
}

// RemoveLine quita la línea en la posición dada del carrito del usuario.
func (uc *CartUseCase) RemoveLine(userID string, index int) (*dto.CartResponse, error) {
	cart := uc.carts.Cart(userID)
	if err := cart.RemoveLine(index); err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// View devuelve el snapshot del carrito del usuario.
func (uc *CartUseCase) View(userID string) *dto.CartResponse {
	return toCartResponse(uc.carts.Cart(userID))
}

// Clear vacía el carrito del usuario (venta abandonada).
func (uc *CartUseCase) Clear(userID string) {
	uc.carts.Cart(userID).Clear()
}

func toCartResponse(c *Cart) *dto.CartResponse {
	lines := c.Lines()
	out := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.Total(),
		})
	}
	return &dto.CartResponse{Lines: out}
}
