package sale_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordico-pos/internal/application/sale"
	"github.com/jhoicas/ordico-pos/internal/domain"
	"github.com/jhoicas/ordico-pos/internal/domain/entity"
)

func producto(id, nombre string, cantidad int, precio string) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     nombre,
		Quantity: cantidad,
		Price:    decimal.RequireFromString(precio),
	}
}

// Agregar dos productos distintos genera dos líneas.
func TestCart_AddLine_ProductosDistintos(t *testing.T) {
	cart := sale.NewCart()

	_, err := cart.AddLine(producto("p1", "Arroz", 50, "150.00"), 2)
	require.NoError(t, err)
	_, err = cart.AddLine(producto("p2", "Fideos", 40, "120.00"), 1)
	require.NoError(t, err)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Arroz", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "300", lines[0].Total().String())
}

// Volver a agregar el mismo producto fusiona cantidades en la línea existente.
func TestCart_AddLine_MismoProductoFusionaCantidades(t *testing.T) {
	cart := sale.NewCart()
	arroz := producto("p1", "Arroz", 50, "150.00")

	_, err := cart.AddLine(arroz, 2)
	require.NoError(t, err)
	_, err = cart.AddLine(arroz, 3)
	require.NoError(t, err)

	lines := cart.Lines()
	require.Len(t, lines, 1, "el mismo producto no debe duplicar líneas")
	assert.Equal(t, 5, lines[0].Quantity)
}

// La fusión valida la cantidad combinada: 6+5 sobre 10 de stock debe rechazarse
// y el carrito queda como estaba.
func TestCart_AddLine_FusionExcedeStock_NoModificaCarrito(t *testing.T) {
	cart := sale.NewCart()
	arroz := producto("p1", "Arroz", 10, "150.00")

	_, err := cart.AddLine(arroz, 6)
	require.NoError(t, err)

	_, err = cart.AddLine(arroz, 5)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 6, lines[0].Quantity, "el rechazo no debe alterar la línea previa")
}

// Rechazo directo: pedir más que el stock deja el carrito vacío.
func TestCart_AddLine_StockInsuficiente(t *testing.T) {
	cart := sale.NewCart()

	_, err := cart.AddLine(producto("p1", "Arroz", 3, "150.00"), 4)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, cart.Empty())
}

// La advertencia de stock bajo acompaña la decisión pero no bloquea.
func TestCart_AddLine_StockBajo_AdvierteYAgrega(t *testing.T) {
	cart := sale.NewCart()

	d, err := cart.AddLine(producto("p1", "Arroz", 6, "150.00"), 2)
	require.NoError(t, err)
	assert.True(t, d.Warning())
	assert.Len(t, cart.Lines(), 1)
}

// Cantidades inválidas se rechazan antes de mirar el stock.
func TestCart_AddLine_CantidadInvalida(t *testing.T) {
	cart := sale.NewCart()

	_, err := cart.AddLine(producto("p1", "Arroz", 10, "150.00"), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = cart.AddLine(nil, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// RemoveLine reindexa y valida la posición.
func TestCart_RemoveLine(t *testing.T) {
	cart := sale.NewCart()
	_, err := cart.AddLine(producto("p1", "Arroz", 50, "150.00"), 1)
	require.NoError(t, err)
	_, err = cart.AddLine(producto("p2", "Fideos", 40, "120.00"), 1)
	require.NoError(t, err)

	require.NoError(t, cart.RemoveLine(0))
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Fideos", lines[0].Name, "tras quitar la primera, la segunda pasa a índice 0")

	assert.ErrorIs(t, cart.RemoveLine(5), domain.ErrOutOfRange)
	assert.ErrorIs(t, cart.RemoveLine(-1), domain.ErrOutOfRange)
}

// Clear vacía el carrito por completo.
func TestCart_Clear(t *testing.T) {
	cart := sale.NewCart()
	_, err := cart.AddLine(producto("p1", "Arroz", 50, "150.00"), 1)
	require.NoError(t, err)

	cart.Clear()
	assert.True(t, cart.Empty())
	assert.Empty(t, cart.Lines())
}

// El snapshot de Lines es una copia: mutarlo no afecta al carrito.
func TestCart_Lines_EsCopia(t *testing.T) {
	cart := sale.NewCart()
	_, err := cart.AddLine(producto("p1", "Arroz", 50, "150.00"), 1)
	require.NoError(t, err)

	snapshot := cart.Lines()
	snapshot[0].Quantity = 99

	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

// Dos requests simultáneos con el mismo token no deben perder líneas ni
// corromper el slice: cada operación del carrito se serializa.
func TestCart_AddLine_Concurrente(t *testing.T) {
	cart := sale.NewCart()
	arroz := producto("p1", "Arroz", 1000, "150.00")

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := cart.AddLine(arroz, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	lines := cart.Lines()
	require.Len(t, lines, 1, "el mismo producto siempre fusiona en una línea")
	assert.Equal(t, workers, lines[0].Quantity, "ninguna unidad agregada puede perderse")
}

// El Manager crea el carrito por usuario y lo reutiliza.
func TestManager_CarritoPorUsuario(t *testing.T) {
	m := sale.NewManager()

	c1 := m.Cart("cajero-1")
	c2 := m.Cart("cajero-2")
	assert.NotSame(t, c1, c2, "cada usuario tiene su propio carrito")
	assert.Same(t, c1, m.Cart("cajero-1"), "el mismo usuario reutiliza su carrito")
}
