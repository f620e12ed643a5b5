package dto

import (
	"github.com/shopspring/decimal"
)

// AddLineRequest entrada para agregar una línea al carrito.
type AddLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"cantidad" validate:"min=1"`
}

// CartLineResponse línea del carrito activo.
type CartLineResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"nombre"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Quantity  int             `json:"cantidad"`
	LineTotal decimal.Decimal `json:"total"`
}

// CartResponse snapshot del carrito activo.
type CartResponse struct {
	Lines []CartLineResponse `json:"lineas"`
}

// AddLineResponse resultado de agregar una línea: el carrito actualizado y,
// si el stock restante quedó bajo, la advertencia (la venta no se bloquea).
type AddLineResponse struct {
	Warning string       `json:"warning,omitempty"`
	Cart    CartResponse `json:"carrito"`
}

// ReceiptLineResponse línea de un ticket finalizado. Los montos van
// redondeados a 2 decimales: esto es presentación, el cálculo interno es exacto.
type ReceiptLineResponse struct {
	Name      string `json:"nombre"`
	Quantity  int    `json:"cantidad"`
	UnitPrice string `json:"precio_unitario"`
	LineTotal string `json:"total"`
}

// ReceiptResponse ticket finalizado, con la ruta del PDF generado.
type ReceiptResponse struct {
	ID           string                `json:"id"`
	Number       string                `json:"numero"`
	Date         string                `json:"fecha"`
	Company      string                `json:"empresa"`
	Lines        []ReceiptLineResponse `json:"lineas"`
	Subtotal     string                `json:"subtotal"`
	Tax          string                `json:"impuestos"`
	Total        string                `json:"total"`
	ArtifactPath string                `json:"pdf"`
}
