package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company datos del emisor que aparecen en la cabecera del ticket.
type Company struct {
	Name    string
	TaxID   string // CUIT
	Address string
}

// ReceiptLine línea de un ticket finalizado.
type ReceiptLine struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Receipt es el registro inmutable de una venta finalizada. Los totales se
// guardan exactos (decimal); el redondeo a 2 decimales ocurre solo al
// presentarlos (PDF o respuesta HTTP), nunca internamente.
type Receipt struct {
	ID       string
	Number   string
	Date     time.Time
	Company  Company
	Lines    []ReceiptLine
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}
