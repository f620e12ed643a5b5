// Package stock contiene las reglas de validación de stock para la venta.
// Es un servicio de dominio puro: sin acceso a base de datos ni estado.
package stock

import "fmt"

// LowStockThreshold unidades restantes a partir de las cuales se advierte
// al cajero, sin bloquear la venta.
const LowStockThreshold = 5

// Code resultado de la validación.
type Code int

const (
	Accepted Code = iota
	AcceptedWithWarning
	Rejected
)

// Decision resultado de validar una cantidad solicitada contra el stock
// disponible. Available es el stock antes de descontar; Remaining lo que
// quedaría después de la venta (solo significativo si no fue rechazada).
type Decision struct {
	Code      Code
	Available int
	Remaining int
	Message   string
}

// Warning true si la decisión aceptó con advertencia de stock bajo.
func (d Decision) Warning() bool { return d.Code == AcceptedWithWarning }

// Rejected true si la solicitud no puede satisfacerse.
func (d Decision) Rejected() bool { return d.Code == Rejected }

// Validate decide si una solicitud de `requested` unidades puede
// satisfacerse con `available` en stock:
//   - requested > available            -> Rejected
//   - available - requested <= umbral  -> AcceptedWithWarning
//   - en otro caso                     -> Accepted
//
// La advertencia incluye el stock disponible antes del descuento, que es lo
// que el cajero ve en pantalla al momento de agregar la línea.
func Validate(available, requested int) Decision {
	if requested > available {
		return Decision{
			Code:      Rejected,
			Available: available,
			Message:   fmt.Sprintf("stock insuficiente: disponibles %d unidades", available),
		}
	}
	remaining := available - requested
	if remaining <= LowStockThreshold {
		return Decision{
			Code:      AcceptedWithWarning,
			Available: available,
			Remaining: remaining,
			Message:   fmt.Sprintf("quedan pocos productos en stock: %d unidades", available),
		}
	}
	return Decision{Code: Accepted, Available: available, Remaining: remaining}
}
