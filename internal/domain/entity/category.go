package entity

import "time"

// Category representa una categoría de productos. Reemplaza la lista mutable
// en memoria del sistema original: el store es el único dueño del conjunto.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
