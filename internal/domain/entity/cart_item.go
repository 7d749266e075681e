package entity

import "time"

// Límites de cantidad por línea de carrito.
const (
	MinCartQuantity = 1
	MaxCartQuantity = 100
)

// CartItem selección transitoria de un usuario previa a la orden.
// Se elimina al convertir el carrito en orden o al vaciarlo explícitamente.
type CartItem struct {
	ID        string
	UserID    string
	ItemID    string
	Quantity  int
	CreatedAt time.Time
}
