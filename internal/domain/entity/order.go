package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order orden de compra de un usuario. Total y líneas son un snapshot tomado
// al crearla: cambios posteriores de precio en el catálogo no la afectan.
type Order struct {
	ID        string
	UserID    string
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Lines     []OrderLine
}

// OrderLine línea snapshot de una orden. Conserva precio y nombre del artículo
// al momento de la compra, y el vendor dueño para que cada vendor vea solo lo suyo.
type OrderLine struct {
	ID        string
	OrderID   string
	ItemID    string
	VendorID  string
	ItemName  string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal de la línea (precio unitario × cantidad).
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
