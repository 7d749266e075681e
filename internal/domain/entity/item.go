package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de aprobación de un artículo del catálogo. Un artículo nace pending;
// admin lo aprueba o rechaza; cualquier edición del vendor lo regresa a pending.
const (
	ItemStatusPending  = "pending"
	ItemStatusApproved = "approved"
	ItemStatusRejected = "rejected"
)

// Categorías de servicio del catálogo.
var ItemCategories = []string{"Catering", "Florist", "Decoration", "Lighting"}

// Item producto o servicio publicado por un vendor.
type Item struct {
	ID          string
	VendorID    string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidItemCategory indica si la categoría es una de las conocidas.
func ValidItemCategory(c string) bool {
	for _, v := range ItemCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidItemStatus indica si el estado de aprobación es conocido.
func ValidItemStatus(s string) bool {
	return s == ItemStatusPending || s == ItemStatusApproved || s == ItemStatusRejected
}
