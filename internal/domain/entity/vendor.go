package entity

import "time"

// Estados de membresía. Solo admin los transiciona; la membresía controla la
// visibilidad del catálogo del vendor independientemente de la aprobación de
// cada artículo.
const (
	MembershipPending  = "pending"
	MembershipActive   = "active"
	MembershipInactive = "inactive"
)

// Vendor perfil comercial de una cuenta con rol vendor (1:1 con User).
// Category usa la misma taxonomía que los artículos (ver ItemCategories).
type Vendor struct {
	ID               string
	UserID           string
	CompanyName      string
	Category         string
	MembershipStatus string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidMembershipStatus indica si el estado de membresía es conocido.
func ValidMembershipStatus(s string) bool {
	return s == MembershipPending || s == MembershipActive || s == MembershipInactive
}
