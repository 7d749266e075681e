package entity

import "time"

// Roles de la plataforma.
const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
	RoleUser   = "user"
)

// Estados de cuenta. Una cuenta referenciada por órdenes nunca se borra,
// solo pasa a inactive.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa una identidad de la plataforma (admin, vendor o user).
type User struct {
	ID           string
	Name         string
	Email        string // único
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole indica si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleVendor || role == RoleUser
}
