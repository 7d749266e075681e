package repository

import "github.com/tu-usuario/eventos-api/internal/domain/entity"

// VendorRepository define el puerto de persistencia para Vendor.
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id string) (*entity.Vendor, error)
	GetByUserID(userID string) (*entity.Vendor, error)
	Update(vendor *entity.Vendor) error
	List(limit, offset int) ([]*entity.Vendor, error)
	// ListActive lista solo vendors con membresía activa (browse de usuarios).
	ListActive(limit, offset int) ([]*entity.Vendor, error)
}
