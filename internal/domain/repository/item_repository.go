package repository

import "github.com/tu-usuario/eventos-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	UpdateStatus(id, status string) error
	Delete(id string) error
	ListByVendor(vendorID string, limit, offset int) ([]*entity.Item, error)
	List(limit, offset int) ([]*entity.Item, error)
	// ListOrderable lista artículos aprobados de vendors con membresía activa,
	// opcionalmente filtrados por categoría y/o vendor. Es la única vista que
	// ven los usuarios al navegar el catálogo.
	ListOrderable(vendorID, category string, limit, offset int) ([]*entity.Item, error)
}
