package repository

import "github.com/tu-usuario/eventos-api/internal/domain/entity"

// GuestRepository define el puerto de persistencia para Guest.
type GuestRepository interface {
	Create(guest *entity.Guest) error
	GetByID(id string) (*entity.Guest, error)
	Update(guest *entity.Guest) error
	Delete(id string) error
	ListByUser(userID string) ([]*entity.Guest, error)
}
