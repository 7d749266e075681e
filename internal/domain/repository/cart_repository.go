package repository

import "github.com/tu-usuario/eventos-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para CartItem.
type CartRepository interface {
	Create(item *entity.CartItem) error
	GetByID(id string) (*entity.CartItem, error)
	GetByUserAndItem(userID, itemID string) (*entity.CartItem, error)
	UpdateQuantity(id string, quantity int) error
	ListByUser(userID string) ([]*entity.CartItem, error)
	Delete(id string) error
	// DeleteByUser vacía el carrito completo (clear explícito o conversión a orden).
	DeleteByUser(userID string) error
}
