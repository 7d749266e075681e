package repository

import "github.com/tu-usuario/eventos-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas snapshot.
type OrderRepository interface {
	// Create persiste la orden con todas sus líneas.
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Order, error)
	// ListByVendor lista órdenes que contienen líneas del vendor, incluyendo
	// únicamente esas líneas.
	ListByVendor(vendorID string, limit, offset int) ([]*entity.Order, error)
	// UpdateStatus cambia el estado solo si el actual coincide con from.
	// Devuelve false si ninguna fila cambió (estado ya avanzado por otra
	// petición concurrente).
	UpdateStatus(id, from, to string) (bool, error)
	// ExistsByUser indica si el usuario tiene órdenes (bloquea el borrado duro de la cuenta).
	ExistsByUser(userID string) (bool, error)
}
