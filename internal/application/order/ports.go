package order

import (
	"context"

	"github.com/tu-usuario/eventos-api/internal/domain/entity"
	"github.com/tu-usuario/eventos-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos atados a una misma transacción. Lo implementa
// postgres.TxRunner; la conversión carrito → orden depende de esta atomicidad
// (snapshot de líneas + vaciado del carrito, todo o nada).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		cartRepo repository.CartRepository,
		itemRepo repository.ItemRepository,
		vendorRepo repository.VendorRepository,
	) error) error
}

// ReceiptGenerator genera el comprobante PDF de una orden.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, user *entity.User) ([]byte, error)
}
