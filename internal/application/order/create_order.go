package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/eventos-api/internal/application/dto"
	"github.com/tu-usuario/eventos-api/internal/domain"
	"github.com/tu-usuario/eventos-api/internal/domain/entity"
	domainorder "github.com/tu-usuario/eventos-api/internal/domain/order"
	"github.com/tu-usuario/eventos-api/internal/domain/repository"
)

// CreateOrderUseCase convierte el carrito del usuario en una orden pending,
// dentro de una sola transacción: revalida que cada artículo siga ordenable,
// congela precio y nombre en líneas snapshot y vacía el carrito.
type CreateOrderUseCase struct {
	txRunner TxRunner
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(txRunner TxRunner) *CreateOrderUseCase {
	return &CreateOrderUseCase{txRunner: txRunner}
}

// Create crea la orden desde el carrito del usuario.
// Carrito vacío → ErrEmptyCart. Artículo ya no aprobado o vendor inactivo →
// ErrItemNotOrderable (el carrito queda intacto, nada se persiste).
func (uc *CreateOrderUseCase) Create(ctx context.Context, userID string) (*dto.OrderResponse, error) {
	var created *entity.Order

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		cartRepo repository.CartRepository,
		itemRepo repository.ItemRepository,
		vendorRepo repository.VendorRepository,
	) error {
		entries, err := cartRepo.ListByUser(userID)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return domain.ErrEmptyCart
		}

		now := time.Now()
		orderID := uuid.New().String()
		total := decimal.Zero
		lines := make([]entity.OrderLine, 0, len(entries))

		for _, e := range entries {
			item, err := itemRepo.GetByID(e.ItemID)
			if err != nil {
				return err
			}
			if item == nil || item.Status != entity.ItemStatusApproved {
				return domain.ErrItemNotOrderable
			}
			vendor, err := vendorRepo.GetByID(item.VendorID)
			if err != nil {
				return err
			}
			if vendor == nil || vendor.MembershipStatus != entity.MembershipActive {
				return domain.ErrItemNotOrderable
			}
			line := entity.OrderLine{
				ID:        uuid.New().String(),
				OrderID:   orderID,
				ItemID:    item.ID,
				VendorID:  item.VendorID,
				ItemName:  item.Name,
				UnitPrice: item.Price,
				Quantity:  e.Quantity,
			}
			total = total.Add(line.Subtotal())
			lines = append(lines, line)
		}

		o := &entity.Order{
			ID:        orderID,
			UserID:    userID,
			Total:     total,
			Status:    domainorder.StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
			Lines:     lines,
		}
		if err := orderRepo.Create(o); err != nil {
			return err
		}
		// El carrito no sobrevive a la orden en que se convirtió.
		if err := cartRepo.DeleteByUser(userID); err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}
