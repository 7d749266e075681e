package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/eventos-api/internal/application/dto"
	"github.com/tu-usuario/eventos-api/internal/domain"
	"github.com/tu-usuario/eventos-api/internal/domain/entity"
	"github.com/tu-usuario/eventos-api/internal/domain/repository"
)

// CartUseCase carrito por usuario. Solo admite artículos ordenables
// (aprobados y de vendor con membresía activa).
type CartUseCase struct {
	cartRepo   repository.CartRepository
	itemRepo   repository.ItemRepository
	vendorRepo repository.VendorRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cartRepo repository.CartRepository, itemRepo repository.ItemRepository, vendorRepo repository.VendorRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, itemRepo: itemRepo, vendorRepo: vendorRepo}
}

// orderable verifica que el artículo exista, esté aprobado y su vendor activo.
func (uc *CartUseCase) orderable(itemID string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.Status != entity.ItemStatusApproved {
		return nil, domain.ErrItemNotOrderable
	}
	vendor, err := uc.vendorRepo.GetByID(item.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil || vendor.MembershipStatus != entity.MembershipActive {
		return nil, domain.ErrItemNotOrderable
	}
	return item, nil
}

// Add agrega un artículo al carrito; si ya está, acumula la cantidad.
func (uc *CartUseCase) Add(userID string, in dto.AddCartItemRequest) (*dto.CartItemResponse, error) {
	if in.Quantity < entity.MinCartQuantity || in.Quantity > entity.MaxCartQuantity {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.orderable(in.ItemID)
	if err != nil {
		return nil, err
	}
	existing, err := uc.cartRepo.GetByUserAndItem(userID, in.ItemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return uc.accumulate(existing, in.Quantity, item)
	}
	entry := &entity.CartItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ItemID:    in.ItemID,
		Quantity:  in.Quantity,
		CreatedAt: time.Now(),
	}
	if err := uc.cartRepo.Create(entry); err != nil {
		// Dos agregados simultáneos del mismo artículo: el perdedor choca con
		// el unique (user_id, item_id) y acumula sobre la línea que ganó.
		if err == domain.ErrDuplicate {
			existing, gerr := uc.cartRepo.GetByUserAndItem(userID, in.ItemID)
			if gerr != nil {
				return nil, gerr
			}
			if existing == nil {
				return nil, domain.ErrDuplicate
			}
			return uc.accumulate(existing, in.Quantity, item)
		}
		return nil, err
	}
	return toCartItemResponse(entry, item), nil
}

// accumulate suma cantidad sobre una línea existente, topando en el máximo.
func (uc *CartUseCase) accumulate(existing *entity.CartItem, add int, item *entity.Item) (*dto.CartItemResponse, error) {
	qty := existing.Quantity + add
	if qty > entity.MaxCartQuantity {
		qty = entity.MaxCartQuantity
	}
	if err := uc.cartRepo.UpdateQuantity(existing.ID, qty); err != nil {
		return nil, err
	}
	existing.Quantity = qty
	return toCartItemResponse(existing, item), nil
}

// List devuelve el carrito del usuario con los artículos referenciados.
func (uc *CartUseCase) List(userID string) ([]*dto.CartItemResponse, error) {
	entries, err := uc.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CartItemResponse, 0, len(entries))
	for _, e := range entries {
		item, err := uc.itemRepo.GetByID(e.ItemID)
		if err != nil {
			return nil, err
		}
		out = append(out, toCartItemResponse(e, item))
	}
	return out, nil
}

// Remove elimina una línea del carrito propio. Ids ajenos → not found.
func (uc *CartUseCase) Remove(userID, cartItemID string) error {
	entry, err := uc.cartRepo.GetByID(cartItemID)
	if err != nil {
		return err
	}
	if entry == nil || entry.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.cartRepo.Delete(cartItemID)
}

// Clear vacía el carrito del usuario.
func (uc *CartUseCase) Clear(userID string) error {
	return uc.cartRepo.DeleteByUser(userID)
}

func toCartItemResponse(e *entity.CartItem, item *entity.Item) *dto.CartItemResponse {
	resp := &dto.CartItemResponse{
		ID:       e.ID,
		ItemID:   e.ItemID,
		Quantity: e.Quantity,
	}
	if item != nil {
		resp.Item = toItemResponse(item)
	}
	return resp
}
