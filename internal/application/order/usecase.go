package order

import (
	"github.com/tu-usuario/eventos-api/internal/application/dto"
	"github.com/tu-usuario/eventos-api/internal/domain"
	"github.com/tu-usuario/eventos-api/internal/domain/entity"
	domainorder "github.com/tu-usuario/eventos-api/internal/domain/order"
	"github.com/tu-usuario/eventos-api/internal/domain/repository"
)

// OrderUseCase operaciones sobre órdenes existentes: consulta, pago,
// cancelación (usuario) y cumplimiento (vendor). Todas las transiciones se
// persisten con UPDATE condicionado al estado origen: de dos peticiones
// concurrentes solo una avanza, la otra recibe ErrInvalidTransition.
type OrderUseCase struct {
	orderRepo  repository.OrderRepository
	itemRepo   repository.ItemRepository
	vendorRepo repository.VendorRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, itemRepo repository.ItemRepository, vendorRepo repository.VendorRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, itemRepo: itemRepo, vendorRepo: vendorRepo}
}

// ownedOrder carga una orden verificando que pertenezca al usuario.
// Ids ajenos se reportan como no encontrados.
func (uc *OrderUseCase) ownedOrder(userID, orderID string) (*entity.Order, error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// ListByUser lista las órdenes del usuario.
func (uc *OrderUseCase) ListByUser(userID string, limit, offset int) ([]*dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// Get devuelve una orden propia.
func (uc *OrderUseCase) Get(userID, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.ownedOrder(userID, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// Pay transiciona pending → paid. Antes de pagar revalida que el total sea
// positivo y que cada artículo referenciado siga aprobado con vendor activo.
func (uc *OrderUseCase) Pay(userID, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.ownedOrder(userID, orderID)
	if err != nil {
		return nil, err
	}
	if err := domainorder.Transition(o.Status, domainorder.StatusPaid); err != nil {
		return nil, err
	}
	if !o.Total.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range o.Lines {
		item, err := uc.itemRepo.GetByID(line.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil || item.Status != entity.ItemStatusApproved {
			return nil, domain.ErrItemNotOrderable
		}
		vendor, err := uc.vendorRepo.GetByID(line.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil || vendor.MembershipStatus != entity.MembershipActive {
			return nil, domain.ErrItemNotOrderable
		}
	}
	return uc.transition(o, domainorder.StatusPending, domainorder.StatusPaid)
}

// Cancel transiciona pending|paid → cancelled. Una orden completada ya no se cancela.
func (uc *OrderUseCase) Cancel(userID, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.ownedOrder(userID, orderID)
	if err != nil {
		return nil, err
	}
	if err := domainorder.Transition(o.Status, domainorder.StatusCancelled); err != nil {
		return nil, err
	}
	return uc.transition(o, o.Status, domainorder.StatusCancelled)
}

// ListByVendor lista las órdenes que contienen líneas del vendor autenticado,
// mostrando únicamente sus líneas.
func (uc *OrderUseCase) ListByVendor(vendorUserID string, limit, offset int) ([]*dto.OrderResponse, error) {
	vendor, err := uc.vendorRepo.GetByUserID(vendorUserID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	orders, err := uc.orderRepo.ListByVendor(vendor.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// Fulfill marca una orden pagada como completada. Solo un vendor dueño de al
// menos una línea puede hacerlo; órdenes sin líneas suyas → not found.
func (uc *OrderUseCase) Fulfill(vendorUserID, orderID string) (*dto.OrderResponse, error) {
	vendor, err := uc.vendorRepo.GetByUserID(vendorUserID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	ownsLine := false
	for _, line := range o.Lines {
		if line.VendorID == vendor.ID {
			ownsLine = true
			break
		}
	}
	if !ownsLine {
		return nil, domain.ErrNotFound
	}
	if err := domainorder.Transition(o.Status, domainorder.StatusCompleted); err != nil {
		return nil, err
	}
	return uc.transition(o, domainorder.StatusPaid, domainorder.StatusCompleted)
}

// transition aplica el cambio de estado con escritura condicional.
func (uc *OrderUseCase) transition(o *entity.Order, from, to string) (*dto.OrderResponse, error) {
	ok, err := uc.orderRepo.UpdateStatus(o.ID, from, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Otra petición ganó la carrera: el estado ya no es from.
		return nil, domain.ErrInvalidTransition
	}
	o.Status = to
	return toOrderResponse(o), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ID:        l.ID,
			ItemID:    l.ItemID,
			VendorID:  l.VendorID,
			ItemName:  l.ItemName,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
		Lines:     lines,
	}
}

func toOrderResponses(orders []*entity.Order) []*dto.OrderResponse {
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}
