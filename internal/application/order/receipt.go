package order

import (
	"context"

	"github.com/tu-usuario/eventos-api/internal/domain"
	"github.com/tu-usuario/eventos-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una orden propia.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orderRepo repository.OrderRepository, userRepo repository.UserRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, userRepo: userRepo, generator: generator}
}

// Receipt devuelve los bytes del PDF. La orden debe pertenecer al usuario.
func (uc *ReceiptUseCase) Receipt(ctx context.Context, userID, orderID string) ([]byte, error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.UserID != userID {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateReceiptPDF(ctx, o, user)
}
