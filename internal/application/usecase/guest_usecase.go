package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/eventos-api/internal/application/dto"
	"github.com/tu-usuario/eventos-api/internal/domain"
	"github.com/tu-usuario/eventos-api/internal/domain/entity"
	"github.com/tu-usuario/eventos-api/internal/domain/repository"
)

// GuestUseCase lista de invitados por usuario, independiente de las órdenes.
type GuestUseCase struct {
	guestRepo repository.GuestRepository
}

// NewGuestUseCase construye el caso de uso.
func NewGuestUseCase(guestRepo repository.GuestRepository) *GuestUseCase {
	return &GuestUseCase{guestRepo: guestRepo}
}

// ownedGuest carga un invitado verificando propiedad. Ids ajenos → not found.
func (uc *GuestUseCase) ownedGuest(userID, guestID string) (*entity.Guest, error) {
	guest, err := uc.guestRepo.GetByID(guestID)
	if err != nil {
		return nil, err
	}
	if guest == nil || guest.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return guest, nil
}

// Create agrega un invitado a la lista del usuario.
func (uc *GuestUseCase) Create(userID string, in dto.CreateGuestRequest) (*dto.GuestResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.RSVPStatus
	if status == "" {
		status = entity.RSVPPending
	}
	if !entity.ValidRSVPStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	guest := &entity.Guest{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       name,
		Email:      in.Email,
		RSVPStatus: status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.guestRepo.Create(guest); err != nil {
		return nil, err
	}
	return toGuestResponse(guest), nil
}

// List devuelve la lista de invitados del usuario.
func (uc *GuestUseCase) List(userID string) ([]*dto.GuestResponse, error) {
	guests, err := uc.guestRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GuestResponse, 0, len(guests))
	for _, g := range guests {
		out = append(out, toGuestResponse(g))
	}
	return out, nil
}

// Update edita nombre, email o RSVP de un invitado propio.
func (uc *GuestUseCase) Update(userID, guestID string, in dto.UpdateGuestRequest) (*dto.GuestResponse, error) {
	guest, err := uc.ownedGuest(userID, guestID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		guest.Name = name
	}
	if in.Email != nil {
		guest.Email = *in.Email
	}
	if in.RSVPStatus != nil {
		if !entity.ValidRSVPStatus(*in.RSVPStatus) {
			return nil, domain.ErrInvalidInput
		}
		guest.RSVPStatus = *in.RSVPStatus
	}
	guest.UpdatedAt = time.Now()
	if err := uc.guestRepo.Update(guest); err != nil {
		return nil, err
	}
	return toGuestResponse(guest), nil
}

// Delete elimina un invitado propio.
func (uc *GuestUseCase) Delete(userID, guestID string) error {
	if _, err := uc.ownedGuest(userID, guestID); err != nil {
		return err
	}
	return uc.guestRepo.Delete(guestID)
}

func toGuestResponse(g *entity.Guest) *dto.GuestResponse {
	if g == nil {
		return nil
	}
	return &dto.GuestResponse{
		ID:         g.ID,
		UserID:     g.UserID,
		Name:       g.Name,
		Email:      g.Email,
		RSVPStatus: g.RSVPStatus,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}
