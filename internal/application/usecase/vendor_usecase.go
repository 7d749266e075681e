package usecase

import (
	"strings"
	"time"

	"github.com/tu-usuario/eventos-api/internal/application/dto"
	"github.com/tu-usuario/eventos-api/internal/domain"
	"github.com/tu-usuario/eventos-api/internal/domain/entity"
	"github.com/tu-usuario/eventos-api/internal/domain/repository"
)

// VendorUseCase gestión de vendors: listado y membresía (admin), perfil propio
// y browse de vendors activos (usuarios).
type VendorUseCase struct {
	vendorRepo repository.VendorRepository
	userRepo   repository.UserRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(vendorRepo repository.VendorRepository, userRepo repository.UserRepository) *VendorUseCase {
	return &VendorUseCase{vendorRepo: vendorRepo, userRepo: userRepo}
}

// List lista todos los vendors (admin).
func (uc *VendorUseCase) List(limit, offset int) ([]*dto.VendorResponse, error) {
	vendors, err := uc.vendorRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toVendorResponses(vendors), nil
}

// ListActive lista solo vendors con membresía activa (browse de usuarios).
// La membresía gobierna la visibilidad del vendor aunque tenga artículos aprobados.
func (uc *VendorUseCase) ListActive(limit, offset int) ([]*dto.VendorResponse, error) {
	vendors, err := uc.vendorRepo.ListActive(limit, offset)
	if err != nil {
		return nil, err
	}
	return toVendorResponses(vendors), nil
}

// Update actualiza el nombre comercial o la membresía de un vendor (admin).
func (uc *VendorUseCase) Update(id string, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := uc.vendorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	if in.CompanyName != nil && strings.TrimSpace(*in.CompanyName) != "" {
		vendor.CompanyName = strings.TrimSpace(*in.CompanyName)
	}
	if in.Category != nil {
		if !entity.ValidItemCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		vendor.Category = *in.Category
	}
	if in.MembershipStatus != nil {
		if !entity.ValidMembershipStatus(*in.MembershipStatus) {
			return nil, domain.ErrInvalidInput
		}
		vendor.MembershipStatus = *in.MembershipStatus
	}
	vendor.UpdatedAt = time.Now()
	if err := uc.vendorRepo.Update(vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// UpdateMembership cambia el estado de membresía (admin).
func (uc *VendorUseCase) UpdateMembership(id string, in dto.MembershipUpdateRequest) (*dto.VendorResponse, error) {
	if !entity.ValidMembershipStatus(in.MembershipStatus) {
		return nil, domain.ErrInvalidInput
	}
	vendor, err := uc.vendorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	vendor.MembershipStatus = in.MembershipStatus
	vendor.UpdatedAt = time.Now()
	if err := uc.vendorRepo.Update(vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// Profile devuelve el perfil comercial de la cuenta vendor autenticada.
func (uc *VendorUseCase) Profile(userID string) (*dto.VendorProfileResponse, error) {
	vendor, err := uc.vendorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.VendorProfileResponse{
		VendorResponse: *toVendorResponse(vendor),
		UserName:       user.Name,
		UserEmail:      user.Email,
	}, nil
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	if v == nil {
		return nil
	}
	return &dto.VendorResponse{
		ID:               v.ID,
		UserID:           v.UserID,
		CompanyName:      v.CompanyName,
		Category:         v.Category,
		MembershipStatus: v.MembershipStatus,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func toVendorResponses(vendors []*entity.Vendor) []*dto.VendorResponse {
	out := make([]*dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, toVendorResponse(v))
	}
	return out
}
