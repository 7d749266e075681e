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

// CatalogUseCase catálogo de artículos: CRUD del vendor sobre lo propio,
// aprobación por admin y browse de usuarios (solo aprobados de vendors activos).
type CatalogUseCase struct {
	itemRepo   repository.ItemRepository
	vendorRepo repository.VendorRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(itemRepo repository.ItemRepository, vendorRepo repository.VendorRepository) *CatalogUseCase {
	return &CatalogUseCase{itemRepo: itemRepo, vendorRepo: vendorRepo}
}

// vendorOf resuelve el perfil vendor de la cuenta autenticada.
func (uc *CatalogUseCase) vendorOf(userID string) (*entity.Vendor, error) {
	vendor, err := uc.vendorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	return vendor, nil
}

// ownedItem carga un artículo y verifica que pertenezca al vendor. Un id de
// otro vendor se reporta como no encontrado, nunca como prohibido.
func (uc *CatalogUseCase) ownedItem(vendorID, itemID string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.VendorID != vendorID {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// CreateItem publica un artículo del vendor. El estado inicia en pending hasta
// revisión del admin.
func (uc *CatalogUseCase) CreateItem(userID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	vendor, err := uc.vendorOf(userID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || !in.Price.IsPositive() || !entity.ValidItemCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		VendorID:    vendor.ID,
		Name:        name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Status:      entity.ItemStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// UpdateItem edita un artículo propio. Toda edición regresa el estado a
// pending: un artículo aprobado y luego modificado vuelve a revisión.
func (uc *CatalogUseCase) UpdateItem(userID, itemID string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	vendor, err := uc.vendorOf(userID)
	if err != nil {
		return nil, err
	}
	item, err := uc.ownedItem(vendor.ID, itemID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Category != nil {
		if !entity.ValidItemCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		item.Category = *in.Category
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	item.Status = entity.ItemStatusPending
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// DeleteItem elimina un artículo propio.
func (uc *CatalogUseCase) DeleteItem(userID, itemID string) error {
	vendor, err := uc.vendorOf(userID)
	if err != nil {
		return err
	}
	if _, err := uc.ownedItem(vendor.ID, itemID); err != nil {
		return err
	}
	return uc.itemRepo.Delete(itemID)
}

// ListVendorItems lista los artículos del vendor autenticado (todos los estados).
func (uc *CatalogUseCase) ListVendorItems(userID string, limit, offset int) ([]*dto.ItemResponse, error) {
	vendor, err := uc.vendorOf(userID)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.ListByVendor(vendor.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// ListAll lista todos los artículos sin filtrar (admin).
func (uc *CatalogUseCase) ListAll(limit, offset int) ([]*dto.ItemResponse, error) {
	items, err := uc.itemRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// SetApproval aprueba o rechaza un artículo (admin).
func (uc *CatalogUseCase) SetApproval(itemID, status string) (*dto.ItemResponse, error) {
	if status != entity.ItemStatusApproved && status != entity.ItemStatusRejected {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.itemRepo.UpdateStatus(itemID, status); err != nil {
		return nil, err
	}
	item.Status = status
	return toItemResponse(item), nil
}

// AdminDeleteItem elimina cualquier artículo (admin).
func (uc *CatalogUseCase) AdminDeleteItem(itemID string) error {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(itemID)
}

// Browse lista artículos ordenables: aprobados y de vendors con membresía
// activa. vendorID y category son filtros opcionales.
func (uc *CatalogUseCase) Browse(vendorID, category string, limit, offset int) ([]*dto.ItemResponse, error) {
	if category != "" && !entity.ValidItemCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.itemRepo.ListOrderable(vendorID, category, limit, offset)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          i.ID,
		VendorID:    i.VendorID,
		Name:        i.Name,
		Description: i.Description,
		Category:    i.Category,
		Price:       i.Price,
		Status:      i.Status,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toItemResponses(items []*entity.Item) []*dto.ItemResponse {
	out := make([]*dto.ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toItemResponse(i))
	}
	return out
}
