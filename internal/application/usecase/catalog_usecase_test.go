package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/eventos-api/internal/application/dto"
	"github.com/tu-usuario/eventos-api/internal/application/usecase"
	"github.com/tu-usuario/eventos-api/internal/domain"
	"github.com/tu-usuario/eventos-api/internal/domain/entity"
)

func newCatalogUC(s *memStore) *usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(&fakeItemRepo{s}, &fakeVendorRepo{s})
}

func TestCreateItem_IniciaEnPending(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusApproved)
	uc := newCatalogUC(s)

	out, err := uc.CreateItem("vu1", dto.CreateItemRequest{
		Name:     "Iluminación ambiental",
		Category: "Lighting",
		Price:    decimal.NewFromInt(80),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusPending, out.Status,
		"todo artículo nuevo inicia en pending")
	assert.Equal(t, "v1", out.VendorID)
}

func TestCreateItem_DatosInvalidos(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusApproved)
	uc := newCatalogUC(s)

	_, err := uc.CreateItem("vu1", dto.CreateItemRequest{Name: "", Category: "Catering", Price: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.CreateItem("vu1", dto.CreateItemRequest{Name: "x", Category: "Comida", Price: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "categoría desconocida")

	_, err = uc.CreateItem("vu1", dto.CreateItemRequest{Name: "x", Category: "Catering", Price: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio no positivo")
}

func TestUpdateItem_EdicionRegresaAPending(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusApproved)
	uc := newCatalogUC(s)

	nuevoNombre := "Buffet renovado"
	out, err := uc.UpdateItem("vu1", "i1", dto.UpdateItemRequest{Name: &nuevoNombre})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusPending, out.Status,
		"editar un artículo aprobado debe regresarlo a revisión")
	assert.Equal(t, nuevoNombre, out.Name)
}

func TestUpdateItem_ArticuloDeOtroVendor_RetornaErrNotFound(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusApproved)
	seedVendorWithItem(s, "v2", "vu2", entity.MembershipActive, "i2", entity.ItemStatusApproved)
	uc := newCatalogUC(s)

	nombre := "hack"
	_, err := uc.UpdateItem("vu1", "i2", dto.UpdateItemRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un artículo ajeno se reporta como inexistente")

	err = uc.DeleteItem("vu1", "i2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotNil(t, s.items["i2"], "el artículo ajeno no debe borrarse")
}

func TestSetApproval_ApruebaYRechaza(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusPending)
	uc := newCatalogUC(s)

	out, err := uc.SetApproval("i1", entity.ItemStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusApproved, out.Status)

	out, err = uc.SetApproval("i1", entity.ItemStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusRejected, out.Status)

	_, err = uc.SetApproval("i1", "archivado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SetApproval("no-existe", entity.ItemStatusApproved)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La vista de usuarios excluye artículos no aprobados y vendors sin membresía
// activa, aunque sus artículos estén aprobados.
func TestBrowse_SoloAprobadosDeVendorsActivos(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusApproved)
	seedVendorWithItem(s, "v2", "vu2", entity.MembershipActive, "i2", entity.ItemStatusPending)
	seedVendorWithItem(s, "v3", "vu3", entity.MembershipInactive, "i3", entity.ItemStatusApproved)
	uc := newCatalogUC(s)

	out, err := uc.Browse("", "", 20, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "i1", out[0].ID)
}

func TestBrowse_FiltroPorCategoria(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusApproved)
	s.items["i-luz"] = &entity.Item{
		ID: "i-luz", VendorID: "v1", Name: "Luces cálidas",
		Category: "Lighting", Price: decimal.NewFromInt(60),
		Status: entity.ItemStatusApproved,
	}
	uc := newCatalogUC(s)

	out, err := uc.Browse("", "Lighting", 20, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "i-luz", out[0].ID)

	_, err = uc.Browse("", "Musica", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "categoría desconocida en el filtro")
}
