package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/eventos-api/internal/application/dto"
	"github.com/tu-usuario/eventos-api/internal/application/usecase"
	"github.com/tu-usuario/eventos-api/internal/domain"
	"github.com/tu-usuario/eventos-api/internal/domain/entity"
)

func newCartUC(s *memStore) *usecase.CartUseCase {
	return usecase.NewCartUseCase(&fakeCartRepo{s}, &fakeItemRepo{s}, &fakeVendorRepo{s})
}

func TestCartAdd_ArticuloOrdenable(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusApproved)
	uc := newCartUC(s)

	out, err := uc.Add("u1", dto.AddCartItemRequest{ItemID: "i1", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Quantity)
	require.NotNil(t, out.Item)
	assert.Equal(t, "i1", out.Item.ID)
}

func TestCartAdd_MismoArticulo_AcumulaCantidad(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusApproved)
	uc := newCartUC(s)

	_, err := uc.Add("u1", dto.AddCartItemRequest{ItemID: "i1", Quantity: 2})
	require.NoError(t, err)
	out, err := uc.Add("u1", dto.AddCartItemRequest{ItemID: "i1", Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, 5, out.Quantity, "agregar el mismo artículo acumula")
	assert.Len(t, s.cart, 1, "sin líneas duplicadas")
}

func TestCartAdd_AcumuladoSeTopaEnElMaximo(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusApproved)
	uc := newCartUC(s)

	_, err := uc.Add("u1", dto.AddCartItemRequest{ItemID: "i1", Quantity: 80})
	require.NoError(t, err)
	out, err := uc.Add("u1", dto.AddCartItemRequest{ItemID: "i1", Quantity: 80})
	require.NoError(t, err)

	assert.Equal(t, entity.MaxCartQuantity, out.Quantity)
}

// racingCartRepo simula dos agregados concurrentes del mismo artículo: el
// primer GetByUserAndItem no ve nada, el Create choca con el unique porque la
// línea rival se insertó en medio, y recién entonces la línea es visible.
type racingCartRepo struct {
	*fakeCartRepo
	rival   *entity.CartItem
	visible bool
}

func (r *racingCartRepo) GetByUserAndItem(userID, itemID string) (*entity.CartItem, error) {
	if !r.visible {
		return nil, nil
	}
	return r.fakeCartRepo.GetByUserAndItem(userID, itemID)
}

func (r *racingCartRepo) Create(c *entity.CartItem) error {
	if !r.visible {
		r.s.cart = append(r.s.cart, r.rival)
		r.visible = true
		return domain.ErrDuplicate
	}
	return r.fakeCartRepo.Create(c)
}

func TestCartAdd_CarreraPorLaMismaLinea_AcumulaSobreLaGanadora(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusApproved)
	rival := &entity.CartItem{ID: "c-rival", UserID: "u1", ItemID: "i1", Quantity: 2}
	repo := &racingCartRepo{fakeCartRepo: &fakeCartRepo{s}, rival: rival}
	uc := usecase.NewCartUseCase(repo, &fakeItemRepo{s}, &fakeVendorRepo{s})

	out, err := uc.Add("u1", dto.AddCartItemRequest{ItemID: "i1", Quantity: 3})
	require.NoError(t, err, "el perdedor de la carrera no debe fallar")

	assert.Equal(t, "c-rival", out.ID, "acumula sobre la línea que ganó la carrera")
	assert.Equal(t, 5, out.Quantity)
	assert.Len(t, s.cart, 1, "sin líneas duplicadas")
}

func TestCartAdd_CantidadFueraDeRango(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusApproved)
	uc := newCartUC(s)

	_, err := uc.Add("u1", dto.AddCartItemRequest{ItemID: "i1", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Add("u1", dto.AddCartItemRequest{ItemID: "i1", Quantity: 101})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCartAdd_ArticuloNoOrdenable(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i-pend", entity.ItemStatusPending)
	seedVendorWithItem(s, "v2", "vu2", entity.MembershipPending, "i-inact", entity.ItemStatusApproved)
	uc := newCartUC(s)

	_, err := uc.Add("u1", dto.AddCartItemRequest{ItemID: "i-pend", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrItemNotOrderable, "artículo sin aprobar")

	_, err = uc.Add("u1", dto.AddCartItemRequest{ItemID: "i-inact", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrItemNotOrderable, "vendor con membresía no activa")

	_, err = uc.Add("u1", dto.AddCartItemRequest{ItemID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCartRemove_LineaAjena_RetornaErrNotFound(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusApproved)
	uc := newCartUC(s)

	out, err := uc.Add("u1", dto.AddCartItemRequest{ItemID: "i1", Quantity: 1})
	require.NoError(t, err)

	err = uc.Remove("u2", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, s.cart, 1, "la línea ajena no debe borrarse")

	require.NoError(t, uc.Remove("u1", out.ID))
	assert.Empty(t, s.cart)
}

func TestCartClear(t *testing.T) {
	s := newMemStore()
	seedVendorWithItem(s, "v1", "vu1", entity.MembershipActive, "i1", entity.ItemStatusApproved)
	uc := newCartUC(s)

	_, err := uc.Add("u1", dto.AddCartItemRequest{ItemID: "i1", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, uc.Clear("u1"))
	list, err := uc.List("u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}
