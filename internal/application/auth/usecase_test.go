package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/eventos-api/internal/application/auth"
	"github.com/tu-usuario/eventos-api/internal/application/dto"
	"github.com/tu-usuario/eventos-api/internal/domain"
	"github.com/tu-usuario/eventos-api/internal/domain/entity"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: map[string]*entity.User{}} }

func (r *fakeUserRepo) Create(u *entity.User) error           { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}
func (r *fakeUserRepo) Delete(id string) error { delete(r.users, id); return nil }

type fakeVendorRepo struct {
	vendors map[string]*entity.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo { return &fakeVendorRepo{vendors: map[string]*entity.Vendor{}} }

func (r *fakeVendorRepo) Create(v *entity.Vendor) error             { r.vendors[v.ID] = v; return nil }
func (r *fakeVendorRepo) GetByID(id string) (*entity.Vendor, error) { return r.vendors[id], nil }
func (r *fakeVendorRepo) GetByUserID(userID string) (*entity.Vendor, error) {
	for _, v := range r.vendors {
		if v.UserID == userID {
			return v, nil
		}
	}
	return nil, nil
}
func (r *fakeVendorRepo) Update(v *entity.Vendor) error { r.vendors[v.ID] = v; return nil }
func (r *fakeVendorRepo) List(limit, offset int) ([]*entity.Vendor, error)       { return nil, nil }
func (r *fakeVendorRepo) ListActive(limit, offset int) ([]*entity.Vendor, error) { return nil, nil }

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo, *fakeVendorRepo) {
	userRepo := newFakeUserRepo()
	vendorRepo := newFakeVendorRepo()
	uc := auth.NewAuthUseCase(userRepo, vendorRepo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "eventos-api-test",
	})
	return uc, userRepo, vendorRepo
}

func TestRegister_User(t *testing.T) {
	uc, _, _ := newAuthUC()

	out, err := uc.Register(dto.RegisterRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secreto1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role, "el rol por defecto es user")
	assert.Equal(t, entity.UserStatusActive, out.Status)
}

func TestRegister_Vendor_CreaPerfilConMembresiaPending(t *testing.T) {
	uc, _, vendorRepo := newAuthUC()

	out, err := uc.Register(dto.RegisterRequest{
		Name: "Marta", Email: "marta@example.com", Password: "secreto1",
		Role: entity.RoleVendor, CompanyName: "Banquetes Oro", Category: "Catering",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendor, out.Role)

	vendor, err := vendorRepo.GetByUserID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, vendor, "el registro vendor debe crear el perfil comercial")
	assert.Equal(t, entity.MembershipPending, vendor.MembershipStatus,
		"la membresía inicia pending hasta que un admin la active")
	assert.Equal(t, "Banquetes Oro", vendor.CompanyName)
}

func TestRegister_VendorSinDatosComerciales_Falla(t *testing.T) {
	uc, _, _ := newAuthUC()

	_, err := uc.Register(dto.RegisterRequest{
		Name: "Marta", Email: "marta@example.com", Password: "secreto1",
		Role: entity.RoleVendor,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "vendor sin company_name ni category")
}

func TestRegister_RolAdminPorRegistroPublico_Falla(t *testing.T) {
	uc, _, _ := newAuthUC()

	_, err := uc.Register(dto.RegisterRequest{
		Name: "Eve", Email: "eve@example.com", Password: "secreto1", Role: entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"el alta pública no admite rol admin")
}

func TestRegister_EmailDuplicado_Falla(t *testing.T) {
	uc, _, _ := newAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto1"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Name: "Ana2", Email: "ana@example.com", Password: "secreto2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesYEstado(t *testing.T) {
	uc, userRepo, _ := newAuthUC()

	out, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto1"})
	require.NoError(t, err)

	// login correcto
	resp, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, out.ID, resp.User.ID)

	// password incorrecto
	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// email inexistente
	_, err = uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// cuenta desactivada
	userRepo.users[out.ID].Status = entity.UserStatusInactive
	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"una cuenta desactivada no puede iniciar sesión")
}

func TestIsActive_ReflejaElEstadoVivo(t *testing.T) {
	uc, userRepo, _ := newAuthUC()

	out, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto1"})
	require.NoError(t, err)

	active, err := uc.IsActive(context.Background(), out.ID)
	require.NoError(t, err)
	assert.True(t, active)

	userRepo.users[out.ID].Status = entity.UserStatusInactive
	active, err = uc.IsActive(context.Background(), out.ID)
	require.NoError(t, err)
	assert.False(t, active, "el chequeo vivo debe ver la desactivación inmediatamente")

	active, err = uc.IsActive(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.False(t, active)
}
