package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/eventos-api/internal/domain/authz"
)

func TestCan_Admin(t *testing.T) {
	assert.True(t, authz.Can("admin", authz.ActionApprove, authz.ResourceItem))
	assert.True(t, authz.Can("admin", authz.ActionApprove, authz.ResourceVendor))
	assert.True(t, authz.Can("admin", authz.ActionModerate, authz.ResourceItem))
	assert.True(t, authz.Can("admin", authz.ActionModerate, authz.ResourceVendor))
	assert.True(t, authz.Can("admin", authz.ActionDelete, authz.ResourceUser))
	// El lado usuario también está disponible para admin.
	assert.True(t, authz.Can("admin", authz.ActionPay, authz.ResourceOrder))

	assert.False(t, authz.Can("admin", authz.ActionFulfill, authz.ResourceOrder),
		"completar órdenes es exclusivo del vendor")
	assert.False(t, authz.Can("admin", authz.ActionCreate, authz.ResourceItem),
		"el catálogo lo crean los vendors")
}

func TestCan_Vendor(t *testing.T) {
	assert.True(t, authz.Can("vendor", authz.ActionCreate, authz.ResourceItem))
	assert.True(t, authz.Can("vendor", authz.ActionFulfill, authz.ResourceOrder))

	assert.False(t, authz.Can("vendor", authz.ActionApprove, authz.ResourceItem),
		"un vendor no aprueba su propio catálogo")
	assert.False(t, authz.Can("vendor", authz.ActionModerate, authz.ResourceItem),
		"los listados completos del catálogo son de moderación")
	assert.False(t, authz.Can("vendor", authz.ActionCreate, authz.ResourceCart))
	assert.False(t, authz.Can("vendor", authz.ActionPay, authz.ResourceOrder))
}

func TestCan_User(t *testing.T) {
	assert.True(t, authz.Can("user", authz.ActionCreate, authz.ResourceCart))
	assert.True(t, authz.Can("user", authz.ActionPay, authz.ResourceOrder))
	assert.True(t, authz.Can("user", authz.ActionCancel, authz.ResourceOrder))
	assert.True(t, authz.Can("user", authz.ActionUpdate, authz.ResourceGuest))

	assert.False(t, authz.Can("user", authz.ActionCreate, authz.ResourceItem))
	assert.False(t, authz.Can("user", authz.ActionApprove, authz.ResourceItem))
	assert.False(t, authz.Can("user", authz.ActionModerate, authz.ResourceVendor))
	assert.False(t, authz.Can("user", authz.ActionFulfill, authz.ResourceOrder))
}

func TestCan_RolDesconocido(t *testing.T) {
	assert.False(t, authz.Can("superuser", authz.ActionRead, authz.ResourceUser))
	assert.False(t, authz.Can("", authz.ActionRead, authz.ResourceItem))
}
