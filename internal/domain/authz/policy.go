// Package authz define la tabla de capacidades (rol × recurso × acción) de la
// plataforma. Toda decisión de autorización pasa por Can; los chequeos de
// propiedad sobre recursos concretos se resuelven aparte, antes de mutar.
package authz

// Resource tipos de recurso sobre los que se autoriza.
type Resource string

const (
	ResourceUser   Resource = "user"
	ResourceVendor Resource = "vendor"
	ResourceItem   Resource = "item"
	ResourceCart   Resource = "cart"
	ResourceOrder  Resource = "order"
	ResourceGuest  Resource = "guest"
)

// Action acciones autorizables.
type Action string

const (
	ActionRead    Action = "read"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionApprove  Action = "approve"  // admin: aprobar/rechazar artículos, activar membresías
	ActionModerate Action = "moderate" // admin: listados completos y retiro de catálogo, sin filtro de propiedad
	ActionFulfill  Action = "fulfill"  // vendor: marcar orden pagada como completada
	ActionPay      Action = "pay"
	ActionCancel   Action = "cancel"
)

// policy: capacidades por rol. Vendor y user operan siempre sobre recursos
// propios (la propiedad se verifica contra la DB en cada caso de uso); admin
// opera sobre cuentas, vendors y catálogo sin restricción de propiedad.
var policy = map[string]map[Resource][]Action{
	"admin": {
		ResourceUser:   {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		ResourceVendor: {ActionRead, ActionUpdate, ActionApprove, ActionModerate},
		ResourceItem:   {ActionRead, ActionApprove, ActionModerate},
		// Un admin puede además usar la plataforma como usuario final.
		ResourceCart:  {ActionRead, ActionCreate, ActionDelete},
		ResourceOrder: {ActionRead, ActionCreate, ActionPay, ActionCancel},
		ResourceGuest: {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
	},
	"vendor": {
		ResourceVendor: {ActionRead},
		ResourceItem:   {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		ResourceOrder:  {ActionRead, ActionFulfill},
	},
	"user": {
		ResourceVendor: {ActionRead},
		ResourceItem:   {ActionRead},
		ResourceCart:   {ActionRead, ActionCreate, ActionDelete},
		ResourceOrder:  {ActionRead, ActionCreate, ActionPay, ActionCancel},
		ResourceGuest:  {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
	},
}

// Can indica si el rol puede ejecutar la acción sobre el tipo de recurso.
// Roles desconocidos no tienen capacidades.
func Can(role string, action Action, resource Resource) bool {
	caps, ok := policy[role]
	if !ok {
		return false
	}
	for _, a := range caps[resource] {
		if a == action {
			return true
		}
	}
	return false
}
