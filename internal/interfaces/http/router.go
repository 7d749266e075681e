package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/eventos-api/internal/application/auth"
	apporder "github.com/tu-usuario/eventos-api/internal/application/order"
	"github.com/tu-usuario/eventos-api/internal/application/usecase"
	"github.com/tu-usuario/eventos-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	VendorUC  *usecase.VendorUseCase
	CatalogUC *usecase.CatalogUseCase
	CartUC    *usecase.CartUseCase
	GuestUC   *usecase.GuestUseCase
	OrderUC   *apporder.OrderUseCase
	CreateUC  *apporder.CreateOrderUseCase
	ReceiptUC *apporder.ReceiptUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
//
// El token es stateless: AuthMiddleware valida firma y expiración, y
// RequireActiveUser re-verifica contra la DB que la cuenta siga activa en
// cada llamada privilegiada. Cada ruta declara con Authorize la (acción,
// recurso) que ejercita; la decisión sale de la tabla de capacidades de
// authz, y los casos de uso resuelven la propiedad sobre el recurso concreto.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (register/login públicos, me protegido: el perfil es propio,
	// no pasa por la tabla de capacidades)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), RequireActiveUser(deps.AuthUC), authHandler.Me)

	// Admin: cuentas, membresías y moderación del catálogo
	admin := api.Group("/admin",
		AuthMiddleware(deps.JWTSecret),
		RequireActiveUser(deps.AuthUC),
	)
	adminHandler := NewAdminHandler(deps.UserUC, deps.VendorUC, deps.CatalogUC)
	admin.Get("/users", Authorize(authz.ActionRead, authz.ResourceUser), adminHandler.ListUsers)
	admin.Post("/users", Authorize(authz.ActionCreate, authz.ResourceUser), adminHandler.CreateUser)
	admin.Put("/users/:id", Authorize(authz.ActionUpdate, authz.ResourceUser), adminHandler.UpdateUser)
	admin.Delete("/users/:id", Authorize(authz.ActionDelete, authz.ResourceUser), adminHandler.DeleteUser)
	admin.Get("/vendors", Authorize(authz.ActionModerate, authz.ResourceVendor), adminHandler.ListVendors)
	admin.Put("/vendors/:id", Authorize(authz.ActionUpdate, authz.ResourceVendor), adminHandler.UpdateVendor)
	admin.Put("/memberships/:id", Authorize(authz.ActionApprove, authz.ResourceVendor), adminHandler.UpdateMembership)
	admin.Get("/items", Authorize(authz.ActionModerate, authz.ResourceItem), adminHandler.ListItems)
	admin.Put("/items/:id/approve", Authorize(authz.ActionApprove, authz.ResourceItem), adminHandler.ApproveItem)
	admin.Put("/items/:id/reject", Authorize(authz.ActionApprove, authz.ResourceItem), adminHandler.RejectItem)
	admin.Delete("/items/:id", Authorize(authz.ActionModerate, authz.ResourceItem), adminHandler.DeleteItem)

	// Vendor: perfil, catálogo propio y órdenes recibidas
	vendor := api.Group("/vendor",
		AuthMiddleware(deps.JWTSecret),
		RequireActiveUser(deps.AuthUC),
	)
	vendorHandler := NewVendorHandler(deps.VendorUC, deps.CatalogUC, deps.OrderUC)
	vendor.Get("/profile", Authorize(authz.ActionRead, authz.ResourceVendor), vendorHandler.Profile)
	vendor.Get("/items", Authorize(authz.ActionRead, authz.ResourceItem), vendorHandler.ListItems)
	vendor.Post("/items", Authorize(authz.ActionCreate, authz.ResourceItem), vendorHandler.CreateItem)
	vendor.Put("/items/:id", Authorize(authz.ActionUpdate, authz.ResourceItem), vendorHandler.UpdateItem)
	vendor.Delete("/items/:id", Authorize(authz.ActionDelete, authz.ResourceItem), vendorHandler.DeleteItem)
	vendor.Get("/orders", Authorize(authz.ActionRead, authz.ResourceOrder), vendorHandler.ListOrders)
	vendor.Put("/orders/:id/fulfill", Authorize(authz.ActionFulfill, authz.ResourceOrder), vendorHandler.FulfillOrder)

	// User: browse, carrito, órdenes e invitados
	user := api.Group("/user",
		AuthMiddleware(deps.JWTSecret),
		RequireActiveUser(deps.AuthUC),
	)
	browseHandler := NewBrowseHandler(deps.VendorUC, deps.CatalogUC)
	user.Get("/vendors", Authorize(authz.ActionRead, authz.ResourceVendor), browseHandler.ListVendors)
	user.Get("/vendors/:id/items", Authorize(authz.ActionRead, authz.ResourceItem), browseHandler.ListVendorItems)
	user.Get("/items", Authorize(authz.ActionRead, authz.ResourceItem), browseHandler.ListItems)

	cartHandler := NewCartHandler(deps.CartUC)
	user.Get("/cart", Authorize(authz.ActionRead, authz.ResourceCart), cartHandler.List)
	user.Post("/cart", Authorize(authz.ActionCreate, authz.ResourceCart), cartHandler.Add)
	user.Delete("/cart/:id", Authorize(authz.ActionDelete, authz.ResourceCart), cartHandler.Remove)
	user.Delete("/cart", Authorize(authz.ActionDelete, authz.ResourceCart), cartHandler.Clear)

	orderHandler := NewOrderHandler(deps.OrderUC, deps.CreateUC, deps.ReceiptUC)
	user.Get("/orders", Authorize(authz.ActionRead, authz.ResourceOrder), orderHandler.List)
	user.Post("/orders", Authorize(authz.ActionCreate, authz.ResourceOrder), orderHandler.Create)
	user.Get("/orders/:id", Authorize(authz.ActionRead, authz.ResourceOrder), orderHandler.Get)
	user.Put("/orders/:id/pay", Authorize(authz.ActionPay, authz.ResourceOrder), orderHandler.Pay)
	user.Put("/orders/:id/cancel", Authorize(authz.ActionCancel, authz.ResourceOrder), orderHandler.Cancel)
	user.Get("/orders/:id/receipt", Authorize(authz.ActionRead, authz.ResourceOrder), orderHandler.Receipt)

	guestHandler := NewGuestHandler(deps.GuestUC)
	user.Get("/guests", Authorize(authz.ActionRead, authz.ResourceGuest), guestHandler.List)
	user.Post("/guests", Authorize(authz.ActionCreate, authz.ResourceGuest), guestHandler.Create)
	user.Put("/guests/:id", Authorize(authz.ActionUpdate, authz.ResourceGuest), guestHandler.Update)
	user.Delete("/guests/:id", Authorize(authz.ActionDelete, authz.ResourceGuest), guestHandler.Delete)
}
