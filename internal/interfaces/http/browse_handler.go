package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/eventos-api/internal/application/dto"
	"github.com/tu-usuario/eventos-api/internal/application/usecase"
)

// BrowseHandler catálogo visible para usuarios: vendors con membresía activa
// y artículos aprobados de esos vendors.
type BrowseHandler struct {
	vendorUC  *usecase.VendorUseCase
	catalogUC *usecase.CatalogUseCase
}

// NewBrowseHandler construye el handler de navegación del catálogo.
func NewBrowseHandler(vendorUC *usecase.VendorUseCase, catalogUC *usecase.CatalogUseCase) *BrowseHandler {
	return &BrowseHandler{vendorUC: vendorUC, catalogUC: catalogUC}
}

// ListVendors godoc
// @Summary      Listar vendors activos
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.VendorResponse
// @Router       /api/user/vendors [get]
func (h *BrowseHandler) ListVendors(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.vendorUC.ListActive(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Listar artículos ordenables (aprobados, vendor activo)
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Catering|Florist|Decoration|Lighting"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/user/items [get]
func (h *BrowseHandler) ListItems(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.catalogUC.Browse("", c.Query("category"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListVendorItems godoc
// @Summary      Listar artículos ordenables de un vendor
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true   "ID del vendor"
// @Param        category  query  string  false  "Catering|Florist|Decoration|Lighting"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/user/vendors/{id}/items [get]
func (h *BrowseHandler) ListVendorItems(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.catalogUC.Browse(c.Params("id"), c.Query("category"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
