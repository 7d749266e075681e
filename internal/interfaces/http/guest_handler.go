package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/eventos-api/internal/application/dto"
	"github.com/tu-usuario/eventos-api/internal/application/usecase"
	"github.com/tu-usuario/eventos-api/internal/domain"
)

// GuestHandler lista de invitados del usuario autenticado.
type GuestHandler struct {
	uc *usecase.GuestUseCase
}

// NewGuestHandler construye el handler de invitados.
func NewGuestHandler(uc *usecase.GuestUseCase) *GuestHandler {
	return &GuestHandler{uc: uc}
}

// List godoc
// @Summary      Listar invitados
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GuestResponse
// @Router       /api/user/guests [get]
func (h *GuestHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar invitado
// @Tags         user
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGuestRequest  true  "name, email, rsvp_status (Pending|Confirmed|Declined)"
// @Success      201   {object}  dto.GuestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/user/guests [post]
func (h *GuestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGuestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y rsvp_status válido son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar invitado
// @Tags         user
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del invitado"
// @Param        body  body  dto.UpdateGuestRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.GuestResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/user/guests/{id} [put]
func (h *GuestHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGuestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invitado no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rsvp_status inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar invitado
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del invitado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/user/guests/{id} [delete]
func (h *GuestHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invitado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "invitado eliminado"})
}
