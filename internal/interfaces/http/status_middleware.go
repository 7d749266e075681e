package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/eventos-api/internal/application/dto"
)

// accountChecker es el contrato mínimo que necesita el middleware para verificar
// el estado de la cuenta. Lo implementa *auth.AuthUseCase; el uso de interfaz
// evita el import circular.
type accountChecker interface {
	IsActive(ctx context.Context, userID string) (bool, error)
}

// RequireActiveUser devuelve un middleware Fiber que verifica contra la base de
// datos que la cuenta del token siga activa. El token es stateless: un admin
// puede desactivar una cuenta con tokens aún vigentes, y este chequeo es lo que
// corta el acceso. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 403 Forbidden → cuenta desactivada o inexistente.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Si no hay user_id en el contexto, responde 401 (el AuthMiddleware debería haberlo puesto).
func RequireActiveUser(checker accountChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}

		active, err := checker.IsActive(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "STATUS_CHECK_FAILED",
				Message: "no se pudo verificar la cuenta, intente más tarde",
			})
		}

		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "ACCOUNT_DISABLED",
				Message: "la cuenta está desactivada",
			})
		}

		return c.Next()
	}
}
