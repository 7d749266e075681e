package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tu-usuario/eventos-api/internal/domain"
)

// uniqueViolation devuelve el constraint violado si err es un unique_violation
// (23505) de Postgres.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// translateUnique mapea violaciones únicas del esquema al error de dominio:
// el unique de email de cuentas tiene su propio sentinel; el resto (línea de
// carrito por usuario+artículo, perfil de vendor por cuenta) es ErrDuplicate.
// Devuelve nil si err no es una violación única.
func translateUnique(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return nil
	}
	if strings.Contains(constraint, "email") {
		return domain.ErrEmailAlreadyExists
	}
	return domain.ErrDuplicate
}
