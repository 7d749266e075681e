package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/eventos-api/internal/domain/entity"
	"github.com/tu-usuario/eventos-api/internal/domain/repository"
)

var _ repository.GuestRepository = (*GuestRepo)(nil)

// GuestRepo implementación del puerto GuestRepository sobre PostgreSQL.
type GuestRepo struct {
	q Querier
}

// NewGuestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGuestRepository(q Querier) *GuestRepo {
	return &GuestRepo{q: q}
}

// Create persiste un invitado.
func (r *GuestRepo) Create(guest *entity.Guest) error {
	query := `
		INSERT INTO guests (id, user_id, name, email, rsvp_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		guest.ID, guest.UserID, guest.Name, guest.Email, guest.RSVPStatus,
		guest.CreatedAt, guest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert guest: %w", err)
	}
	return nil
}

// GetByID obtiene un invitado por ID.
func (r *GuestRepo) GetByID(id string) (*entity.Guest, error) {
	query := `SELECT id, user_id, name, email, rsvp_status, created_at, updated_at FROM guests WHERE id = $1`
	var g entity.Guest
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.UserID, &g.Name, &g.Email, &g.RSVPStatus, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}
	return &g, nil
}

// Update actualiza nombre, email y RSVP.
func (r *GuestRepo) Update(guest *entity.Guest) error {
	query := `
		UPDATE guests SET name = $2, email = $3, rsvp_status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		guest.ID, guest.Name, guest.Email, guest.RSVPStatus, guest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update guest: %w", err)
	}
	return nil
}

// Delete elimina un invitado por ID.
func (r *GuestRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete guest: %w", err)
	}
	return nil
}

// ListByUser lista los invitados de un usuario.
func (r *GuestRepo) ListByUser(userID string) ([]*entity.Guest, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, user_id, name, email, rsvp_status, created_at, updated_at
		 FROM guests WHERE user_id = $1 ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()
	var list []*entity.Guest
	for rows.Next() {
		var g entity.Guest
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.Email, &g.RSVPStatus, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}
