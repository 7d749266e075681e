package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/eventos-api/internal/domain/entity"
	"github.com/tu-usuario/eventos-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// Create persiste una línea de carrito. (user_id, item_id) es único.
func (r *CartRepo) Create(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, user_id, item_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UserID, item.ItemID, item.Quantity, item.CreatedAt,
	)
	if err != nil {
		if derr := translateUnique(err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID.
func (r *CartRepo) GetByID(id string) (*entity.CartItem, error) {
	return r.getBy(`SELECT id, user_id, item_id, quantity, created_at FROM cart_items WHERE id = $1`, id)
}

// GetByUserAndItem obtiene la línea de un usuario para un artículo concreto.
func (r *CartRepo) GetByUserAndItem(userID, itemID string) (*entity.CartItem, error) {
	var c entity.CartItem
	err := r.q.QueryRow(context.Background(),
		`SELECT id, user_id, item_id, quantity, created_at FROM cart_items WHERE user_id = $1 AND item_id = $2`,
		userID, itemID,
	).Scan(&c.ID, &c.UserID, &c.ItemID, &c.Quantity, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &c, nil
}

func (r *CartRepo) getBy(query, arg string) (*entity.CartItem, error) {
	var c entity.CartItem
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.UserID, &c.ItemID, &c.Quantity, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &c, nil
}

// UpdateQuantity fija la cantidad de una línea.
func (r *CartRepo) UpdateQuantity(id string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cart_items SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	return nil
}

// ListByUser lista el carrito de un usuario.
func (r *CartRepo) ListByUser(userID string) ([]*entity.CartItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, user_id, item_id, quantity, created_at FROM cart_items WHERE user_id = $1 ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartItem
	for rows.Next() {
		var c entity.CartItem
		if err := rows.Scan(&c.ID, &c.UserID, &c.ItemID, &c.Quantity, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una línea por ID.
func (r *CartRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// DeleteByUser vacía el carrito de un usuario.
func (r *CartRepo) DeleteByUser(userID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
