package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/eventos-api/internal/domain/entity"
	"github.com/tu-usuario/eventos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Las líneas snapshot viven en order_lines y se cargan siempre con la orden.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la orden y todas sus líneas. Para atomicidad debe invocarse
// con un Querier transaccional (TxRunner).
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`INSERT INTO orders (id, user_id, total, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		order.ID, order.UserID, order.Total, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, line := range order.Lines {
		_, err := r.q.Exec(ctx,
			`INSERT INTO order_lines (id, order_id, item_id, vendor_id, item_name, unit_price, quantity)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			line.ID, line.OrderID, line.ItemID, line.VendorID, line.ItemName, line.UnitPrice, line.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden con sus líneas.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	ctx := context.Background()
	var o entity.Order
	err := r.q.QueryRow(ctx,
		`SELECT id, user_id, total, status, created_at, updated_at FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	lines, err := r.linesFor(ctx, o.ID, "")
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

// ListByUser lista las órdenes de un usuario con sus líneas.
func (r *OrderRepo) ListByUser(userID string, limit, offset int) ([]*entity.Order, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx,
		`SELECT id, user_id, total, status, created_at, updated_at
		 FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		lines, err := r.linesFor(ctx, o.ID, "")
		if err != nil {
			return nil, err
		}
		o.Lines = lines
	}
	return orders, nil
}

// ListByVendor lista órdenes con al menos una línea del vendor, cargando
// únicamente las líneas de ese vendor.
func (r *OrderRepo) ListByVendor(vendorID string, limit, offset int) ([]*entity.Order, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT o.id, o.user_id, o.total, o.status, o.created_at, o.updated_at
		 FROM orders o
		 JOIN order_lines l ON l.order_id = o.id
		 WHERE l.vendor_id = $1
		 ORDER BY o.created_at DESC LIMIT $2 OFFSET $3`,
		vendorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by vendor: %w", err)
	}
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		lines, err := r.linesFor(ctx, o.ID, vendorID)
		if err != nil {
			return nil, err
		}
		o.Lines = lines
	}
	return orders, nil
}

// UpdateStatus cambia el estado solo si el actual coincide con from.
// Devuelve false si otra petición ya lo movió (cero filas afectadas).
func (r *OrderRepo) UpdateStatus(id, from, to string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		id, from, to,
	)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ExistsByUser indica si el usuario tiene órdenes.
func (r *OrderRepo) ExistsByUser(userID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM orders WHERE user_id = $1)`, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("orders exist by user: %w", err)
	}
	return exists, nil
}

// linesFor carga las líneas de una orden; vendorID filtra si no está vacío.
func (r *OrderRepo) linesFor(ctx context.Context, orderID, vendorID string) ([]entity.OrderLine, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, order_id, item_id, vendor_id, item_name, unit_price, quantity
		 FROM order_lines WHERE order_id = $1 AND ($2 = '' OR vendor_id = $2)`,
		orderID, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ItemID, &l.VendorID, &l.ItemName, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
