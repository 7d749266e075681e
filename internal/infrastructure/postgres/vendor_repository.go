package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/eventos-api/internal/domain/entity"
	"github.com/tu-usuario/eventos-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

const vendorColumns = `id, user_id, company_name, category, membership_status, created_at, updated_at`

// Create persiste un perfil vendor. user_id es único (1:1 con la cuenta).
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, user_id, company_name, category, membership_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.UserID, vendor.CompanyName, vendor.Category, vendor.MembershipStatus,
		vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		if derr := translateUnique(err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un vendor por ID.
func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	return r.getBy(`SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id)
}

// GetByUserID obtiene el vendor de una cuenta.
func (r *VendorRepo) GetByUserID(userID string) (*entity.Vendor, error) {
	return r.getBy(`SELECT `+vendorColumns+` FROM vendors WHERE user_id = $1`, userID)
}

func (r *VendorRepo) getBy(query, arg string) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&v.ID, &v.UserID, &v.CompanyName, &v.Category, &v.MembershipStatus, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// Update actualiza nombre comercial y membresía.
func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	query := `
		UPDATE vendors SET company_name = $2, category = $3, membership_status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.CompanyName, vendor.Category, vendor.MembershipStatus, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

// List lista todos los vendors con paginación (admin).
func (r *VendorRepo) List(limit, offset int) ([]*entity.Vendor, error) {
	return r.list(`SELECT `+vendorColumns+` FROM vendors ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// ListActive lista solo vendors con membresía activa (browse de usuarios).
func (r *VendorRepo) ListActive(limit, offset int) ([]*entity.Vendor, error) {
	return r.list(`SELECT `+vendorColumns+` FROM vendors WHERE membership_status = 'active' ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *VendorRepo) list(query string, limit, offset int) ([]*entity.Vendor, error) {
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.UserID, &v.CompanyName, &v.Category, &v.MembershipStatus, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
