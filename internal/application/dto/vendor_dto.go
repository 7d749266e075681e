package dto

import "time"

// VendorResponse representación pública de un vendor.
type VendorResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	CompanyName      string    `json:"company_name"`
	Category         string    `json:"category"`
	MembershipStatus string    `json:"membership_status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// VendorProfileResponse perfil del vendor con los datos de su cuenta.
type VendorProfileResponse struct {
	VendorResponse
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// UpdateVendorRequest actualización parcial de un vendor (admin).
type UpdateVendorRequest struct {
	CompanyName      *string `json:"company_name"`
	Category         *string `json:"category"`
	MembershipStatus *string `json:"membership_status"`
}

// MembershipUpdateRequest cambio de estado de membresía (admin).
type MembershipUpdateRequest struct {
	MembershipStatus string `json:"membership_status"`
}
