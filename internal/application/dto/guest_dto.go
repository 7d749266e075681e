package dto

import "time"

// CreateGuestRequest alta de invitado en la lista del usuario.
type CreateGuestRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	RSVPStatus string `json:"rsvp_status"`
}

// UpdateGuestRequest edición parcial de un invitado.
type UpdateGuestRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	RSVPStatus *string `json:"rsvp_status"`
}

// GuestResponse representación pública de un invitado.
type GuestResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	RSVPStatus string    `json:"rsvp_status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
