package entity

import "time"

// Estados RSVP de un invitado.
const (
	RSVPPending   = "Pending"
	RSVPConfirmed = "Confirmed"
	RSVPDeclined  = "Declined"
)

// Guest invitado de la lista personal de un usuario. Independiente de las órdenes.
type Guest struct {
	ID         string
	UserID     string
	Name       string
	Email      string
	RSVPStatus string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidRSVPStatus indica si el estado RSVP es conocido.
func ValidRSVPStatus(s string) bool {
	return s == RSVPPending || s == RSVPConfirmed || s == RSVPDeclined
}
